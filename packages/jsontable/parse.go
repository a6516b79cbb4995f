package jsontable

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// Parse parses a JSON document. Object members keep their document order.
func Parse(data []byte) (Value, error) {
	if !gjson.ValidBytes(data) {
		if len(strings.TrimSpace(string(data))) == 0 {
			return Value{}, fmt.Errorf("%w: empty document", ErrInvalidJSON)
		}
		return Value{}, fmt.Errorf("%w: malformed document", ErrInvalidJSON)
	}
	return fromResult(gjson.ParseBytes(data)), nil
}

func fromResult(r gjson.Result) Value {
	switch r.Type {
	case gjson.Null:
		return Null()
	case gjson.False:
		return Bool(false)
	case gjson.True:
		return Bool(true)
	case gjson.Number:
		return Number(strings.TrimSpace(r.Raw))
	case gjson.String:
		return String(r.Str)
	case gjson.JSON:
		if r.IsArray() {
			items := make([]Value, 0)
			r.ForEach(func(_, item gjson.Result) bool {
				items = append(items, fromResult(item))
				return true
			})
			return Array(items...)
		}
		obj := Object()
		r.ForEach(func(key, value gjson.Result) bool {
			obj.set(key.Str, fromResult(value))
			return true
		})
		return obj
	default:
		return Null()
	}
}
