package jsontable

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Kind is the variant tag of a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindObject
	KindArray
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// Value is a JSON value. The zero Value is null.
type Value struct {
	kind Kind

	// Scalars. Numbers keep their literal text in str.
	boolVal bool
	str     string

	// Containers
	members []Member
	items   []Value
}

// Member is a key/value pair of an object.
type Member struct {
	Key   string
	Value Value
}

// ============================================================
// Constructors
// ============================================================

func Null() Value {
	return Value{kind: KindNull}
}

func Bool(b bool) Value {
	return Value{kind: KindBool, boolVal: b}
}

// Number creates a number from its literal text, e.g. "1" or "3.5e2".
func Number(literal string) Value {
	return Value{kind: KindNumber, str: literal}
}

// Int creates a number from an int.
func Int(n int) Value {
	return Number(strconv.Itoa(n))
}

func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Object creates an object. A repeated key replaces the earlier value but
// keeps its position.
func Object(members ...Member) Value {
	v := Value{kind: KindObject, members: make([]Member, 0, len(members))}
	for _, m := range members {
		v.set(m.Key, m.Value)
	}
	return v
}

func Array(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: KindArray, items: items}
}

// M is shorthand for building object members.
func M(key string, value Value) Member {
	return Member{Key: key, Value: value}
}

func (v *Value) set(key string, value Value) {
	for i := range v.members {
		if v.members[i].Key == key {
			v.members[i].Value = value
			return
		}
	}
	v.members = append(v.members, Member{Key: key, Value: value})
}

// ============================================================
// Accessors
// ============================================================

func (v Value) Kind() Kind {
	return v.kind
}

// IsContainer reports whether v is an object or an array.
func (v Value) IsContainer() bool {
	return v.kind == KindObject || v.kind == KindArray
}

// Members returns the members of an object in document order.
func (v Value) Members() []Member {
	return v.members
}

// Items returns the elements of an array.
func (v Value) Items() []Value {
	return v.items
}

// Len returns the number of members or items of a container, 0 otherwise.
func (v Value) Len() int {
	switch v.kind {
	case KindObject:
		return len(v.members)
	case KindArray:
		return len(v.items)
	default:
		return 0
	}
}

// Get returns the member named key of an object.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindObject {
		return Value{}, false
	}
	for _, m := range v.members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return Value{}, false
}

// Float returns the numeric value of a number.
func (v Value) Float() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	f, err := strconv.ParseFloat(v.str, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Text renders v as cell text: strings as is, booleans as true/false and null
// as "". Integer literals keep their digits; other numbers use the shortest
// decimal form, switching to an exponent outside [1e-6, 1e21). Containers
// render as compact JSON.
func (v Value) Text() string {
	switch v.kind {
	case KindNull:
		return ""
	case KindBool:
		return strconv.FormatBool(v.boolVal)
	case KindNumber:
		return v.numberText()
	case KindString:
		return v.str
	default:
		data, _ := v.MarshalJSON()
		return string(data)
	}
}

func (v Value) numberText() string {
	if isIntegerLiteral(v.str) {
		return v.str
	}
	f, ok := v.Float()
	if !ok {
		return v.str
	}
	if f == 0 {
		return "0"
	}
	if abs := math.Abs(f); abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	// 1e-07 -> 1e-7
	text := strconv.FormatFloat(f, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(text, "e")
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	return mantissa + "e" + sign + digits
}

func isIntegerLiteral(s string) bool {
	s = strings.TrimPrefix(s, "-")
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// MarshalJSON encodes v, keeping object key order.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v Value) encode(buf *bytes.Buffer) error {
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		buf.WriteString(strconv.FormatBool(v.boolVal))
	case KindNumber:
		buf.WriteString(v.str)
	case KindString:
		quoted, err := json.Marshal(v.str)
		if err != nil {
			return err
		}
		buf.Write(quoted)
	case KindArray:
		buf.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := item.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindObject:
		buf.WriteByte('{')
		for i, m := range v.members {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(m.Key)
			if err != nil {
				return err
			}
			buf.Write(key)
			buf.WriteByte(':')
			if err := m.Value.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	return nil
}
