package jsontable

import "strconv"

// Record is a flat mapping from dotted path to scalar value. Keys iterate in
// insertion order.
type Record struct {
	keys   []string
	values map[string]Value
}

// NewRecord returns an empty record.
func NewRecord() *Record {
	return &Record{values: make(map[string]Value)}
}

// Set stores value at path. Setting an existing path replaces the value in place.
func (r *Record) Set(path string, value Value) {
	if _, ok := r.values[path]; !ok {
		r.keys = append(r.keys, path)
	}
	r.values[path] = value
}

// Get returns the value stored at path.
func (r *Record) Get(path string) (Value, bool) {
	v, ok := r.values[path]
	return v, ok
}

// Keys returns the paths in insertion order.
func (r *Record) Keys() []string {
	return r.keys
}

func (r *Record) Len() int {
	return len(r.keys)
}

// Flatten flattens v into a record of dotted paths, each prefixed with prefix.
// Objects and arrays are descended into; array elements are keyed by index.
// Scalars and nulls are stored at their path. A scalar v has no members and
// yields an empty record.
func Flatten(v Value, prefix string) *Record {
	rec := NewRecord()
	flattenInto(rec, v, prefix)
	return rec
}

func flattenInto(rec *Record, v Value, prefix string) {
	switch v.kind {
	case KindObject:
		for _, m := range v.members {
			flattenMember(rec, joinPath(prefix, m.Key), m.Value)
		}
	case KindArray:
		for i, item := range v.items {
			flattenMember(rec, joinPath(prefix, strconv.Itoa(i)), item)
		}
	}
}

func flattenMember(rec *Record, path string, v Value) {
	if v.IsContainer() {
		flattenInto(rec, v, path)
		return
	}
	rec.Set(path, v)
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
