// Package jsontable flattens nested JSON documents into tables.
//
// A document is parsed into a Value, an ordered tagged variant that keeps
// object keys in document order. Flatten turns one value into a Record keyed by
// dotted paths (user.id, items.0.sku). ToTable flattens each row-source of a
// document and aligns the records under a header built from the union of all
// paths, in the order they were first seen:
//
//	v, _ := jsontable.Parse([]byte(`{"a":{"b":1},"c":2}`))
//	jsontable.ToTable(v, "").Strings() // [["a.b" "c"] ["1" "2"]]
//
// Missing fields render as empty strings. Flattening never fails on a parsed
// value; only Parse reports errors.
package jsontable
