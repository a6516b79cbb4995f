// Package builtin is the registry of spreadsheet functions exposed by sheetfn.
//
// Available functions:
//   - HASH_MD2, HASH_MD5, HASH_SHA1, HASH_SHA256, HASH_SHA384, HASH_SHA512,
//     HASH_SHA3_256, HASH_SHA3_512, HASH_BLAKE2B_256(input)
//   - RAND_UUID([input_range])
//   - PARSE_TEMPLATE(template, values)
//   - EXTRACT_PARAMS(url, [url_parameters], [decode_uri])
//   - EXTRACT_UTM(url, [utms], [decode_uri])
//   - ENCODE_URI(text), DECODE_URI(text)
//   - IMPORTJSON(url, [start_from_key])
//
// Every argument is a cell.Input: a single cell or a rectangular range.
// Functions are invoked with Registry.Call, or from an expression such as
// EXTRACT_UTM("https://x.y/?utm_source=a", {"source","medium"}) with
// Registry.Eval.
package builtin
