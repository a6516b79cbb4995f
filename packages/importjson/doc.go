// Package importjson fetches JSON documents and flattens them into tables.
//
// An Importer takes a URL cell or a range of URL cells. Each distinct URL is
// fetched once per call, parsed, optionally validated against a JSON schema,
// and flattened with jsontable.ToTable. Tables for a range of URLs are
// merged in row-major order under one header with every column seen.
// Nothing is cached between calls.
package importjson
