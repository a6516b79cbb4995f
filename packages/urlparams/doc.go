// Package urlparams extracts query parameters from URLs and encodes or decodes
// URI components the way spreadsheet hosts do.
//
// Extraction is lenient: every key=value fragment delimited by
// '?' or '&' counts, whether or not the text parses as a URL.
package urlparams
