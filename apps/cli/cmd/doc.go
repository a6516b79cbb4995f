// Package cmd implements the sheetfn CLI commands using Cobra.
//
// Available commands:
//   - call: Call any function by name with cell arguments
//   - eval: Evaluate a formula such as HASH_MD5("x")
//   - list: Show the available functions
//   - hash, uuid, template, params, utm, encode, decode: Shortcuts for single functions
//   - import: Fetch JSON from URLs and flatten it into a table
//   - flatten: Flatten a local JSON document
//   - init: Create a config file
//   - version: Show sheetfn version information
//
// Results can be rendered as console tables, TSV, CSV, JSON, Markdown or
// HTML, and optionally written to a SQLite table with --db.
package cmd
