// Package output renders function results.
//
// Supported output formats:
//   - console: Aligned columns with a bold header row
//   - tsv: Tab-separated values, pasteable into a spreadsheet
//   - csv: RFC 4180 comma-separated values
//   - json: An array of row arrays
//   - markdown: A GitHub-flavored markdown table
//   - html: A standalone HTML table
//
// Every formatter implements Formatter. Rows are rendered as given; the first
// row is treated as a header unless WithHeader(false) is set.
package output
