// Package template fills $[N] placeholders in a template with the columns of a row.
package template

import (
	"regexp"
	"strconv"

	"github.com/abdul-hamid-achik/sheetfn/packages/cell"
)

var placeholderPattern = regexp.MustCompile(`\$\[(\d+)\]`)

// Render replaces every $[N] in tmpl with row[N]. Columns are zero-indexed;
// a column outside the row renders as "".
func Render(tmpl string, row []string) string {
	return placeholderPattern.ReplaceAllStringFunc(tmpl, func(match string) string {
		sub := placeholderPattern.FindStringSubmatch(match)
		idx, err := strconv.Atoi(sub[1])
		if err != nil || idx >= len(row) {
			return ""
		}
		return row[idx]
	})
}

// RenderRows renders tmpl once per row of values. Each result is a
// single-cell row.
func RenderRows(tmpl string, values cell.Input[string]) [][]string {
	rows := cell.Rows(values)
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, []string{Render(tmpl, row)})
	}
	return out
}

// Placeholders returns the distinct column indexes referenced by tmpl in
// order of first use.
func Placeholders(tmpl string) []int {
	seen := make(map[int]bool)
	var out []int
	for _, sub := range placeholderPattern.FindAllStringSubmatch(tmpl, -1) {
		idx, err := strconv.Atoi(sub[1])
		if err != nil || seen[idx] {
			continue
		}
		seen[idx] = true
		out = append(out, idx)
	}
	return out
}
