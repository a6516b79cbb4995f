package output

import (
	"io"

	"github.com/nao1215/markdown"
)

// MarkdownFormatter writes rows as a markdown table
type MarkdownFormatter struct {
	writer io.Writer
	opts   options
}

func (f *MarkdownFormatter) Format(rows [][]string) error {
	cols := width(rows)
	if cols == 0 {
		return nil
	}

	var header []string
	body := rows
	if f.opts.header {
		header = pad(rows[0], cols)
		body = rows[1:]
	} else {
		// markdown tables always carry a header; number the columns instead
		header = make([]string, cols)
		for i := range header {
			header[i] = ColumnName(i)
		}
	}

	padded := make([][]string, len(body))
	for i, r := range body {
		padded[i] = pad(r, cols)
	}

	md := markdown.NewMarkdown(f.writer)
	md.Table(markdown.TableSet{
		Header: header,
		Rows:   padded,
	})
	return md.Build()
}

// ColumnName returns the spreadsheet column letter for index i: A, B, ..., Z, AA.
func ColumnName(i int) string {
	name := ""
	for i >= 0 {
		name = string(rune('A'+i%26)) + name
		i = i/26 - 1
	}
	return name
}
