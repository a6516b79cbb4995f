package output

import (
	"fmt"
	"html/template"
	"io"
)

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif; margin: 2rem; }
table { border-collapse: collapse; }
th, td { border: 1px solid #d0d7de; padding: 4px 8px; text-align: left; }
th { background: #f6f8fa; }
</style>
</head>
<body>
<table>
{{- if .Header}}
<thead><tr>{{range .Header}}<th>{{.}}</th>{{end}}</tr></thead>
{{- end}}
<tbody>
{{- range .Rows}}
<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{- end}}
</tbody>
</table>
</body>
</html>
`

var htmlTmpl = template.Must(template.New("table").Parse(htmlTemplate))

// HTMLOutput is the data passed to the HTML template
type HTMLOutput struct {
	Title  string
	Header []string
	Rows   [][]string
}

// HTMLFormatter writes rows as a standalone HTML table
type HTMLFormatter struct {
	writer io.Writer
	opts   options
}

func (f *HTMLFormatter) Format(rows [][]string) error {
	cols := width(rows)
	out := HTMLOutput{Title: f.opts.title}

	body := rows
	if f.opts.header && len(rows) > 0 {
		out.Header = pad(rows[0], cols)
		body = rows[1:]
	}
	for _, r := range body {
		out.Rows = append(out.Rows, pad(r, cols))
	}

	if err := htmlTmpl.Execute(f.writer, out); err != nil {
		return fmt.Errorf("failed to render HTML table: %w", err)
	}
	return nil
}
