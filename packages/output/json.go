package output

import (
	"encoding/json"
	"io"
)

// JSONFormatter writes rows as a JSON array of arrays
type JSONFormatter struct {
	writer io.Writer
}

func (f *JSONFormatter) Format(rows [][]string) error {
	if rows == nil {
		rows = [][]string{}
	}
	for i, r := range rows {
		if r == nil {
			rows[i] = []string{}
		}
	}

	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(rows)
}
