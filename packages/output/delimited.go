package output

import (
	"encoding/csv"
	"io"
	"strings"
)

var tsvCleaner = strings.NewReplacer("\t", " ", "\r\n", " ", "\n", " ", "\r", " ")

// TSVFormatter writes tab-separated rows. Tabs and newlines inside cells
// become spaces so every row stays on one line.
type TSVFormatter struct {
	writer io.Writer
}

func (f *TSVFormatter) Format(rows [][]string) error {
	var b strings.Builder
	for _, row := range rows {
		for i, c := range row {
			if i > 0 {
				b.WriteByte('\t')
			}
			b.WriteString(tsvCleaner.Replace(c))
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(f.writer, b.String())
	return err
}

type CSVFormatter struct {
	writer io.Writer
}

func (f *CSVFormatter) Format(rows [][]string) error {
	w := csv.NewWriter(f.writer)
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	return w.Error()
}
