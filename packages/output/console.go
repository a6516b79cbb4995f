package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

const columnGap = "  "

// ConsoleFormatter prints rows as aligned columns
type ConsoleFormatter struct {
	writer io.Writer
	opts   options
}

func (f *ConsoleFormatter) Format(rows [][]string) error {
	bold := color.New(color.Bold)
	if f.opts.noColor {
		bold.DisableColor()
	}

	cols := width(rows)
	widths := make([]int, cols)
	for _, row := range rows {
		for i, c := range row {
			if w := runewidth.StringWidth(c); w > widths[i] {
				widths[i] = w
			}
		}
	}

	for i, row := range rows {
		cells := make([]string, len(row))
		for j, c := range row {
			if j < len(row)-1 {
				c = runewidth.FillRight(c, widths[j])
			}
			cells[j] = c
		}
		line := strings.TrimRight(strings.Join(cells, columnGap), " ")
		if i == 0 && f.opts.header && len(rows) > 1 {
			line = bold.Sprint(line)
		}
		if _, err := fmt.Fprintln(f.writer, line); err != nil {
			return err
		}
	}
	return nil
}

// FormatError prints err in red
func FormatError(w io.Writer, err error, noColor bool) {
	red := color.New(color.FgRed)
	if noColor {
		red.DisableColor()
	}
	fmt.Fprintf(w, "%s %v\n", red.Sprint("Error:"), err)
}

// FormatWarning prints msg in yellow
func FormatWarning(w io.Writer, msg string, noColor bool) {
	yellow := color.New(color.FgYellow)
	if noColor {
		yellow.DisableColor()
	}
	fmt.Fprintf(w, "%s %s\n", yellow.Sprint("Warning:"), msg)
}
