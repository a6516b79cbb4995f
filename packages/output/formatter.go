package output

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrUnknownFormat is returned by New for an unsupported format name
var ErrUnknownFormat = errors.New("unknown output format")

type Formatter interface {
	Format(rows [][]string) error
}

type Format string

const (
	FormatConsole  Format = "console"
	FormatTSV      Format = "tsv"
	FormatCSV      Format = "csv"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatConsole, FormatTSV, FormatCSV, FormatJSON, FormatMarkdown, FormatHTML}
}

type options struct {
	noColor bool
	header  bool
	title   string
}

type Option func(*options)

// WithNoColor disables ANSI colors in console output
func WithNoColor(nc bool) Option {
	return func(o *options) {
		o.noColor = nc
	}
}

// WithHeader controls whether the first row is rendered as a header
func WithHeader(h bool) Option {
	return func(o *options) {
		o.header = h
	}
}

// WithTitle sets the document title for HTML output
func WithTitle(title string) Option {
	return func(o *options) {
		o.title = title
	}
}

// New returns the formatter for format writing to w. An empty format is console.
func New(format string, w io.Writer, opts ...Option) (Formatter, error) {
	o := options{header: true, title: "sheetfn"}
	for _, opt := range opts {
		opt(&o)
	}
	if w == nil {
		w = os.Stdout
	}

	switch Format(strings.ToLower(strings.TrimSpace(format))) {
	case FormatConsole, "":
		return &ConsoleFormatter{writer: w, opts: o}, nil
	case FormatTSV:
		return &TSVFormatter{writer: w}, nil
	case FormatCSV:
		return &CSVFormatter{writer: w}, nil
	case FormatJSON:
		return &JSONFormatter{writer: w}, nil
	case FormatMarkdown, "md":
		return &MarkdownFormatter{writer: w, opts: o}, nil
	case FormatHTML:
		return &HTMLFormatter{writer: w, opts: o}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// width returns the widest row length.
func width(rows [][]string) int {
	n := 0
	for _, r := range rows {
		if len(r) > n {
			n = len(r)
		}
	}
	return n
}

// pad returns row extended with empty cells to n columns.
func pad(row []string, n int) []string {
	if len(row) >= n {
		return row
	}
	out := make([]string, n)
	copy(out, row)
	return out
}
