package importjson

import (
	"context"
	"fmt"
	"strings"

	"github.com/abdul-hamid-achik/sheetfn/packages/cell"
	"github.com/abdul-hamid-achik/sheetfn/packages/jsontable"
	"github.com/xeipuuv/gojsonschema"
)

// Fetcher retrieves the body at url. *http.Client implements it.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context, url string) ([]byte, error)

func (f FetcherFunc) Fetch(ctx context.Context, url string) ([]byte, error) {
	return f(ctx, url)
}

type Importer struct {
	fetcher Fetcher
	schema  *gojsonschema.Schema
}

type Option func(*Importer) error

// WithSchema validates every fetched document against the given JSON schema.
func WithSchema(schema []byte) Option {
	return func(im *Importer) error {
		s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schema))
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSchema, err)
		}
		im.schema = s
		return nil
	}
}

func New(fetcher Fetcher, opts ...Option) (*Importer, error) {
	im := &Importer{fetcher: fetcher}
	for _, opt := range opts {
		if err := opt(im); err != nil {
			return nil, err
		}
	}
	return im, nil
}

// Import fetches every URL in urls and returns the flattened result. Empty
// cells are skipped. The tables of a grid are merged in row-major order under
// one header holding every column seen. The first failing URL aborts the call.
func (im *Importer) Import(ctx context.Context, urls cell.Input[string], startFromKey string) (jsontable.Table, error) {
	fetched := make(map[string]jsontable.Table)
	var tables []jsontable.Table

	for _, raw := range cell.Cells(urls) {
		u := strings.TrimSpace(raw)
		if u == "" {
			continue
		}

		table, ok := fetched[u]
		if !ok {
			var err error
			table, err = im.importOne(ctx, u, startFromKey)
			if err != nil {
				return nil, err
			}
			fetched[u] = table
		}
		tables = append(tables, table)
	}

	return jsontable.Merge(tables...), nil
}

func (im *Importer) importOne(ctx context.Context, url, startFromKey string) (jsontable.Table, error) {
	body, err := im.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}

	doc, err := jsontable.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", url, err)
	}

	if im.schema != nil {
		if err := im.validate(body); err != nil {
			return nil, fmt.Errorf("validating %s: %w", url, err)
		}
	}

	return jsontable.ToTable(doc, startFromKey), nil
}

func (im *Importer) validate(body []byte) error {
	result, err := im.schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSchemaViolation, err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrSchemaViolation, strings.Join(msgs, "; "))
}

// ImportDocument flattens an already-loaded document, applying the same
// schema check as Import.
func (im *Importer) ImportDocument(body []byte, startFromKey string) (jsontable.Table, error) {
	doc, err := jsontable.Parse(body)
	if err != nil {
		return nil, err
	}
	if im.schema != nil {
		if err := im.validate(body); err != nil {
			return nil, err
		}
	}
	return jsontable.ToTable(doc, startFromKey), nil
}
