package builtin

import (
	"context"
	"fmt"
	"strings"

	"github.com/abdul-hamid-achik/sheetfn/packages/cell"
	"github.com/abdul-hamid-achik/sheetfn/packages/digest"
	"github.com/abdul-hamid-achik/sheetfn/packages/template"
	"github.com/abdul-hamid-achik/sheetfn/packages/urlparams"
)

var (
	inputParam  = Param{Name: "input", Description: "The input to hash, can be a single cell or a range."}
	textParam   = Param{Name: "text", Description: "A cell or range of text."}
	urlParam    = Param{Name: "url", Description: "A URL, or a range of URLs."}
	decodeParam = Param{Name: "decode_uri", Description: "Whether to decode values, e.g. %20 becomes a space. Defaults to TRUE.", Optional: true}
)

func (r *Registry) registerDefaults() {
	for _, alg := range digest.Algorithms() {
		r.Register(Spec{
			Name:    "HASH_" + string(alg),
			Summary: fmt.Sprintf("Returns the %s hash of the input as lowercase hex.", alg),
			Params:  []Param{inputParam},
			Example: fmt.Sprintf(`HASH_%s("hello world")`, alg),
		}, hashFunc(alg))
	}

	r.Register(Spec{
		Name:    "RAND_UUID",
		Summary: "Returns a random UUID, or a range of distinct UUIDs shaped like input_range.",
		Params: []Param{
			{Name: "input_range", Description: "Any cell or range; one UUID is produced per cell.", Optional: true},
		},
		Example: "RAND_UUID()",
	}, r.randUUID)

	r.Register(Spec{
		Name:    "PARSE_TEMPLATE",
		Summary: "Replaces each $[N] in template with column N (zero-indexed) of every row in values.",
		Params: []Param{
			{Name: "template", Description: `The template, e.g. "Good $[1] $[0]!".`},
			{Name: "values", Description: "The rows to render the template with."},
		},
		Example: `PARSE_TEMPLATE("Good $[1] $[0]!", {"Ann","morning"})`,
	}, parseTemplate)

	r.Register(Spec{
		Name:    "EXTRACT_PARAMS",
		Summary: "Extracts query parameter values from each URL. Defaults to all parameters.",
		Params: []Param{
			urlParam,
			{Name: "url_parameters", Description: "The parameter names to extract; only the first row is used.", Optional: true},
			decodeParam,
		},
		Example: `EXTRACT_PARAMS("https://x.y/?a=1&b=2", {"b","a"})`,
	}, extractParams)

	r.Register(Spec{
		Name:    "EXTRACT_UTM",
		Summary: "Extracts UTM parameters from each URL. Defaults to source, medium, campaign, content and term.",
		Params: []Param{
			urlParam,
			{Name: "utms", Description: "UTM names to extract, with or without the utm_ prefix; only the first row is used.", Optional: true},
			decodeParam,
		},
		Example: `EXTRACT_UTM("https://x.y/?utm_source=google&utm_medium=cpc")`,
	}, extractUTM)

	r.Register(Spec{
		Name:    "ENCODE_URI",
		Summary: "Percent-encodes text as a URI component.",
		Params:  []Param{textParam},
		Example: `ENCODE_URI("hej med dig")`,
	}, encodeURI)

	r.Register(Spec{
		Name:    "DECODE_URI",
		Summary: "Decodes a URI component; plus signs become spaces.",
		Params:  []Param{textParam},
		Example: `DECODE_URI("hej%20med%20dig")`,
	}, decodeURI)

	r.Register(Spec{
		Name:    "IMPORTJSON",
		Summary: "Fetches JSON from each URL and returns it as a flattened table.",
		Params: []Param{
			urlParam,
			{Name: "start_from_key", Description: "A top-level array field to use as rows, e.g. products.", Optional: true},
		},
		Example: `IMPORTJSON("https://dummyjson.com/comments", "comments")`,
	}, r.importJSON)
}

func hashFunc(alg digest.Algorithm) Func {
	return func(_ context.Context, args []cell.Input[string]) (cell.Input[string], error) {
		return cell.MapErr(args[0], func(s string) (string, error) {
			return digest.Sum(alg, s)
		})
	}
}

func (r *Registry) randUUID(_ context.Context, args []cell.Input[string]) (cell.Input[string], error) {
	if len(args) == 0 {
		return cell.Scalar(r.newUUID()), nil
	}
	return cell.Map(args[0], func(string) string {
		return r.newUUID()
	}), nil
}

func parseTemplate(_ context.Context, args []cell.Input[string]) (cell.Input[string], error) {
	tmpl := scalarArg(args[0])
	return cell.Grid(template.RenderRows(tmpl, args[1])), nil
}

func extractParams(_ context.Context, args []cell.Input[string]) (cell.Input[string], error) {
	keys, hasKeys := keysArg(args, 1)
	decode, err := boolArg(args, 2, true)
	if err != nil {
		return cell.Input[string]{}, err
	}

	var rows [][]string
	for _, u := range cell.Cells(args[0]) {
		params := urlparams.Extract(u, decode)
		if hasKeys {
			rows = append(rows, params.Select(keys))
		} else {
			rows = append(rows, params.Values())
		}
	}
	return cell.Grid(rows), nil
}

func extractUTM(_ context.Context, args []cell.Input[string]) (cell.Input[string], error) {
	keys, hasKeys := keysArg(args, 1)
	if hasKeys {
		keys = urlparams.UTMKeys(keys)
	} else {
		keys = urlparams.DefaultUTMKeys
	}
	decode, err := boolArg(args, 2, true)
	if err != nil {
		return cell.Input[string]{}, err
	}

	var rows [][]string
	for _, u := range cell.Cells(args[0]) {
		rows = append(rows, urlparams.Extract(u, decode).Select(keys))
	}
	return cell.Grid(rows), nil
}

func encodeURI(_ context.Context, args []cell.Input[string]) (cell.Input[string], error) {
	return cell.Map(args[0], urlparams.EncodeComponent), nil
}

func decodeURI(_ context.Context, args []cell.Input[string]) (cell.Input[string], error) {
	return cell.Map(args[0], urlparams.DecodeComponent), nil
}

func (r *Registry) importJSON(ctx context.Context, args []cell.Input[string]) (cell.Input[string], error) {
	startFromKey := ""
	if len(args) > 1 {
		startFromKey = strings.TrimSpace(scalarArg(args[1]))
	}

	table, err := r.importer.Import(ctx, args[0], startFromKey)
	if err != nil {
		return cell.Input[string]{}, err
	}
	return cell.Grid(table.Strings()), nil
}

// scalarArg returns a scalar's value or the first cell of a range.
func scalarArg(in cell.Input[string]) string {
	if !in.IsGrid() {
		return in.Value()
	}
	row := cell.FirstRow(in)
	if len(row) == 0 {
		return ""
	}
	return row[0]
}

// keysArg returns the first row of args[i]. An absent argument or an empty
// scalar means no keys were given.
func keysArg(args []cell.Input[string], i int) ([]string, bool) {
	if i >= len(args) {
		return nil, false
	}
	in := args[i]
	if !in.IsGrid() && strings.TrimSpace(in.Value()) == "" {
		return nil, false
	}
	return cell.FirstRow(in), true
}

// boolArg reads args[i] as a spreadsheet boolean. Missing or empty yields def.
func boolArg(args []cell.Input[string], i int, def bool) (bool, error) {
	if i >= len(args) {
		return def, nil
	}
	return ParseBool(scalarArg(args[i]), def)
}

// ParseBool accepts TRUE/FALSE, 1/0 and yes/no in any case.
func ParseBool(s string, def bool) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return def, nil
	case "true", "1", "yes":
		return true, nil
	case "false", "0", "no":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q is not a boolean", ErrInvalidArgument, s)
	}
}
