package builtin

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/abdul-hamid-achik/sheetfn/packages/cell"
	"github.com/abdul-hamid-achik/sheetfn/packages/http"
	"github.com/abdul-hamid-achik/sheetfn/packages/importjson"
	"github.com/google/uuid"
)

var (
	// ErrUnknownFunction is returned when no function is registered under a name
	ErrUnknownFunction = errors.New("unknown function")
	// ErrArity is returned when a function receives too few or too many arguments
	ErrArity = errors.New("wrong number of arguments")
	// ErrInvalidArgument is returned when an argument cannot be interpreted
	ErrInvalidArgument = errors.New("invalid argument")
)

type Func func(ctx context.Context, args []cell.Input[string]) (cell.Input[string], error)

type Param struct {
	Name        string
	Description string
	Optional    bool
}

// Spec documents a registered function.
type Spec struct {
	Name    string
	Summary string
	Params  []Param
	Example string
}

func (s Spec) MinArgs() int {
	n := 0
	for _, p := range s.Params {
		if !p.Optional {
			n++
		}
	}
	return n
}

func (s Spec) MaxArgs() int {
	return len(s.Params)
}

// Signature renders the call shape, e.g. EXTRACT_UTM(url, [utms], [decode_uri]).
func (s Spec) Signature() string {
	parts := make([]string, len(s.Params))
	for i, p := range s.Params {
		if p.Optional {
			parts[i] = "[" + p.Name + "]"
		} else {
			parts[i] = p.Name
		}
	}
	return s.Name + "(" + strings.Join(parts, ", ") + ")"
}

type entry struct {
	spec Spec
	fn   Func
}

type Registry struct {
	funcs    map[string]entry
	importer *importjson.Importer
	newUUID  func() string
}

type Option func(*Registry)

// WithImporter sets the importer backing IMPORTJSON. Without it a default
// http.Client is used.
func WithImporter(im *importjson.Importer) Option {
	return func(r *Registry) {
		r.importer = im
	}
}

// WithUUIDGenerator replaces the RAND_UUID source.
func WithUUIDGenerator(gen func() string) Option {
	return func(r *Registry) {
		r.newUUID = gen
	}
}

func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		funcs:   make(map[string]entry),
		newUUID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.importer == nil {
		// New only fails on an invalid schema option.
		r.importer, _ = importjson.New(http.NewClient())
	}
	r.registerDefaults()
	return r
}

// Register adds or replaces a function. Names are case-insensitive.
func (r *Registry) Register(spec Spec, fn Func) {
	spec.Name = strings.ToUpper(spec.Name)
	r.funcs[spec.Name] = entry{spec: spec, fn: fn}
}

// Lookup returns the spec registered under name.
func (r *Registry) Lookup(name string) (Spec, bool) {
	e, ok := r.funcs[strings.ToUpper(strings.TrimSpace(name))]
	return e.spec, ok
}

// Specs returns every registered spec sorted by name.
func (r *Registry) Specs() []Spec {
	specs := make([]Spec, 0, len(r.funcs))
	for _, e := range r.funcs {
		specs = append(specs, e.spec)
	}
	sort.Slice(specs, func(i, j int) bool {
		return specs[i].Name < specs[j].Name
	})
	return specs
}

// Call invokes the named function with args.
func (r *Registry) Call(ctx context.Context, name string, args []cell.Input[string]) (cell.Input[string], error) {
	e, ok := r.funcs[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return cell.Input[string]{}, fmt.Errorf("%w: %s", ErrUnknownFunction, name)
	}

	if len(args) < e.spec.MinArgs() || len(args) > e.spec.MaxArgs() {
		return cell.Input[string]{}, fmt.Errorf("%w: %s takes %s, got %d",
			ErrArity, e.spec.Name, arityText(e.spec), len(args))
	}

	out, err := e.fn(ctx, args)
	if err != nil {
		return cell.Input[string]{}, fmt.Errorf("%s: %w", e.spec.Name, err)
	}
	return out, nil
}

func arityText(s Spec) string {
	min, max := s.MinArgs(), s.MaxArgs()
	if min == max {
		return fmt.Sprintf("%d argument(s)", min)
	}
	return fmt.Sprintf("%d to %d arguments", min, max)
}
