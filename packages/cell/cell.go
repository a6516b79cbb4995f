package cell

import (
	"strings"
)

// Kind distinguishes the two shapes an Input can take.
type Kind uint8

const (
	KindScalar Kind = iota
	KindGrid
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindGrid:
		return "grid"
	default:
		return "unknown"
	}
}

// Input is either a single value or a grid of values.
type Input[T any] struct {
	kind   Kind
	scalar T
	grid   [][]T
}

// Scalar wraps a single cell value.
func Scalar[T any](v T) Input[T] {
	return Input[T]{kind: KindScalar, scalar: v}
}

// Grid wraps a range of cell values. The rows are used as given.
func Grid[T any](rows [][]T) Input[T] {
	if rows == nil {
		rows = [][]T{}
	}
	return Input[T]{kind: KindGrid, grid: rows}
}

func (in Input[T]) Kind() Kind {
	return in.kind
}

func (in Input[T]) IsGrid() bool {
	return in.kind == KindGrid
}

// Value returns the scalar value. For a grid it returns the zero value.
func (in Input[T]) Value() T {
	return in.scalar
}

// Grid returns the grid rows. For a scalar it returns nil.
func (in Input[T]) Grid() [][]T {
	return in.grid
}

// Map applies fn to every cell of in and returns a result of the same shape.
func Map[T, U any](in Input[T], fn func(T) U) Input[U] {
	if in.kind == KindScalar {
		return Scalar(fn(in.scalar))
	}

	out := make([][]U, len(in.grid))
	for i, row := range in.grid {
		mapped := make([]U, len(row))
		for j, v := range row {
			mapped[j] = fn(v)
		}
		out[i] = mapped
	}
	return Grid(out)
}

// MapErr is Map for a fallible fn. It stops at the first error.
func MapErr[T, U any](in Input[T], fn func(T) (U, error)) (Input[U], error) {
	if in.kind == KindScalar {
		v, err := fn(in.scalar)
		if err != nil {
			return Input[U]{}, err
		}
		return Scalar(v), nil
	}

	out := make([][]U, len(in.grid))
	for i, row := range in.grid {
		mapped := make([]U, len(row))
		for j, v := range row {
			u, err := fn(v)
			if err != nil {
				return Input[U]{}, err
			}
			mapped[j] = u
		}
		out[i] = mapped
	}
	return Grid(out), nil
}

// Rows returns in as a grid. A scalar becomes a single 1x1 row.
func Rows[T any](in Input[T]) [][]T {
	if in.kind == KindScalar {
		return [][]T{{in.scalar}}
	}
	return in.grid
}

// FirstRow returns the first row of Rows(in), or nil for an empty grid.
func FirstRow[T any](in Input[T]) []T {
	rows := Rows(in)
	if len(rows) == 0 {
		return nil
	}
	return rows[0]
}

// Cells returns every cell of in in row-major order.
func Cells[T any](in Input[T]) []T {
	if in.kind == KindScalar {
		return []T{in.scalar}
	}
	var out []T
	for _, row := range in.grid {
		out = append(out, row...)
	}
	return out
}

// Dims reports the number of rows and the width of the widest row.
// A scalar is 1x1.
func Dims[T any](in Input[T]) (rows, cols int) {
	if in.kind == KindScalar {
		return 1, 1
	}
	for _, row := range in.grid {
		if len(row) > cols {
			cols = len(row)
		}
	}
	return len(in.grid), cols
}

// Parse reads a cell argument from text. Text without newlines or separators
// is a scalar; anything else is a grid with one row per line, split on sep.
// A trailing newline does not produce an empty row.
func Parse(text, sep string) Input[string] {
	if sep == "" {
		sep = "\t"
	}
	text = strings.TrimSuffix(text, "\n")
	text = strings.TrimSuffix(text, "\r")

	if !strings.Contains(text, "\n") && !strings.Contains(text, sep) {
		return Scalar(text)
	}

	lines := strings.Split(text, "\n")
	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		rows = append(rows, strings.Split(line, sep))
	}
	return Grid(rows)
}
