package builtin

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/abdul-hamid-achik/sheetfn/packages/cell"
)

// ErrSyntax is returned by Eval for expressions that are not NAME(args).
var ErrSyntax = errors.New("invalid expression")

var funcCallPattern = regexp.MustCompile(`(?s)^\s*(\w+)\s*\((.*)\)\s*$`)

// Eval parses and calls an expression such as
//
//	EXTRACT_UTM("https://x.y/?utm_source=a&utm_medium=b", {"medium","source"})
//
// Arguments are quoted or bare strings. A {...} literal is a range: commas
// separate cells and semicolons separate rows.
func (r *Registry) Eval(ctx context.Context, expr string) (cell.Input[string], error) {
	name, args, err := ParseExpr(expr)
	if err != nil {
		return cell.Input[string]{}, err
	}
	return r.Call(ctx, name, args)
}

// ParseExpr splits expr into a function name and its arguments.
func ParseExpr(expr string) (string, []cell.Input[string], error) {
	matches := funcCallPattern.FindStringSubmatch(expr)
	if matches == nil {
		return "", nil, fmt.Errorf("%w: %q", ErrSyntax, expr)
	}

	name := matches[1]
	argsStr := strings.TrimSpace(matches[2])
	if argsStr == "" {
		return name, nil, nil
	}

	raw, err := splitTopLevel(argsStr, ',')
	if err != nil {
		return "", nil, err
	}

	args := make([]cell.Input[string], len(raw))
	for i, a := range raw {
		args[i], err = parseArg(a)
		if err != nil {
			return "", nil, err
		}
	}
	return name, args, nil
}

func parseArg(s string) (cell.Input[string], error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "{") {
		return cell.Scalar(unquote(s)), nil
	}
	if !strings.HasSuffix(s, "}") {
		return cell.Input[string]{}, fmt.Errorf("%w: unterminated range literal %s", ErrSyntax, s)
	}

	rowTexts, err := splitTopLevel(s[1:len(s)-1], ';')
	if err != nil {
		return cell.Input[string]{}, err
	}

	rows := make([][]string, 0, len(rowTexts))
	for _, rt := range rowTexts {
		cells, err := splitTopLevel(rt, ',')
		if err != nil {
			return cell.Input[string]{}, err
		}
		row := make([]string, len(cells))
		for i, c := range cells {
			row[i] = unquote(strings.TrimSpace(c))
		}
		rows = append(rows, row)
	}
	return cell.Grid(rows), nil
}

// splitTopLevel splits s on sep outside quotes and braces.
func splitTopLevel(s string, sep byte) ([]string, error) {
	var parts []string
	var current strings.Builder
	quoteChar := byte(0)
	depth := 0

	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case quoteChar != 0:
			if ch == quoteChar {
				quoteChar = 0
			}
		case ch == '"' || ch == '\'':
			quoteChar = ch
		case ch == '{':
			depth++
		case ch == '}':
			depth--
		case ch == sep && depth == 0:
			parts = append(parts, current.String())
			current.Reset()
			continue
		}
		current.WriteByte(ch)
	}

	if quoteChar != 0 {
		return nil, fmt.Errorf("%w: unterminated string in %s", ErrSyntax, s)
	}
	if depth != 0 {
		return nil, fmt.Errorf("%w: unbalanced braces in %s", ErrSyntax, s)
	}
	return append(parts, current.String()), nil
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}
