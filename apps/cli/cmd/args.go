package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/abdul-hamid-achik/sheetfn/packages/cell"
)

// readArg turns a positional argument into a cell input. "-" reads a
// tab-separated range from stdin, "@path" reads one from a file and "@@"
// escapes a literal leading "@". Anything else is a single cell.
func readArg(arg string, stdin io.Reader) (cell.Input[string], error) {
	switch {
	case arg == "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return cell.Input[string]{}, fmt.Errorf("reading stdin: %w", err)
		}
		return cell.Parse(string(data), "\t"), nil
	case strings.HasPrefix(arg, "@@"):
		return cell.Scalar(arg[1:]), nil
	case strings.HasPrefix(arg, "@") && len(arg) > 1:
		data, err := os.ReadFile(arg[1:])
		if err != nil {
			return cell.Input[string]{}, usageError{fmt.Errorf("reading range: %w", err)}
		}
		return cell.Parse(string(data), "\t"), nil
	default:
		return cell.Scalar(arg), nil
	}
}

func readArgs(args []string, stdin io.Reader) ([]cell.Input[string], error) {
	inputs := make([]cell.Input[string], 0, len(args))
	stdinUsed := false
	for _, arg := range args {
		if arg == "-" {
			if stdinUsed {
				return nil, usageError{fmt.Errorf("stdin (-) can only be used once")}
			}
			stdinUsed = true
		}
		in, err := readArg(arg, stdin)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, in)
	}
	return inputs, nil
}
