package cmd

import (
	"fmt"
	"strings"

	"github.com/abdul-hamid-achik/sheetfn/packages/builtin"
	"github.com/abdul-hamid-achik/sheetfn/packages/cell"
	"github.com/spf13/cobra"
)

var callCmd = &cobra.Command{
	Use:   "call <FUNCTION> [args...]",
	Short: "Call a function with cell arguments",
	Long: `Call a function by name. Each argument is one cell; "@file" reads a
tab-separated range from a file and "-" reads one from stdin.

Examples:
  sheetfn call HASH_SHA256 "hello world"
  sheetfn call EXTRACT_UTM @urls.tsv "" false
  cut -f2 links.tsv | sheetfn call ENCODE_URI -`,
	Args: usageArgs(cobra.MinimumNArgs(1)),
	RunE: callCommand,
}

var evalCmd = &cobra.Command{
	Use:   "eval <expression>",
	Short: "Evaluate a spreadsheet-style formula",
	Long: `Evaluate a single function call written the way it would be typed in a
cell. {a,b;c,d} is a range literal: commas separate columns and
semicolons separate rows.

Examples:
  sheetfn eval 'HASH_MD5("hello world")'
  sheetfn eval 'PARSE_TEMPLATE("Good $[1] $[0]!", {"Ann","morning";"Bo","evening"})'`,
	Args: usageArgs(cobra.ExactArgs(1)),
	RunE: evalCommand,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available functions",
	Args:  usageArgs(cobra.NoArgs),
	RunE:  listCommand,
}

func callCommand(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	inputs, err := readArgs(args[1:], cmd.InOrStdin())
	if err != nil {
		return err
	}
	return s.call(cmd.Context(), args[0], inputs)
}

func evalCommand(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	name, inputs, err := builtin.ParseExpr(args[0])
	if err != nil {
		return err
	}
	return s.call(cmd.Context(), name, inputs)
}

func listCommand(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if verboseFlag {
		for _, spec := range s.registry.Specs() {
			fmt.Fprintf(out, "\n%s\n  %s\n", spec.Signature(), spec.Summary)
			for _, p := range spec.Params {
				opt := ""
				if p.Optional {
					opt = " (optional)"
				}
				fmt.Fprintf(out, "    %s%s: %s\n", p.Name, opt, p.Description)
			}
			if spec.Example != "" {
				fmt.Fprintf(out, "  e.g. %s\n", spec.Example)
			}
		}
		return nil
	}

	rows := [][]string{{"function", "summary"}}
	for _, spec := range s.registry.Specs() {
		rows = append(rows, []string{spec.Signature(), strings.TrimSuffix(spec.Summary, ".")})
	}
	s.header = true
	return s.emit(cmd.Context(), cell.Grid(rows))
}
