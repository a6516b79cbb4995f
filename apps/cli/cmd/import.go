package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/abdul-hamid-achik/sheetfn/packages/cell"
	"github.com/abdul-hamid-achik/sheetfn/packages/output"
	"github.com/spf13/cobra"
)

var (
	importKeyFlag   string
	importWatchFlag bool
)

var importCmd = &cobra.Command{
	Use:   "import <url|@file>",
	Short: "Fetch JSON and flatten it into a table (IMPORTJSON)",
	Long: `Fetch JSON from one or more URLs and print it as a table. Nested objects
become dotted column names. With --key, the rows are taken from that
top-level array. A range of URLs produces one table whose header holds
every column seen across the documents, in first-seen order.

Headers from the config file are sent with every request, with ${VAR}
references expanded from the environment and --env-file.

Examples:
  sheetfn import https://dummyjson.com/comments --key comments
  sheetfn import @urls.tsv --key products -o csv --db sqlite://out.db --table products
  sheetfn import @urls.tsv --watch --stats`,
	Args: usageArgs(cobra.ExactArgs(1)),
	RunE: importCommand,
}

var flattenCmd = &cobra.Command{
	Use:   "flatten [file|-]",
	Short: "Flatten a local JSON document into a table",
	Long: `Flatten a JSON document from a file or stdin the same way IMPORTJSON
flattens a fetched one. Reads stdin when no file is given.

Examples:
  sheetfn flatten users.json --key users
  curl -s https://dummyjson.com/users | sheetfn flatten --key users -o markdown
  sheetfn flatten users.json --watch`,
	Args: usageArgs(cobra.MaximumNArgs(1)),
	RunE: flattenCommand,
}

func init() {
	for _, c := range []*cobra.Command{importCmd, flattenCmd} {
		c.Flags().StringVarP(&importKeyFlag, "key", "k", "", "Top-level array to use as rows")
		c.Flags().StringVar(&schemaFlag, "schema", getEnvString("SHEETFN_SCHEMA", ""), "Validate each document against a JSON schema file (env: SHEETFN_SCHEMA)")
		c.Flags().BoolVarP(&importWatchFlag, "watch", "w", false, "Watch input files and re-run on change")
	}

	rootCmd.AddCommand(importCmd, flattenCmd)
}

func importCommand(cmd *cobra.Command, args []string) error {
	run := func() error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}

		urls, err := readArg(args[0], cmd.InOrStdin())
		if err != nil {
			return err
		}

		table, err := s.importer.Import(cmd.Context(), urls, importKeyFlag)
		if err != nil {
			return err
		}
		s.header = true
		return s.emit(cmd.Context(), cell.Grid(table.Strings()))
	}

	if !importWatchFlag {
		return run()
	}

	paths := watchedInputs(args)
	if len(paths) == 0 {
		return usageError{fmt.Errorf("--watch needs an @file argument, --schema or a config file to watch")}
	}
	if err := run(); err != nil {
		output.FormatError(cmd.ErrOrStderr(), err, noColorFlag)
	}
	return watchFiles(cmd, paths, run)
}

func flattenCommand(cmd *cobra.Command, args []string) error {
	path := "-"
	if len(args) > 0 {
		path = args[0]
	}
	if path == "-" && importWatchFlag {
		return usageError{fmt.Errorf("--watch cannot be used with stdin")}
	}

	run := func() error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}

		body, err := readDocument(path, cmd.InOrStdin())
		if err != nil {
			return err
		}

		table, err := s.importer.ImportDocument(body, importKeyFlag)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		s.header = true
		return s.emit(cmd.Context(), cell.Grid(table.Strings()))
	}

	if !importWatchFlag {
		return run()
	}
	if err := run(); err != nil {
		output.FormatError(cmd.ErrOrStderr(), err, noColorFlag)
	}
	return watchFiles(cmd, append([]string{path}, watchedInputs(nil)...), run)
}

func readDocument(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, usageError{fmt.Errorf("reading document: %w", err)}
	}
	return data, nil
}

// watchedInputs lists the local files an import depends on: @file arguments,
// the schema and the env file.
func watchedInputs(args []string) []string {
	var paths []string
	for _, arg := range args {
		if strings.HasPrefix(arg, "@") && !strings.HasPrefix(arg, "@@") && len(arg) > 1 {
			paths = append(paths, arg[1:])
		}
	}
	for _, p := range []string{schemaFlag, envFileFlag, configFlag} {
		if p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}
