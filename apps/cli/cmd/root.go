package cmd

import (
	"os"

	"github.com/abdul-hamid-achik/sheetfn/packages/output"
	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

var (
	configFlag     string
	envFileFlag    string
	outputFlag     string
	outputFileFlag string
	noColorFlag    bool
	noHeaderFlag   bool
	verboseFlag    bool
	timeoutFlag    string
	dbFlag         string
	tableFlag      string
	statsFlag      bool
)

var rootCmd = &cobra.Command{
	Use:   "sheetfn",
	Short: "Spreadsheet custom functions on the command line.",
	Long: `sheetfn runs spreadsheet custom functions from the terminal: hashes,
UUIDs, URL and UTM parameter extraction, URI encoding, templates and
IMPORTJSON, which flattens JSON from a URL into a table.

Arguments are cells. A plain argument is a single cell, "@file" reads a
tab-separated range from a file and "-" reads one from stdin.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute(v, bt string) {
	version = v
	buildTime = bt
	if err := rootCmd.Execute(); err != nil {
		output.FormatError(os.Stderr, err, noColorFlag)
		os.Exit(exitCode(err))
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFlag, "config", getEnvString("SHEETFN_CONFIG", ""), "Path to config file (env: SHEETFN_CONFIG)")
	flags.StringVar(&envFileFlag, "env-file", getEnvString("SHEETFN_ENV_FILE", ""), "Path to .env file exported before ${VAR} expansion (env: SHEETFN_ENV_FILE)")
	flags.StringVarP(&outputFlag, "output", "o", getEnvString("SHEETFN_OUTPUT", ""), "Output format: console, tsv, csv, json, markdown, html (env: SHEETFN_OUTPUT)")
	flags.StringVar(&outputFileFlag, "output-file", "", "Write output to file (default: stdout)")
	flags.BoolVar(&noColorFlag, "no-color", getEnvBool("SHEETFN_NO_COLOR", false), "Disable colored output (env: SHEETFN_NO_COLOR)")
	flags.BoolVar(&noHeaderFlag, "no-header", false, "Treat the first row of a table result as data")
	flags.BoolVarP(&verboseFlag, "verbose", "v", false, "Log requests and other debug output to stderr")
	flags.StringVar(&timeoutFlag, "timeout", getEnvString("SHEETFN_TIMEOUT", ""), "Fetch timeout (e.g., 10s, 1m) (env: SHEETFN_TIMEOUT)")
	flags.StringVar(&dbFlag, "db", "", "Also write the result table to a database (e.g., sqlite://out.db)")
	flags.StringVar(&tableFlag, "table", "sheetfn", "Table name used with --db")
	flags.BoolVar(&statsFlag, "stats", false, "Print fetch latency statistics to stderr")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(callCmd)
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(initCmd)
}
