package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/abdul-hamid-achik/sheetfn/packages/builtin"
	"github.com/abdul-hamid-achik/sheetfn/packages/cell"
	"github.com/abdul-hamid-achik/sheetfn/packages/core/config"
	"github.com/abdul-hamid-achik/sheetfn/packages/core/env"
	"github.com/abdul-hamid-achik/sheetfn/packages/db"
	"github.com/abdul-hamid-achik/sheetfn/packages/http"
	"github.com/abdul-hamid-achik/sheetfn/packages/importjson"
	"github.com/abdul-hamid-achik/sheetfn/packages/log"
	"github.com/abdul-hamid-achik/sheetfn/packages/output"
	"github.com/abdul-hamid-achik/sheetfn/packages/stats"
	"github.com/spf13/cobra"
)

// schemaFlag is set by the import command; it overrides the config file's schema.
var schemaFlag string

// session holds everything one command invocation needs, built from the
// config file merged with the global flags.
type session struct {
	cfg      *config.Config
	logger   *slog.Logger
	importer *importjson.Importer
	registry *builtin.Registry
	recorder *stats.Recorder
	stdout   io.Writer
	stderr   io.Writer

	// header is set by commands whose first result row names the columns.
	header bool
	title  string
	// dbURL is where emit stores the result; empty skips the write.
	dbURL string
}

func newSession(cmd *cobra.Command) (*session, error) {
	if envFileFlag != "" {
		if _, err := env.LoadAndExportDotEnv(envFileFlag); err != nil {
			return nil, configError{fmt.Errorf("loading env file: %w", err)}
		}
	}

	fileConfig, err := config.LoadConfig(configFlag)
	if err != nil {
		return nil, configError{fmt.Errorf("loading config: %w", err)}
	}

	flagConfig, err := configFromFlags()
	if err != nil {
		return nil, err
	}
	cfg := fileConfig.Merge(flagConfig)

	s := &session{
		cfg:    cfg,
		logger: log.NewLogger(cmd.ErrOrStderr(), cfg.GetVerbose()),
		stdout: cmd.OutOrStdout(),
		stderr: cmd.ErrOrStderr(),
		title:  cmd.CommandPath(),
		dbURL:  dbFlag,
	}

	headers, missing := cfg.ResolvedHeaders()
	if len(missing) > 0 {
		output.FormatWarning(s.stderr, "config headers reference unset variables: "+strings.Join(missing, ", "), cfg.GetNoColor())
	}

	clientOpts := []http.ClientOption{
		http.WithTimeout(cfg.TimeoutDuration()),
		http.WithFollowRedirects(cfg.GetFollowRedirects()),
		http.WithMaxRedirects(cfg.MaxRedirects),
		http.WithValidateSSL(cfg.GetValidateSSL()),
		http.WithProxy(cfg.Proxy),
		http.WithDefaultHeaders(headers),
		http.WithRateLimit(cfg.RateLimit),
		http.WithLogger(s.logger),
	}
	if statsFlag {
		s.recorder = stats.NewRecorder()
		clientOpts = append(clientOpts, http.WithObserver(s.recorder))
	}

	var importOpts []importjson.Option
	if cfg.Schema != "" {
		schema, err := os.ReadFile(cfg.Schema)
		if err != nil {
			return nil, configError{fmt.Errorf("reading schema: %w", err)}
		}
		importOpts = append(importOpts, importjson.WithSchema(schema))
	}

	s.importer, err = importjson.New(http.NewClient(clientOpts...), importOpts...)
	if err != nil {
		return nil, err
	}
	s.registry = builtin.NewRegistry(builtin.WithImporter(s.importer))

	return s, nil
}

// configFromFlags returns the settings given on the command line. Unset
// flags stay zero so Merge keeps the file's values.
func configFromFlags() (*config.Config, error) {
	cfg := &config.Config{
		Output: outputFlag,
		Schema: schemaFlag,
	}
	if timeoutFlag != "" {
		timeout, err := time.ParseDuration(timeoutFlag)
		if err != nil || timeout < 0 {
			return nil, usageError{fmt.Errorf("invalid timeout value %q (use format like 30s, 1m, 500ms)", timeoutFlag)}
		}
		cfg.Timeout = int(timeout.Milliseconds())
	}
	if noColorFlag {
		cfg.NoColor = config.BoolPtr(true)
	}
	if verboseFlag {
		cfg.Verbose = config.BoolPtr(true)
	}
	return cfg, nil
}

// call runs a registry function and writes its result.
func (s *session) call(ctx context.Context, name string, args []cell.Input[string]) error {
	result, err := s.registry.Call(ctx, name, args)
	if err != nil {
		return err
	}
	if strings.EqualFold(strings.TrimSpace(name), "IMPORTJSON") {
		s.header = true
	}
	return s.emit(ctx, result)
}

// emit writes result in the configured format, then to --db and the --stats report.
func (s *session) emit(ctx context.Context, result cell.Input[string]) error {
	rows := cell.Rows(result)

	w := s.stdout
	if outputFileFlag != "" {
		f, err := os.Create(outputFileFlag)
		if err != nil {
			return fmt.Errorf("cannot create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	formatter, err := output.New(s.cfg.Output, w,
		output.WithNoColor(s.cfg.GetNoColor()),
		output.WithHeader(s.header && !noHeaderFlag),
		output.WithTitle(s.title),
	)
	if err != nil {
		return err
	}
	if err := formatter.Format(rows); err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}

	if s.dbURL != "" {
		if err := s.writeDB(ctx, rows); err != nil {
			return err
		}
	}

	if s.recorder != nil {
		return s.printStats()
	}
	return nil
}

func (s *session) writeDB(ctx context.Context, rows [][]string) error {
	client, err := db.NewClient(s.dbURL)
	if err != nil {
		return configError{err}
	}
	defer client.Close()

	if !s.header || noHeaderFlag {
		rows = withColumnLetters(rows)
	}

	n, err := client.WriteTable(ctx, tableFlag, rows)
	if err != nil {
		return fmt.Errorf("writing table %s: %w", tableFlag, err)
	}
	s.logger.Info("wrote table", "table", tableFlag, "rows", n)
	return nil
}

// withColumnLetters prepends an A, B, C... header row.
func withColumnLetters(rows [][]string) [][]string {
	width := 0
	for _, r := range rows {
		width = max(width, len(r))
	}
	header := make([]string, width)
	for i := range header {
		header[i] = output.ColumnName(i)
	}
	return append([][]string{header}, rows...)
}

func (s *session) printStats() error {
	summary := s.recorder.Summary()
	noColor := s.cfg.GetNoColor()

	fmt.Fprintln(s.stderr)
	formatter, err := output.New(string(output.FormatConsole), s.stderr, output.WithNoColor(noColor))
	if err != nil {
		return err
	}
	if err := formatter.Format(summary.Rows()); err != nil {
		return err
	}

	slowest := summary.Slowest()
	if len(slowest) < 2 {
		return nil
	}
	rows := [][]string{{"url", "requests", "errors", "mean", "p95"}}
	for _, ns := range slowest {
		rows = append(rows, []string{
			ns.Name,
			fmt.Sprint(ns.Total),
			fmt.Sprint(ns.Errors),
			ns.Mean.String(),
			ns.P95.String(),
		})
	}
	fmt.Fprintln(s.stderr)
	return formatter.Format(rows)
}
