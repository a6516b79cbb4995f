package cmd

import (
	"errors"
	"net"
	"net/url"

	"github.com/abdul-hamid-achik/sheetfn/packages/builtin"
	"github.com/abdul-hamid-achik/sheetfn/packages/core/config"
	"github.com/abdul-hamid-achik/sheetfn/packages/http"
	"github.com/abdul-hamid-achik/sheetfn/packages/importjson"
	"github.com/abdul-hamid-achik/sheetfn/packages/jsontable"
	"github.com/abdul-hamid-achik/sheetfn/packages/output"
	"github.com/spf13/cobra"
)

// Exit codes for sheetfn CLI
const (
	// ExitSuccess indicates the function ran and its result was written
	ExitSuccess = 0

	// ExitFunctionError indicates the function itself failed
	ExitFunctionError = 1

	// ExitParseError indicates unparsable JSON, a malformed expression or a schema violation
	ExitParseError = 2

	// ExitConfigError indicates a configuration error
	ExitConfigError = 3

	// ExitNetworkError indicates a network/connection error or a non-2xx response
	ExitNetworkError = 4

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 64
)

type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

type configError struct{ err error }

func (e configError) Error() string { return e.err.Error() }
func (e configError) Unwrap() error { return e.err }

// usageArgs wraps a cobra argument validator so its failures exit with ExitUsageError.
func usageArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			return usageError{err}
		}
		return nil
	}
}

func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var (
		usage  usageError
		cfgErr configError
		status *http.StatusError
		urlErr *url.Error
		netErr net.Error
	)

	switch {
	case errors.As(err, &usage),
		errors.Is(err, builtin.ErrUnknownFunction),
		errors.Is(err, builtin.ErrArity),
		errors.Is(err, output.ErrUnknownFormat):
		return ExitUsageError
	case errors.As(err, &cfgErr),
		errors.Is(err, config.ErrConfigNotFound),
		errors.Is(err, importjson.ErrInvalidSchema):
		return ExitConfigError
	case errors.As(err, &status),
		errors.As(err, &urlErr),
		errors.As(err, &netErr):
		return ExitNetworkError
	case errors.Is(err, jsontable.ErrInvalidJSON),
		errors.Is(err, builtin.ErrSyntax),
		errors.Is(err, importjson.ErrSchemaViolation):
		return ExitParseError
	default:
		return ExitFunctionError
	}
}
