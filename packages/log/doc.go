// Package log builds the slog logger used by the CLI and the fetch client.
//
// Every attribute passes through RedactingHandler, which masks values whose
// key names credentials (Authorization, tokens, API keys) or whose value looks
// like one (bearer and basic credentials, JWTs). Header values read from the
// config file can carry API tokens, and verbose output is routinely pasted
// into bug reports.
//
//	logger := log.NewLogger(os.Stderr, verbose)
//	logger.Debug("sending request", "url", u, "authorization", h)
package log
