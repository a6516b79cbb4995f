// Package http provides the HTTP client used to fetch remote documents for
// IMPORTJSON.
//
// It wraps the standard library's http package with:
//   - Configurable timeouts
//   - Redirect handling
//   - Default headers (for API tokens and user agents)
//   - Optional request pacing with a token-bucket limiter
//   - Response decoding to UTF-8 from the Content-Type charset
//
// Requests are issued one at a time by the caller and are never retried.
package http
