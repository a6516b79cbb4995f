package jsontable

import "errors"

// ErrInvalidJSON is returned by Parse when the input is not a single valid JSON value.
var ErrInvalidJSON = errors.New("invalid JSON")
