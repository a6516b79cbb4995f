package importjson

import "errors"

var (
	// ErrSchemaViolation is returned when a document does not satisfy the configured schema
	ErrSchemaViolation = errors.New("document does not match schema")
	// ErrInvalidSchema is returned when the configured schema itself cannot be loaded
	ErrInvalidSchema = errors.New("invalid JSON schema")
)
