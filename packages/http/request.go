package http

import (
	"net/http"
	"time"
)

// Request describes one outgoing request. Timeout, when set, overrides the
// client timeout for this request only.
type Request struct {
	Method  string
	URL     string
	Headers map[string]string
	Timeout time.Duration
}

// NewRequest returns a GET request for requestURL.
func NewRequest(requestURL string) *Request {
	return &Request{
		Method:  http.MethodGet,
		URL:     requestURL,
		Headers: make(map[string]string),
	}
}
