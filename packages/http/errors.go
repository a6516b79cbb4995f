package http

import "fmt"

// StatusError is returned by Fetch when the server answers with a non-2xx status.
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("request to %s failed with status %s", e.URL, e.Status)
}
