package http

import (
	"fmt"
	"mime"
	"strings"
	"time"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

type Response struct {
	StatusCode int
	Status     string
	Headers    map[string]string
	Body       []byte
	Duration   time.Duration
}

func (r *Response) Header(key string) string {
	for k, v := range r.Headers {
		if strings.EqualFold(k, key) {
			return v
		}
	}
	return ""
}

func (r *Response) ContentType() string {
	return r.Header("Content-Type")
}

// Charset returns the charset parameter of the Content-Type header, or "".
func (r *Response) Charset() string {
	ct := r.ContentType()
	if ct == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(ct)
	if err != nil {
		return ""
	}
	return strings.ToLower(params["charset"])
}

// Text returns the body transcoded to UTF-8 according to Charset. Bodies
// without a charset, or already UTF-8, are returned as-is.
func (r *Response) Text() ([]byte, error) {
	charset := r.Charset()
	if charset == "" || charset == "utf-8" || charset == "utf8" {
		return r.Body, nil
	}

	enc, err := htmlindex.Get(charset)
	if err != nil {
		return nil, fmt.Errorf("unsupported response charset %q: %w", charset, err)
	}

	out, _, err := transform.Bytes(enc.NewDecoder(), r.Body)
	if err != nil {
		return nil, fmt.Errorf("decoding %s response: %w", charset, err)
	}
	return out, nil
}

// IsJSON reports whether the Content-Type is application/json or a +json type.
func (r *Response) IsJSON() bool {
	mediaType, _, err := mime.ParseMediaType(r.ContentType())
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}
