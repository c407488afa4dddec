package reqvalidator

import (
	"fmt"
	"io"
	"net/http"
)

// Request is the transport-agnostic view of an HTTP request the validator
// consumes. Method lookup is case-insensitive at the implementation's
// boundary: Header must resolve names case-insensitively and return the
// empty string when the header is absent.
//
// Body is consumable exactly once; the validator reads it at most once per
// validation, and never for GET requests.
type Request interface {
	// Method returns the HTTP method.
	Method() string

	// Path returns the request path.
	Path() string

	// Header returns the combined value of the named header, or "" when
	// the header is absent. Name matching is case-insensitive.
	Header(name string) string

	// RawQuery returns the raw query string, without the leading "?".
	RawQuery() string

	// Body returns the full request body. Single read.
	Body() ([]byte, error)
}

// httpRequest adapts *http.Request to the Request interface.
type httpRequest struct {
	req *http.Request
}

// FromHTTP wraps a *http.Request for validation. The adapter reads the
// underlying body at most once; callers that need the body afterwards must
// buffer it themselves (the middleware package does this).
func FromHTTP(req *http.Request) Request {
	return &httpRequest{req: req}
}

func (r *httpRequest) Method() string {
	return r.req.Method
}

func (r *httpRequest) Path() string {
	return r.req.URL.Path
}

func (r *httpRequest) Header(name string) string {
	return r.req.Header.Get(name)
}

func (r *httpRequest) RawQuery() string {
	return r.req.URL.RawQuery
}

func (r *httpRequest) Body() ([]byte, error) {
	if r.req.Body == nil {
		return nil, nil
	}
	body, err := io.ReadAll(r.req.Body)
	if err != nil {
		return nil, fmt.Errorf("reqvalidator: failed to read request body: %w", err)
	}
	return body, nil
}
