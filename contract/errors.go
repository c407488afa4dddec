package contract

import (
	"errors"
	"strings"
)

// ErrNotFound indicates a (method, path) pair has no declaration in the
// contract. Use with errors.Is for quick checks without type assertions.
var ErrNotFound = errors.New("contract not found")

// NotFoundError reports a lookup for an operation the contract does not
// declare.
type NotFoundError struct {
	// Method is the HTTP method of the failed lookup.
	Method string
	// Path is the request path of the failed lookup.
	Path string
}

// Error returns a human-readable error message.
func (e *NotFoundError) Error() string {
	msg := "contract not found"
	if e.Method != "" || e.Path != "" {
		msg += " for " + strings.ToUpper(e.Method) + " " + e.Path
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
