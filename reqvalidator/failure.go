package reqvalidator

import (
	"errors"
	"strings"

	"github.com/gatewell/contractcheck/contract"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrMediaType indicates the Accept header was absent or not negotiable
	// against the declared response media types.
	ErrMediaType = errors.New("media type not acceptable")

	// ErrMissingParameter indicates one or more required query parameters
	// were absent from the request.
	ErrMissingParameter = errors.New("missing required parameter")

	// ErrParameterValue indicates a supplied query parameter failed its
	// declared validation rule.
	ErrParameterValue = errors.New("invalid parameter value")

	// ErrMalformedBody indicates the request body was not syntactically
	// valid for its declared content encoding.
	ErrMalformedBody = errors.New("malformed request body")

	// ErrBodySchema indicates a syntactically valid body failed schema
	// validation.
	ErrBodySchema = errors.New("request body schema violation")
)

// MediaTypeError reports a request whose Accept header could not be
// negotiated against the media types the contract declares for the
// operation. An absent Accept header is never treated as "accept anything"
// when declared types exist.
type MediaTypeError struct {
	// Method is the request method, uppercased for diagnostics.
	Method string
	// Path is the request path.
	Path string
	// Accept is the request's Accept header value ("" when absent).
	Accept string
	// Offered are the media types the contract declares.
	Offered []string
}

// Error returns a human-readable error message.
func (e *MediaTypeError) Error() string {
	msg := "media type not acceptable for " + e.Method + " " + e.Path
	if e.Accept == "" {
		msg += ": request has no Accept header"
	} else {
		msg += ": cannot negotiate " + e.Accept
	}
	if len(e.Offered) > 0 {
		msg += " against " + strings.Join(e.Offered, ", ")
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *MediaTypeError) Is(target error) bool {
	return target == ErrMediaType
}

// MissingParameterError reports schema-required query parameters absent from
// the request. Missing enumerates every absent key in the order the contract
// declares them.
type MissingParameterError struct {
	// Method is the request method, uppercased for diagnostics.
	Method string
	// Path is the request path.
	Path string
	// Missing are the absent required parameter names, in schema order.
	Missing []string
}

// Error returns a human-readable error message.
func (e *MissingParameterError) Error() string {
	return "missing required query parameters for " + e.Method + " " + e.Path +
		": " + strings.Join(e.Missing, ", ")
}

// Is reports whether target matches this error type.
func (e *MissingParameterError) Is(target error) bool {
	return target == ErrMissingParameter
}

// ParameterValueError reports a present query parameter that failed its
// declared validation rule. It wraps the value validator's diagnostic.
type ParameterValueError struct {
	// Method is the request method, uppercased for diagnostics.
	Method string
	// Path is the request path.
	Path string
	// Name is the offending parameter's key.
	Name string
	// Cause is the value validator's error.
	Cause error
}

// Error returns a human-readable error message.
func (e *ParameterValueError) Error() string {
	msg := "invalid value for query parameter \"" + e.Name + "\" in " + e.Method + " " + e.Path
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParameterValueError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParameterValueError) Is(target error) bool {
	return target == ErrParameterValue
}

// MalformedBodyError reports a request body that could not be parsed as JSON.
// It carries the parser's diagnostic.
type MalformedBodyError struct {
	// Method is the request method, uppercased for diagnostics.
	Method string
	// Path is the request path.
	Path string
	// Cause is the parser's error.
	Cause error
}

// Error returns a human-readable error message.
func (e *MalformedBodyError) Error() string {
	msg := "malformed request body for " + e.Method + " " + e.Path
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *MalformedBodyError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *MalformedBodyError) Is(target error) bool {
	return target == ErrMalformedBody
}

// BodySchemaError reports a syntactically valid body that violated its
// declared schema. Violations preserves the validator's reported order.
type BodySchemaError struct {
	// Method is the request method, uppercased for diagnostics.
	Method string
	// Path is the request path.
	Path string
	// Violations are the individual schema violations.
	Violations []contract.SchemaError
}

// Error returns a human-readable error message listing every violated
// property (constraint) pair.
func (e *BodySchemaError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.String()
	}
	return "request body does not conform to schema for " + e.Method + " " + e.Path +
		": " + strings.Join(parts, ", ")
}

// Is reports whether target matches this error type.
func (e *BodySchemaError) Is(target error) bool {
	return target == ErrBodySchema
}
