package reqvalidator

import (
	"fmt"
	"strings"

	"github.com/gatewell/contractcheck/contract"
	"github.com/gatewell/contractcheck/negotiate"
)

// Validator validates HTTP requests against an API contract. It runs four
// checks in a fixed order, stopping at the first failure:
//
//  1. Media-type admissibility (Accept header vs. declared response types)
//  2. Missing required query parameters
//  3. Query parameter value conformance
//  4. Request body conformance (skipped for GET)
//
// Create a Validator using the New function:
//
//	v, err := reqvalidator.New(store)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := v.ValidateRequest(reqvalidator.FromHTTP(req)); err != nil {
//	    // Handle the validation failure
//	}
//
// A Validator is stateless between calls and safe for concurrent use, as
// long as its store and negotiator are.
type Validator struct {
	store      contract.Store
	negotiator negotiate.Negotiator
}

// Option is a functional option for configuring a Validator.
type Option func(*Validator) error

// WithNegotiator replaces the default content-type negotiator.
func WithNegotiator(n negotiate.Negotiator) Option {
	return func(v *Validator) error {
		if n == nil {
			return fmt.Errorf("reqvalidator: negotiator cannot be nil")
		}
		v.negotiator = n
		return nil
	}
}

// New creates a Validator bound to the given contract store.
//
// Returns an error if the store is nil or an option fails.
func New(store contract.Store, opts ...Option) (*Validator, error) {
	if store == nil {
		return nil, fmt.Errorf("reqvalidator: contract store cannot be nil")
	}

	v := &Validator{
		store:      store,
		negotiator: negotiate.Default(),
	}

	for _, opt := range opts {
		if err := opt(v); err != nil {
			return nil, err
		}
	}

	return v, nil
}

// ValidateRequest runs the validation pipeline against the request. It
// returns nil when every check passes, and the first failure otherwise:
// one of MediaTypeError, MissingParameterError, ParameterValueError,
// MalformedBodyError, or BodySchemaError. Contract store lookup failures
// (e.g. contract.ErrNotFound for an undeclared route) propagate unchanged
// and are never conflated with request-validity failures.
//
// Later checks do not run once one fails; in particular the body is read
// only when the body check actually runs, and never for GET requests.
func (v *Validator) ValidateRequest(req Request) error {
	method := req.Method()
	path := req.Path()

	if err := v.checkMediaType(req, method, path); err != nil {
		return err
	}
	if err := v.checkMissingParameters(req, method, path); err != nil {
		return err
	}
	if err := v.checkParameterValues(req, method, path); err != nil {
		return err
	}
	return v.checkBody(req, method, path)
}

// diagMethod normalizes a method for use in diagnostics.
func diagMethod(method string) string {
	return strings.ToUpper(method)
}
