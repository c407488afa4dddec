// Package contract defines the data model a request validator consumes: the
// schema store that resolves a (method, path) pair to its declared query
// parameters, request-body schemas, and response media types, plus the
// capability interfaces those declarations expose.
//
// The package also ships two reference implementations: MemStore, an in-memory
// Store populated programmatically, and CompileJSONSchema, a BodySchema backed
// by JSON Schema. Any implementation of the interfaces substitutes cleanly;
// the validator core depends only on the contracts defined here.
package contract

import "fmt"

// ValueValidator checks a single raw parameter value against the declared
// type and constraints of its parameter. Implementations return nil when the
// value conforms and a descriptive error otherwise.
type ValueValidator interface {
	Validate(value string) error
}

// ValueValidatorFunc adapts a plain function to the ValueValidator interface.
type ValueValidatorFunc func(value string) error

// Validate implements ValueValidator.
func (f ValueValidatorFunc) Validate(value string) error {
	return f(value)
}

// Parameter is a declared query parameter: its key, whether a request must
// supply it, and the validator applied to supplied values.
//
// A nil Validator means any value is acceptable.
type Parameter struct {
	// Name is the parameter key, unique within an operation's parameter set.
	Name string

	// Required marks parameters that must be present in the request.
	Required bool

	// Validator checks supplied values. May be nil.
	Validator ValueValidator
}

// Response declares the media types an operation may produce for one of its
// responses.
type Response struct {
	MediaTypes []string
}

// SchemaError is one unit of body-validation failure: the property that
// violated a constraint, and the constraint's name.
type SchemaError struct {
	Property   string
	Constraint string
}

// String renders the violation as "property (constraint)".
func (e SchemaError) String() string {
	return fmt.Sprintf("%s (%s)", e.Property, e.Constraint)
}

// BodyValidator validates a parsed JSON document against a schema, returning
// one SchemaError per violated constraint in the order they were detected.
// An empty or nil result means the document conforms.
type BodyValidator interface {
	Validate(doc any) []SchemaError
}

// BodySchema is a declared request-body schema for one content type.
type BodySchema interface {
	// Validator returns the JSON-schema validator bound to this schema.
	Validator() BodyValidator
}

// Store resolves contract declarations for (method, path) pairs. Method
// lookup is case-insensitive; paths are matched verbatim.
//
// Implementations must be safe for concurrent use once populated: the
// validator core treats a Store as a read-only, reentrant collaborator.
// Lookups for an undeclared (method, path) return an error satisfying
// errors.Is(err, ErrNotFound); such errors are a distinct "contract not
// found" condition, never one of the request-validity failures.
type Store interface {
	// QueryParameters returns the declared query parameters for the
	// operation, in declaration order. With requiredOnly true, only
	// parameters whose Required flag is set are returned; that subset is
	// always a subset of the full set.
	QueryParameters(method, path string, requiredOnly bool) ([]Parameter, error)

	// RequestBody returns the body schema declared for the given content
	// type, or (nil, nil) when the operation exists but declares no body
	// for that content type.
	RequestBody(method, path, contentType string) (BodySchema, error)

	// Responses returns the operation's declared responses in declaration
	// order.
	Responses(method, path string) ([]Response, error)

	// DefaultMediaTypes returns the store-wide fallback media types used
	// when an operation declares no response media types of its own.
	DefaultMediaTypes() []string
}
