package contract

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gatewell/contractcheck/internal/httputil"
)

// Operation declares the contract for a single (method, path) pair.
type Operation struct {
	// Method is the HTTP method, matched case-insensitively.
	Method string

	// Path is the request path, matched verbatim.
	Path string

	// Parameters are the declared query parameters in the order required
	// sets and diagnostics should report them.
	Parameters []Parameter

	// RequestBodies maps content types to their declared body schemas.
	// Keys may use wildcards ("application/*", "*/*").
	RequestBodies map[string]BodySchema

	// Responses are the declared responses in declaration order.
	Responses []Response
}

type opKey struct {
	method string
	path   string
}

// MemStore is an in-memory Store populated by registering Operation values.
// Populate it fully before handing it to a validator; reads are lock-free
// and safe for concurrent use once registration is done.
type MemStore struct {
	defaults []string
	ops      map[opKey]Operation
}

// NewMemStore creates an empty store with the given default media types.
func NewMemStore(defaultMediaTypes ...string) *MemStore {
	return &MemStore{
		defaults: defaultMediaTypes,
		ops:      make(map[opKey]Operation),
	}
}

// Add registers an operation, replacing any previous declaration for the
// same (method, path). Returns an error if the operation declares a body
// schema under an invalid content-type pattern.
func (m *MemStore) Add(op Operation) error {
	if op.Method == "" || op.Path == "" {
		return fmt.Errorf("contract: operation requires method and path")
	}
	for ct := range op.RequestBodies {
		if !httputil.IsValidMediaType(ct) {
			return fmt.Errorf("contract: invalid content type pattern %q for %s %s", ct, strings.ToUpper(op.Method), op.Path)
		}
	}
	m.ops[opKey{method: strings.ToUpper(op.Method), path: op.Path}] = op
	return nil
}

// MustAdd registers an operation and panics on error. Intended for
// package-level contract construction where the declarations are static.
func (m *MemStore) MustAdd(op Operation) {
	if err := m.Add(op); err != nil {
		panic(err)
	}
}

func (m *MemStore) lookup(method, path string) (Operation, error) {
	op, ok := m.ops[opKey{method: strings.ToUpper(method), path: path}]
	if !ok {
		return Operation{}, &NotFoundError{Method: method, Path: path}
	}
	return op, nil
}

// QueryParameters implements Store.
func (m *MemStore) QueryParameters(method, path string, requiredOnly bool) ([]Parameter, error) {
	op, err := m.lookup(method, path)
	if err != nil {
		return nil, err
	}

	if !requiredOnly {
		return append([]Parameter(nil), op.Parameters...), nil
	}

	required := make([]Parameter, 0, len(op.Parameters))
	for _, p := range op.Parameters {
		if p.Required {
			required = append(required, p)
		}
	}
	return required, nil
}

// RequestBody implements Store. The content type is normalized before
// matching; patterns are tried most specific first: exact match, then
// type/* wildcards, then */*.
func (m *MemStore) RequestBody(method, path, contentType string) (BodySchema, error) {
	op, err := m.lookup(method, path)
	if err != nil {
		return nil, err
	}

	mediaType := httputil.NormalizeMediaType(contentType)

	if schema, ok := op.RequestBodies[mediaType]; ok {
		return schema, nil
	}

	// Wildcard patterns are tried in sorted order, type/* before */*, so
	// the winning schema does not depend on map iteration order.
	patterns := make([]string, 0, len(op.RequestBodies))
	for pattern := range op.RequestBodies {
		patterns = append(patterns, pattern)
	}
	sort.Strings(patterns)

	var catchAll string
	for _, pattern := range patterns {
		normalized := httputil.NormalizeMediaType(pattern)
		if normalized == "*/*" {
			catchAll = pattern
			continue
		}
		if httputil.MatchMediaType(normalized, mediaType) {
			return op.RequestBodies[pattern], nil
		}
	}
	if catchAll != "" {
		return op.RequestBodies[catchAll], nil
	}

	// Undeclared content type: no body constraint
	return nil, nil
}

// Responses implements Store.
func (m *MemStore) Responses(method, path string) ([]Response, error) {
	op, err := m.lookup(method, path)
	if err != nil {
		return nil, err
	}
	return append([]Response(nil), op.Responses...), nil
}

// DefaultMediaTypes implements Store.
func (m *MemStore) DefaultMediaTypes() []string {
	return append([]string(nil), m.defaults...)
}
