package contract

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// JSONSchema is a BodySchema backed by a compiled JSON Schema document.
// The zero value is not usable; construct one with CompileJSONSchema.
type JSONSchema struct {
	schema *gojsonschema.Schema
}

// CompileJSONSchema compiles raw JSON Schema bytes into a BodySchema.
func CompileJSONSchema(raw []byte) (*JSONSchema, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("contract: failed to compile JSON schema: %w", err)
	}
	return &JSONSchema{schema: schema}, nil
}

// MustCompileJSONSchema compiles raw JSON Schema bytes and panics on error.
// Intended for package-level contract construction with static schemas.
func MustCompileJSONSchema(raw []byte) *JSONSchema {
	s, err := CompileJSONSchema(raw)
	if err != nil {
		panic(err)
	}
	return s
}

// Validator implements BodySchema.
func (s *JSONSchema) Validator() BodyValidator {
	return s
}

// Validate implements BodyValidator. Violations are reported in the order
// the underlying engine detects them.
func (s *JSONSchema) Validate(doc any) []SchemaError {
	result, err := s.schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		// The document was already parsed by the caller, so engine-level
		// failures are reported as a single document-wide violation.
		return []SchemaError{{Property: "(document)", Constraint: err.Error()}}
	}
	if result.Valid() {
		return nil
	}

	violations := make([]SchemaError, 0, len(result.Errors()))
	for _, resultErr := range result.Errors() {
		violations = append(violations, toSchemaError(resultErr))
	}
	return violations
}

// toSchemaError converts an engine error to a SchemaError. For violations
// reported against the document root (e.g. a missing required property) the
// property name is recovered from the error details when available.
func toSchemaError(resultErr gojsonschema.ResultError) SchemaError {
	property := resultErr.Field()
	// gojsonschema renders the root context as "(root)".
	if property == "(root)" {
		if name, ok := resultErr.Details()["property"].(string); ok {
			property = name
		}
	}
	return SchemaError{
		Property:   property,
		Constraint: resultErr.Type(),
	}
}
