package reqvalidator

import (
	"encoding/json"
	"strings"
)

// checkBody validates the request body against the schema declared for the
// request's content type. GET requests are exempt regardless of body
// content; the comparison is case-insensitive. When the contract declares
// no schema for the content type the body is unconstrained and never read.
func (v *Validator) checkBody(req Request, method, path string) error {
	if strings.EqualFold(method, "GET") {
		return nil
	}

	contentType := req.Header("Content-Type")
	schema, err := v.store.RequestBody(method, path, contentType)
	if err != nil {
		return err
	}
	if schema == nil {
		return nil
	}

	body, err := req.Body()
	if err != nil {
		return err
	}

	var doc any
	if parseErr := json.Unmarshal(body, &doc); parseErr != nil {
		return &MalformedBodyError{
			Method: diagMethod(method),
			Path:   path,
			Cause:  parseErr,
		}
	}

	if violations := schema.Validator().Validate(doc); len(violations) > 0 {
		return &BodySchemaError{
			Method:     diagMethod(method),
			Path:       path,
			Violations: violations,
		}
	}
	return nil
}
