package reqvalidator

import "net/url"

// parseFlatQuery parses a raw query string into a flat key -> value mapping
// with last-value-wins semantics on duplicate keys. Parsing is pure: the
// same input always yields the same mapping. Pairs with invalid escaping
// are skipped, matching net/url behavior.
func parseFlatQuery(rawQuery string) map[string]string {
	values, _ := url.ParseQuery(rawQuery)
	flat := make(map[string]string, len(values))
	for key, vals := range values {
		if len(vals) > 0 {
			flat[key] = vals[len(vals)-1]
		}
	}
	return flat
}

// checkMissingParameters verifies every schema-required query parameter is
// present in the request. All absent keys are reported together, in the
// order the contract declares them.
func (v *Validator) checkMissingParameters(req Request, method, path string) error {
	required, err := v.store.QueryParameters(method, path, true)
	if err != nil {
		return err
	}
	if len(required) == 0 {
		return nil
	}

	query := parseFlatQuery(req.RawQuery())

	var missing []string
	for _, param := range required {
		if _, ok := query[param.Name]; !ok {
			missing = append(missing, param.Name)
		}
	}

	if len(missing) > 0 {
		return &MissingParameterError{
			Method:  diagMethod(method),
			Path:    path,
			Missing: missing,
		}
	}
	return nil
}

// checkParameterValues runs each declared parameter's value validator
// against the raw value supplied in the request. Parameters absent from the
// request are skipped: required absence is already covered by the missing
// check, and optional absence is never an error. The first validator
// failure aborts the check.
func (v *Validator) checkParameterValues(req Request, method, path string) error {
	declared, err := v.store.QueryParameters(method, path, false)
	if err != nil {
		return err
	}
	if len(declared) == 0 {
		return nil
	}

	query := parseFlatQuery(req.RawQuery())

	for _, param := range declared {
		value, present := query[param.Name]
		if !present || param.Validator == nil {
			continue
		}
		if validateErr := param.Validator.Validate(value); validateErr != nil {
			return &ParameterValueError{
				Method: diagMethod(method),
				Path:   path,
				Name:   param.Name,
				Cause:  validateErr,
			}
		}
	}
	return nil
}
