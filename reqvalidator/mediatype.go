package reqvalidator

// checkMediaType verifies the request's Accept header can be negotiated
// against the media types the contract declares for the operation.
//
// The offered list is the union of media types across all declared
// responses, in declaration order. When no response declares any, the
// store's default media types apply. When both are empty, admissibility is
// unconstrained and the check is skipped. Once constraints exist, an absent
// Accept header fails immediately: absence is never "accept anything".
func (v *Validator) checkMediaType(req Request, method, path string) error {
	responses, err := v.store.Responses(method, path)
	if err != nil {
		return err
	}

	offered := make([]string, 0, len(responses))
	seen := make(map[string]bool)
	for _, resp := range responses {
		for _, mt := range resp.MediaTypes {
			if !seen[mt] {
				seen[mt] = true
				offered = append(offered, mt)
			}
		}
	}

	if len(offered) == 0 {
		offered = v.store.DefaultMediaTypes()
	}
	if len(offered) == 0 {
		return nil
	}

	accept := req.Header("Accept")
	if accept == "" {
		return &MediaTypeError{
			Method:  diagMethod(method),
			Path:    path,
			Offered: offered,
		}
	}

	if best := v.negotiator.Best(accept, offered); best == "" {
		return &MediaTypeError{
			Method:  diagMethod(method),
			Path:    path,
			Accept:  accept,
			Offered: offered,
		}
	}

	return nil
}
