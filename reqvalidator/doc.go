// Package reqvalidator validates incoming HTTP requests against a
// machine-readable API contract.
//
// It is intended for API gateways, mock servers, and contract-testing tools
// that need to reject non-conforming requests before they reach business
// logic. The validator runs four checks in a fixed order and fails fast at
// the first violation:
//
//  1. Media-type admissibility: the request's Accept header must negotiate
//     against the media types the contract declares for the operation's
//     responses (or the store's defaults). With no declared types the check
//     is skipped; with declared types, an absent Accept header fails.
//  2. Missing required query parameters: every required parameter must be
//     present; all absent keys are reported in one diagnostic.
//  3. Parameter value conformance: each supplied declared parameter is
//     checked by its value validator. Absent optional parameters are never
//     an error.
//  4. Request body conformance: for non-GET requests with a declared body
//     schema, the body is read once, parsed as JSON, and validated. A
//     syntax error and a schema mismatch are distinct failure kinds.
//
// # Basic Usage
//
// Build a contract store, create a validator, and validate requests:
//
//	store := contract.NewMemStore("application/json")
//	store.MustAdd(contract.Operation{
//	    Method: "GET",
//	    Path:   "/pets",
//	    Parameters: []contract.Parameter{
//	        {Name: "status", Required: true},
//	    },
//	})
//
//	v, err := reqvalidator.New(store)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := v.ValidateRequest(reqvalidator.FromHTTP(req)); err != nil {
//	    switch {
//	    case errors.Is(err, reqvalidator.ErrMissingParameter):
//	        // 400
//	    case errors.Is(err, reqvalidator.ErrMediaType):
//	        // 406
//	    case errors.Is(err, contract.ErrNotFound):
//	        // route not in the contract
//	    }
//	}
//
// # Failure Kinds
//
// Each failure is a typed error usable with errors.Is and errors.As:
// MediaTypeError, MissingParameterError, ParameterValueError,
// MalformedBodyError, and BodySchemaError. Contract store lookup failures
// (contract.ErrNotFound) propagate unchanged and indicate a route the
// contract does not declare, not an invalid request.
//
// # Concurrency
//
// A Validator holds no mutable state; concurrent ValidateRequest calls are
// fully independent given a reentrant store and negotiator. The only
// consumable resource is the request body, which is read at most once per
// call and never for GET requests.
package reqvalidator
