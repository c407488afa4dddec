// Package contractcheck validates incoming HTTP requests against a
// machine-readable API contract.
//
// The module is organized as focused packages:
//
//   - reqvalidator: the validation pipeline. Four ordered, fail-fast checks
//     (media-type admissibility, missing required query parameters, query
//     parameter value conformance, request body conformance) with a typed
//     failure per kind.
//   - contract: the collaborator model consumed by the validator — the
//     schema store interface plus an in-memory store and a JSON Schema
//     backed body schema.
//   - negotiate: Accept-header content negotiation.
//   - middleware: net/http integration with status mapping and logging.
//
// Parsing of contract definition languages (OpenAPI and friends) and
// response validation are out of scope; any loader that populates a
// contract.Store works.
package contractcheck
