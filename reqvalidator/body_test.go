package reqvalidator

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatewell/contractcheck/contract"
	"github.com/gatewell/contractcheck/internal/contracttest"
)

func TestValidateRequest_Body(t *testing.T) {
	t.Run("GET never reads the body", func(t *testing.T) {
		v := mustValidator(t, contracttest.MustLoad(t, `
operations:
  - method: GET
    path: /pets
`))

		req := &stubRequest{method: "GET", path: "/pets", body: []byte(`{not valid json`)}
		assert.NoError(t, v.ValidateRequest(req))
		assert.Zero(t, req.bodyReads)
	})

	t.Run("lowercase get also skips the body", func(t *testing.T) {
		store := contract.NewMemStore()
		store.MustAdd(contract.Operation{Method: "get", Path: "/pets"})
		v := mustValidator(t, store)

		req := &stubRequest{method: "get", path: "/pets", body: []byte(`{not valid json`)}
		assert.NoError(t, v.ValidateRequest(req))
		assert.Zero(t, req.bodyReads)
	})

	t.Run("malformed JSON fails before any schema check", func(t *testing.T) {
		store := contract.NewMemStore()
		schema := &fakeBodySchema{}
		store.MustAdd(contract.Operation{
			Method:        "POST",
			Path:          "/pets",
			RequestBodies: map[string]contract.BodySchema{"application/json": schema},
		})
		v := mustValidator(t, store)

		req := &stubRequest{
			method:  "POST",
			path:    "/pets",
			headers: map[string]string{"content-type": "application/json"},
			body:    []byte(`{not valid json`),
		}
		err := v.ValidateRequest(req)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMalformedBody)
		assert.NotErrorIs(t, err, ErrBodySchema)
		assert.Zero(t, schema.calls)

		var bodyErr *MalformedBodyError
		require.ErrorAs(t, err, &bodyErr)
		assert.Equal(t, "POST", bodyErr.Method)
		require.NotNil(t, bodyErr.Cause)
	})

	t.Run("schema violations aggregate into one diagnostic", func(t *testing.T) {
		store := contract.NewMemStore()
		schema := &fakeBodySchema{violations: []contract.SchemaError{
			{Property: "x", Constraint: "type"},
			{Property: "y", Constraint: "required"},
		}}
		store.MustAdd(contract.Operation{
			Method:        "POST",
			Path:          "/pets",
			RequestBodies: map[string]contract.BodySchema{"application/json": schema},
		})
		v := mustValidator(t, store)

		req := &stubRequest{
			method:  "POST",
			path:    "/pets",
			headers: map[string]string{"content-type": "application/json"},
			body:    []byte(`{"x": 1}`),
		}
		err := v.ValidateRequest(req)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrBodySchema)
		assert.Contains(t, err.Error(), "x (type), y (required)")

		var schemaErr *BodySchemaError
		require.ErrorAs(t, err, &schemaErr)
		assert.Len(t, schemaErr.Violations, 2)
		assert.Equal(t, map[string]any{"x": float64(1)}, schema.gotDoc)
	})

	t.Run("undeclared body schema means no constraint", func(t *testing.T) {
		v := mustValidator(t, contracttest.MustLoad(t, `
operations:
  - method: POST
    path: /pets
`))

		req := &stubRequest{
			method:  "POST",
			path:    "/pets",
			headers: map[string]string{"content-type": "application/json"},
			body:    []byte(`{not valid json`),
		}
		assert.NoError(t, v.ValidateRequest(req))
		assert.Zero(t, req.bodyReads)
	})

	t.Run("absent content type resolves against the empty string", func(t *testing.T) {
		store := contract.NewMemStore()
		schema := &fakeBodySchema{}
		store.MustAdd(contract.Operation{
			Method:        "POST",
			Path:          "/pets",
			RequestBodies: map[string]contract.BodySchema{"*/*": schema},
		})
		v := mustValidator(t, store)

		req := &stubRequest{method: "POST", path: "/pets", body: []byte(`{}`)}
		assert.NoError(t, v.ValidateRequest(req))
		assert.Equal(t, 1, schema.calls)
	})

	t.Run("empty body with declared schema is malformed", func(t *testing.T) {
		store := contract.NewMemStore()
		store.MustAdd(contract.Operation{
			Method:        "POST",
			Path:          "/pets",
			RequestBodies: map[string]contract.BodySchema{"application/json": &fakeBodySchema{}},
		})
		v := mustValidator(t, store)

		req := &stubRequest{
			method:  "POST",
			path:    "/pets",
			headers: map[string]string{"content-type": "application/json"},
		}
		assert.ErrorIs(t, v.ValidateRequest(req), ErrMalformedBody)
	})
}

func TestValidateRequest_BodyWithJSONSchema(t *testing.T) {
	const petSchema = `{
		"type": "object",
		"required": ["name"],
		"properties": {
			"name": {"type": "string"},
			"age": {"type": "integer"}
		}
	}`

	store := contract.NewMemStore()
	store.MustAdd(contract.Operation{
		Method: "POST",
		Path:   "/pets",
		RequestBodies: map[string]contract.BodySchema{
			"application/json": contract.MustCompileJSONSchema([]byte(petSchema)),
		},
	})
	v := mustValidator(t, store)

	post := func(body string) error {
		req := httptest.NewRequest("POST", "/pets", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		return v.ValidateRequest(FromHTTP(req))
	}

	t.Run("conforming body passes", func(t *testing.T) {
		assert.NoError(t, post(`{"name": "rex", "age": 3}`))
	})

	t.Run("wrong property type", func(t *testing.T) {
		err := post(`{"name": 7}`)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrBodySchema)

		var schemaErr *BodySchemaError
		require.ErrorAs(t, err, &schemaErr)
		require.Len(t, schemaErr.Violations, 1)
		assert.Equal(t, "name", schemaErr.Violations[0].Property)
		assert.Equal(t, "invalid_type", schemaErr.Violations[0].Constraint)
	})

	t.Run("missing required property names it", func(t *testing.T) {
		err := post(`{"age": 3}`)
		require.Error(t, err)

		var schemaErr *BodySchemaError
		require.ErrorAs(t, err, &schemaErr)
		require.Len(t, schemaErr.Violations, 1)
		assert.Equal(t, "name", schemaErr.Violations[0].Property)
		assert.Equal(t, "required", schemaErr.Violations[0].Constraint)
	})

	t.Run("content type parameters are stripped for lookup", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/pets", bytes.NewBufferString(`{"name": 7}`))
		req.Header.Set("Content-Type", "application/json; charset=utf-8")
		assert.ErrorIs(t, v.ValidateRequest(FromHTTP(req)), ErrBodySchema)
	})
}
