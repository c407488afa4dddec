package contracttest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	store, err := Load(`
defaultMediaTypes: [application/json]
operations:
  - method: GET
    path: /pets
    parameters:
      - name: status
        required: true
        type: enum
        values: [available, pending, sold]
      - name: limit
        type: integer
    responses:
      - mediaTypes: [application/json, application/xml]
  - method: POST
    path: /pets
    requestBodies:
      application/json: |
        {"type": "object", "required": ["name"], "properties": {"name": {"type": "string"}}}
`)
	require.NoError(t, err)

	assert.Equal(t, []string{"application/json"}, store.DefaultMediaTypes())

	params, err := store.QueryParameters("GET", "/pets", false)
	require.NoError(t, err)
	require.Len(t, params, 2)
	assert.Equal(t, "status", params[0].Name)
	assert.True(t, params[0].Required)
	assert.NoError(t, params[0].Validator.Validate("available"))
	assert.Error(t, params[0].Validator.Validate("hungry"))
	assert.NoError(t, params[1].Validator.Validate("25"))
	assert.Error(t, params[1].Validator.Validate("many"))

	responses, err := store.Responses("GET", "/pets")
	require.NoError(t, err)
	require.Len(t, responses, 1)
	assert.Equal(t, []string{"application/json", "application/xml"}, responses[0].MediaTypes)

	schema, err := store.RequestBody("POST", "/pets", "application/json")
	require.NoError(t, err)
	require.NotNil(t, schema)
	assert.Empty(t, schema.Validator().Validate(map[string]any{"name": "rex"}))
	assert.NotEmpty(t, schema.Validator().Validate(map[string]any{"name": 7}))
}

func TestLoad_Errors(t *testing.T) {
	t.Run("invalid yaml", func(t *testing.T) {
		_, err := Load("operations: [")
		assert.Error(t, err)
	})

	t.Run("unknown parameter type", func(t *testing.T) {
		_, err := Load(`
operations:
  - method: GET
    path: /pets
    parameters:
      - name: id
        type: uuid
`)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown parameter type")
	})

	t.Run("invalid body schema", func(t *testing.T) {
		_, err := Load(`
operations:
  - method: POST
    path: /pets
    requestBodies:
      application/json: "{not json"
`)
		assert.Error(t, err)
	})
}
