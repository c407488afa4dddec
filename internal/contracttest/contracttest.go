// Package contracttest builds in-memory contract stores from compact YAML
// fixtures, keeping test contracts declarative and readable.
package contracttest

import (
	"fmt"
	"strconv"
	"testing"

	"go.yaml.in/yaml/v4"

	"github.com/gatewell/contractcheck/contract"
)

// Fixture is the YAML shape of a test contract.
type Fixture struct {
	DefaultMediaTypes []string           `yaml:"defaultMediaTypes"`
	Operations        []OperationFixture `yaml:"operations"`
}

// OperationFixture declares one operation.
type OperationFixture struct {
	Method        string             `yaml:"method"`
	Path          string             `yaml:"path"`
	Parameters    []ParameterFixture `yaml:"parameters"`
	Responses     []ResponseFixture  `yaml:"responses"`
	RequestBodies map[string]string  `yaml:"requestBodies"`
}

// ParameterFixture declares one query parameter. Type selects a stock value
// validator: "integer", "number", "boolean", or "enum" (with Values). An
// empty Type means any value is acceptable.
type ParameterFixture struct {
	Name     string   `yaml:"name"`
	Required bool     `yaml:"required"`
	Type     string   `yaml:"type"`
	Values   []string `yaml:"values"`
}

// ResponseFixture declares the media types of one response.
type ResponseFixture struct {
	MediaTypes []string `yaml:"mediaTypes"`
}

// Load builds a MemStore from YAML fixture source.
func Load(src string) (*contract.MemStore, error) {
	var fixture Fixture
	if err := yaml.Unmarshal([]byte(src), &fixture); err != nil {
		return nil, fmt.Errorf("contracttest: invalid fixture: %w", err)
	}

	store := contract.NewMemStore(fixture.DefaultMediaTypes...)
	for _, opf := range fixture.Operations {
		op := contract.Operation{
			Method: opf.Method,
			Path:   opf.Path,
		}
		for _, pf := range opf.Parameters {
			validator, err := validatorFor(pf)
			if err != nil {
				return nil, err
			}
			op.Parameters = append(op.Parameters, contract.Parameter{
				Name:      pf.Name,
				Required:  pf.Required,
				Validator: validator,
			})
		}
		for _, rf := range opf.Responses {
			op.Responses = append(op.Responses, contract.Response{MediaTypes: rf.MediaTypes})
		}
		if len(opf.RequestBodies) > 0 {
			op.RequestBodies = make(map[string]contract.BodySchema, len(opf.RequestBodies))
			for ct, raw := range opf.RequestBodies {
				schema, err := contract.CompileJSONSchema([]byte(raw))
				if err != nil {
					return nil, fmt.Errorf("contracttest: body schema for %s: %w", ct, err)
				}
				op.RequestBodies[ct] = schema
			}
		}
		if err := store.Add(op); err != nil {
			return nil, err
		}
	}
	return store, nil
}

// MustLoad builds a MemStore from YAML fixture source, failing the test on
// error.
func MustLoad(t testing.TB, src string) *contract.MemStore {
	t.Helper()
	store, err := Load(src)
	if err != nil {
		t.Fatalf("contracttest: %v", err)
	}
	return store
}

func validatorFor(pf ParameterFixture) (contract.ValueValidator, error) {
	switch pf.Type {
	case "":
		return nil, nil
	case "integer":
		return contract.ValueValidatorFunc(func(value string) error {
			if _, err := strconv.ParseInt(value, 10, 64); err != nil {
				return fmt.Errorf("%q is not an integer", value)
			}
			return nil
		}), nil
	case "number":
		return contract.ValueValidatorFunc(func(value string) error {
			if _, err := strconv.ParseFloat(value, 64); err != nil {
				return fmt.Errorf("%q is not a number", value)
			}
			return nil
		}), nil
	case "boolean":
		return contract.ValueValidatorFunc(func(value string) error {
			if _, err := strconv.ParseBool(value); err != nil {
				return fmt.Errorf("%q is not a boolean", value)
			}
			return nil
		}), nil
	case "enum":
		allowed := pf.Values
		return contract.ValueValidatorFunc(func(value string) error {
			for _, candidate := range allowed {
				if value == candidate {
					return nil
				}
			}
			return fmt.Errorf("%q is not one of the allowed values", value)
		}), nil
	default:
		return nil, fmt.Errorf("contracttest: unknown parameter type %q", pf.Type)
	}
}
