package aigen

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

var schemaCache sync.Map // map[string]*jsonschema.Schema

// validateResponse checks raw against schema and returns *ErrInvalidResponse
// on mismatch.
func validateResponse(schema *Schema, raw json.RawMessage) error {
	if schema == nil {
		return nil
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	compiled, err := compiledSchema(schema)
	if err != nil {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("compile schema %q: %w", schema.Name, err)}
	}
	if err := compiled.Validate(parsed); err != nil {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("schema validation failed: %w", err)}
	}
	return nil
}

func compiledSchema(schema *Schema) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(schema.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The compiler wants a decoded JSON value, not a Go map of arbitrary types.
	defBytes, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var def any
	if err := json.Unmarshal(defBytes, &def); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", schema.Name)
	if err := c.AddResource(url, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(schema.Name, compiled)
	return compiled, nil
}
