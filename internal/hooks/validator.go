package hooks

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema.json
var schemaData []byte

// SchemaJSON returns the committed document schema.
func SchemaJSON() []byte {
	return schemaData
}

// SchemaValidator validates hook documents against the embedded JSON Schema.
type SchemaValidator struct {
	schema *jsonschema.Schema
}

// NewSchemaValidator compiles the embedded schema.
func NewSchemaValidator() (*SchemaValidator, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("hookrunner.schema.json", bytes.NewReader(schemaData)); err != nil {
		return nil, fmt.Errorf("adding embedded schema resource: %w", err)
	}

	schema, err := compiler.Compile("hookrunner.schema.json")
	if err != nil {
		return nil, fmt.Errorf("compiling embedded schema: %w", err)
	}

	return &SchemaValidator{schema: schema}, nil
}

// ValidateDocument checks a parsed document against the schema, reporting
// every violation with its location in the document.
func (v *SchemaValidator) ValidateDocument(cfg *Config) error {
	// The schema speaks JSON; round-trip the document through json so it
	// becomes plain maps and slices.
	jsonData, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling document for validation: %w", err)
	}

	var doc interface{}
	if err := json.Unmarshal(jsonData, &doc); err != nil {
		return fmt.Errorf("unmarshalling document for validation: %w", err)
	}

	if err := v.schema.Validate(doc); err != nil {
		if validationErr, ok := err.(*jsonschema.ValidationError); ok {
			var messages []string
			collectErrors(validationErr, &messages)
			return fmt.Errorf("schema validation failed:\n%s", strings.Join(messages, "\n"))
		}
		return fmt.Errorf("schema validation failed: %w", err)
	}

	return nil
}

// collectErrors recursively collects all validation errors into a slice.
func collectErrors(err *jsonschema.ValidationError, messages *[]string) {
	if err.InstanceLocation != "" {
		*messages = append(*messages, fmt.Sprintf("- %s: %s", err.InstanceLocation, err.Message))
	}
	for _, cause := range err.Causes {
		collectErrors(cause, messages)
	}
}
