package hooks

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

//go:generate go run github.com/pantryworks/recipe-converter/tools/schema-gen -o schema.json

// GenerateSchema reflects the document types into a JSON Schema. The
// committed schema.json is produced from this function by tools/schema-gen.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		// The document rejects unknown keys, so the schema does too.
		AllowAdditionalProperties: false,
		// Inline the top-level struct instead of hiding it behind a $ref.
		ExpandedStruct: true,
		// Property names follow the YAML field names.
		FieldNameTag: "yaml",
	}

	schema := r.Reflect(&Config{})
	schema.ID = "https://github.com/pantryworks/recipe-converter/hookrunner-config"
	schema.Title = "Hookrunner Configuration"
	schema.Description = "Schema for the .hookrunner.yaml hook document."
	schema.Version = "http://json-schema.org/draft-07/schema#"

	return json.MarshalIndent(schema, "", "  ")
}
