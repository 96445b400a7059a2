package hooks

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	if err != nil {
		t.Fatalf("GenerateSchema: %v", err)
	}

	var schema map[string]interface{}
	if err := json.Unmarshal(data, &schema); err != nil {
		t.Fatalf("generated schema is not valid JSON: %v", err)
	}

	if schema["$schema"] != "http://json-schema.org/draft-07/schema#" {
		t.Errorf("$schema = %v, want draft-07", schema["$schema"])
	}
	if schema["type"] != "object" {
		t.Errorf("type = %v, want object", schema["type"])
	}

	defs, ok := schema["$defs"].(map[string]interface{})
	if !ok {
		t.Fatal("expected $defs")
	}
	for _, def := range []string{"Repo", "Hook"} {
		if _, ok := defs[def]; !ok {
			t.Errorf("missing $defs entry %s", def)
		}
	}

	props, ok := schema["properties"].(map[string]interface{})
	if !ok || props["repos"] == nil {
		t.Error("expected repos property")
	}
}

func TestGeneratedSchemaMatchesCommitted(t *testing.T) {
	generated, err := GenerateSchema()
	if err != nil {
		t.Fatalf("GenerateSchema: %v", err)
	}

	var got, want interface{}
	if err := json.Unmarshal(generated, &got); err != nil {
		t.Fatalf("unmarshal generated: %v", err)
	}
	if err := json.Unmarshal(SchemaJSON(), &want); err != nil {
		t.Fatalf("unmarshal committed: %v", err)
	}

	if !reflect.DeepEqual(got, want) {
		t.Error("schema.json is stale; run go generate ./internal/hooks")
	}
}

func TestSchemaValidator(t *testing.T) {
	v, err := NewSchemaValidator()
	if err != nil {
		t.Fatalf("NewSchemaValidator: %v", err)
	}

	cfg, err := Parse(SampleConfig())
	if err != nil {
		t.Fatal(err)
	}
	if err := v.ValidateDocument(cfg); err != nil {
		t.Errorf("sample config rejected by schema: %v", err)
	}
}

func TestSchemaValidatorRejects(t *testing.T) {
	v, err := NewSchemaValidator()
	if err != nil {
		t.Fatalf("NewSchemaValidator: %v", err)
	}

	err = v.ValidateDocument(&Config{})
	if err == nil {
		t.Fatal("document without sources should fail schema validation")
	}
	if !strings.Contains(err.Error(), "schema validation failed") {
		t.Errorf("unexpected error: %v", err)
	}
}
