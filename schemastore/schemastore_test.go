package schemastore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tombi-toml/tombi/config"
)

func TestLoadLocalAndSchemaFor(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "project.schema.json")
	const schemaJSON = `{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"type": "object",
		"required": ["name"],
		"properties": { "name": { "type": "string" } }
	}`
	if err := os.WriteFile(schemaPath, []byte(schemaJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	s := New(nil)
	diags, err := s.LoadLocal(dir, []config.SchemaRef{
		{Path: "project.schema.json", Include: []string{"*.toml"}},
	})
	if err != nil {
		t.Fatalf("LoadLocal returned an error: %v", err)
	}
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", diags)
	}

	sch := s.SchemaFor(filepath.Join(dir, "tombi.toml"))
	if sch == nil {
		t.Fatal("expected a matching schema for tombi.toml")
	}
	if got := s.SchemaFor(filepath.Join(dir, "tombi.json")); got != nil {
		t.Error("a .json file should not match an *.toml include pattern")
	}
}

func TestValidateReportsFailure(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "s.json")
	const schemaJSON = `{
		"type": "object",
		"required": ["name"],
		"properties": { "name": { "type": "string" } }
	}`
	if err := os.WriteFile(schemaPath, []byte(schemaJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	s := New(nil)
	if _, err := s.LoadLocal(dir, []config.SchemaRef{{Path: "s.json"}}); err != nil {
		t.Fatal(err)
	}
	sch := s.SchemaFor(filepath.Join(dir, "anything.toml"))
	if sch == nil {
		t.Fatal("expected a schema with no include patterns to match any path")
	}

	if diags := Validate(sch, map[string]any{"name": "ok"}); len(diags) != 0 {
		t.Errorf("valid document produced diagnostics: %+v", diags)
	}
	if diags := Validate(sch, map[string]any{}); len(diags) == 0 {
		t.Error("missing required property should fail validation")
	}
}

func TestValidateNilSchema(t *testing.T) {
	if diags := Validate(nil, map[string]any{}); diags != nil {
		t.Errorf("Validate(nil, ...) = %+v, want nil", diags)
	}
}
