package config

import (
	"testing"

	"github.com/tombi-toml/tombi/diagnostic"
	"github.com/tombi-toml/tombi/format"
	"github.com/tombi-toml/tombi/syntax"
)

func TestDecodeRecognisedKeys(t *testing.T) {
	src := `toml-version = "v1.0.0"
schema.catalog.enabled = true

schemas = [
  { path = "a.schema.json", include = ["a/*.toml"] },
  { path = "b.schema.json" },
]

[format]
indent-style = "tab"
indent-width = 4
line-ending = "crlf"
date-time-delimiter = "space"
`
	cfg, set, diags := Decode(src, "tombi.toml")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", diags)
	}
	if cfg.TomlVersion != syntax.V1_0_0 {
		t.Errorf("TomlVersion = %v, want V1_0_0", cfg.TomlVersion)
	}
	if !set.TomlVersion {
		t.Error("TomlVersion should be marked as set")
	}
	if !cfg.SchemaCatalogEnabled || !set.SchemaCatalogEnabled {
		t.Error("SchemaCatalogEnabled should be true and marked as set")
	}
	if cfg.Format.IndentStyle != format.IndentTab || cfg.Format.IndentWidth != 4 {
		t.Errorf("Format = %+v, want tab/4", cfg.Format)
	}
	if cfg.Format.LineEnding != format.CRLF {
		t.Errorf("LineEnding = %v, want CRLF", cfg.Format.LineEnding)
	}
	if cfg.Format.DateTimeDelimiter != format.DateTimeDelimiterSpace {
		t.Errorf("DateTimeDelimiter = %v, want DateTimeDelimiterSpace", cfg.Format.DateTimeDelimiter)
	}
	if len(cfg.Schemas) != 2 {
		t.Fatalf("got %d schemas, want 2", len(cfg.Schemas))
	}
	if cfg.Schemas[0].Path != "a.schema.json" || len(cfg.Schemas[0].Include) != 1 || cfg.Schemas[0].Include[0] != "a/*.toml" {
		t.Errorf("Schemas[0] = %+v, want path a.schema.json with one include", cfg.Schemas[0])
	}
	if cfg.Schemas[1].Path != "b.schema.json" || cfg.Schemas[1].Include != nil {
		t.Errorf("Schemas[1] = %+v, want path b.schema.json with no include", cfg.Schemas[1])
	}
}

func TestDecodeUnknownKeyWarns(t *testing.T) {
	_, _, diags := Decode("typo-version = \"v1.0.0\"\n", "tombi.toml")
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(diags))
	}
	if diags[0].Severity != diagnostic.SeverityWarning {
		t.Errorf("severity = %v, want SeverityWarning (an unknown key must never be an error)", diags[0].Severity)
	}
}

func TestDecodeInvalidValueWarnsAndKeepsDefault(t *testing.T) {
	cfg, set, diags := Decode("format.indent-width = \"not a number\"\n", "tombi.toml")
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(diags))
	}
	if set.Format.IndentWidth {
		t.Error("IndentWidth should not be marked set on a malformed value")
	}
	if cfg.Format.IndentWidth != 0 {
		t.Errorf("IndentWidth = %d, want 0 (zero value, untouched)", cfg.Format.IndentWidth)
	}
}

func TestMergePrecedence(t *testing.T) {
	base := Default()

	fileCfg := Config{Format: format.Options{IndentWidth: 4}}
	fileSet := FieldSet{Format: format.FieldSet{IndentWidth: true}}
	base.Merge(&fileCfg, fileSet)
	if base.Format.IndentWidth != 4 {
		t.Fatalf("after file merge, IndentWidth = %d, want 4", base.Format.IndentWidth)
	}

	cliCfg := Config{Format: format.Options{IndentWidth: 8}}
	cliSet := FieldSet{Format: format.FieldSet{IndentWidth: true}}
	base.Merge(&cliCfg, cliSet)
	if base.Format.IndentWidth != 8 {
		t.Errorf("after CLI merge, IndentWidth = %d, want 8 (CLI wins)", base.Format.IndentWidth)
	}

	// a field absent from FieldSet must not move.
	untouched := Config{TomlVersion: syntax.V1_0_0}
	base.Merge(&untouched, FieldSet{})
	if base.TomlVersion != syntax.DefaultTomlVersion {
		t.Error("TomlVersion moved despite an empty FieldSet")
	}
}

func TestDecodeTableAndDottedKeyEquivalent(t *testing.T) {
	dotted, _, diags1 := Decode("format.indent-style = \"tab\"\n", "a")
	tabled, _, diags2 := Decode("[format]\nindent-style = \"tab\"\n", "b")
	if len(diags1) != 0 || len(diags2) != 0 {
		t.Fatalf("unexpected diagnostics: %+v / %+v", diags1, diags2)
	}
	if dotted.Format.IndentStyle != tabled.Format.IndentStyle {
		t.Error("a root dotted key and an equivalent [table] header should decode the same way")
	}
}
