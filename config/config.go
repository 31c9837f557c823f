// Package config loads tombi.toml (spec.md §6.3), dog-fooding this
// module's own parser/AST layer: the config format is TOML, so it is
// parsed and decoded with the very tree this module builds, rather than
// a separate bespoke config parser. Scoped narrowly to the handful of
// keys spec.md names — this is not a general TOML-to-Go decoder (that
// is an explicit Non-goal), the same discipline SPEC_FULL.md's `lint`
// package applies to its minimal document tree.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/tombi-toml/tombi/ast"
	"github.com/tombi-toml/tombi/diagnostic"
	"github.com/tombi-toml/tombi/format"
	"github.com/tombi-toml/tombi/syntax"
)

// SchemaRef is one entry of the `schemas` list: a local JSON Schema
// file associated with the source paths it validates, per spec.md
// §6.3 and SPEC_FULL.md §4's per-path schema association.
type SchemaRef struct {
	Path    string
	Include []string
}

// Config is the fully-resolved, right-biased-merged configuration:
// built-in defaults, overridden by a tombi.toml file, overridden again
// by CLI flags (spec.md §3 "Versions and options").
type Config struct {
	TomlVersion          syntax.TomlVersion
	Format               format.Options
	Schemas              []SchemaRef
	SchemaCatalogEnabled bool
}

// Default returns the zero-config baseline: TOML 1.1 preview grammar,
// format.DefaultOptions, no schemas, catalog disabled.
func Default() Config {
	return Config{
		TomlVersion: syntax.DefaultTomlVersion,
		Format:      format.DefaultOptions(),
	}
}

// FieldSet marks which Config fields a source (a parsed tombi.toml, or
// a set of CLI flags) actually specified, mirroring format.FieldSet —
// only fields present in FieldSet move during Merge.
type FieldSet struct {
	TomlVersion          bool
	Format               format.FieldSet
	Schemas              bool
	SchemaCatalogEnabled bool
}

// Merge overwrites c's fields with other's, restricted to what set
// marks as actually specified — the same one-directional, field-level
// merge format.Options.Merge performs. Starting from Default() and
// calling Merge first with the file's Config and FieldSet, then with
// the CLI flags', gives config-file-over-defaults,
// CLI-flags-over-config-file precedence. Merge modifies c in place and
// returns nothing, so calls are made one after another, not chained.
func (c *Config) Merge(other *Config, set FieldSet) {
	if set.TomlVersion {
		c.TomlVersion = other.TomlVersion
	}
	c.Format.Merge(&other.Format, set.Format)
	if set.Schemas {
		c.Schemas = other.Schemas
	}
	if set.SchemaCatalogEnabled {
		c.SchemaCatalogEnabled = other.SchemaCatalogEnabled
	}
}

// Load reads and decodes the tombi.toml at path. A missing or
// unreadable file is reported as an ErrFilePos-conforming error; a
// malformed or unrecognised key inside the file is reported as a
// warning Diagnostic instead, per spec.md §6.3 — the config is always
// at least the zero-config baseline, merged with whatever fields did
// decode successfully.
func Load(path string) (Config, FieldSet, []diagnostic.Diagnostic, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Config{}, FieldSet{}, nil, diagnostic.NewErrFilePosf(path, 0, 0, "reading config: %v", err)
	}
	cfg, set, diags := Decode(string(src), path)
	return cfg, set, diags, nil
}

// Decode parses src as a tombi.toml document and extracts the keys
// spec.md §6.3 recognises. file is used only to annotate diagnostics.
// The config document itself is always parsed under
// syntax.DefaultTomlVersion (the 1.1 preview grammar); its own
// toml-version key does not change the grammar the file is read with.
func Decode(src string, file string) (Config, FieldSet, []diagnostic.Diagnostic) {
	root := ast.Document(src, syntax.DefaultTomlVersion)

	var cfg Config
	var set FieldSet
	var diags []diagnostic.Diagnostic

	for _, e := range root.Errors {
		d := diagnostic.FromSyntaxError(e, src)
		d.File = file
		diags = append(diags, d)
	}

	for _, entry := range flattenEntries(root) {
		path := strings.Join(entry.path, ".")
		switch path {
		case "toml-version":
			s, ok := stringValue(entry.value)
			v, parsed := syntax.ParseTomlVersion(s)
			if !ok || !parsed {
				diags = append(diags, warnf(file, src, entry, "toml-version must be one of %q, %q", "v1.0.0", "v1.1.0-preview"))
				continue
			}
			cfg.TomlVersion = v
			set.TomlVersion = true
		case "format.indent-style":
			s, ok := stringValue(entry.value)
			switch {
			case ok && s == "space":
				cfg.Format.IndentStyle = format.IndentSpace
			case ok && s == "tab":
				cfg.Format.IndentStyle = format.IndentTab
			default:
				diags = append(diags, warnf(file, src, entry, "format.indent-style must be %q or %q", "space", "tab"))
				continue
			}
			set.Format.IndentStyle = true
		case "format.indent-width":
			n, ok := intValue(entry.value)
			if !ok || n <= 0 {
				diags = append(diags, warnf(file, src, entry, "format.indent-width must be a positive integer"))
				continue
			}
			cfg.Format.IndentWidth = n
			set.Format.IndentWidth = true
		case "format.line-ending":
			s, ok := stringValue(entry.value)
			switch {
			case ok && s == "lf":
				cfg.Format.LineEnding = format.LF
			case ok && s == "crlf":
				cfg.Format.LineEnding = format.CRLF
			default:
				diags = append(diags, warnf(file, src, entry, "format.line-ending must be %q or %q", "lf", "crlf"))
				continue
			}
			set.Format.LineEnding = true
		case "format.date-time-delimiter":
			s, ok := stringValue(entry.value)
			switch {
			case ok && s == "T":
				cfg.Format.DateTimeDelimiter = format.DateTimeDelimiterT
			case ok && s == "space":
				cfg.Format.DateTimeDelimiter = format.DateTimeDelimiterSpace
			case ok && s == "preserve":
				cfg.Format.DateTimeDelimiter = format.DateTimeDelimiterPreserve
			default:
				diags = append(diags, warnf(file, src, entry, "format.date-time-delimiter must be %q, %q or %q", "T", "space", "preserve"))
				continue
			}
			set.Format.DateTimeDelimiter = true
		case "schemas":
			refs, ok := schemaRefs(entry.value)
			if !ok {
				diags = append(diags, warnf(file, src, entry, "schemas must be an array of tables with a string `path`"))
				continue
			}
			cfg.Schemas = refs
			set.Schemas = true
		case "schema.catalog.enabled":
			b, ok := boolValue(entry.value)
			if !ok {
				diags = append(diags, warnf(file, src, entry, "schema.catalog.enabled must be a boolean"))
				continue
			}
			cfg.SchemaCatalogEnabled = b
			set.SchemaCatalogEnabled = true
		default:
			diags = append(diags, warnf(file, src, entry, "unknown configuration key %q", path))
		}
	}

	return cfg, set, diags
}

func warnf(file, src string, entry configEntry, msg string, args ...interface{}) diagnostic.Diagnostic {
	d := diagnostic.Diagnostic{
		Severity: diagnostic.SeverityWarning,
		Message:  fmt.Sprintf(msg, args...),
		File:     file,
	}
	if entry.kv != nil {
		if t := entry.kv.Syntax().FirstToken(); t != nil {
			d.HasRange = true
			d.Range = t.TextRange()
			d.Line, d.Col = diagnostic.LineCol(src, t.TextRange().Start)
		}
	}
	return d
}
