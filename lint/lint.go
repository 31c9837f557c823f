package lint

import (
	"github.com/tombi-toml/tombi/ast"
	"github.com/tombi-toml/tombi/diagnostic"
	"github.com/tombi-toml/tombi/schemastore"
	"github.com/tombi-toml/tombi/syntax"
)

// Options are the lint-options spec.md §6.1's `lint(source, version,
// lint-options, schema?)` names. There is nothing to toggle yet beyond
// the always-on checks below — kept as a struct (rather than dropping
// the parameter) so the library API's shape matches spec.md exactly and
// a future per-rule on/off switch doesn't change the signature.
type Options struct{}

// Lint runs every semantic check this package owns against source and
// returns the combined diagnostics: parse errors surfaced as-is, then
// the date/time and dotted-key conflict checks, then, if schema is
// non-nil, JSON Schema validation. A non-empty result is spec.md §6.1's
// Err(...) side of lint's Result — the function itself never aborts,
// matching §7's "every level produces (tree, errors)".
func Lint(source string, version syntax.TomlVersion, _ Options, schema *schemastore.Store, sourcePath string) []diagnostic.Diagnostic {
	root := ast.Document(source, version)

	var diags []diagnostic.Diagnostic
	for _, e := range root.Errors {
		diags = append(diags, diagnostic.FromSyntaxError(e, source))
	}

	for _, e := range ValidateDateTimes(root, version) {
		diags = append(diags, diagnostic.FromSyntaxError(e, source))
	}

	diags = append(diags, DetectConflicts(root, source)...)

	if schema != nil {
		if sch := schema.SchemaFor(sourcePath); sch != nil {
			doc := BuildValue(root)
			diags = append(diags, schemastore.Validate(sch, doc)...)
		}
	}

	return diags
}
