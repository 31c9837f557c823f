package format

import (
	"github.com/tombi-toml/tombi/ast"
)

// formatKeyValue renders `Keys = Value`, grounded on
// format/key_value.rs's `impl Format for ast::KeyValue`.
func formatKeyValue(f *Formatter, kv *ast.KeyValue) {
	writeLeadingComments(f, kv.Syntax())

	f.WriteString(f.Ident())
	if keys := kv.Keys(); keys != nil {
		f.WriteString(keys.String())
	}
	f.WriteString(" = ")

	// a value's own indentation never depends on the key-value's
	// nesting depth: it is rendered from depth zero (formatter.rs's
	// with_reset_ident).
	f.WithResetIndent(func(f *Formatter) {
		formatValue(f, kv.Value())
	})

	writeTailingComment(f, kv.Syntax())
}
