package format

import "github.com/tombi-toml/tombi/ast"

// formatInlineTable renders `{...}`, single-line unless
// ShouldBeMultiline (always single-line under TOML 1.0.0 — spec.md
// §4.7/§4.6's multi-line heuristic). No formatter/inline_table.rs
// exists in the reference sources to ground this on directly, so this
// follows the same one-child-per-line-with-trailing-comma rule
// table.rs/array_of_tables.rs apply to table bodies.
func formatInlineTable(f *Formatter, t *ast.InlineTable) {
	entries := t.KeyValuesWithComma()
	if !t.ShouldBeMultiline(f.version) {
		if len(entries) == 0 {
			f.WriteString("{}")
			return
		}
		f.WriteString("{ ")
		for i, e := range entries {
			if i > 0 {
				f.WriteString(", ")
			}
			formatInlineKeyValue(f, e.KeyValue)
		}
		f.WriteString(" }")
		return
	}

	f.WriteString("{")
	f.WriteString(f.LineEnding())
	f.IncIdent()
	writeDanglingComments(f, t.BeginDanglingComments())
	for _, e := range entries {
		f.WriteString(f.Ident())
		formatInlineKeyValue(f, e.KeyValue)
		f.WriteString(",")
		if e.Comment != nil {
			f.WriteString("  ")
			f.WriteString(e.Comment.Token.Text())
		}
		f.WriteString(f.LineEnding())
	}
	writeDanglingComments(f, t.EndDanglingComments())
	f.DecIdent()
	f.WriteString(f.Ident())
	f.WriteString("}")
}

// formatInlineKeyValue renders `Keys = Value` without the leading-
// comment/own-line handling formatKeyValue applies — an inline table
// entry never starts its own line or carries leading comments of its
// own the way a table's top-level key-values do.
func formatInlineKeyValue(f *Formatter, kv *ast.KeyValue) {
	if keys := kv.Keys(); keys != nil {
		f.WriteString(keys.String())
	}
	f.WriteString(" = ")
	f.WithResetIndent(func(f *Formatter) {
		formatValue(f, kv.Value())
	})
}
