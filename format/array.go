package format

import "github.com/tombi-toml/tombi/ast"

// formatArray renders `[...]`, single-line unless ShouldBeMultiline,
// grounded on format/array.rs plus spec.md §4.7's multi-line rule (the
// sampled original_source array.rs only shows the single-line path; the
// multi-line one-child-per-line-with-trailing-comma rendering below
// follows the same rule inline_table.rs's formatter applies, per
// spec.md §4.7's unified "Inline tables / arrays" rule).
func formatArray(f *Formatter, a *ast.Array) {
	values := a.Values()
	if !a.ShouldBeMultiline(f.version) {
		f.WriteString("[")
		for i, v := range values {
			if i > 0 {
				f.WriteString(", ")
			}
			formatValue(f, v)
		}
		f.WriteString("]")
		return
	}

	f.WriteString("[")
	f.WriteString(f.LineEnding())
	f.IncIdent()
	writeDanglingComments(f, a.BeginDanglingComments())
	for _, e := range a.ValuesWithComma() {
		f.WriteString(f.Ident())
		formatValue(f, e.Value)
		f.WriteString(",")
		if e.Comment != nil {
			f.WriteString("  ")
			f.WriteString(e.Comment.Token.Text())
		}
		f.WriteString(f.LineEnding())
	}
	writeDanglingComments(f, a.EndDanglingComments())
	f.DecIdent()
	f.WriteString(f.Ident())
	f.WriteString("]")
}
