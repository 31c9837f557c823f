package format

import "github.com/tombi-toml/tombi/ast"

// formatTable renders `[keys]` then its body, grounded on
// format/table.rs's `impl Format for ast::Table`.
func formatTable(f *Formatter, t *ast.Table) {
	for _, c := range t.HeaderLeadingComments() {
		f.WriteString(f.Ident())
		f.WriteString(c.Token.Text())
		f.WriteString(f.LineEnding())
	}

	f.WriteString("[")
	if header := t.Header(); header != nil {
		f.WriteString(header.String())
	}
	f.WriteString("]")

	if c, ok := t.HeaderTailingComment(); ok {
		f.WriteString("  ")
		f.WriteString(c.Token.Text())
	}

	formatSectionBody(f, t.BeginDanglingComments(), t.KeyValues(), t.EndDanglingComments())
}

// formatArrayOfTable renders `[[keys]]` then its body, grounded on
// format/array_of_tables.rs's `impl Format for ast::ArrayOfTables`.
func formatArrayOfTable(f *Formatter, a *ast.ArrayOfTable) {
	for _, c := range a.HeaderLeadingComments() {
		f.WriteString(f.Ident())
		f.WriteString(c.Token.Text())
		f.WriteString(f.LineEnding())
	}

	f.WriteString("[[")
	if header := a.Header(); header != nil {
		f.WriteString(header.String())
	}
	f.WriteString("]]")

	if c, ok := a.HeaderTailingComment(); ok {
		f.WriteString("  ")
		f.WriteString(c.Token.Text())
	}

	formatSectionBody(f, a.BeginDanglingComments(), a.KeyValues(), a.EndDanglingComments())
}

// formatSectionBody renders a Table/ArrayOfTable's body: nothing if
// there are neither key-values nor begin-dangling comments (spec.md's
// header-only case), only the begin-dangling comments, one per line, if
// there are comments but no key-values, else a line ending, the
// begin-dangling group, one key-value per line, and the end-dangling
// group. It never writes a final line ending of its own — like every
// other root item, the table's last rendered line is terminated by the
// top-level joiner in Format, not by the table itself.
func formatSectionBody(f *Formatter, begin []ast.Comment, keyValues []*ast.KeyValue, end []ast.Comment) {
	if len(keyValues) == 0 {
		for _, c := range begin {
			f.WriteString(f.LineEnding())
			f.WriteString(f.Ident())
			f.WriteString(c.Token.Text())
		}
		return
	}
	f.WriteString(f.LineEnding())
	writeDanglingComments(f, begin)
	for i, kv := range keyValues {
		if i != 0 {
			f.WriteString(f.LineEnding())
		}
		formatKeyValue(f, kv)
	}
	for _, c := range end {
		f.WriteString(f.LineEnding())
		f.WriteString(f.Ident())
		f.WriteString(c.Token.Text())
	}
}
