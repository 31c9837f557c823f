// Package format implements the format-preserving pretty-printer:
// source text in, same-semantics text out, re-using every comment and
// blank-line grouping the parser captured. Grounded on
// original_source/crates/formatter/src/formatter.rs and format/*.rs.
package format

import (
	"github.com/tombi-toml/tombi/ast"
	"github.com/tombi-toml/tombi/diagnostic"
	"github.com/tombi-toml/tombi/synerr"
	"github.com/tombi-toml/tombi/syntax"
)

// Format implements spec.md §6.1's `format(source, version, options) →
// Result<String, [Diagnostic]>`. It refuses to emit when any parse
// error leaves an inline container or table header unclosed (spec.md
// §7) since the resulting tree shape can't be trusted to serialise
// back to valid TOML; any other parse error is passed through
// alongside best-effort output.
func Format(src string, version syntax.TomlVersion, opts Options) (string, []diagnostic.Diagnostic) {
	root := ast.Document(src, version)

	var diags []diagnostic.Diagnostic
	blocked := false
	for _, e := range root.Errors {
		diags = append(diags, diagnostic.FromSyntaxError(e, src))
		if blocksEmission(e.Kind) {
			blocked = true
		}
	}
	if blocked {
		return "", diags
	}

	f := NewFormatter(version, opts)
	items := root.Items()
	for i, item := range items {
		if i != 0 {
			f.WriteString(f.LineEnding())
		}
		formatRootItem(f, item)
	}
	if len(items) > 0 {
		f.WriteString(f.LineEnding())
	}
	writeDanglingComments(f, root.EndDanglingComments())
	return f.String(), diags
}

func formatRootItem(f *Formatter, item ast.RootItem) {
	switch v := item.(type) {
	case *ast.Table:
		formatTable(f, v)
	case *ast.ArrayOfTable:
		formatArrayOfTable(f, v)
	case *ast.KeyValue:
		formatKeyValue(f, v)
	}
}

// blocksEmission reports whether a parse error indicates a container
// (inline table, array, table header) was left without its closing
// delimiter — spec.md §7's "parse error that prevents serialisation".
func blocksEmission(k synerr.Kind) bool {
	switch k {
	case synerr.ExpectedBracketEnd, synerr.ExpectedDoubleBracketEnd:
		return true
	default:
		return false
	}
}
