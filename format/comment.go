package format

import (
	"github.com/tombi-toml/tombi/ast"
	"github.com/tombi-toml/tombi/rowan"
)

// writeLeadingComments writes every comment ast.LeadingComments(n)
// returns, one per line at the current indent depth, immediately before
// n is rendered — format/key_value.rs and format/table.rs's
// `for comment in self.leading_comments() { LeadingComment(comment)... }`.
func writeLeadingComments(f *Formatter, n *rowan.RedNode) {
	for _, c := range ast.LeadingComments(n) {
		f.WriteString(f.Ident())
		f.WriteString(c.Token.Text())
		f.WriteString(f.LineEnding())
	}
}

// writeTailingComment writes n's tailing comment, if any, sharing n's
// last output line — two spaces before the '#', matching the teacher's
// own inline-comment spacing convention elsewhere in the pack.
func writeTailingComment(f *Formatter, n *rowan.RedNode) {
	if c, ok := ast.TailingComment(n); ok {
		f.WriteString("  ")
		f.WriteString(c.Token.Text())
	}
}

// writeDanglingComments writes a dangling comment group, one per line
// at the current indent depth, each followed by a line ending —
// format/array_of_tables.rs's BeginDanglingComment/EndDanglingComment.
func writeDanglingComments(f *Formatter, comments []ast.Comment) {
	for _, c := range comments {
		f.WriteString(f.Ident())
		f.WriteString(c.Token.Text())
		f.WriteString(f.LineEnding())
	}
}
