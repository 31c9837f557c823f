package ast

import (
	"github.com/tombi-toml/tombi/rowan"
	"github.com/tombi-toml/tombi/syntax"
)

// Table is `'[' Keys ']' {KeyValue}*`.
type Table struct{ syntax *rowan.RedNode }

func castTable(n *rowan.RedNode) *Table {
	if n == nil || n.Kind() != syntax.TABLE {
		return nil
	}
	return &Table{syntax: n}
}

func (t *Table) Syntax() *rowan.RedNode { return t.syntax }

// Header returns the table's dotted key path.
func (t *Table) Header() *Keys {
	for _, c := range t.syntax.Children() {
		if k := castKeys(c); k != nil {
			return k
		}
	}
	return nil
}

// KeyValues returns every entry in the table body, in order.
func (t *Table) KeyValues() []*KeyValue {
	var out []*KeyValue
	for _, c := range t.syntax.Children() {
		if kv := castKeyValue(c); kv != nil {
			out = append(out, kv)
		}
	}
	return out
}

// HeaderLeadingComments returns the comments immediately preceding the
// table's opening '['.
func (t *Table) HeaderLeadingComments() []Comment { return LeadingComments(t.syntax) }

// HeaderTailingComment returns the comment sharing the header's closing
// ']' line, if any.
func (t *Table) HeaderTailingComment() (Comment, bool) {
	return headerTailingComment(t.syntax, syntax.BRACKET_END)
}

// BeginDanglingComments returns comments between the header and the
// first key-value with no key-value to attach to before it.
func (t *Table) BeginDanglingComments() []Comment {
	return sectionBeginDanglingComments(t.syntax, syntax.BRACKET_END)
}

// EndDanglingComments returns comments after the last key-value with
// nothing following them to attach to.
func (t *Table) EndDanglingComments() []Comment {
	return sectionEndDanglingComments(t.syntax)
}

// ArrayOfTable is `'[[' Keys ']]' {KeyValue}*`.
type ArrayOfTable struct{ syntax *rowan.RedNode }

func castArrayOfTable(n *rowan.RedNode) *ArrayOfTable {
	if n == nil || n.Kind() != syntax.ARRAY_OF_TABLE {
		return nil
	}
	return &ArrayOfTable{syntax: n}
}

func (a *ArrayOfTable) Syntax() *rowan.RedNode { return a.syntax }

func (a *ArrayOfTable) Header() *Keys {
	for _, c := range a.syntax.Children() {
		if k := castKeys(c); k != nil {
			return k
		}
	}
	return nil
}

func (a *ArrayOfTable) KeyValues() []*KeyValue {
	var out []*KeyValue
	for _, c := range a.syntax.Children() {
		if kv := castKeyValue(c); kv != nil {
			out = append(out, kv)
		}
	}
	return out
}

// HeaderLeadingComments returns the comments immediately preceding the
// array-of-table's opening '[['.
func (a *ArrayOfTable) HeaderLeadingComments() []Comment { return LeadingComments(a.syntax) }

// HeaderTailingComment returns the comment sharing the header's closing
// ']]' line, if any.
func (a *ArrayOfTable) HeaderTailingComment() (Comment, bool) {
	return headerTailingComment(a.syntax, syntax.DOUBLE_BRACKET_END)
}

// BeginDanglingComments returns comments between the header and the
// first key-value with no key-value to attach to before it.
func (a *ArrayOfTable) BeginDanglingComments() []Comment {
	return sectionBeginDanglingComments(a.syntax, syntax.DOUBLE_BRACKET_END)
}

// EndDanglingComments returns comments after the last key-value with
// nothing following them to attach to.
func (a *ArrayOfTable) EndDanglingComments() []Comment {
	return sectionEndDanglingComments(a.syntax)
}
