package ast

import (
	"strings"

	"github.com/tombi-toml/tombi/rowan"
	"github.com/tombi-toml/tombi/syntax"
)

// Array is `'[' (Value ',')* Value? ']'`.
type Array struct{ syntax *rowan.RedNode }

func (a *Array) Syntax() *rowan.RedNode { return a.syntax }

// Values returns every element, in order.
func (a *Array) Values() []Value {
	var out []Value
	for _, c := range a.syntax.Children() {
		if v := castValue(c); v != nil {
			out = append(out, v)
		}
	}
	return out
}

// ShouldBeMultiline reports whether the formatter should keep (or
// render) this array spread across multiple lines, grounded on
// original_source/crates/ast/src/impls/inline_table.rs's
// should_be_multiline/has_multiline_values — generalized to Array since
// the Rust crate's InlineTable method recurses into Array the same way.
func (a *Array) ShouldBeMultiline(version syntax.TomlVersion) bool {
	if hasInnerComments(a.syntax, syntax.BRACKET_START, syntax.BRACKET_END) {
		return true
	}
	for _, v := range a.Values() {
		if valueForcesMultiline(v, version) {
			return true
		}
	}
	if version.AtLeast(syntax.V1_1_0_Preview) {
		return hasTrailingCommaBeforeClose(a.syntax, syntax.BRACKET_END)
	}
	return false
}

// ValueWithComma is one Array element plus its trailing comma token
// (nil for the last element if the source has none) and the comment
// sharing that line, if any.
type ValueWithComma struct {
	Value   Value
	Comma   *rowan.RedToken
	Comment *Comment
}

// ValuesWithComma pairs each element with its trailing comma and
// same-line comment — the array analogue of
// InlineTable.KeyValuesWithComma.
func (a *Array) ValuesWithComma() []ValueWithComma {
	values := a.Values()
	out := make([]ValueWithComma, len(values))
	for i, v := range values {
		comma := followingComma(v.Syntax())
		anchor := comma
		if anchor == nil {
			anchor = lastSignificantToken(v.Syntax())
		}
		entry := ValueWithComma{Value: v, Comma: comma}
		if anchor != nil {
			if c, ok := TailingCommentAfter(anchor); ok {
				entry.Comment = &c
			}
		}
		out[i] = entry
	}
	return out
}

// BeginDanglingComments returns comments between '[' and the first
// element with no element to attach to — mirrors
// InlineTable.BeginDanglingComments.
func (a *Array) BeginDanglingComments() []Comment {
	return danglingComments(a.syntax, syntax.BRACKET_START, true, syntax.VALUE, syntax.ARRAY, syntax.INLINE_TABLE)
}

// EndDanglingComments returns comments between the last element and ']'
// with no element to attach to.
func (a *Array) EndDanglingComments() []Comment {
	return danglingComments(a.syntax, syntax.BRACKET_END, false, syntax.VALUE, syntax.ARRAY, syntax.INLINE_TABLE)
}

func valueForcesMultiline(v Value, version syntax.TomlVersion) bool {
	switch vv := v.(type) {
	case *Array:
		return vv.ShouldBeMultiline(version)
	case *InlineTable:
		return vv.ShouldBeMultiline(version)
	case *ScalarValue:
		return vv.Kind().IsMultiLineString() && containsNewline(vv.RawText())
	}
	return false
}

func containsNewline(s string) bool {
	return strings.Contains(s, "\n")
}

// hasInnerComments reports whether any COMMENT token sits strictly
// between open and close, walking flat token order rather than n's
// direct children: a comment following the last element with no
// trailing comma nests inside that element's own subtree (see
// lastSignificantToken's doc comment), not as n's direct child, so a
// plain ChildrenWithTokens scan would miss it.
func hasInnerComments(n *rowan.RedNode, open, close syntax.Kind) bool {
	var openTok, closeTok *rowan.RedToken
	for _, c := range n.ChildrenWithTokens() {
		if c.Kind() == open {
			openTok, _ = c.(*rowan.RedToken)
		}
		if c.Kind() == close {
			closeTok, _ = c.(*rowan.RedToken)
		}
	}
	if openTok == nil || closeTok == nil {
		return false
	}
	for tok := openTok.NextToken(); tok != nil; tok = tok.NextToken() {
		if tok.TextRange() == closeTok.TextRange() {
			return false
		}
		if tok.Kind() == syntax.COMMENT {
			return true
		}
	}
	return false
}

// hasTrailingCommaBeforeClose reports whether the last non-trivia child
// before close is a COMMA — inline_table.rs's has_tailing_comma_after_last_value.
func hasTrailingCommaBeforeClose(n *rowan.RedNode, close syntax.Kind) bool {
	children := n.ChildrenWithTokens()
	closeIdx := -1
	for i, c := range children {
		if c.Kind() == close {
			closeIdx = i
		}
	}
	if closeIdx < 0 {
		return false
	}
	for i := closeIdx - 1; i >= 0; i-- {
		k := children[i].Kind()
		if k.IsTrivia() {
			continue
		}
		return k == syntax.COMMA
	}
	return false
}
