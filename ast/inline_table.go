package ast

import (
	"github.com/tombi-toml/tombi/rowan"
	"github.com/tombi-toml/tombi/syntax"
)

// InlineTable is `'{' (KeyValue ',')* KeyValue? '}'`. Grounded directly
// on original_source/crates/ast/src/impls/inline_table.rs.
type InlineTable struct{ syntax *rowan.RedNode }

func (t *InlineTable) Syntax() *rowan.RedNode { return t.syntax }

// KeyValues returns every entry, in order.
func (t *InlineTable) KeyValues() []*KeyValue {
	var out []*KeyValue
	for _, c := range t.syntax.Children() {
		if kv := castKeyValue(c); kv != nil {
			out = append(out, kv)
		}
	}
	return out
}

// KeyValuesWithComma pairs each entry with its trailing comma token, if
// any — inline_table.rs's key_values_with_comma; only the last entry may
// legally lack one.
func (t *InlineTable) KeyValuesWithComma() []KeyValueWithComma {
	entries := t.KeyValues()
	out := make([]KeyValueWithComma, len(entries))
	for i, kv := range entries {
		comma := followingComma(kv.Syntax())
		anchor := comma
		if anchor == nil {
			anchor = lastSignificantToken(kv.Syntax())
		}
		entry := KeyValueWithComma{KeyValue: kv, Comma: comma}
		if anchor != nil {
			if c, ok := TailingCommentAfter(anchor); ok {
				entry.Comment = &c
			}
		}
		out[i] = entry
	}
	return out
}

// KeyValueWithComma is one InlineTable entry plus its trailing comma
// token and same-line comment, when present.
type KeyValueWithComma struct {
	KeyValue *KeyValue
	Comma    *rowan.RedToken
	Comment  *Comment
}

func followingComma(n *rowan.RedNode) *rowan.RedToken {
	for e := n.NextSiblingOrToken(); e != nil; {
		if e.Kind().IsTrivia() {
			if node, ok := e.(*rowan.RedNode); ok {
				e = node.NextSiblingOrToken()
				continue
			}
			if tok, ok := e.(*rowan.RedToken); ok {
				e = tok.NextSiblingOrToken()
				continue
			}
		}
		if e.Kind() == syntax.COMMA {
			tok, _ := e.(*rowan.RedToken)
			return tok
		}
		return nil
	}
	return nil
}

// ShouldBeMultiline mirrors inline_table.rs's should_be_multiline: TOML
// 1.0.0 inline tables are always single-line; under the 1.1 preview
// grammar, a trailing comma, a multi-line-forcing value, or an inner
// comment all force multi-line rendering.
func (t *InlineTable) ShouldBeMultiline(version syntax.TomlVersion) bool {
	if !version.AtLeast(syntax.V1_1_0_Preview) {
		return false
	}
	if hasTrailingCommaBeforeClose(t.syntax, syntax.BRACE_END) {
		return true
	}
	for _, kv := range t.KeyValues() {
		if v := kv.Value(); v != nil && valueForcesMultiline(v, version) {
			return true
		}
	}
	return hasInnerComments(t.syntax, syntax.BRACE_START, syntax.BRACE_END)
}

// BeginDanglingComments returns comments that sit between '{' and the
// first entry with no entry to attach to (inline_table.rs's
// inner_begin_dangling_comments).
func (t *InlineTable) BeginDanglingComments() []Comment {
	return danglingComments(t.syntax, syntax.BRACE_START, true, syntax.KEY_VALUE)
}

// EndDanglingComments returns comments between the last entry and '}'
// with no entry to attach to.
func (t *InlineTable) EndDanglingComments() []Comment {
	return danglingComments(t.syntax, syntax.BRACE_END, false, syntax.KEY_VALUE)
}
