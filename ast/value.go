package ast

import (
	"github.com/tombi-toml/tombi/rowan"
	"github.com/tombi-toml/tombi/syntax"
)

// Value is any value a KeyValue or Array element may hold.
type Value interface {
	Syntax() *rowan.RedNode
}

// castValue dispatches on n's kind: VALUE wraps a single scalar token,
// ARRAY and INLINE_TABLE are composite nodes already.
func castValue(n *rowan.RedNode) Value {
	if n == nil {
		return nil
	}
	switch n.Kind() {
	case syntax.VALUE:
		return &ScalarValue{syntax: n}
	case syntax.ARRAY:
		return &Array{syntax: n}
	case syntax.INLINE_TABLE:
		return &InlineTable{syntax: n}
	default:
		return nil
	}
}

// ScalarValue wraps a single leaf token: a string, integer, float,
// boolean or date/time literal.
type ScalarValue struct{ syntax *rowan.RedNode }

func (v *ScalarValue) Syntax() *rowan.RedNode { return v.syntax }

// Token returns the single token this value wraps.
func (v *ScalarValue) Token() *rowan.RedToken { return v.syntax.FirstToken() }

// Kind returns the wrapped token's syntax kind (e.g. syntax.INTEGER_DEC).
func (v *ScalarValue) Kind() syntax.Kind {
	if t := v.Token(); t != nil {
		return t.Kind()
	}
	return syntax.TOMBSTONE
}

// RawText returns the wrapped token's raw text.
func (v *ScalarValue) RawText() string {
	if t := v.Token(); t != nil {
		return t.Text()
	}
	return ""
}

// StringValue resolves a string-kind ScalarValue to its logical value.
// ok is false if v does not wrap a string token.
func (v *ScalarValue) StringValue() (s string, ok bool, err error) {
	t := v.Token()
	if t == nil {
		return "", false, nil
	}
	switch t.Kind() {
	case syntax.BASIC_STRING, syntax.MULTI_LINE_BASIC_STRING:
		s, err = unescapeBasic(t.Text())
		return s, true, err
	case syntax.LITERAL_STRING, syntax.MULTI_LINE_LITERAL_STRING:
		s, err = unescapeLiteral(t.Text())
		return s, true, err
	default:
		return "", false, nil
	}
}
