package ast

import (
	"github.com/tombi-toml/tombi/rowan"
	"github.com/tombi-toml/tombi/syntax"
)

// KeyValue is `Keys '=' Value`.
type KeyValue struct{ syntax *rowan.RedNode }

func castKeyValue(n *rowan.RedNode) *KeyValue {
	if n == nil || n.Kind() != syntax.KEY_VALUE {
		return nil
	}
	return &KeyValue{syntax: n}
}

func (kv *KeyValue) Syntax() *rowan.RedNode { return kv.syntax }

// Keys returns the left-hand dotted key path, or nil if parsing failed
// to produce one at all.
func (kv *KeyValue) Keys() *Keys {
	for _, c := range kv.syntax.Children() {
		if k := castKeys(c); k != nil {
			return k
		}
	}
	return nil
}

// Value returns the right-hand value, or nil if parsing failed to
// produce one (e.g. `k = ` at end of input).
func (kv *KeyValue) Value() Value {
	for _, c := range kv.syntax.Children() {
		if v := castValue(c); v != nil {
			return v
		}
	}
	return nil
}
