package ast

import (
	"github.com/tombi-toml/tombi/rowan"
	"github.com/tombi-toml/tombi/syntax"
)

// Key is one segment of a dotted key path: a bare key, or a basic/literal
// quoted string used as a key. Grounded on
// original_source/crates/ast/src/impls/key.rs's Key enum.
type Key interface {
	Syntax() *rowan.RedNode
	// RawText resolves the key's logical string value: unescaped for a
	// quoted key, the raw token text for a bare key (which, per
	// lexer/classify.go's note, may have lexed as BARE_KEY or as any
	// numeric/boolean/date-time kind).
	RawText() (string, error)
}

// BareKey is a key spelled without quotes.
type BareKey struct{ syntax *rowan.RedNode }

func (k *BareKey) Syntax() *rowan.RedNode { return k.syntax }
func (k *BareKey) RawText() (string, error) {
	if t := k.syntax.FirstToken(); t != nil {
		return t.Text(), nil
	}
	return "", nil
}

// BasicStringKey is a `"..."`-quoted key.
type BasicStringKey struct{ syntax *rowan.RedNode }

func (k *BasicStringKey) Syntax() *rowan.RedNode { return k.syntax }
func (k *BasicStringKey) RawText() (string, error) {
	t := k.syntax.FirstToken()
	if t == nil {
		return "", nil
	}
	return unescapeBasic(t.Text())
}

// LiteralStringKey is a `'...'`-quoted key.
type LiteralStringKey struct{ syntax *rowan.RedNode }

func (k *LiteralStringKey) Syntax() *rowan.RedNode { return k.syntax }
func (k *LiteralStringKey) RawText() (string, error) {
	t := k.syntax.FirstToken()
	if t == nil {
		return "", nil
	}
	return unescapeLiteral(t.Text())
}

// castKey wraps a BARE_KEY_NODE/BASIC_STRING_KEY/LITERAL_STRING_KEY red
// node in its Key variant, or returns nil if n isn't one of those kinds.
func castKey(n *rowan.RedNode) Key {
	switch n.Kind() {
	case syntax.BARE_KEY_NODE:
		return &BareKey{syntax: n}
	case syntax.BASIC_STRING_KEY:
		return &BasicStringKey{syntax: n}
	case syntax.LITERAL_STRING_KEY:
		return &LiteralStringKey{syntax: n}
	default:
		return nil
	}
}

// Keys is a dotted key path: `Key ('.' Key)*`.
type Keys struct{ syntax *rowan.RedNode }

func castKeys(n *rowan.RedNode) *Keys {
	if n == nil || n.Kind() != syntax.KEYS {
		return nil
	}
	return &Keys{syntax: n}
}

func (k *Keys) Syntax() *rowan.RedNode { return k.syntax }

// Segments returns every Key in path order.
func (k *Keys) Segments() []Key {
	var out []Key
	for _, c := range k.syntax.Children() {
		if seg := castKey(c); seg != nil {
			out = append(out, seg)
		}
	}
	return out
}

// StartsWith reports whether every segment of other matches the
// corresponding segment of k, resolved logical value to logical value
// (so `"a"` and `a` compare equal, and differing escape spellings of the
// same string compare equal) — ast/impls/key.rs's starts_with.
func (k *Keys) StartsWith(other *Keys) bool {
	a, b := k.Segments(), other.Segments()
	if len(b) > len(a) {
		return false
	}
	for i, seg := range b {
		at, aerr := a[i].RawText()
		bt, berr := seg.RawText()
		if aerr != nil || berr != nil || at != bt {
			return false
		}
	}
	return true
}

// SameAs reports whether k and other name the exact same path —
// key.rs's same_as: equal length and StartsWith.
func (k *Keys) SameAs(other *Keys) bool {
	return len(k.Segments()) == len(other.Segments()) && k.StartsWith(other)
}

// String renders the dotted path using each segment's raw token text
// (not its resolved value) — good for diagnostics and lint messages.
func (k *Keys) String() string {
	segs := k.Segments()
	if len(segs) == 0 {
		return ""
	}
	parts := make([]string, len(segs))
	for i, s := range segs {
		if t := s.Syntax().FirstToken(); t != nil {
			parts[i] = t.Text()
		}
	}
	out := parts[0]
	for _, p := range parts[1:] {
		out += "." + p
	}
	return out
}
