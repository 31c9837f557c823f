package rowan

import (
	"fmt"
	"strings"

	"github.com/tombi-toml/tombi/syntax"
)

// NodeCache hash-conses (kind, children) tuples so that identical
// subtrees share one allocation, per spec.md §4.1. Interning keys on a
// structural hash of the kind plus the child pointer sequence — not on
// textual equality — which is why tokens must also be routed through the
// same cache: two structurally-identical tokens become the same pointer,
// and the node key (built from child pointers) then naturally collapses
// identical subtrees.
//
// A cache is owned by a single parse; it is never shared across
// concurrent builds (spec.md §5).
type NodeCache struct {
	nodes  map[string]*GreenNode
	tokens map[tokenKey]*GreenToken
}

type tokenKey struct {
	kind syntax.Kind
	text string
}

// NewNodeCache returns an empty cache.
func NewNodeCache() *NodeCache {
	return &NodeCache{
		nodes:  make(map[string]*GreenNode),
		tokens: make(map[tokenKey]*GreenToken),
	}
}

// Token interns a leaf token.
func (c *NodeCache) Token(kind syntax.Kind, text string) *GreenToken {
	key := tokenKey{kind, text}
	if t, ok := c.tokens[key]; ok {
		return t
	}
	t := &GreenToken{kind: kind, text: text}
	c.tokens[key] = t
	return t
}

// Node interns a composite node built from already-interned children.
func (c *NodeCache) Node(kind syntax.Kind, children []GreenElement) *GreenNode {
	key := nodeKey(kind, children)
	if n, ok := c.nodes[key]; ok {
		return n
	}
	n := newGreenNode(kind, children)
	c.nodes[key] = n
	return n
}

// nodeKey hashes on the kind plus the pointer identity of every child.
// Children must already have passed through this same cache for two
// structurally-equal subtrees to produce the same key.
func nodeKey(kind syntax.Kind, children []GreenElement) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d|", kind)
	for _, c := range children {
		switch v := c.(type) {
		case *GreenToken:
			fmt.Fprintf(&b, "t%p;", v)
		case *GreenNode:
			fmt.Fprintf(&b, "n%p;", v)
		}
	}
	return b.String()
}
