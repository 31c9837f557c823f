// Package rowan implements the lossless red/green syntax tree described in
// spec.md §3-4.2: an immutable, structurally-shared green tree and a red
// cursor layer that adds absolute offsets and parent links on demand.
//
// The design follows rust-analyzer's rowan crate, which
// _examples/original_source/crates/red-green-tree/src/lib.rs names
// directly (it re-exports an `rg_tree` crate built on the same ideas).
// Go has no Rc<T>; structural sharing is achieved purely through the
// NodeCache interning pointers, and the garbage collector takes the place
// of explicit reference counting.
package rowan

import (
	"strings"

	"github.com/tombi-toml/tombi/syntax"
)

// GreenElement is either a *GreenNode or a *GreenToken.
type GreenElement interface {
	Kind() syntax.Kind
	Len() int
	greenElement()
}

// GreenToken is an immutable leaf: a kind and its exact source text. It
// carries no offset — absolute position only exists once a red cursor
// wraps it.
type GreenToken struct {
	kind syntax.Kind
	text string
}

func (t *GreenToken) Kind() syntax.Kind { return t.kind }
func (t *GreenToken) Text() string      { return t.text }
func (t *GreenToken) Len() int          { return len(t.text) }
func (*GreenToken) greenElement()       {}

// GreenNode is an immutable, shareable composite: a kind and a slice of
// children. Two nodes built from the same kind and the same child
// sequence (by identity, once routed through a NodeCache) collapse to one
// allocation.
type GreenNode struct {
	kind     syntax.Kind
	children []GreenElement
	length   int
}

func (n *GreenNode) Kind() syntax.Kind        { return n.kind }
func (n *GreenNode) Len() int                 { return n.length }
func (n *GreenNode) Children() []GreenElement { return n.children }
func (*GreenNode) greenElement()              {}

func newGreenNode(kind syntax.Kind, children []GreenElement) *GreenNode {
	length := 0
	for _, c := range children {
		length += c.Len()
	}
	return &GreenNode{kind: kind, children: children, length: length}
}

// Text concatenates every leaf token's text in depth-first order. For a
// well-formed tree this equals the original source byte-for-byte — the
// lossless round-trip property from spec.md §8.
func (n *GreenNode) Text() string {
	var sb strings.Builder
	n.writeText(&sb)
	return sb.String()
}

func (n *GreenNode) writeText(sb *strings.Builder) {
	for _, c := range n.children {
		switch v := c.(type) {
		case *GreenToken:
			sb.WriteString(v.text)
		case *GreenNode:
			v.writeText(sb)
		}
	}
}
