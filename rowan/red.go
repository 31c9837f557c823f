package rowan

import "github.com/tombi-toml/tombi/syntax"

// RedElement is either a *RedNode or a *RedToken: a red cursor's view of
// a single child, with its parent link and absolute offset attached.
type RedElement interface {
	Kind() syntax.Kind
	TextRange() TextRange
	redElement()
}

// RedNode is a cursor over a GreenNode: it adds the absolute offset and
// parent back-pointer that the green layer deliberately omits. Red nodes
// are created lazily, on demand, as a caller descends into children —
// spec.md §4.2. Two red nodes wrapping the same green node at different
// offsets are distinct values, never equal.
type RedNode struct {
	green         *GreenNode
	parent        *RedNode
	indexInParent int // index into parent.green.children, counting tokens
	offset        int
}

// NewRoot creates the red cursor for the root of a tree.
func NewRoot(green *GreenNode) *RedNode {
	return &RedNode{green: green, offset: 0}
}

func (r *RedNode) Kind() syntax.Kind    { return r.green.kind }
func (r *RedNode) Green() *GreenNode    { return r.green }
func (r *RedNode) Parent() *RedNode     { return r.parent }
func (r *RedNode) TextRange() TextRange { return TextRange{r.offset, r.offset + r.green.length} }
func (*RedNode) redElement()            {}

// Text returns a façade over this subtree's text, built by walking
// leaves — standing in for the rope-like SyntaxText view spec.md §4.2
// describes. Real rope slicing is unnecessary at this scale; string
// concatenation meets the same observable contract.
func (r *RedNode) Text() SyntaxText { return SyntaxText{node: r} }

// ChildrenWithTokens returns every direct child (nodes and tokens alike)
// as lazily-constructed red cursors, in source order.
func (r *RedNode) ChildrenWithTokens() []RedElement {
	children := r.green.children
	out := make([]RedElement, len(children))
	off := r.offset
	for i, c := range children {
		switch v := c.(type) {
		case *GreenNode:
			out[i] = &RedNode{green: v, parent: r, indexInParent: i, offset: off}
		case *GreenToken:
			out[i] = &RedToken{green: v, parent: r, indexInParent: i, offset: off}
		}
		off += c.Len()
	}
	return out
}

// Children returns only the node children, skipping tokens.
func (r *RedNode) Children() []*RedNode {
	var out []*RedNode
	for _, e := range r.ChildrenWithTokens() {
		if n, ok := e.(*RedNode); ok {
			out = append(out, n)
		}
	}
	return out
}

// FirstChildOrToken returns the first direct child, or nil if r has none.
func (r *RedNode) FirstChildOrToken() RedElement {
	cs := r.ChildrenWithTokens()
	if len(cs) == 0 {
		return nil
	}
	return cs[0]
}

// LastChildOrToken returns the last direct child, or nil if r has none.
func (r *RedNode) LastChildOrToken() RedElement {
	cs := r.ChildrenWithTokens()
	if len(cs) == 0 {
		return nil
	}
	return cs[len(cs)-1]
}

// FirstToken descends into the leftmost descendant leaf.
func (r *RedNode) FirstToken() *RedToken {
	for _, c := range r.ChildrenWithTokens() {
		switch v := c.(type) {
		case *RedToken:
			return v
		case *RedNode:
			if t := v.FirstToken(); t != nil {
				return t
			}
		}
	}
	return nil
}

// LastToken descends into the rightmost descendant leaf.
func (r *RedNode) LastToken() *RedToken {
	cs := r.ChildrenWithTokens()
	for i := len(cs) - 1; i >= 0; i-- {
		switch v := cs[i].(type) {
		case *RedToken:
			return v
		case *RedNode:
			if t := v.LastToken(); t != nil {
				return t
			}
		}
	}
	return nil
}

// PrevSiblingOrToken returns the element immediately before r among its
// parent's children, or nil if r is first or has no parent.
func (r *RedNode) PrevSiblingOrToken() RedElement {
	return prevSiblingOrToken(r.parent, r.indexInParent)
}

// NextSiblingOrToken returns the element immediately after r among its
// parent's children, or nil if r is last or has no parent.
func (r *RedNode) NextSiblingOrToken() RedElement {
	return nextSiblingOrToken(r.parent, r.indexInParent)
}

// PrevSibling / NextSibling skip over token siblings to find the nearest
// node sibling in that direction.
func (r *RedNode) PrevSibling() *RedNode { return prevNodeSibling(r.parent, r.indexInParent) }
func (r *RedNode) NextSibling() *RedNode { return nextNodeSibling(r.parent, r.indexInParent) }

// Ancestors returns r and every enclosing node, innermost first.
func (r *RedNode) Ancestors() []*RedNode {
	var out []*RedNode
	for n := r; n != nil; n = n.parent {
		out = append(out, n)
	}
	return out
}

// Descendants returns r and every descendant node, in pre-order.
func (r *RedNode) Descendants() []*RedNode {
	out := []*RedNode{r}
	for _, c := range r.Children() {
		out = append(out, c.Descendants()...)
	}
	return out
}

// DescendantsWithTokens returns r and every descendant node or token, in
// pre-order (children interleaved with their node ancestor).
func (r *RedNode) DescendantsWithTokens() []RedElement {
	out := []RedElement{r}
	for _, c := range r.ChildrenWithTokens() {
		switch v := c.(type) {
		case *RedToken:
			out = append(out, v)
		case *RedNode:
			out = append(out, v.DescendantsWithTokens()...)
		}
	}
	return out
}

func prevSiblingOrToken(parent *RedNode, index int) RedElement {
	if parent == nil || index == 0 {
		return nil
	}
	return parent.ChildrenWithTokens()[index-1]
}

func nextSiblingOrToken(parent *RedNode, index int) RedElement {
	if parent == nil {
		return nil
	}
	siblings := parent.ChildrenWithTokens()
	if index+1 >= len(siblings) {
		return nil
	}
	return siblings[index+1]
}

func prevNodeSibling(parent *RedNode, index int) *RedNode {
	for e := prevSiblingOrToken(parent, index); e != nil; {
		if n, ok := e.(*RedNode); ok {
			return n
		}
		t := e.(*RedToken)
		e = prevSiblingOrToken(parent, t.indexInParent)
	}
	return nil
}

func nextNodeSibling(parent *RedNode, index int) *RedNode {
	for e := nextSiblingOrToken(parent, index); e != nil; {
		if n, ok := e.(*RedNode); ok {
			return n
		}
		t := e.(*RedToken)
		e = nextSiblingOrToken(parent, t.indexInParent)
	}
	return nil
}

// RedToken is a cursor over a GreenToken.
type RedToken struct {
	green         *GreenToken
	parent        *RedNode
	indexInParent int
	offset        int
}

func (t *RedToken) Kind() syntax.Kind    { return t.green.kind }
func (t *RedToken) Text() string         { return t.green.text }
func (t *RedToken) Parent() *RedNode     { return t.parent }
func (t *RedToken) TextRange() TextRange { return TextRange{t.offset, t.offset + len(t.green.text)} }
func (*RedToken) redElement()            {}

// PrevSiblingOrToken / NextSiblingOrToken mirror the RedNode accessors.
func (t *RedToken) PrevSiblingOrToken() RedElement {
	return prevSiblingOrToken(t.parent, t.indexInParent)
}
func (t *RedToken) NextSiblingOrToken() RedElement {
	return nextSiblingOrToken(t.parent, t.indexInParent)
}

// NextToken returns the next leaf token in document order, crossing
// parent boundaries as needed — unlike NextSiblingOrToken, which only
// looks within t's immediate parent. Comment classification (ast package)
// walks this flat token order rather than tree shape, so it gets the
// same answer regardless of which side of a node boundary trivia landed
// on when the tree was built.
func (t *RedToken) NextToken() *RedToken {
	if t.parent == nil {
		return nil
	}
	return nextTokenFrom(t.parent, t.indexInParent)
}

// PrevToken is NextToken's mirror image.
func (t *RedToken) PrevToken() *RedToken {
	if t.parent == nil {
		return nil
	}
	return prevTokenFrom(t.parent, t.indexInParent)
}

func nextTokenFrom(parent *RedNode, index int) *RedToken {
	for parent != nil {
		if e := nextSiblingOrToken(parent, index); e != nil {
			switch v := e.(type) {
			case *RedToken:
				return v
			case *RedNode:
				if tok := v.FirstToken(); tok != nil {
					return tok
				}
				index = v.indexInParent
				continue
			}
		}
		index = parent.indexInParent
		parent = parent.parent
	}
	return nil
}

func prevTokenFrom(parent *RedNode, index int) *RedToken {
	for parent != nil {
		if e := prevSiblingOrToken(parent, index); e != nil {
			switch v := e.(type) {
			case *RedToken:
				return v
			case *RedNode:
				if tok := v.LastToken(); tok != nil {
					return tok
				}
				index = v.indexInParent
				continue
			}
		}
		index = parent.indexInParent
		parent = parent.parent
	}
	return nil
}

// SyntaxText is a minimal façade over a subtree's text, standing in for
// a rope slice: fine for documents of the size this toolchain targets.
type SyntaxText struct {
	node *RedNode
}

func (s SyntaxText) String() string {
	return s.node.green.Text()
}

// Slice returns the substring of this subtree's text covered by rng,
// which must be expressed in absolute offsets within [s.node range].
func (s SyntaxText) Slice(rng TextRange) string {
	full := s.String()
	start := rng.Start - s.node.offset
	end := rng.End - s.node.offset
	if start < 0 {
		start = 0
	}
	if end > len(full) {
		end = len(full)
	}
	return full[start:end]
}
