package rowan

import "github.com/tombi-toml/tombi/syntax"

// Checkpoint marks a position in a Builder's flat child buffer, recorded
// by Checkpoint() and later passed to StartNodeAt to retroactively wrap
// everything appended since the mark under a new parent — spec.md §4.1's
// "Checkpoints" mechanism for realizing, after reading `=`, that a
// sequence of tokens was in fact a KEY_VALUE. The parser does not call
// it: it records the same retroactive wrap at the event layer with
// parser.CompletedMarker.Precede.
type Checkpoint int

type parentFrame struct {
	kind  syntax.Kind
	start int
}

// Builder drives the construction of a green tree from a flat sequence
// of start_node/token/finish_node calls, exactly the algorithm spec.md
// §4.1 describes: a stack of open parents plus a flat children buffer.
type Builder struct {
	cache    *NodeCache
	parents  []parentFrame
	children []GreenElement
}

// NewBuilder returns a builder that interns every node/token it produces
// through cache.
func NewBuilder(cache *NodeCache) *Builder {
	return &Builder{cache: cache}
}

// StartNode pushes a new open parent of the given kind.
func (b *Builder) StartNode(kind syntax.Kind) {
	b.parents = append(b.parents, parentFrame{kind: kind, start: len(b.children)})
}

// StartNodeAt pushes a new open parent that will, once finished, claim
// every child appended since cp — including children appended by
// siblings that were themselves already finished.
func (b *Builder) StartNodeAt(cp Checkpoint, kind syntax.Kind) {
	b.parents = append(b.parents, parentFrame{kind: kind, start: int(cp)})
}

// Checkpoint records the current length of the child buffer.
func (b *Builder) Checkpoint() Checkpoint {
	return Checkpoint(len(b.children))
}

// Token appends an interned leaf to the current open parent (or to the
// root buffer, if no parent is open yet).
func (b *Builder) Token(kind syntax.Kind, text string) {
	b.children = append(b.children, b.cache.Token(kind, text))
}

// FinishNode pops the innermost open parent, slices every child appended
// since it was opened, and interns the resulting node — replacing that
// slice, in the buffer, with the single finished node.
func (b *Builder) FinishNode() {
	frame := b.parents[len(b.parents)-1]
	b.parents = b.parents[:len(b.parents)-1]

	sliceLen := len(b.children) - frame.start
	childSlice := make([]GreenElement, sliceLen)
	copy(childSlice, b.children[frame.start:])

	node := b.cache.Node(frame.kind, childSlice)
	b.children = append(b.children[:frame.start], node)
}

// Finish consumes the builder and returns the single root node. It
// panics if the builder does not hold exactly one finished root — a
// programming error in the caller, never reachable from malformed input
// since the tree builder always wraps everything in a ROOT node.
func (b *Builder) Finish() *GreenNode {
	if len(b.parents) != 0 {
		panic("rowan: Builder.Finish called with unfinished nodes still open")
	}
	if len(b.children) != 1 {
		panic("rowan: Builder.Finish called without exactly one root node")
	}
	root, ok := b.children[0].(*GreenNode)
	if !ok {
		panic("rowan: Builder root element is not a node")
	}
	return root
}
