// Package builder turns a parser.Result's linear event stream back into
// a lossless rowan tree (spec.md §4.5). It is the one place that knows
// how to interleave trivia — whitespace, line breaks, comments — back
// between the significant tokens the parser only ever looked at.
//
// Where a trivia run ends up nesting (inside the node about to close
// versus the node about to open) is an implementation detail: the ast
// package classifies leading/tailing/dangling comments by walking flat
// token order (ast's PrevToken/NextToken), not by tree shape, so it
// doesn't matter which side of a boundary a run of trivia lands on.
package builder

import (
	"strings"

	"github.com/tombi-toml/tombi/lexer"
	"github.com/tombi-toml/tombi/parser"
	"github.com/tombi-toml/tombi/rowan"
	"github.com/tombi-toml/tombi/synerr"
	"github.com/tombi-toml/tombi/syntax"
)

// Tree is Build's output: the root red node plus every syntax error
// recorded while parsing, each attached to a byte range.
type Tree struct {
	Root   *rowan.RedNode
	Errors []synerr.Error
}

// Build replays res against its originating lexer.Lexed.
func Build(res *parser.Result) *Tree {
	b := newBuilder(res)
	b.run()
	green := b.gb.Finish()
	return &Tree{Root: rowan.NewRoot(green), Errors: b.errors}
}

type builder struct {
	lexed  *lexer.Lexed
	events []parser.Event
	sig    []int

	raw    int // cursor into lexed.Tokens, ALL tokens including trivia
	sigPos int // cursor into sig, mirroring the parser's own token cursor

	gb     *rowan.Builder
	errors []synerr.Error
}

func newBuilder(res *parser.Result) *builder {
	events := make([]parser.Event, len(res.Events))
	copy(events, res.Events)

	var sig []int
	for i, t := range res.Lexed.Tokens {
		if !t.Kind.IsTrivia() {
			sig = append(sig, i)
		}
	}

	return &builder{
		lexed:  res.Lexed,
		events: events,
		sig:    sig,
		gb:     rowan.NewBuilder(rowan.NewNodeCache()),
	}
}

func (b *builder) run() {
	for i := range b.events {
		// event 0 is always the ROOT Start: flushing before it would put
		// leading trivia outside ROOT, so it waits for the next event.
		if i > 0 {
			b.flushTrivia()
		}
		ev := b.events[i]
		switch ev.Kind {
		case parser.EventStart:
			b.handleStart(i)
		case parser.EventFinish:
			b.gb.FinishNode()
		case parser.EventToken:
			b.handleToken(ev)
		case parser.EventError:
			b.errors = append(b.errors, synerr.Error{Kind: ev.Err, Range: b.currentRange()})
		}
	}
}

// flushTrivia pushes every raw trivia token between the builder's raw
// cursor and the next significant token (or end of input) as a plain
// green leaf of the currently open node. Called before every event but
// the first (the ROOT Start), so leading trivia lands inside ROOT and
// trivia always lands wherever the builder's "currently open node" is
// at the moment the raw cursor reaches it — inside the node about to
// close on a Finish, inside the parent on a Start, inside the node
// about to gain a new child token on a Token event.
func (b *builder) flushTrivia() {
	target := len(b.lexed.Tokens)
	if b.sigPos < len(b.sig) {
		target = b.sig[b.sigPos]
	}
	for b.raw < target {
		t := b.lexed.Tokens[b.raw]
		b.gb.Token(t.Kind, t.Text)
		b.raw++
	}
}

// handleStart resolves i's forward-parent chain (set by
// parser.CompletedMarker.Precede) before starting any node: every kind
// in the chain gets its own StartNode call, outermost first, and every
// forward-parent Start event beyond the first is marked TOMBSTONE so
// that when the replay loop reaches it directly later, it is a no-op —
// its matching Finish event still fires normally and pops the frame
// opened here.
func (b *builder) handleStart(i int) {
	if b.events[i].NodeKind == syntax.TOMBSTONE {
		return
	}
	var kinds []syntax.Kind
	idx := i
	for idx >= 0 {
		kinds = append(kinds, b.events[idx].NodeKind)
		next := b.events[idx].ForwardParent
		if idx != i {
			b.events[idx].NodeKind = syntax.TOMBSTONE
		}
		idx = next
	}
	for k := len(kinds) - 1; k >= 0; k-- {
		b.gb.StartNode(kinds[k])
	}
}

func (b *builder) handleToken(ev parser.Event) {
	text := b.consumeSigTokens(ev.NRaw)
	b.gb.Token(ev.NodeKind, text)
}

// consumeSigTokens concatenates the text of n consecutive significant
// tokens starting at the builder's sig cursor — n is always 1 except
// for the `[[`/`]]` compound tokens, which bumpCompound only ever
// records when the parser confirmed they were joint (no trivia between
// them), so simple concatenation is exact.
func (b *builder) consumeSigTokens(n int) string {
	var sb strings.Builder
	for k := 0; k < n; k++ {
		tokIdx := b.sig[b.sigPos]
		sb.WriteString(b.lexed.Tokens[tokIdx].Text)
		b.sigPos++
		b.raw = tokIdx + 1
	}
	return sb.String()
}

// currentRange reports the byte range of whatever the raw cursor is
// sitting on right now — the next unconsumed token, or a zero-length
// range at end of input. Good enough for attaching Error events
// precisely; recomputing the offset by summing preceding token lengths
// is O(n) per call; SPEC_FULL.md's documents aren't large enough for
// this to matter, and fixing it means threading a prefix-sum table
// through, which isn't worth it yet.
func (b *builder) currentRange() rowan.TextRange {
	start := b.byteOffset(b.raw)
	end := start
	if b.raw < len(b.lexed.Tokens) {
		end = start + len(b.lexed.Tokens[b.raw].Text)
	}
	return rowan.TextRange{Start: start, End: end}
}

func (b *builder) byteOffset(tokIdx int) int {
	off := 0
	for _, t := range b.lexed.Tokens[:tokIdx] {
		off += len(t.Text)
	}
	return off
}
