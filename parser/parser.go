package parser

import (
	"github.com/tombi-toml/tombi/lexer"
	"github.com/tombi-toml/tombi/synerr"
	"github.com/tombi-toml/tombi/syntax"
)

// Parser drives recursive-descent grammar functions over a lexer.Lexed
// token stream, recording an Event stream for the builder package to
// replay into a green tree. It only ever looks at and consumes
// significant (non-trivia) tokens: trivia is invisible here and gets
// interleaved back in by the builder purely from token position, which
// is what lets every grammar function below stay ignorant of comments
// and whitespace entirely.
type Parser struct {
	lexed *lexer.Lexed
	sig   []int // indices into lexed.Tokens that are significant
	pos   int   // index into sig; current lookahead position

	version syntax.TomlVersion

	events      []Event
	openMarkers map[int]*bool

	cancel    func() bool
	cancelled bool
}

// Result is the parser's output: the event stream plus the original
// Lexed it was built from, bundled for the builder.
type Result struct {
	Lexed   *lexer.Lexed
	Events  []Event
	Version syntax.TomlVersion
}

// New builds a Parser over an already-lexed input. cancel, if non-nil,
// is polled cooperatively between root-level items (spec.md §5); a nil
// cancel disables cancellation entirely.
func New(lexed *lexer.Lexed, version syntax.TomlVersion, cancel func() bool) *Parser {
	var sig []int
	for i, t := range lexed.Tokens {
		if !t.Kind.IsTrivia() {
			sig = append(sig, i)
		}
	}
	return &Parser{
		lexed:       lexed,
		sig:         sig,
		version:     version,
		openMarkers: make(map[int]*bool),
		cancel:      cancel,
	}
}

// Parse lexes nothing itself (the caller already ran lexer.Lex); it runs
// the document grammar to completion and returns the finished Result.
func Parse(lexed *lexer.Lexed, version syntax.TomlVersion) *Result {
	p := New(lexed, version, nil)
	parseRoot(p)
	return &Result{Lexed: lexed, Events: p.finishEvents(), Version: p.version}
}

// --- token cursor -----------------------------------------------------

func (p *Parser) current() syntax.Kind {
	return p.nthKind(0)
}

func (p *Parser) nthKind(n int) syntax.Kind {
	i := p.pos + n
	if i >= len(p.sig) {
		return syntax.EOF
	}
	return p.lexed.Tokens[p.sig[i]].Kind
}

func (p *Parser) at(kind syntax.Kind) bool { return p.current() == kind }

func (p *Parser) atEOF() bool { return p.pos >= len(p.sig) }

// atJoint reports whether the current significant token and the next
// one have no trivia between them in the raw stream (lexer.Lexed's
// Joints bit, spec.md §4.3), used to fuse `[`+`[` and `]`+`]`.
func (p *Parser) atJoint() bool {
	return p.lexed.IsJoint(p.pos)
}

// bump consumes the current token, asserting it has the given kind, and
// records a single-token Token event.
func (p *Parser) bump(kind syntax.Kind) {
	if p.current() != kind {
		panic("parser: bump kind mismatch; caller must check at() first")
	}
	p.bumpAny()
}

// bumpAny consumes the current token regardless of kind.
func (p *Parser) bumpAny() {
	p.pushEvent(Event{Kind: EventToken, NodeKind: p.current(), NRaw: 1})
	p.pos++
}

// bumpCompound consumes n raw significant tokens and records them as one
// logical Token event of the given kind (used for `[[`/`]]`); the
// builder concatenates the raw tokens' text (and any trivia strictly
// between them — there is none, since this is only called when atJoint
// held) into one green leaf.
func (p *Parser) bumpCompound(kind syntax.Kind, n int) {
	p.pushEvent(Event{Kind: EventToken, NodeKind: kind, NRaw: n})
	p.pos += n
}

// eat bumps and returns true if the current token has the given kind,
// otherwise leaves the cursor untouched and returns false.
func (p *Parser) eat(kind syntax.Kind) bool {
	if !p.at(kind) {
		return false
	}
	p.bump(kind)
	return true
}

// error records a synerr.Error at the current token's byte range (or, at
// EOF, a zero-length range just past the end of input) without
// otherwise affecting the cursor.
func (p *Parser) error(kind synerr.Kind) {
	p.pushEvent(Event{Kind: EventError, Err: kind})
}

// errorAndRecover records kind, then consumes tokens (each wrapped in an
// ERROR node) until the current token is one of until, or until EOF.
// Keys, values, containers and table bodies recover this way (spec.md
// §4.4): it never backtracks or aborts, it just resynchronizes on a
// caller-chosen token set. parseRootItem instead resynchronizes at the
// end of the line.
func (p *Parser) errorAndRecover(kind synerr.Kind, until []syntax.Kind) {
	p.error(kind)
	for !p.atEOF() && !p.atAnyOf(until) {
		m := p.Start()
		p.bumpAny()
		m.Complete(p, syntax.ERROR)
	}
}

func (p *Parser) atAnyOf(kinds []syntax.Kind) bool {
	cur := p.current()
	for _, k := range kinds {
		if cur == k {
			return true
		}
	}
	return false
}

// shouldCancel polls the cooperative cancellation callback at most once,
// recording InterruptedByCancel the first time it fires. Grammar
// functions only need to check this between root-level items — spec.md
// §5 asks for "a periodic poll... at each start_node boundary", and
// checking it once per top-level Table/ArrayOfTable/KeyValue already
// bounds the worst-case latency to one such item.
func (p *Parser) shouldCancel() bool {
	if p.cancelled {
		return true
	}
	if p.cancel != nil && p.cancel() {
		p.cancelled = true
		p.error(synerr.InterruptedByCancel)
		return true
	}
	return false
}
