// Package lexer turns a TOML byte stream into an ordered token stream,
// spec.md §4.3. It never fails: malformed input still produces a full
// token sequence whose concatenated text equals the source, with an
// INVALID_TOKEN entry and an attached error wherever the text couldn't be
// classified.
//
// Design lifted from the teacher's state-function scanner
// (robfig-soy/parse/lexer.go, itself modeled on text/template's lexer),
// adapted to run synchronously to completion instead of over a channel —
// the core has no suspension points (spec.md §5) — and to never abort on
// error.
package lexer

import (
	"github.com/tombi-toml/tombi/rowan"
	"github.com/tombi-toml/tombi/synerr"
	"github.com/tombi-toml/tombi/syntax"
)

// Token is one lexical token, trivia included.
type Token struct {
	Kind syntax.Kind
	Text string
}

// Lexed is the full output of a lex pass.
type Lexed struct {
	// Tokens holds every token in source order, trivia included.
	Tokens []Token

	// Joints holds one entry per significant (non-trivia) token; Joints[i]
	// is true iff no trivia token separates significant token i from
	// significant token i+1. The parser uses this to fuse adjacent `[`
	// `[` into a logical `[[`, and `]` `]` into `]]` (spec.md §4.3).
	Joints []bool

	// Errors holds every lex-level error, in the order encountered.
	Errors []synerr.Error
}

// significantIndices returns, for each entry in l.Tokens, the index into
// the significant-only subsequence, or -1 if that token is trivia.
func (l *Lexed) significantIndices() []int {
	out := make([]int, len(l.Tokens))
	n := 0
	for i, t := range l.Tokens {
		if t.Kind.IsTrivia() {
			out[i] = -1
			continue
		}
		out[i] = n
		n++
	}
	return out
}

// IsJoint reports whether significant token i is joint with significant
// token i+1 (spec.md §8 "Joint bit correctness").
func (l *Lexed) IsJoint(i int) bool {
	if i < 0 || i >= len(l.Joints) {
		return false
	}
	return l.Joints[i]
}

// Text concatenates every token's text; for a well-formed Lexed this
// equals the original source exactly.
func (l *Lexed) Text() string {
	total := 0
	for _, t := range l.Tokens {
		total += len(t.Text)
	}
	out := make([]byte, 0, total)
	for _, t := range l.Tokens {
		out = append(out, t.Text...)
	}
	return string(out)
}

// textRanges returns the byte TextRange of every token, in order —
// useful for tests and for callers that want raw offsets without going
// through a red tree.
func (l *Lexed) textRanges() []rowan.TextRange {
	out := make([]rowan.TextRange, len(l.Tokens))
	pos := 0
	for i, t := range l.Tokens {
		out[i] = rowan.TextRange{Start: pos, End: pos + len(t.Text)}
		pos += len(t.Text)
	}
	return out
}
