// Package parser implements the event-driven recursive-descent TOML
// parser of spec.md §4.4: it walks a lexer.Lexed token stream and emits a
// linear sequence of Start/Token/Finish/Error events, never failing —
// every opened node is always completed or abandoned, and the builder
// package turns the event stream into a green tree regardless of how
// many errors were recorded along the way.
package parser

import (
	"github.com/tombi-toml/tombi/synerr"
	"github.com/tombi-toml/tombi/syntax"
)

// EventKind tags one entry in the parser's linear output.
type EventKind int

const (
	EventStart EventKind = iota
	EventToken
	EventFinish
	EventError
)

// Event is one entry in the parser's output stream (spec.md §4.4). A
// Start event's ForwardParent, when >= 0, names another Start event that
// this one's completed node should be re-parented under — the mechanism
// that lets a marker opened after the fact (via CompletedMarker.Precede)
// retroactively wrap already-emitted siblings.
type Event struct {
	Kind EventKind

	// Start / Token
	NodeKind      syntax.Kind
	ForwardParent int // -1 if none; only meaningful on EventStart

	// Token
	NRaw int // number of raw (significant) tokens this logical token subsumes

	// Error
	Err synerr.Kind
}

// Events returns the parser's recorded event stream. Builder consumes
// this together with the original lexer.Lexed to construct the green
// tree (spec.md §4.5).
func (p *Parser) Events() []Event { return p.events }

func (p *Parser) pushEvent(e Event) { p.events = append(p.events, e) }
