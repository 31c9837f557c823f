package parser

import (
	"fmt"

	"github.com/tombi-toml/tombi/syntax"
)

// Marker stands for an as-yet-uncompleted node opened at a point in the
// event stream (original_source/crates/parser/src/marker.rs). It carries
// its own drop-bomb: every Marker returned by Parser.Start must be
// resolved via Complete or Abandon before parsing finishes, or
// Parser.finishEvents panics. Go has no destructors, so the bomb is
// enforced at Finish time against the parser's live-marker set rather
// than at GC time — deterministic, and just as loud in a test failure.
type Marker struct {
	eventIndex int
	resolved   *bool
}

// CompletedMarker is what a Marker becomes after Complete. It can
// Precede a not-yet-existing parent, letting the parser retroactively
// wrap a node it already finished — the same trick rowan's green
// Builder.StartNodeAt plays at the tree layer, here replayed at the
// event layer so the builder only ever sees ordinary forward parents.
type CompletedMarker struct {
	eventIndex int
	Kind       syntax.Kind
}

// Start opens a new node at the current position in the event stream.
func (p *Parser) Start() Marker {
	idx := len(p.events)
	p.pushEvent(Event{Kind: EventStart, NodeKind: syntax.TOMBSTONE, ForwardParent: -1})
	resolved := new(bool)
	p.openMarkers[idx] = resolved
	return Marker{eventIndex: idx, resolved: resolved}
}

// Complete closes m as a node of the given kind.
func (m Marker) Complete(p *Parser, kind syntax.Kind) CompletedMarker {
	m.resolve(p)
	p.events[m.eventIndex].NodeKind = kind
	p.pushEvent(Event{Kind: EventFinish})
	return CompletedMarker{eventIndex: m.eventIndex, Kind: kind}
}

// Abandon discards m without producing a node. If nothing was emitted
// between Start and Abandon the Start event is trimmed away entirely;
// otherwise it's left behind as a TOMBSTONE, which the builder skips.
func (m Marker) Abandon(p *Parser) {
	m.resolve(p)
	if m.eventIndex == len(p.events)-1 {
		p.events = p.events[:m.eventIndex]
	}
}

func (m Marker) resolve(p *Parser) {
	if *m.resolved {
		panic("parser: marker completed or abandoned twice")
	}
	*m.resolved = true
	delete(p.openMarkers, m.eventIndex)
}

// Precede opens a new Marker that becomes cm's forward parent: cm's node
// (and, once the builder replays events, everything between cm's Start
// and its Finish) ends up nested inside the new marker's node once it is
// itself completed. The new marker's own Complete call supplies its
// NodeKind, same as any other marker.
func (cm CompletedMarker) Precede(p *Parser) Marker {
	newStart := p.Start()
	p.events[cm.eventIndex].ForwardParent = newStart.eventIndex
	return newStart
}

// finishEvents asserts every opened Marker was resolved and returns the
// finished event stream.
func (p *Parser) finishEvents() []Event {
	if len(p.openMarkers) != 0 {
		panic(fmt.Sprintf("parser: %d marker(s) were neither completed nor abandoned", len(p.openMarkers)))
	}
	return p.events
}
