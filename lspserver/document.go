package lspserver

import (
	"sync"

	"go.lsp.dev/protocol"
)

// document is the server's cached view of one open text document,
// mirroring spec.md §6.4's "caching is the server's responsibility" —
// the core parse/format/lint functions themselves are stateless.
type document struct {
	uri     protocol.DocumentURI
	version int32
	text    string
}

// store is a synchronized map of open documents, keyed by URI. The LSP
// spec permits requests to race notifications from the client, so every
// access goes through the mutex rather than assuming single-threaded
// dispatch.
type store struct {
	mu   sync.Mutex
	docs map[protocol.DocumentURI]*document
}

func newStore() *store {
	return &store{docs: make(map[protocol.DocumentURI]*document)}
}

func (s *store) open(uri protocol.DocumentURI, version int32, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[uri] = &document{uri: uri, version: version, text: text}
}

func (s *store) close(uri protocol.DocumentURI) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, uri)
}

func (s *store) get(uri protocol.DocumentURI) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.docs[uri]
	if !ok {
		return "", false
	}
	return d.text, true
}

// applyChanges updates the stored text for uri by applying each
// TextDocumentContentChangeEvent in order: a change with a Range is an
// incremental edit (translated from UTF-16 to byte offsets by
// rangeToOffsets), a change with no Range replaces the whole document,
// per the LSP spec's TextDocumentSyncKind.Incremental contract.
func (s *store) applyChanges(uri protocol.DocumentURI, version int32, changes []protocol.TextDocumentContentChangeEvent) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.docs[uri]
	if !ok {
		return "", false
	}
	text := d.text
	for _, c := range changes {
		if c.Range == nil {
			text = c.Text
			continue
		}
		start, end := rangeToOffsets(text, *c.Range)
		text = text[:start] + c.Text + text[end:]
	}
	d.text = text
	d.version = version
	return text, true
}
