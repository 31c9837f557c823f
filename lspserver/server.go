// Package lspserver implements the standard-input/output LSP surface
// spec.md §6.4 names: initialize, didOpen, didChange, formatting,
// documentSymbol, completion, hover, publishDiagnostics. Grounded on
// original_source/rust/tombi-lsp's handler-per-file layout (one method
// per LSP request here in place of one file per request there) and on
// the go.lsp.dev/{protocol,jsonrpc2,uri} stack already in go.mod — no
// Go example in the pack builds an LSP server, so the handler bodies
// below are grounded on spec.md's own library functions (parse/format/
// lint) rather than on any teacher file; only the transport loop in
// transport.go reaches for go.lsp.dev/jsonrpc2 conventions.
package lspserver

import (
	"context"

	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"

	"github.com/tombi-toml/tombi/ast"
	"github.com/tombi-toml/tombi/config"
	"github.com/tombi-toml/tombi/format"
	"github.com/tombi-toml/tombi/lint"
	"github.com/tombi-toml/tombi/schemastore"
	"github.com/tombi-toml/tombi/syntax"
)

// Server holds the state a running LSP session needs: every open
// document's text (the core parse/format/lint functions are otherwise
// stateless) plus the resolved configuration and schema store that
// apply to them.
type Server struct {
	docs    *store
	cfg     config.Config
	schemas *schemastore.Store
}

// NewServer creates a Server bound to cfg and schemas. schemas may be
// nil if no schema catalog was loaded.
func NewServer(cfg config.Config, schemas *schemastore.Store) *Server {
	return &Server{docs: newStore(), cfg: cfg, schemas: schemas}
}

// Initialize reports the server's capabilities, restricted to the
// requests spec.md §6.4 names.
func (s *Server) Initialize(ctx context.Context, params *protocol.InitializeParams) (*protocol.InitializeResult, error) {
	full := protocol.TextDocumentSyncKindIncremental
	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: protocol.TextDocumentSyncOptions{
				OpenClose: true,
				Change:    full,
			},
			DocumentFormattingProvider: true,
			DocumentSymbolProvider:     true,
			CompletionProvider:         &protocol.CompletionOptions{},
			HoverProvider:              true,
		},
	}, nil
}

// DidOpen records the newly-opened document and returns the diagnostics
// to publish for it.
func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) []protocol.Diagnostic {
	doc := params.TextDocument
	s.docs.open(doc.URI, doc.Version, doc.Text)
	return s.lintURI(doc.URI, doc.Text)
}

// DidChange applies the incremental (or full-document) edits in params
// to the stored document and returns the refreshed diagnostics.
func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) []protocol.Diagnostic {
	text, ok := s.docs.applyChanges(params.TextDocument.URI, params.TextDocument.Version, params.ContentChanges)
	if !ok {
		return nil
	}
	return s.lintURI(params.TextDocument.URI, text)
}

// DidClose drops the cached copy of a closed document.
func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) {
	s.docs.close(params.TextDocument.URI)
}

func (s *Server) lintURI(docURI protocol.DocumentURI, text string) []protocol.Diagnostic {
	path := uri.URI(docURI).Filename()
	diags := lint.Lint(text, s.cfg.TomlVersion, lint.Options{}, s.schemas, path)
	out := make([]protocol.Diagnostic, 0, len(diags))
	for _, d := range diags {
		out = append(out, toProtocolDiagnostic(d, text))
	}
	return out
}

// Formatting runs the formatter over the stored document and returns a
// single whole-document TextEdit, or nil if the document can't be
// formatted (a parse error that blocks emission) or isn't open.
func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	text, ok := s.docs.get(params.TextDocument.URI)
	if !ok {
		return nil, nil
	}
	formatted, diags := format.Format(text, s.cfg.TomlVersion, s.cfg.Format)
	if len(diags) != 0 && formatted == "" {
		return nil, nil
	}
	return []protocol.TextEdit{{
		Range:   wholeDocumentRange(text),
		NewText: formatted,
	}}, nil
}

// DocumentSymbol returns one symbol per top-level Table/ArrayOfTable/
// KeyValue, nesting a table's own key-values as children.
func (s *Server) DocumentSymbol(ctx context.Context, params *protocol.DocumentSymbolParams) ([]protocol.DocumentSymbol, error) {
	text, ok := s.docs.get(params.TextDocument.URI)
	if !ok {
		return nil, nil
	}
	root := ast.Document(text, s.cfg.TomlVersion)
	var out []protocol.DocumentSymbol
	for _, item := range root.Items() {
		out = append(out, itemSymbol(item, text))
	}
	return out, nil
}

func itemSymbol(item ast.RootItem, text string) protocol.DocumentSymbol {
	rng := toProtocolRange(item.Syntax().TextRange(), text)
	switch v := item.(type) {
	case *ast.Table:
		sym := protocol.DocumentSymbol{
			Name:           headerName(v.Header()),
			Kind:           symbolKindNamespace,
			Range:          rng,
			SelectionRange: rng,
		}
		for _, kv := range v.KeyValues() {
			sym.Children = append(sym.Children, keyValueSymbol(kv, text))
		}
		return sym
	case *ast.ArrayOfTable:
		sym := protocol.DocumentSymbol{
			Name:           headerName(v.Header()),
			Kind:           symbolKindArray,
			Range:          rng,
			SelectionRange: rng,
		}
		for _, kv := range v.KeyValues() {
			sym.Children = append(sym.Children, keyValueSymbol(kv, text))
		}
		return sym
	case *ast.KeyValue:
		return keyValueSymbol(v, text)
	default:
		return protocol.DocumentSymbol{Name: "?", Kind: symbolKindProperty, Range: rng, SelectionRange: rng}
	}
}

func keyValueSymbol(kv *ast.KeyValue, text string) protocol.DocumentSymbol {
	rng := toProtocolRange(kv.Syntax().TextRange(), text)
	name := "?"
	if k := kv.Keys(); k != nil {
		name = k.String()
	}
	return protocol.DocumentSymbol{Name: name, Kind: symbolKindProperty, Range: rng, SelectionRange: rng}
}

func headerName(keys *ast.Keys) string {
	if keys == nil {
		return "?"
	}
	return keys.String()
}

// Hover reports the hovered key's full dotted path and its value text.
// A schema-description lookup (schemastore per-path doc comments) is a
// natural follow-up once schemastore exposes that, but even without a
// schema the cursor's own key/value is worth echoing back.
func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	text, ok := s.docs.get(params.TextDocument.URI)
	if !ok {
		return nil, nil
	}
	offset := positionToOffset(text, params.Position)
	root := ast.Document(text, s.cfg.TomlVersion)
	kv, prefix := keyValueAt(root, offset)
	if kv == nil {
		return nil, nil
	}
	keys := kv.Keys()
	if keys == nil {
		return nil, nil
	}
	path := keys.String()
	if prefix != "" {
		path = prefix + "." + path
	}
	value := ""
	if v := kv.Value(); v != nil {
		// the value node can carry the line's trailing trivia (spaces, a
		// tailing comment, the line break); only its own text is shown.
		vr := v.Syntax().TextRange()
		end := vr.Start
		for tok := v.Syntax().LastToken(); tok != nil && tok.TextRange().Start >= vr.Start; tok = tok.PrevToken() {
			if !tok.Kind().IsTrivia() {
				end = tok.TextRange().End
				break
			}
		}
		value = text[vr.Start:end]
	}
	rng := toProtocolRange(kv.Syntax().TextRange(), text)
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  markupKindPlainText,
			Value: path + " = " + value,
		},
		Range: &rng,
	}, nil
}

// keyValueAt returns the KeyValue whose range contains offset, along
// with the dotted path of the table/array-of-table header it sits
// under (empty for a root-level key-value).
func keyValueAt(root *ast.Root, offset int) (kv *ast.KeyValue, headerPath string) {
	if kv := keyValueIn(root.RootKeyValues(), offset); kv != nil {
		return kv, ""
	}
	for _, t := range root.Tables() {
		if kv := keyValueIn(t.KeyValues(), offset); kv != nil {
			return kv, headerName(t.Header())
		}
	}
	for _, a := range root.ArrayOfTables() {
		if kv := keyValueIn(a.KeyValues(), offset); kv != nil {
			return kv, headerName(a.Header())
		}
	}
	return nil, ""
}

func keyValueIn(kvs []*ast.KeyValue, offset int) *ast.KeyValue {
	for _, kv := range kvs {
		if kv.Syntax().TextRange().ContainsInclusive(offset) {
			return kv
		}
	}
	return nil
}

// Completion offers every key already used at the top level of the
// document as a completion candidate — a minimal, schema-free starting
// point; a schema-driven property list is a natural follow-up once
// schemastore exposes per-path property names.
func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	text, ok := s.docs.get(params.TextDocument.URI)
	if !ok {
		return nil, nil
	}
	root := ast.Document(text, s.cfg.TomlVersion)
	seen := map[string]bool{}
	var items []protocol.CompletionItem
	for _, kv := range root.RootKeyValues() {
		k := kv.Keys()
		if k == nil {
			continue
		}
		name := k.String()
		if seen[name] {
			continue
		}
		seen[name] = true
		items = append(items, protocol.CompletionItem{Label: name, Kind: completionItemKindProperty})
	}
	return &protocol.CompletionList{IsIncomplete: false, Items: items}, nil
}

func wholeDocumentRange(text string) protocol.Range {
	return protocol.Range{
		Start: protocol.Position{Line: 0, Character: 0},
		End:   offsetToPosition(text, len(text)),
	}
}
