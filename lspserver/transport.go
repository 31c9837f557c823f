package lspserver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

// Serve runs srv over rwc (typically stdin/stdout) until the connection
// closes. This is the one place this package leans on go.lsp.dev/jsonrpc2
// directly rather than go.lsp.dev/protocol's own dispatch helpers: the
// handler below only uses jsonrpc2's Conn/Stream/Handler/Replier/Request
// primitives and decodes each request's params itself, since this is the
// only part of the package with no grounding in the pack (no example
// repo builds an LSP server) to check a larger helper's exact shape
// against.
func Serve(ctx context.Context, rwc io.ReadWriteCloser, srv *Server) error {
	stream := jsonrpc2.NewStream(rwc)
	conn := jsonrpc2.NewConn(stream)
	conn.Go(ctx, srv.handle(conn))
	<-conn.Done()
	return conn.Err()
}

// handle returns the jsonrpc2.Handler dispatching every method spec.md
// §6.4 names; conn is used to send the publishDiagnostics notification
// back to the client after didOpen/didChange, and is closed on exit.
func (s *Server) handle(conn jsonrpc2.Conn) jsonrpc2.Handler {
	return func(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
		switch req.Method() {
		case "initialize":
			var params protocol.InitializeParams
			if err := json.Unmarshal(req.Params(), &params); err != nil {
				return reply(ctx, nil, err)
			}
			result, err := s.Initialize(ctx, &params)
			return reply(ctx, result, err)

		case "textDocument/didOpen":
			var params protocol.DidOpenTextDocumentParams
			if err := json.Unmarshal(req.Params(), &params); err != nil {
				return reply(ctx, nil, err)
			}
			diags := s.DidOpen(ctx, &params)
			s.publish(ctx, conn, params.TextDocument.URI, diags)
			return reply(ctx, nil, nil)

		case "textDocument/didChange":
			var params protocol.DidChangeTextDocumentParams
			if err := json.Unmarshal(req.Params(), &params); err != nil {
				return reply(ctx, nil, err)
			}
			diags := s.DidChange(ctx, &params)
			s.publish(ctx, conn, params.TextDocument.URI, diags)
			return reply(ctx, nil, nil)

		case "textDocument/didClose":
			var params protocol.DidCloseTextDocumentParams
			if err := json.Unmarshal(req.Params(), &params); err != nil {
				return reply(ctx, nil, err)
			}
			s.DidClose(ctx, &params)
			return reply(ctx, nil, nil)

		case "textDocument/formatting":
			var params protocol.DocumentFormattingParams
			if err := json.Unmarshal(req.Params(), &params); err != nil {
				return reply(ctx, nil, err)
			}
			edits, err := s.Formatting(ctx, &params)
			return reply(ctx, edits, err)

		case "textDocument/documentSymbol":
			var params protocol.DocumentSymbolParams
			if err := json.Unmarshal(req.Params(), &params); err != nil {
				return reply(ctx, nil, err)
			}
			symbols, err := s.DocumentSymbol(ctx, &params)
			return reply(ctx, symbols, err)

		case "textDocument/hover":
			var params protocol.HoverParams
			if err := json.Unmarshal(req.Params(), &params); err != nil {
				return reply(ctx, nil, err)
			}
			hover, err := s.Hover(ctx, &params)
			return reply(ctx, hover, err)

		case "textDocument/completion":
			var params protocol.CompletionParams
			if err := json.Unmarshal(req.Params(), &params); err != nil {
				return reply(ctx, nil, err)
			}
			list, err := s.Completion(ctx, &params)
			return reply(ctx, list, err)

		case "shutdown":
			return reply(ctx, nil, nil)

		case "exit":
			return conn.Close()

		default:
			return reply(ctx, nil, fmt.Errorf("method not found: %s", req.Method()))
		}
	}
}

func (s *Server) publish(ctx context.Context, conn jsonrpc2.Conn, docURI protocol.DocumentURI, diags []protocol.Diagnostic) {
	_ = conn.Notify(ctx, "textDocument/publishDiagnostics", &protocol.PublishDiagnosticsParams{
		URI:         docURI,
		Diagnostics: diags,
	})
}
