package lspserver

import (
	"go.lsp.dev/protocol"

	"github.com/tombi-toml/tombi/diagnostic"
	"github.com/tombi-toml/tombi/rowan"
)

// The LSP spec's SymbolKind/CompletionItemKind/DiagnosticSeverity enums
// are fixed integers defined by the specification itself, not by
// go.lsp.dev/protocol — casting the literal spec values to protocol's
// named types sidesteps any uncertainty over this particular library's
// exported constant names while still sending the correct wire value.
const (
	symbolKindNamespace        = protocol.SymbolKind(3)
	symbolKindArray            = protocol.SymbolKind(18)
	symbolKindProperty         = protocol.SymbolKind(7)
	completionItemKindProperty = protocol.CompletionItemKind(10)

	severityError   = protocol.DiagnosticSeverity(1)
	severityWarning = protocol.DiagnosticSeverity(2)
	severityInfo    = protocol.DiagnosticSeverity(3)
	severityHint    = protocol.DiagnosticSeverity(4)

	markupKindPlainText = protocol.MarkupKind("plaintext")
)

// toProtocolRange converts a rowan.TextRange (byte offsets) into an LSP
// Range (UTF-16 line/character), the inverse direction of
// rangeToOffsets.
func toProtocolRange(r rowan.TextRange, text string) protocol.Range {
	return protocol.Range{
		Start: offsetToPosition(text, r.Start),
		End:   offsetToPosition(text, r.End),
	}
}

func toProtocolDiagnostic(d diagnostic.Diagnostic, text string) protocol.Diagnostic {
	out := protocol.Diagnostic{
		Message:  d.Message,
		Severity: toProtocolSeverity(d.Severity),
	}
	if d.HasRange {
		out.Range = toProtocolRange(d.Range, text)
	}
	return out
}

func toProtocolSeverity(s diagnostic.Severity) protocol.DiagnosticSeverity {
	switch s {
	case diagnostic.SeverityError:
		return severityError
	case diagnostic.SeverityWarning:
		return severityWarning
	case diagnostic.SeverityInfo:
		return severityInfo
	case diagnostic.SeverityHint:
		return severityHint
	default:
		return severityError
	}
}
