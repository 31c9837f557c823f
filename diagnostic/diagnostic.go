package diagnostic

import (
	"fmt"

	"github.com/tombi-toml/tombi/rowan"
	"github.com/tombi-toml/tombi/synerr"
)

// Severity classifies a Diagnostic for display and exit-code purposes
// (spec.md §6.2). Syntax, lint and schema-validation findings are
// SeverityError; config decoding and schema loading problems are
// SeverityWarning. No config setting changes a finding's severity.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
	SeverityHint
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	case SeverityHint:
		return "hint"
	default:
		return "unknown"
	}
}

// Diagnostic is the single unit the CLI and the LSP server both consume:
// a severity, a message, and the byte range (and resolved line/column)
// it applies to, if any.
type Diagnostic struct {
	Severity Severity
	Message  string
	// File is empty for diagnostics scoped to a single in-memory buffer
	// (the LSP server already knows which document a Diagnostic is for).
	File string
	// Range is the byte range within the source the diagnostic applies
	// to. A zero-value Range with HasRange false means the diagnostic
	// isn't anchored to a specific location (e.g. a config-file-wide
	// warning).
	Range    rowan.TextRange
	HasRange bool
	Line     int // 1-indexed; 0 if HasRange is false
	Col      int // 1-indexed; 0 if HasRange is false
}

func (d Diagnostic) Error() string {
	if !d.HasRange {
		return fmt.Sprintf("%s: %s", d.Severity, d.Message)
	}
	if d.File != "" {
		return fmt.Sprintf("%s:%d:%d: %s: %s", d.File, d.Line, d.Col, d.Severity, d.Message)
	}
	return fmt.Sprintf("%d:%d: %s: %s", d.Line, d.Col, d.Severity, d.Message)
}

// FromSyntaxError converts a synerr.Error (as recorded on a parsed tree)
// into a Diagnostic, resolving its byte range to a 1-indexed line/column
// pair against src.
func FromSyntaxError(e synerr.Error, src string) Diagnostic {
	line, col := LineCol(src, e.Range.Start)
	return Diagnostic{
		Severity: SeverityError,
		Message:  syntaxErrorMessage(e.Kind),
		Range:    e.Range,
		HasRange: true,
		Line:     line,
		Col:      col,
	}
}

// FromErrFilePos converts a diagnostic.ErrFilePos (or any error — plain
// errors become a rangeless Diagnostic) into a Diagnostic.
func FromErrFilePos(err error) Diagnostic {
	fp := ToErrFilePos(err)
	if fp == nil {
		return Diagnostic{Severity: SeverityError, Message: err.Error()}
	}
	return Diagnostic{
		Severity: SeverityError,
		Message:  fp.Error(),
		File:     fp.File(),
		HasRange: true,
		Line:     fp.Line(),
		Col:      fp.Col(),
	}
}

// LineCol resolves a 0-indexed byte offset into src to a 1-indexed
// (line, column) pair, counting columns in bytes (spec.md treats source
// positions as byte offsets throughout; the lspserver package is
// responsible for the UTF-16 translation go.lsp.dev/protocol expects).
func LineCol(src string, offset int) (line, col int) {
	if offset > len(src) {
		offset = len(src)
	}
	line, col = 1, 1
	for i := 0; i < offset; i++ {
		if src[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

func syntaxErrorMessage(kind synerr.Kind) string {
	switch kind {
	case synerr.InvalidToken:
		return "invalid token"
	case synerr.ExpectedKey:
		return "expected a key"
	case synerr.ExpectedEq:
		return "expected '='"
	case synerr.ExpectedValue:
		return "expected a value"
	case synerr.ExpectedBracketEnd:
		return "expected ']'"
	case synerr.ExpectedDoubleBracketEnd:
		return "expected ']]'"
	case synerr.UnexpectedToken:
		return "unexpected token"
	case synerr.InterruptedByCancel:
		return "parse cancelled"
	case synerr.InvalidDateTimeOutOfRange:
		return "date/time field out of range"
	case synerr.InvalidDateTimeImpossible:
		return "impossible calendar date"
	case synerr.InvalidDateTimeNotEnough:
		return "date/time literal is incomplete"
	case synerr.InvalidDateTimeInvalid:
		return "invalid date/time literal"
	case synerr.InvalidDateTimeTooShort:
		return "date/time literal is too short"
	case synerr.InvalidDateTimeTooLong:
		return "date/time literal is too long"
	case synerr.InvalidDateTimeBadFormat:
		return "malformed date/time literal"
	case synerr.InvalidDateTimeOptionalSeconds:
		return "omitting seconds requires the TOML 1.1 preview grammar"
	case synerr.NewlineInDottedKeyRequiresPreview:
		return "a newline around '.' in a dotted key requires the TOML 1.1 preview grammar"
	case synerr.TrailingCommaInInlineTableRequiresPreview:
		return "a trailing comma in an inline table requires the TOML 1.1 preview grammar"
	default:
		return kind.String()
	}
}
