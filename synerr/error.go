// Package synerr defines the single error taxonomy shared by the lexer,
// parser and AST layer (spec.md §3 "Errors", §7 "Error handling design").
// Every level produces (tree, errors) rather than aborting; errors never
// prevent a tree from being built.
package synerr

import "github.com/tombi-toml/tombi/rowan"

// Kind enumerates every syntax/semantic error the core can report.
type Kind int

const (
	// Lex-level.
	InvalidToken Kind = iota

	// Parse-level.
	ExpectedKey
	ExpectedEq
	ExpectedValue
	ExpectedBracketEnd
	ExpectedDoubleBracketEnd
	UnexpectedToken
	InterruptedByCancel

	// Semantic (date-time), reported at AST-construction / lint time.
	InvalidDateTimeOutOfRange
	InvalidDateTimeImpossible
	InvalidDateTimeNotEnough
	InvalidDateTimeInvalid
	InvalidDateTimeTooShort
	InvalidDateTimeTooLong
	InvalidDateTimeBadFormat
	InvalidDateTimeOptionalSeconds

	// Version gating (TOML 1.1 features used under v1.0.0).
	NewlineInDottedKeyRequiresPreview
	TrailingCommaInInlineTableRequiresPreview
)

func (k Kind) String() string {
	switch k {
	case InvalidToken:
		return "InvalidToken"
	case ExpectedKey:
		return "ExpectedKey"
	case ExpectedEq:
		return "ExpectedEq"
	case ExpectedValue:
		return "ExpectedValue"
	case ExpectedBracketEnd:
		return "ExpectedBracketEnd"
	case ExpectedDoubleBracketEnd:
		return "ExpectedDoubleBracketEnd"
	case UnexpectedToken:
		return "UnexpectedToken"
	case InterruptedByCancel:
		return "InterruptedByCancel"
	case InvalidDateTimeOutOfRange:
		return "InvalidDateTime(OutOfRange)"
	case InvalidDateTimeImpossible:
		return "InvalidDateTime(Impossible)"
	case InvalidDateTimeNotEnough:
		return "InvalidDateTime(NotEnough)"
	case InvalidDateTimeInvalid:
		return "InvalidDateTime(Invalid)"
	case InvalidDateTimeTooShort:
		return "InvalidDateTime(TooShort)"
	case InvalidDateTimeTooLong:
		return "InvalidDateTime(TooLong)"
	case InvalidDateTimeBadFormat:
		return "InvalidDateTime(BadFormat)"
	case InvalidDateTimeOptionalSeconds:
		return "InvalidDateTime(OptionalSeconds)"
	case NewlineInDottedKeyRequiresPreview:
		return "NewlineInDottedKeyRequiresPreview"
	case TrailingCommaInInlineTableRequiresPreview:
		return "TrailingCommaInInlineTableRequiresPreview"
	default:
		return "UnknownError"
	}
}

// Error is a single syntax or semantic error, attached to a byte range in
// the original source. It is not a Go `error` (it never aborts anything);
// callers that need `error` values wrap it — see diagnostic.FromSyntaxError.
type Error struct {
	Kind  Kind
	Range rowan.TextRange
}

func (e Error) String() string {
	return e.Kind.String() + " at " + e.Range.String()
}
