package lexer

import (
	"regexp"

	"github.com/tombi-toml/tombi/syntax"
)

// These patterns classify a maximal "word-like" run (see scanWordlike in
// lexer.go) into its final token kind. Spec.md §4.4 describes exactly
// this discrimination strategy: "numeric or date-time (discriminated by
// scanning for '-' after four digits / ':' after two digits)".
var (
	reOffsetDateTime = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}[Tt ]\d{2}:\d{2}(:\d{2})?(\.\d+)?([Zz]|[+-]\d{2}:\d{2})$`)
	reLocalDateTime  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}[Tt ]\d{2}:\d{2}(:\d{2})?(\.\d+)?$`)
	reLocalDate      = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	reLocalTime      = regexp.MustCompile(`^\d{2}:\d{2}(:\d{2})?(\.\d+)?$`)

	reHex = regexp.MustCompile(`^[+-]?0x[0-9A-Fa-f](_?[0-9A-Fa-f])*$`)
	reOct = regexp.MustCompile(`^[+-]?0o[0-7](_?[0-7])*$`)
	reBin = regexp.MustCompile(`^[+-]?0b[01](_?[01])*$`)
	reDec = regexp.MustCompile(`^[+-]?(0|[1-9](_?\d)*)$`)

	reFloat = regexp.MustCompile(`^[+-]?(0|[1-9](_?\d)*)(\.\d(_?\d)*)?([eE][+-]?\d(_?\d)*)?$`)

	reDateLike = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
	reTimeLike = regexp.MustCompile(`^\d{2}:\d{2}`)
)

// classifyWordlike maps the maximal run captured by scanWordlike to a
// syntax.Kind. ok is false when the text could not be classified at all
// (the caller then emits INVALID_TOKEN).
func classifyWordlike(text string) (kind syntax.Kind, ok bool) {
	switch text {
	case "true", "false":
		return syntax.BOOLEAN, true
	case "inf", "+inf", "-inf", "nan", "+nan", "-nan":
		return syntax.FLOAT, true
	}

	if len(text) == 0 {
		return 0, false
	}

	first := text[0]
	isDigitOrSign := first == '+' || first == '-' || (first >= '0' && first <= '9')
	if !isDigitOrSign {
		// Letters and underscore land here; a bare key that starts with a
		// digit but contains letters further in is caught further below.
		if isBareKeyText(text) {
			return syntax.BARE_KEY, true
		}
		return 0, false
	}

	switch {
	case reOffsetDateTime.MatchString(text):
		return syntax.OFFSET_DATE_TIME, true
	case reLocalDateTime.MatchString(text):
		return syntax.LOCAL_DATE_TIME, true
	case reLocalDate.MatchString(text):
		return syntax.LOCAL_DATE, true
	case reLocalTime.MatchString(text):
		return syntax.LOCAL_TIME, true
	case reHex.MatchString(text):
		return syntax.INTEGER_HEX, true
	case reOct.MatchString(text):
		return syntax.INTEGER_OCT, true
	case reBin.MatchString(text):
		return syntax.INTEGER_BIN, true
	}

	if containsAny(text, ".eE") && reFloat.MatchString(text) {
		return syntax.FLOAT, true
	}
	if reDec.MatchString(text) {
		return syntax.INTEGER_DEC, true
	}

	// Malformed date/time-shaped text (e.g. "1979-13-40") still gets a
	// best-effort kind so downstream semantic validation can report it
	// as an invalid date/time literal (synerr.InvalidDateTimeInvalid) —
	// see lint/datetime.go.
	if reDateLike.MatchString(text) {
		if containsAny(text, "Tt: ") {
			return syntax.LOCAL_DATE_TIME, true
		}
		return syntax.LOCAL_DATE, true
	}
	if reTimeLike.MatchString(text) {
		return syntax.LOCAL_TIME, true
	}

	// Falls back to a bare key only if every character is in the bare-key
	// charset; TOML bare keys may legally consist of digits and dashes
	// alone (e.g. `123 = "x"`), colliding lexically with integers. The
	// parser resolves the ambiguity by position: parseKey accepts
	// BARE_KEY as well as any numeric/boolean token kind and re-reads its
	// raw text as the key spelling (see parser/grammar_key.go).
	if isBareKeyText(text) {
		return syntax.BARE_KEY, true
	}
	return 0, false
}

func isBareKeyText(text string) bool {
	for _, r := range text {
		if !isBareKeyRune(r) {
			return false
		}
	}
	return len(text) > 0
}

func isBareKeyRune(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-'
}

func containsAny(s, chars string) bool {
	for _, c := range chars {
		for _, r := range s {
			if r == c {
				return true
			}
		}
	}
	return false
}
