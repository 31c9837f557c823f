package lexer

import (
	"github.com/tombi-toml/tombi/synerr"
	"github.com/tombi-toml/tombi/syntax"
)

// scanString consumes a basic ("...") or literal ('...') string, single-
// or triple-quoted. An unterminated string still produces a token
// covering the rest of the input (or up to the next line break for a
// single-quoted form) plus an attached error — the lexer never halts.
func (l *lexer) scanString(quote byte) {
	start := l.pos
	multi := l.byteAhead(1) == quote && l.byteAhead(2) == quote
	if multi {
		l.pos += 3
	} else {
		l.pos++
	}

	closed := l.consumeStringBody(quote, multi)

	var kind syntax.Kind
	switch {
	case quote == '"' && multi:
		kind = syntax.MULTI_LINE_BASIC_STRING
	case quote == '"' && !multi:
		kind = syntax.BASIC_STRING
	case quote == '\'' && multi:
		kind = syntax.MULTI_LINE_LITERAL_STRING
	default:
		kind = syntax.LITERAL_STRING
	}

	if !closed {
		l.errorf(synerr.InvalidToken, start, l.pos)
	}
	l.push(kind, l.input[start:l.pos])
}

// consumeStringBody advances l.pos past the string's content and closing
// delimiter, returning false if the input ran out (or, for a
// single-quoted string, a line break was hit) first.
func (l *lexer) consumeStringBody(quote byte, multi bool) bool {
	for l.pos < len(l.input) {
		c := l.peekByte()

		if l.atClosingDelimiter(quote, multi) {
			if multi {
				l.pos += 3
			} else {
				l.pos++
			}
			return true
		}

		if !multi && (c == '\n' || c == '\r') {
			return false
		}

		if quote == '"' && c == '\\' {
			l.consumeBasicEscape()
			continue
		}

		l.pos++
	}
	return false
}

func (l *lexer) atClosingDelimiter(quote byte, multi bool) bool {
	if !multi {
		return l.peekByte() == quote
	}
	return l.peekByte() == quote && l.byteAhead(1) == quote && l.byteAhead(2) == quote
}

// consumeBasicEscape consumes a backslash escape inside a basic string:
// a two-character escape (\n, \t, \", \\, ...), or a \uXXXX / \UXXXXXXXX
// unicode escape. Malformed escapes still advance at least one byte so
// scanning always terminates.
func (l *lexer) consumeBasicEscape() {
	start := l.pos
	l.pos++ // the backslash
	if l.pos >= len(l.input) {
		return
	}
	switch l.peekByte() {
	case 'u':
		l.pos++
		l.consumeHexDigits(4, start)
	case 'U':
		l.pos++
		l.consumeHexDigits(8, start)
	default:
		l.pos++
	}
}

func (l *lexer) consumeHexDigits(n int, escapeStart int) {
	consumed := 0
	for consumed < n && l.pos < len(l.input) && isHexDigit(l.peekByte()) {
		l.pos++
		consumed++
	}
	if consumed < n {
		l.errorf(synerr.InvalidToken, escapeStart, l.pos)
	}
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// byteAhead peeks n bytes past the current position without consuming.
func (l *lexer) byteAhead(n int) byte {
	i := l.pos + n
	if i < 0 || i >= len(l.input) {
		return 0
	}
	return l.input[i]
}
