package lexer

import (
	"github.com/tombi-toml/tombi/rowan"
	"github.com/tombi-toml/tombi/synerr"
	"github.com/tombi-toml/tombi/syntax"
)

// lexer holds the state of the lexical scan. Byte-indexed rather than
// rune-indexed: every token kind lexer.go discriminates on (punctuation,
// digits, the bare-key charset, quote delimiters) is pure ASCII: the
// arbitrary-UTF-8 payload of strings and bare-key identifiers is carried
// through as raw byte slices without ever needing to be decoded here.
type lexer struct {
	input string
	pos   int

	tokens []Token
	errors []synerr.Error
}

// Lex tokenizes input in full. It always succeeds: a malformed input
// still yields a token sequence whose concatenated text is input,
// verbatim, with INVALID_TOKEN entries and attached errors wherever
// classification failed.
func Lex(input string) *Lexed {
	l := &lexer{input: input}
	for l.pos < len(l.input) {
		l.scanOne()
	}
	return &Lexed{
		Tokens: l.tokens,
		Joints: computeJoints(l.tokens),
		Errors: l.errors,
	}
}

func computeJoints(tokens []Token) []bool {
	var sigIdx []int
	for i, t := range tokens {
		if !t.Kind.IsTrivia() {
			sigIdx = append(sigIdx, i)
		}
	}
	if len(sigIdx) == 0 {
		return nil
	}
	joints := make([]bool, len(sigIdx))
	for k := 0; k+1 < len(sigIdx); k++ {
		joints[k] = sigIdx[k+1] == sigIdx[k]+1
	}
	return joints
}

func (l *lexer) push(kind syntax.Kind, text string) {
	l.tokens = append(l.tokens, Token{Kind: kind, Text: text})
}

func (l *lexer) errorf(kind synerr.Kind, start, end int) {
	l.errors = append(l.errors, synerr.Error{Kind: kind, Range: rowan.TextRange{Start: start, End: end}})
}

func (l *lexer) peekByte() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

// scanOne consumes exactly one token (or, for whitespace/newline runs,
// one maximal run), starting at l.pos.
func (l *lexer) scanOne() {
	c := l.peekByte()
	switch {
	case c == ' ' || c == '\t':
		l.scanWhitespace()
	case c == '\n':
		l.pos++
		l.push(syntax.LINE_BREAK, "\n")
	case c == '\r':
		start := l.pos
		l.pos++
		if l.peekByte() == '\n' {
			l.pos++
		}
		l.push(syntax.LINE_BREAK, l.input[start:l.pos])
	case c == '#':
		l.scanComment()
	case c == '{':
		l.pos++
		l.push(syntax.BRACE_START, "{")
	case c == '}':
		l.pos++
		l.push(syntax.BRACE_END, "}")
	case c == '[':
		l.pos++
		l.push(syntax.BRACKET_START, "[")
	case c == ']':
		l.pos++
		l.push(syntax.BRACKET_END, "]")
	case c == ',':
		l.pos++
		l.push(syntax.COMMA, ",")
	case c == '.':
		l.pos++
		l.push(syntax.DOT, ".")
	case c == '=':
		l.pos++
		l.push(syntax.EQUAL, "=")
	case c == '"':
		l.scanString('"')
	case c == '\'':
		l.scanString('\'')
	default:
		if isWordlikeStart(c) {
			l.scanWordlike()
		} else {
			start := l.pos
			l.pos++
			l.errorf(synerr.InvalidToken, start, l.pos)
			l.push(syntax.INVALID_TOKEN, l.input[start:l.pos])
		}
	}
}

func (l *lexer) scanWhitespace() {
	start := l.pos
	for {
		c := l.peekByte()
		if c == ' ' || c == '\t' {
			l.pos++
			continue
		}
		break
	}
	l.push(syntax.WHITESPACE, l.input[start:l.pos])
}

func (l *lexer) scanComment() {
	start := l.pos
	for l.pos < len(l.input) && l.peekByte() != '\n' && l.peekByte() != '\r' {
		l.pos++
	}
	l.push(syntax.COMMENT, l.input[start:l.pos])
}

func isWordlikeStart(c byte) bool {
	return isBareKeyByte(c) || c == '+'
}

func isBareKeyByte(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_' || c == '-'
}

// looksNumericSoFar reports whether text could still be a prefix of an
// integer, float, or date/time literal: digits, sign, already-consumed
// '.'/':' separators, the date/time separator letter 'T'/'t', and a
// space — only reachable here because looksLikeDateTimeSpace already
// confirmed any embedded space is the RFC 3339 date/time separator
// before scanWordlike consumed it. Any other letter (e.g. the "a" in a
// bare key or table-header segment) fails this, which is what stops
// scanWordlike from swallowing a following '.' into that run instead
// of leaving it for the parser.
func looksNumericSoFar(text string) bool {
	if text == "" {
		return false
	}
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c >= '0' && c <= '9':
		case c == '+' || c == '-' || c == '.' || c == ':' || c == ' ':
		case c == 'T' || c == 't':
		default:
			return false
		}
	}
	return true
}

// scanWordlike consumes the maximal run of bare-key/number/date-time
// characters starting at l.pos, including a single embedded space or 'T'
// where that space sits between a local date and a local time (spec.md
// §4.4's date-time discrimination), then classifies the captured text.
func (l *lexer) scanWordlike() {
	start := l.pos
	for {
		c := l.peekByte()
		switch {
		case c == '.' || c == ':':
			// Only part of the run when everything captured so far is
			// numeric/date-time-shaped; otherwise this is a dotted key
			// or table header and '.' belongs to the parser as its own
			// DOT token (lexer_test.go's "a.b.c", parser_test.go's
			// "[a.b]").
			if !looksNumericSoFar(l.input[start:l.pos]) {
				goto done
			}
			l.pos++
		case isBareKeyByte(c) || c == '+':
			l.pos++
		case c == ' ' && l.looksLikeDateTimeSpace(start):
			l.pos++
		default:
			goto done
		}
	}
done:
	text := l.input[start:l.pos]
	kind, ok := classifyWordlike(text)
	if !ok {
		l.errorf(synerr.InvalidToken, start, l.pos)
		kind = syntax.INVALID_TOKEN
	}
	l.push(kind, text)
}

// looksLikeDateTimeSpace reports whether the text captured so far
// (input[start:l.pos]) is exactly a local date, and the bytes immediately
// after the current (unconsumed) space look like the start of a local
// time — i.e. this space is the RFC 3339 date/time separator, not
// trivia.
func (l *lexer) looksLikeDateTimeSpace(start int) bool {
	captured := l.input[start:l.pos]
	if !reLocalDate.MatchString(captured) {
		return false
	}
	return reTimeLike.MatchString(l.input[min(l.pos+1, len(l.input)):])
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
