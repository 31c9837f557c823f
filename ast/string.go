package ast

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// unescapeBasic turns a BASIC_STRING or MULTI_LINE_BASIC_STRING token's
// raw text (quotes included) into its logical value, grounded on the
// teacher's parse/quote.go unquoteString — same (string, error) shape,
// same escape table, extended with \b \f \uXXXX \UXXXXXXXX and the
// TOML multi-line rules (strip one immediate leading newline, collapse a
// line-ending backslash plus following whitespace).
func unescapeBasic(raw string) (string, error) {
	quote := `"`
	multi := strings.HasPrefix(raw, `"""`)
	if multi {
		quote = `"""`
	}
	body, err := stripDelimiters(raw, quote)
	if err != nil {
		return "", err
	}
	if multi {
		body = strings.TrimPrefix(body, "\n")
		body = strings.TrimPrefix(body, "\r\n")
	}

	var sb strings.Builder
	for i := 0; i < len(body); {
		r, size := utf8.DecodeRuneInString(body[i:])
		if r != '\\' {
			sb.WriteRune(r)
			i += size
			continue
		}
		i += size
		if i >= len(body) {
			return "", errors.New("dangling escape at end of string")
		}
		esc := body[i]
		if multi && (esc == '\n' || esc == '\r') {
			// line-ending backslash: swallow it plus all following
			// whitespace (spaces, tabs, newlines) up to the next
			// non-whitespace character.
			j := i
			for j < len(body) && isLineTrimByte(body[j]) {
				j++
			}
			i = j
			continue
		}
		switch esc {
		case 'n':
			sb.WriteByte('\n')
			i++
		case 't':
			sb.WriteByte('\t')
			i++
		case 'r':
			sb.WriteByte('\r')
			i++
		case 'b':
			sb.WriteByte('\b')
			i++
		case 'f':
			sb.WriteByte('\f')
			i++
		case '"':
			sb.WriteByte('"')
			i++
		case '\\':
			sb.WriteByte('\\')
			i++
		case 'u':
			r, n, err := decodeUnicodeEscape(body, i+1, 4)
			if err != nil {
				return "", err
			}
			sb.WriteRune(r)
			i += 1 + n
		case 'U':
			r, n, err := decodeUnicodeEscape(body, i+1, 8)
			if err != nil {
				return "", err
			}
			sb.WriteRune(r)
			i += 1 + n
		default:
			return "", errors.New("unrecognized escape code: \\" + string(esc))
		}
	}
	// \uXXXX/\UXXXXXXXX escapes can spell a character as separate
	// combining codepoints; normalize to NFC so two keys/strings that
	// denote the same text compare equal regardless of which form the
	// author typed.
	return norm.NFC.String(sb.String()), nil
}

// unescapeLiteral turns a LITERAL_STRING or MULTI_LINE_LITERAL_STRING
// token's raw text into its logical value: literal strings have no
// escapes, so this is purely delimiter stripping (plus the multi-line
// leading-newline rule).
func unescapeLiteral(raw string) (string, error) {
	quote := `'`
	multi := strings.HasPrefix(raw, `'''`)
	if multi {
		quote = `'''`
	}
	body, err := stripDelimiters(raw, quote)
	if err != nil {
		return "", err
	}
	if multi {
		body = strings.TrimPrefix(body, "\n")
		body = strings.TrimPrefix(body, "\r\n")
	}
	return body, nil
}

func stripDelimiters(raw, quote string) (string, error) {
	if len(raw) < 2*len(quote) || !strings.HasPrefix(raw, quote) || !strings.HasSuffix(raw, quote) {
		return "", errors.New("string not surrounded by matching delimiters")
	}
	return raw[len(quote) : len(raw)-len(quote)], nil
}

func isLineTrimByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func decodeUnicodeEscape(s string, start, n int) (rune, int, error) {
	if start+n > len(s) {
		return 0, 0, errors.New("truncated unicode escape")
	}
	v, err := strconv.ParseInt(s[start:start+n], 16, 32)
	if err != nil {
		return 0, 0, err
	}
	return rune(v), n, nil
}
