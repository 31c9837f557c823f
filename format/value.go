package format

import (
	"github.com/tombi-toml/tombi/ast"
	"github.com/tombi-toml/tombi/syntax"
)

// formatValue dispatches on the concrete Value variant, grounded on
// format/key_value.rs's `impl Format for ast::Value`.
func formatValue(f *Formatter, v ast.Value) {
	switch vv := v.(type) {
	case *ast.ScalarValue:
		formatScalarValue(f, vv)
	case *ast.Array:
		formatArray(f, vv)
	case *ast.InlineTable:
		formatInlineTable(f, vv)
	}
}

// formatScalarValue re-emits a string/integer/float/boolean/date-time
// token verbatim — strings keep their original quoting as part of the
// token (spec.md §4.7) — except a date/time's delimiter, which is
// rewritten per Options.DateTimeDelimiter. The value's own tailing
// comment, if any, is the caller's responsibility: inside an Array or
// InlineTable the comment may sit after a trailing comma, outside the
// value's own syntax node entirely, so only the container knows where
// to look (ast.Array.ValuesWithComma / InlineTable.KeyValuesWithComma).
func formatScalarValue(f *Formatter, v *ast.ScalarValue) {
	text := v.RawText()
	if v.Kind() == syntax.LOCAL_DATE_TIME || v.Kind() == syntax.OFFSET_DATE_TIME {
		text = rewriteDateTimeDelimiter(f.options.DateTimeDelimiter, text)
	}
	f.WriteString(text)
}

// rewriteDateTimeDelimiter replaces the single date/time separator
// character at byte offset 10 (immediately after the fixed-width
// "YYYY-MM-DD" prefix RFC 3339 guarantees) grounded on
// format/literal/date_time.rs's `text.replace_range(10..11, ...)`.
func rewriteDateTimeDelimiter(d DateTimeDelimiter, text string) string {
	if d == DateTimeDelimiterPreserve || len(text) < 11 {
		return text
	}
	switch text[10] {
	case 'T', 't', ' ':
	default:
		return text
	}
	replacement := byte('T')
	if d == DateTimeDelimiterSpace {
		replacement = ' '
	}
	if text[10] == replacement {
		return text
	}
	out := []byte(text)
	out[10] = replacement
	return string(out)
}
