package lint

import (
	"time"

	"github.com/tombi-toml/tombi/ast"
	"github.com/tombi-toml/tombi/rowan"
	"github.com/tombi-toml/tombi/synerr"
	"github.com/tombi-toml/tombi/syntax"
)

// ValidateDateTimes walks every scalar value in root and checks each
// date/time literal's calendar validity, grounded on
// original_source/crates/document-tree/src/support/chrono.rs's
// try_new_offset_date_time/try_new_local_date_time/try_new_local_date/
// try_new_local_time family: the TOML 1.1 optional-seconds gate
// chrono.rs's make_datetime_str implements is applied first (a missing
// seconds field under TOML 1.0.0 is InvalidDateTimeOptionalSeconds),
// then the text is parsed with time.Parse, and every calendar or format
// failure is reported as InvalidDateTimeInvalid (see
// classifyDateTimeParseErr); OutOfRange/Impossible are not produced.
func ValidateDateTimes(root *ast.Root, version syntax.TomlVersion) []synerr.Error {
	var errs []synerr.Error
	walkScalars(root, func(v *ast.ScalarValue) {
		switch v.Kind() {
		case syntax.OFFSET_DATE_TIME:
			if e, ok := checkOffsetDateTime(v, version); ok {
				errs = append(errs, e)
			}
		case syntax.LOCAL_DATE_TIME:
			if e, ok := checkLocalDateTime(v, version); ok {
				errs = append(errs, e)
			}
		case syntax.LOCAL_DATE:
			if e, ok := checkLocalDate(v); ok {
				errs = append(errs, e)
			}
		case syntax.LOCAL_TIME:
			if e, ok := checkLocalTime(v, version); ok {
				errs = append(errs, e)
			}
		}
	})
	return errs
}

// walkScalars visits every ScalarValue reachable from root, recursing
// into arrays and inline tables at any depth.
func walkScalars(root *ast.Root, fn func(*ast.ScalarValue)) {
	for _, kv := range root.RootKeyValues() {
		walkValue(kv.Value(), fn)
	}
	for _, table := range root.Tables() {
		for _, kv := range table.KeyValues() {
			walkValue(kv.Value(), fn)
		}
	}
	for _, aot := range root.ArrayOfTables() {
		for _, kv := range aot.KeyValues() {
			walkValue(kv.Value(), fn)
		}
	}
}

func walkValue(v ast.Value, fn func(*ast.ScalarValue)) {
	switch val := v.(type) {
	case nil:
	case *ast.ScalarValue:
		fn(val)
	case *ast.Array:
		for _, e := range val.Values() {
			walkValue(e, fn)
		}
	case *ast.InlineTable:
		for _, kv := range val.KeyValues() {
			walkValue(kv.Value(), fn)
		}
	}
}

// makeDatetimeStr splices the TOML 1.1 ":00" optional-seconds default
// into a date-time literal missing its seconds field, or reports
// InvalidDateTimeOptionalSeconds when the grammar version doesn't allow
// the omission — chrono.rs's make_datetime_str, ported directly: the
// date/time separator ('T'/'t') is normalized to a space along the way
// since Go's layout below expects one.
func makeDatetimeStr(text string, version syntax.TomlVersion) (string, bool) {
	const dateSize = len("2024-12-31")
	const withoutSecondsSize = len("2024-01-01T00:00")

	out := make([]byte, 0, len(text)+len(":00"))
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case i == dateSize && (c == 'T' || c == 't'):
			out = append(out, ' ')
		case i == withoutSecondsSize && c != ':':
			if !version.AtLeast(syntax.V1_1_0_Preview) {
				return "", false
			}
			out = append(out, ':', '0', '0')
			out = append(out, c)
		default:
			out = append(out, c)
		}
	}
	if len(out) == withoutSecondsSize {
		if !version.AtLeast(syntax.V1_1_0_Preview) {
			return "", false
		}
		out = append(out, ':', '0', '0')
	}
	return string(out), true
}

func checkOffsetDateTime(v *ast.ScalarValue, version syntax.TomlVersion) (synerr.Error, bool) {
	text := v.RawText()
	str, ok := makeDatetimeStr(text, version)
	if !ok {
		return errAt(synerr.InvalidDateTimeOptionalSeconds, v), true
	}
	// RFC3339 expects the date/time separator back as 'T'.
	str = str[:len("2024-01-01")] + "T" + str[len("2024-01-01")+1:]
	if _, err := time.Parse(time.RFC3339Nano, str); err != nil {
		return errAt(classifyDateTimeParseErr(err), v), true
	}
	return synerr.Error{}, false
}

func checkLocalDateTime(v *ast.ScalarValue, version syntax.TomlVersion) (synerr.Error, bool) {
	text := v.RawText()
	str, ok := makeDatetimeStr(text, version)
	if !ok {
		return errAt(synerr.InvalidDateTimeOptionalSeconds, v), true
	}
	if _, err := time.Parse("2006-01-02 15:04:05.999999999", str); err != nil {
		return errAt(classifyDateTimeParseErr(err), v), true
	}
	return synerr.Error{}, false
}

func checkLocalDate(v *ast.ScalarValue) (synerr.Error, bool) {
	if _, err := time.Parse("2006-01-02", v.RawText()); err != nil {
		return errAt(classifyDateTimeParseErr(err), v), true
	}
	return synerr.Error{}, false
}

func checkLocalTime(v *ast.ScalarValue, version syntax.TomlVersion) (synerr.Error, bool) {
	const hourMinuteSize = len("00:00")
	text := v.RawText()

	if len(text) > hourMinuteSize && text[hourMinuteSize] == ':' {
		if _, err := time.Parse("15:04:05.999999999", text); err != nil {
			return errAt(classifyDateTimeParseErr(err), v), true
		}
		return synerr.Error{}, false
	}
	if !version.AtLeast(syntax.V1_1_0_Preview) {
		return errAt(synerr.InvalidDateTimeOptionalSeconds, v), true
	}
	if _, err := time.Parse("15:04.999999999", text); err != nil {
		return errAt(classifyDateTimeParseErr(err), v), true
	}
	return synerr.Error{}, false
}

// classifyDateTimeParseErr has no access to Go's internal parse-error
// kind (time.ParseError carries only a human message), so every
// calendar/format failure collapses to InvalidDateTimeInvalid — the
// chrono.rs taxonomy's OutOfRange/Impossible/NotEnough/TooShort/TooLong
// distinctions aren't recoverable from Go's stdlib time package without
// re-implementing its parser; diagnostic.go's message for Invalid
// ("invalid date/time literal") already covers the case generically.
func classifyDateTimeParseErr(err error) synerr.Kind {
	return synerr.InvalidDateTimeInvalid
}

func errAt(kind synerr.Kind, v *ast.ScalarValue) synerr.Error {
	t := v.Token()
	var r rowan.TextRange
	if t != nil {
		r = t.TextRange()
	}
	return synerr.Error{Kind: kind, Range: r}
}
