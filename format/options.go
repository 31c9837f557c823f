// Package format implements the format-preserving pretty-printer of
// spec.md §4.7: it walks an *ast.Root and re-renders it, reproducing
// every byte the document doesn't explicitly ask to be changed (layout
// choices — indentation, multi-line arrays, date-time delimiters — come
// from Options, never from guessing at the input's existing layout).
// Grounded on original_source/crates/formatter's format/*.rs files and
// crates/config/src/format/options.rs's option set.
package format

// IndentStyle selects spaces or tabs for one indentation level.
type IndentStyle int

const (
	IndentSpace IndentStyle = iota
	IndentTab
)

// LineEnding selects the line terminator the formatter writes.
type LineEnding int

const (
	LF LineEnding = iota
	CRLF
)

func (e LineEnding) String() string {
	if e == CRLF {
		return "\r\n"
	}
	return "\n"
}

// DateTimeDelimiter selects the separator the formatter writes between
// a date and a time in a LOCAL_DATE_TIME/OFFSET_DATE_TIME literal —
// spec.md §4.7's date-time delimiter rewriting, RFC 3339 §5.6.
type DateTimeDelimiter int

const (
	// DateTimeDelimiterT always renders "T" (the RFC 3339 default).
	DateTimeDelimiterT DateTimeDelimiter = iota
	// DateTimeDelimiterSpace always renders " ".
	DateTimeDelimiterSpace
	// DateTimeDelimiterPreserve keeps whatever separator the source used.
	DateTimeDelimiterPreserve
)

// Options is the right-biased-mergeable set of formatting choices: a
// tombi.toml config's format.* table overrides these defaults (config
// package's Merge direction). The CLI has no format flags of its own.
type Options struct {
	IndentStyle       IndentStyle
	IndentWidth       int
	LineEnding        LineEnding
	DateTimeDelimiter DateTimeDelimiter
}

// DefaultOptions mirrors the teacher's zero-config defaults: two-space
// indentation, LF line endings, "T" date-time delimiter.
func DefaultOptions() Options {
	return Options{
		IndentStyle:       IndentSpace,
		IndentWidth:       2,
		LineEnding:        LF,
		DateTimeDelimiter: DateTimeDelimiterT,
	}
}

// Merge overwrites o's fields with other's, for exactly the fields set
// marks as specified, whatever their values (a zero value moves too).
// Since Go has no Option<T> for plain enums/ints, FieldSet carries that
// information — config.Decode (config/config.go) marks only the fields
// it found keys for, so this is the same "only overridden fields move"
// merge the Rust FormatOptions::merge performs over true Option<T>s.
func (o *Options) Merge(other *Options, set FieldSet) {
	if set.IndentStyle {
		o.IndentStyle = other.IndentStyle
	}
	if set.IndentWidth {
		o.IndentWidth = other.IndentWidth
	}
	if set.LineEnding {
		o.LineEnding = other.LineEnding
	}
	if set.DateTimeDelimiter {
		o.DateTimeDelimiter = other.DateTimeDelimiter
	}
}

// FieldSet marks which Options fields an overriding source actually
// specified, standing in for Rust's Option<T>-per-field representation.
type FieldSet struct {
	IndentStyle       bool
	IndentWidth       bool
	LineEnding        bool
	DateTimeDelimiter bool
}

// Indent renders one indentation level repeated depth times.
func (o Options) Indent(depth int) string {
	if depth <= 0 {
		return ""
	}
	unit := "\t"
	n := depth
	if o.IndentStyle == IndentSpace {
		unit = " "
		n = o.IndentWidth * depth
	}
	out := make([]byte, 0, len(unit)*n)
	for i := 0; i < n; i++ {
		out = append(out, unit...)
	}
	return string(out)
}
