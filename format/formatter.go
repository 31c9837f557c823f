package format

import (
	"strings"

	"github.com/tombi-toml/tombi/syntax"
)

// Formatter accumulates rendered output plus the indent-depth/options
// state every format* function needs, mirroring the teacher-adjacent
// original_source Formatter<'a> (formatter.rs) with a strings.Builder
// standing in for Rust's `&mut dyn Write`.
type Formatter struct {
	version     syntax.TomlVersion
	options     Options
	indentDepth int
	buf         strings.Builder
}

// NewFormatter builds a Formatter for version, using opts for layout.
func NewFormatter(version syntax.TomlVersion, opts Options) *Formatter {
	return &Formatter{version: version, options: opts}
}

func (f *Formatter) Version() syntax.TomlVersion { return f.version }
func (f *Formatter) Options() Options            { return f.options }
func (f *Formatter) String() string              { return f.buf.String() }

func (f *Formatter) WriteString(s string) {
	f.buf.WriteString(s)
}

// LineEnding returns the configured line terminator.
func (f *Formatter) LineEnding() string { return f.options.LineEnding.String() }

// Ident renders the current indentation depth's worth of indent.
func (f *Formatter) Ident() string { return f.options.Indent(f.indentDepth) }

func (f *Formatter) IncIdent() { f.indentDepth++ }
func (f *Formatter) DecIdent() {
	if f.indentDepth > 0 {
		f.indentDepth--
	}
}

func (f *Formatter) resetIdent() int {
	depth := f.indentDepth
	f.indentDepth = 0
	return depth
}

// WithResetIndent runs fn with the indent depth reset to zero (a value
// after `=` is rendered from depth zero, whatever depth its key-value
// sits at), restoring the prior depth afterward
// even if fn panics. Mirrors formatter.rs's with_reset_ident.
func (f *Formatter) WithResetIndent(fn func(*Formatter)) {
	depth := f.resetIdent()
	defer func() { f.indentDepth = depth }()
	fn(f)
}
