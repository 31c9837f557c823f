package diagnostic_test

import (
	"errors"
	"testing"

	"github.com/tombi-toml/tombi/diagnostic"
	"github.com/tombi-toml/tombi/rowan"
	"github.com/tombi-toml/tombi/synerr"
)

func TestIsErrFilePos(t *testing.T) {
	tests := []struct {
		name string
		in   error
		out  bool
	}{
		{name: "nil", out: false},
		{name: "errors.New", in: errors.New("an error"), out: false},
		{name: "new ErrFilePos", in: diagnostic.NewErrFilePosf("tombi.toml", 1, 2, "message"), out: true},
	}
	for _, test := range tests {
		if got := diagnostic.IsErrFilePos(test.in); got != test.out {
			t.Errorf("%s: got %v, want %v", test.name, got, test.out)
		}
	}
}

func TestToErrFilePos(t *testing.T) {
	err := diagnostic.NewErrFilePosf("tombi.toml", 3, 7, "bad key %q", "x")
	fp := diagnostic.ToErrFilePos(err)
	if fp == nil {
		t.Fatal("ToErrFilePos returned nil for an ErrFilePos-conforming error")
	}
	if fp.File() != "tombi.toml" || fp.Line() != 3 || fp.Col() != 7 {
		t.Errorf("got (%q, %d, %d), want (\"tombi.toml\", 3, 7)", fp.File(), fp.Line(), fp.Col())
	}
	if want := `bad key "x"`; fp.Error() != want {
		t.Errorf("Error() = %q, want %q", fp.Error(), want)
	}

	if diagnostic.ToErrFilePos(errors.New("plain")) != nil {
		t.Error("ToErrFilePos should return nil for a plain error")
	}
}

func TestLineCol(t *testing.T) {
	src := "a = 1\nb = 2\nc = 3\n"
	tests := []struct {
		offset   int
		line, col int
	}{
		{0, 1, 1},
		{4, 1, 5},
		{6, 2, 1},
		{12, 3, 1},
	}
	for _, test := range tests {
		line, col := diagnostic.LineCol(src, test.offset)
		if line != test.line || col != test.col {
			t.Errorf("LineCol(%d) = (%d, %d), want (%d, %d)", test.offset, line, col, test.line, test.col)
		}
	}
}

func TestFromSyntaxError(t *testing.T) {
	src := "a = \n"
	e := synerr.Error{Kind: synerr.ExpectedValue, Range: rowan.TextRange{Start: 4, End: 4}}
	d := diagnostic.FromSyntaxError(e, src)
	if d.Severity != diagnostic.SeverityError {
		t.Errorf("severity = %v, want SeverityError", d.Severity)
	}
	if !d.HasRange || d.Line != 1 || d.Col != 5 {
		t.Errorf("got HasRange=%v Line=%d Col=%d, want true 1 5", d.HasRange, d.Line, d.Col)
	}
	if d.Message == "" {
		t.Error("expected a non-empty message")
	}
}

func TestFromErrFilePosPlainError(t *testing.T) {
	d := diagnostic.FromErrFilePos(errors.New("boom"))
	if d.HasRange {
		t.Error("a plain error should produce a rangeless Diagnostic")
	}
	if d.Message != "boom" {
		t.Errorf("Message = %q, want %q", d.Message, "boom")
	}
}
