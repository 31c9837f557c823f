package format

import (
	"testing"

	"github.com/andreyvit/diff"

	"github.com/tombi-toml/tombi/syntax"
)

func formatDefault(t *testing.T, src string) string {
	t.Helper()
	out, diags := Format(src, syntax.V1_1_0_Preview, DefaultOptions())
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics formatting %q: %v", src, diags)
	}
	return out
}

func TestFormatRootKeyValues(t *testing.T) {
	got := formatDefault(t, "a = 1\nb = 2\n")
	want := "a = 1\nb = 2\n"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestFormatTableWithKeyValue(t *testing.T) {
	got := formatDefault(t, "[a]\nx = 1\n")
	want := "[a]\nx = 1\n"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestFormatTwoTablesSingleLineEndingSeparator(t *testing.T) {
	// spec.md §4.7: root items are joined by a single line-ending, so a
	// blank line between two tables with no comment attached to it is
	// not preserved.
	got := formatDefault(t, "[a]\nx = 1\n\n[b]\ny = 2\n")
	want := "[a]\nx = 1\n[b]\ny = 2\n"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestFormatArrayOfTable(t *testing.T) {
	got := formatDefault(t, "[[a]]\nx = 1\n")
	want := "[[a]]\nx = 1\n"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestFormatSingleLineArray(t *testing.T) {
	got := formatDefault(t, "a = [1, 2, 3]\n")
	want := "a = [1, 2, 3]\n"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestFormatMultilineArrayOnTrailingComma(t *testing.T) {
	got := formatDefault(t, "a = [1, 2, 3,]\n")
	want := "a = [\n  1,\n  2,\n  3,\n]\n"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestFormatMultilineArrayPreservesElementComments(t *testing.T) {
	got := formatDefault(t, "a = [\n  1, # one\n  2, # two\n]\n")
	want := "a = [\n  1,  # one\n  2,  # two\n]\n"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestFormatInlineTableSingleLine(t *testing.T) {
	got := formatDefault(t, "a = { x = 1, y = 2 }\n")
	want := "a = { x = 1, y = 2 }\n"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestFormatInlineTableV1_0_0NeverMultiline(t *testing.T) {
	out, diags := Format("a = { x = 1, }\n", syntax.V1_0_0, DefaultOptions())
	_ = diags
	want := "a = { x = 1 }\n"
	if out != want {
		t.Fatalf("got %q want %q", out, want)
	}
}

func TestFormatTableHeaderAndKeyValueComments(t *testing.T) {
	src := "# header comment\n[a] # tailing\nx = 1 # value comment\n"
	got := formatDefault(t, src)
	want := "# header comment\n[a]  # tailing\nx = 1  # value comment\n"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestFormatDateTimeDelimiterRewrite(t *testing.T) {
	got := formatDefault(t, "a = 1979-05-27t07:32:00Z\n")
	want := "a = 1979-05-27T07:32:00Z\n"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestFormatDateTimeDelimiterSpaceOption(t *testing.T) {
	opts := DefaultOptions()
	opts.DateTimeDelimiter = DateTimeDelimiterSpace
	out, diags := Format("a = 1979-05-27T07:32:00Z\n", syntax.V1_1_0_Preview, opts)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	want := "a = 1979-05-27 07:32:00Z\n"
	if out != want {
		t.Fatalf("got %q want %q", out, want)
	}
}

func TestFormatRefusesOnUnclosedInlineTable(t *testing.T) {
	out, diags := Format("a = { x = 1\n", syntax.V1_1_0_Preview, DefaultOptions())
	if out != "" {
		t.Fatalf("expected empty output on unclosed inline table, got %q", out)
	}
	if len(diags) == 0 {
		t.Fatalf("expected at least one diagnostic")
	}
}

func TestFormatRefusesOnUnclosedTableHeader(t *testing.T) {
	out, diags := Format("[a\nx = 1\n", syntax.V1_1_0_Preview, DefaultOptions())
	if out != "" {
		t.Fatalf("expected empty output on unclosed table header, got %q", out)
	}
	if len(diags) == 0 {
		t.Fatalf("expected at least one diagnostic")
	}
}

func TestFormatIsIdempotent(t *testing.T) {
	src := "[a]\nx = [\n  1,\n  2,\n]\n\n[[b]]\ny = { z = 1 }\n"
	once := formatDefault(t, src)
	twice := formatDefault(t, once)
	if once != twice {
		t.Fatalf("format is not idempotent:\n%v", diff.LineDiff(once, twice))
	}
}
