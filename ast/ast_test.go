package ast

import (
	"testing"

	"github.com/tombi-toml/tombi/syntax"
)

func doc(input string) *Root {
	return Document(input, syntax.DefaultTomlVersion)
}

func TestDocumentRootKeyValues(t *testing.T) {
	r := doc("a = 1\nb = \"x\"\n")
	kvs := r.RootKeyValues()
	if len(kvs) != 2 {
		t.Fatalf("got %d root key-values, want 2", len(kvs))
	}
	if got := kvs[0].Keys().String(); got != "a" {
		t.Errorf("kvs[0].Keys() = %q, want %q", got, "a")
	}
	v, ok := kvs[1].Value().(*ScalarValue)
	if !ok {
		t.Fatalf("kvs[1].Value() is %T, want *ScalarValue", kvs[1].Value())
	}
	s, ok, err := v.StringValue()
	if err != nil || !ok || s != "x" {
		t.Errorf("StringValue() = (%q, %v, %v), want (\"x\", true, nil)", s, ok, err)
	}
}

func TestDocumentTablesAndArrayOfTables(t *testing.T) {
	r := doc("[a]\nx = 1\n[[arr]]\ny = 2\n[[arr]]\ny = 3\n")
	tables := r.Tables()
	if len(tables) != 1 {
		t.Fatalf("got %d tables, want 1", len(tables))
	}
	if got := tables[0].Header().String(); got != "a" {
		t.Errorf("table header = %q, want %q", got, "a")
	}

	aots := r.ArrayOfTables()
	if len(aots) != 2 {
		t.Fatalf("got %d array-of-tables, want 2", len(aots))
	}
	for i, aot := range aots {
		if got := aot.Header().String(); got != "arr" {
			t.Errorf("aot[%d] header = %q, want %q", i, got, "arr")
		}
	}

	items := r.Items()
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}
}

func TestKeysStartsWithAndSameAs(t *testing.T) {
	r := doc("a.b.c = 1\n\"a\".b = 2\n")
	kvs := r.RootKeyValues()
	long := kvs[0].Keys()
	short := kvs[1].Keys()

	if !long.StartsWith(short) {
		t.Error("a.b.c should start with quoted \"a\".b")
	}
	if long.SameAs(short) {
		t.Error("a.b.c should not be SameAs a.b (different length)")
	}
	if !short.SameAs(short) {
		t.Error("a key path should be SameAs itself")
	}
}

func TestArrayValues(t *testing.T) {
	r := doc("a = [1, 2, 3]\n")
	v := r.RootKeyValues()[0].Value()
	arr, ok := v.(*Array)
	if !ok {
		t.Fatalf("value is %T, want *Array", v)
	}
	vals := arr.Values()
	if len(vals) != 3 {
		t.Fatalf("got %d array values, want 3", len(vals))
	}
	for i, want := range []string{"1", "2", "3"} {
		sv, ok := vals[i].(*ScalarValue)
		if !ok || sv.RawText() != want {
			t.Errorf("vals[%d] = %v, want scalar %q", i, vals[i], want)
		}
	}
}

func TestArrayShouldBeMultilineOnInnerComment(t *testing.T) {
	r := doc("a = [\n1, # one\n2,\n]\n")
	arr := r.RootKeyValues()[0].Value().(*Array)
	if !arr.ShouldBeMultiline(syntax.DefaultTomlVersion) {
		t.Error("array with an inner comment should be multiline")
	}
}

func TestArrayShouldBeMultilineOnTrailingComma(t *testing.T) {
	r := doc("a = [1, 2,]\n")
	arr := r.RootKeyValues()[0].Value().(*Array)
	if !arr.ShouldBeMultiline(syntax.V1_1_0_Preview) {
		t.Error("trailing comma should force multiline under the 1.1 preview grammar")
	}
	if arr.ShouldBeMultiline(syntax.V1_0_0) {
		t.Error("TOML 1.0.0 has no trailing-comma-forces-multiline rule")
	}
}

func TestInlineTableKeyValuesWithComma(t *testing.T) {
	r := doc("t = {a = 1, b = 2}\n")
	it := r.RootKeyValues()[0].Value().(*InlineTable)
	entries := it.KeyValuesWithComma()
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Comma == nil {
		t.Error("first entry should have a trailing comma")
	}
	if entries[1].Comma != nil {
		t.Error("last entry should not have a trailing comma")
	}
}

func TestInlineTableShouldBeMultilineRequiresPreview(t *testing.T) {
	r := doc("t = {a = 1, b = 2,}\n")
	it := r.RootKeyValues()[0].Value().(*InlineTable)
	if it.ShouldBeMultiline(syntax.V1_0_0) {
		t.Error("TOML 1.0.0 inline tables are always single-line")
	}
	if !it.ShouldBeMultiline(syntax.V1_1_0_Preview) {
		t.Error("trailing comma should force multiline under the 1.1 preview grammar")
	}
}

func TestLeadingAndTailingComments(t *testing.T) {
	r := doc("# about a\na = 1 # inline\n\nb = 2\n")
	kvs := r.RootKeyValues()

	leading := LeadingComments(kvs[0].Syntax())
	if len(leading) != 1 || leading[0].Text() != "about a" {
		t.Errorf("leading comments = %+v, want one comment %q", leading, "about a")
	}

	tail, ok := TailingComment(kvs[0].Syntax())
	if !ok || tail.Text() != "inline" {
		t.Errorf("tailing comment = (%+v, %v), want (\"inline\", true)", tail, ok)
	}

	// a blank line separates b = 2 from the comment above a, so b has no
	// leading comments of its own.
	if got := LeadingComments(kvs[1].Syntax()); len(got) != 0 {
		t.Errorf("b's leading comments = %+v, want none (blank line breaks the group)", got)
	}
}

func TestInlineTableDanglingComments(t *testing.T) {
	r := doc("t = { # only a comment\n}\n")
	it := r.RootKeyValues()[0].Value().(*InlineTable)
	begin := it.BeginDanglingComments()
	if len(begin) != 1 || begin[0].Text() != "only a comment" {
		t.Errorf("begin dangling comments = %+v, want one comment %q", begin, "only a comment")
	}
}

// TestTableHeaderTailingCommentNotDoubleCounted guards against a
// comment sharing a table header's closing line also being claimed a
// second time, either as the following key-value's own leading comment
// or as a begin-dangling comment of the table body.
func TestTableHeaderTailingCommentNotDoubleCounted(t *testing.T) {
	r := doc("[a] # tailing\nx = 1\n")
	table := r.Tables()[0]

	tail, ok := table.HeaderTailingComment()
	if !ok || tail.Text() != "tailing" {
		t.Fatalf("header tailing comment = (%+v, %v), want (\"tailing\", true)", tail, ok)
	}

	if begin := table.BeginDanglingComments(); len(begin) != 0 {
		t.Errorf("begin dangling comments = %+v, want none", begin)
	}

	kv := table.KeyValues()[0]
	if leading := LeadingComments(kv.Syntax()); len(leading) != 0 {
		t.Errorf("x's leading comments = %+v, want none (already claimed as header's tailing comment)", leading)
	}
}

// TestArrayLastElementTailingCommentNotDoubleCounted guards against an
// array's last element lacking a trailing comma: builder.flushTrivia
// then nests that element's own same-line comment inside the element
// itself rather than as the array's direct child, which must still
// surface via ValuesWithComma's fallback anchor and must not also
// reappear in EndDanglingComments.
func TestArrayLastElementTailingCommentNotDoubleCounted(t *testing.T) {
	r := doc("a = [1, 2 # last\n]\n")
	arr := r.RootKeyValues()[0].Value().(*Array)

	entries := arr.ValuesWithComma()
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[1].Comma != nil {
		t.Error("last entry should have no trailing comma")
	}
	if entries[1].Comment == nil || entries[1].Comment.Text() != "last" {
		t.Errorf("last entry comment = %+v, want \"last\"", entries[1].Comment)
	}

	if end := arr.EndDanglingComments(); len(end) != 0 {
		t.Errorf("end dangling comments = %+v, want none (already claimed as the last element's tailing comment)", end)
	}
}

// TestArrayEndDanglingCommentAfterBlankLineNoTrailingComma checks the
// case ValuesWithComma's fallback anchor must still leave alone: a
// comment genuinely separated from the last element by a blank line,
// with no trailing comma to act as a circuit breaker, is a dangling
// comment rather than anyone's tailing comment.
func TestArrayEndDanglingCommentAfterBlankLineNoTrailingComma(t *testing.T) {
	r := doc("a = [\n  1\n\n  # trailing\n]\n")
	arr := r.RootKeyValues()[0].Value().(*Array)

	entries := arr.ValuesWithComma()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Comment != nil {
		t.Errorf("entry comment = %+v, want none (separated by a blank line)", entries[0].Comment)
	}

	end := arr.EndDanglingComments()
	if len(end) != 1 || end[0].Text() != "trailing" {
		t.Errorf("end dangling comments = %+v, want one comment %q", end, "trailing")
	}
}

func TestStringUnescaping(t *testing.T) {
	r := doc(`s = "a\tb\nc"` + "\n")
	v := r.RootKeyValues()[0].Value().(*ScalarValue)
	s, ok, err := v.StringValue()
	if err != nil || !ok {
		t.Fatalf("StringValue() = (%q, %v, %v)", s, ok, err)
	}
	if want := "a\tb\nc"; s != want {
		t.Errorf("StringValue() = %q, want %q", s, want)
	}
}

func TestStringUnescapingNormalizesToNFC(t *testing.T) {
	// \u0065 is "e"; \u0301 is a combining acute accent. NFC composes
	// the decoded pair into the single precomposed codepoint U+00E9.
	r := doc("s = \"\\u0065\\u0301\"\n")
	v := r.RootKeyValues()[0].Value().(*ScalarValue)
	s, ok, err := v.StringValue()
	if err != nil || !ok {
		t.Fatalf("StringValue() = (%q, %v, %v)", s, ok, err)
	}
	if want := "\u00e9"; s != want {
		t.Errorf("StringValue() = %q (%d runes), want precomposed %q (%d rune)", s, len([]rune(s)), want, len([]rune(want)))
	}
}

func TestErrorsSurviveMalformedInput(t *testing.T) {
	r := doc("a = @@@\n")
	if len(r.Errors) == 0 {
		t.Error("expected at least one syntax error for malformed input")
	}
	// parsing never aborts: the document still has the key-value node.
	if len(r.RootKeyValues()) != 1 {
		t.Errorf("got %d root key-values, want 1 even with a malformed value", len(r.RootKeyValues()))
	}
}
