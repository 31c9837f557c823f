package builder

import (
	"testing"

	"github.com/tombi-toml/tombi/lexer"
	"github.com/tombi-toml/tombi/parser"
	"github.com/tombi-toml/tombi/rowan"
	"github.com/tombi-toml/tombi/syntax"
)

func build(input string) *Tree {
	lexed := lexer.Lex(input)
	res := parser.Parse(lexed, syntax.DefaultTomlVersion)
	return Build(res)
}

var roundTripInputs = []string{
	"",
	"a = 1\n",
	"# comment\na = 1\n\n[table]\nb = 2\n",
	"[[arr]]\nx = 1\n[[arr]]\nx = 2\n",
	"inline = {a = 1, b = [1, 2, 3]}\n",
	"multi = \"\"\"\nline1\nline2\"\"\"\n",
	"bad = @@@\n",
	"[ [not-aot] ]\n",
	"trailing = \n",
}

func TestBuildRoundTripsLosslessly(t *testing.T) {
	for _, input := range roundTripInputs {
		tree := build(input)
		if got := tree.Root.Text().String(); got != input {
			t.Errorf("round-trip mismatch for %q: got %q", input, got)
		}
	}
}

func TestBuildRootKind(t *testing.T) {
	tree := build("a = 1\n")
	if tree.Root.Kind() != syntax.ROOT {
		t.Errorf("root kind = %v, want ROOT", tree.Root.Kind())
	}
}

func TestBuildErrorsHaveRanges(t *testing.T) {
	tree := build("a = \n")
	if len(tree.Errors) == 0 {
		t.Fatal("expected at least one error for a missing value")
	}
	for _, e := range tree.Errors {
		if e.Range.Start < 0 || e.Range.End > len("a = \n") {
			t.Errorf("error range out of bounds: %v", e.Range)
		}
	}
}

func TestBuildDoubleBracketIsOneToken(t *testing.T) {
	tree := build("[[arr]]\n")
	// The ARRAY_OF_TABLE node's first child must be a single
	// DOUBLE_BRACKET_START token with text "[[", not two separate
	// BRACKET_START tokens — the lossless payoff of joint-bit fusion.
	for _, c := range tree.Root.Children() {
		if c.Kind() != syntax.ARRAY_OF_TABLE {
			continue
		}
		first := c.FirstChildOrToken()
		if first == nil {
			t.Fatal("ARRAY_OF_TABLE has no children")
		}
		if first.Kind() != syntax.DOUBLE_BRACKET_START {
			t.Errorf("first child kind = %v, want DOUBLE_BRACKET_START", first.Kind())
		}
		if tok, ok := first.(*rowan.RedToken); ok && tok.Text() != "[[" {
			t.Errorf("first child text = %q, want \"[[\"", tok.Text())
		}
		return
	}
	t.Fatal("no ARRAY_OF_TABLE node found")
}
