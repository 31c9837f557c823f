package lexer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tombi-toml/tombi/syntax"
)

type lexTest struct {
	name  string
	input string
	want  []Token
}

var lexTests = []lexTest{
	{"empty", "", nil},
	{"bare key value", "a = 1", []Token{
		{syntax.BARE_KEY, "a"},
		{syntax.WHITESPACE, " "},
		{syntax.EQUAL, "="},
		{syntax.WHITESPACE, " "},
		{syntax.INTEGER_DEC, "1"},
	}},
	{"dotted key", "a.b.c = 1", []Token{
		{syntax.BARE_KEY, "a"},
		{syntax.DOT, "."},
		{syntax.BARE_KEY, "b"},
		{syntax.DOT, "."},
		{syntax.BARE_KEY, "c"},
		{syntax.WHITESPACE, " "},
		{syntax.EQUAL, "="},
		{syntax.WHITESPACE, " "},
		{syntax.INTEGER_DEC, "1"},
	}},
	{"table header", "[a.b]\n", []Token{
		{syntax.BRACKET_START, "["},
		{syntax.BARE_KEY, "a"},
		{syntax.DOT, "."},
		{syntax.BARE_KEY, "b"},
		{syntax.BRACKET_END, "]"},
		{syntax.LINE_BREAK, "\n"},
	}},
	{"array of table header", "[[a]]\n", []Token{
		{syntax.BRACKET_START, "["},
		{syntax.BRACKET_START, "["},
		{syntax.BARE_KEY, "a"},
		{syntax.BRACKET_END, "]"},
		{syntax.BRACKET_END, "]"},
		{syntax.LINE_BREAK, "\n"},
	}},
	{"basic string", `s = "hello\nworld"`, []Token{
		{syntax.BARE_KEY, "s"},
		{syntax.WHITESPACE, " "},
		{syntax.EQUAL, "="},
		{syntax.WHITESPACE, " "},
		{syntax.BASIC_STRING, `"hello\nworld"`},
	}},
	{"literal string", `s = 'C:\temp'`, []Token{
		{syntax.BARE_KEY, "s"},
		{syntax.WHITESPACE, " "},
		{syntax.EQUAL, "="},
		{syntax.WHITESPACE, " "},
		{syntax.LITERAL_STRING, `'C:\temp'`},
	}},
	{"multi-line basic string", "s = \"\"\"line1\nline2\"\"\"", []Token{
		{syntax.BARE_KEY, "s"},
		{syntax.WHITESPACE, " "},
		{syntax.EQUAL, "="},
		{syntax.WHITESPACE, " "},
		{syntax.MULTI_LINE_BASIC_STRING, "\"\"\"line1\nline2\"\"\""},
	}},
	{"float", "f = 3.14", []Token{
		{syntax.BARE_KEY, "f"},
		{syntax.WHITESPACE, " "},
		{syntax.EQUAL, "="},
		{syntax.WHITESPACE, " "},
		{syntax.FLOAT, "3.14"},
	}},
	{"hex integer", "h = 0xDEAD_BEEF", []Token{
		{syntax.BARE_KEY, "h"},
		{syntax.WHITESPACE, " "},
		{syntax.EQUAL, "="},
		{syntax.WHITESPACE, " "},
		{syntax.INTEGER_HEX, "0xDEAD_BEEF"},
	}},
	{"boolean", "b = true", []Token{
		{syntax.BARE_KEY, "b"},
		{syntax.WHITESPACE, " "},
		{syntax.EQUAL, "="},
		{syntax.WHITESPACE, " "},
		{syntax.BOOLEAN, "true"},
	}},
	{"local date", "d = 1979-05-27", []Token{
		{syntax.BARE_KEY, "d"},
		{syntax.WHITESPACE, " "},
		{syntax.EQUAL, "="},
		{syntax.WHITESPACE, " "},
		{syntax.LOCAL_DATE, "1979-05-27"},
	}},
	{"offset date-time with T", "d = 1979-05-27T00:32:00Z", []Token{
		{syntax.BARE_KEY, "d"},
		{syntax.WHITESPACE, " "},
		{syntax.EQUAL, "="},
		{syntax.WHITESPACE, " "},
		{syntax.OFFSET_DATE_TIME, "1979-05-27T00:32:00Z"},
	}},
	{"offset date-time with space separator", "odt4 = 1979-05-27 00:32:00.999999-07:00", []Token{
		{syntax.BARE_KEY, "odt4"},
		{syntax.WHITESPACE, " "},
		{syntax.EQUAL, "="},
		{syntax.WHITESPACE, " "},
		{syntax.OFFSET_DATE_TIME, "1979-05-27 00:32:00.999999-07:00"},
	}},
	{"local time", "t = 00:32:00", []Token{
		{syntax.BARE_KEY, "t"},
		{syntax.WHITESPACE, " "},
		{syntax.EQUAL, "="},
		{syntax.WHITESPACE, " "},
		{syntax.LOCAL_TIME, "00:32:00"},
	}},
	{"comment", "# hello\n", []Token{
		{syntax.COMMENT, "# hello"},
		{syntax.LINE_BREAK, "\n"},
	}},
	{"inline table and array", "t = {a=1, b=[1,2]}", []Token{
		{syntax.BARE_KEY, "t"},
		{syntax.WHITESPACE, " "},
		{syntax.EQUAL, "="},
		{syntax.WHITESPACE, " "},
		{syntax.BRACE_START, "{"},
		{syntax.BARE_KEY, "a"},
		{syntax.EQUAL, "="},
		{syntax.INTEGER_DEC, "1"},
		{syntax.COMMA, ","},
		{syntax.WHITESPACE, " "},
		{syntax.BARE_KEY, "b"},
		{syntax.EQUAL, "="},
		{syntax.BRACKET_START, "["},
		{syntax.INTEGER_DEC, "1"},
		{syntax.COMMA, ","},
		{syntax.INTEGER_DEC, "2"},
		{syntax.BRACKET_END, "]"},
		{syntax.BRACE_END, "}"},
	}},
}

func TestLex(t *testing.T) {
	for _, tt := range lexTests {
		t.Run(tt.name, func(t *testing.T) {
			lexed := Lex(tt.input)
			if diff := cmp.Diff(tt.want, lexed.Tokens); diff != "" {
				t.Errorf("Lex(%q) tokens mismatch (-want +got):\n%s", tt.input, diff)
			}
			if lexed.Text() != tt.input {
				t.Errorf("Lex(%q).Text() = %q, want lossless round-trip", tt.input, lexed.Text())
			}
		})
	}
}

func TestLosslessOnMalformedInput(t *testing.T) {
	for _, input := range []string{
		`s = "unterminated`,
		`x = @@@`,
		`[[`,
		`k = `,
		"\x00weird\x01bytes",
	} {
		lexed := Lex(input)
		if lexed.Text() != input {
			t.Errorf("Lex(%q).Text() = %q, want lossless round-trip even on malformed input", input, lexed.Text())
		}
	}
}

func TestJointBitsForDoubleBracket(t *testing.T) {
	lexed := Lex("[[a]]\n")
	// significant tokens: [ [ a ] ]  -> indices 0..4 (the \n is trivia)
	if !lexed.IsJoint(0) {
		t.Error("expected the two leading '[' tokens to be joint")
	}
	if !lexed.IsJoint(3) {
		t.Error("expected the two trailing ']' tokens to be joint")
	}

	lexed2 := Lex("[ [a] ]\n")
	if lexed2.IsJoint(0) {
		t.Error("expected '[' ' ' '[' to NOT be joint across whitespace")
	}
}
