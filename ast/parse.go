package ast

import (
	"github.com/tombi-toml/tombi/lexer"
	"github.com/tombi-toml/tombi/parser"
	"github.com/tombi-toml/tombi/syntax"
)

func parserResult(src string, version syntax.TomlVersion) *parser.Result {
	return parser.Parse(lexer.Lex(src), version)
}
