package parser

import (
	"github.com/tombi-toml/tombi/synerr"
	"github.com/tombi-toml/tombi/syntax"
)

// parseValue dispatches on lookahead alone, as the grammar requires: an
// inline table or array build their own composite node directly; a
// scalar value is wrapped in a generic VALUE node so the ast layer can
// treat every Value production as a node, not a bare token.
func parseValue(p *Parser) {
	switch {
	case p.at(syntax.BRACE_START):
		parseInlineTable(p)
	case p.at(syntax.BRACKET_START):
		parseArray(p)
	case p.current().IsScalarValueStart():
		m := p.Start()
		p.bumpAny()
		m.Complete(p, syntax.VALUE)
	default:
		p.error(synerr.ExpectedValue)
	}
}

// parseArray implements `Array := '[' (Value ',')* Value? ']'`. Newlines
// and comments between elements are ordinary trivia from the parser's
// point of view — it never special-cases them, since it only walks the
// significant token stream.
func parseArray(p *Parser) {
	m := p.Start()
	p.bump(syntax.BRACKET_START)
	for !p.at(syntax.BRACKET_END) && !p.atEOF() {
		if !p.current().CanStartValue() {
			p.errorAndRecover(synerr.ExpectedValue, []syntax.Kind{syntax.COMMA, syntax.BRACKET_END})
			if p.at(syntax.BRACKET_END) {
				break
			}
		}
		parseValue(p)
		if !p.eat(syntax.COMMA) {
			break
		}
	}
	if !p.eat(syntax.BRACKET_END) {
		p.error(synerr.ExpectedBracketEnd)
	}
	m.Complete(p, syntax.ARRAY)
}

// parseInlineTable implements `InlineTable := '{' (KeyValue ',')* KeyValue? '}'`.
// TOML 1.0 forbids a trailing comma before the closing brace; TOML 1.1
// permits it (spec.md's version-gated grammar). The parser always
// accepts it and only version-gates the diagnostic, so a 1.0 file with
// a trailing comma still round-trips losslessly through format/lint.
func parseInlineTable(p *Parser) {
	m := p.Start()
	p.bump(syntax.BRACE_START)
	for !p.at(syntax.BRACE_END) && !p.atEOF() {
		if !p.current().CanStartKey() {
			p.errorAndRecover(synerr.ExpectedKey, []syntax.Kind{syntax.COMMA, syntax.BRACE_END})
			if p.at(syntax.BRACE_END) {
				break
			}
		}
		parseKeyValue(p)
		if !p.at(syntax.COMMA) {
			break
		}
		p.bump(syntax.COMMA)
		if p.at(syntax.BRACE_END) && !p.version.AtLeast(syntax.V1_1_0_Preview) {
			p.error(synerr.TrailingCommaInInlineTableRequiresPreview)
		}
	}
	if !p.eat(syntax.BRACE_END) {
		p.error(synerr.ExpectedBracketEnd)
	}
	m.Complete(p, syntax.INLINE_TABLE)
}
