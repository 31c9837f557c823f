package parser

import (
	"github.com/tombi-toml/tombi/synerr"
	"github.com/tombi-toml/tombi/syntax"
)

// parseArrayOfTable implements `ArrayOfTable := '[[' Keys ']]' {KeyValue}*`
// (grounded on original_source/crates/parser/src/grammar/array_of_table.rs).
// The opening and closing bracket pairs are only consumed as compound
// DOUBLE_BRACKET tokens when atJoint confirmed no trivia separates them;
// parseRootItem already checked the opener, so only the closer needs the
// same check here.
func parseArrayOfTable(p *Parser) {
	m := p.Start()
	p.bumpCompound(syntax.DOUBLE_BRACKET_START, 2)
	parseKeys(p)
	switch {
	case p.atArrayOfTableEnd():
		p.bumpCompound(syntax.DOUBLE_BRACKET_END, 2)
	case p.eat(syntax.BRACKET_END):
		p.error(synerr.ExpectedDoubleBracketEnd)
	default:
		p.error(synerr.ExpectedDoubleBracketEnd)
	}
	parseSectionBody(p)
	m.Complete(p, syntax.ARRAY_OF_TABLE)
}
