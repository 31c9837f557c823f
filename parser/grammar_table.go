package parser

import (
	"github.com/tombi-toml/tombi/synerr"
	"github.com/tombi-toml/tombi/syntax"
)

// parseTable implements `Table := '[' Keys ']' {KeyValue}*` (spec.md's
// Table module). The body runs until the next header or EOF.
func parseTable(p *Parser) {
	m := p.Start()
	p.bump(syntax.BRACKET_START)
	parseKeys(p)
	if !p.eat(syntax.BRACKET_END) {
		p.error(synerr.ExpectedBracketEnd)
	}
	parseSectionBody(p)
	m.Complete(p, syntax.TABLE)
}

// parseSectionBody consumes KeyValue items until the cursor reaches a
// new header or the document end; any token that can't start a key is
// resynchronized on rather than aborting the table.
func parseSectionBody(p *Parser) {
	for !p.atSectionEnd() {
		if p.shouldCancel() {
			return
		}
		if !p.current().CanStartKey() {
			p.errorAndRecover(synerr.UnexpectedToken, []syntax.Kind{syntax.BRACKET_START})
			continue
		}
		parseKeyValue(p)
	}
}
