package parser

import (
	"github.com/tombi-toml/tombi/synerr"
	"github.com/tombi-toml/tombi/syntax"
)

// parseKeyValue implements `KeyValue := Keys '=' Value`.
func parseKeyValue(p *Parser) {
	m := p.Start()
	parseKeys(p)
	if !p.eat(syntax.EQUAL) {
		p.error(synerr.ExpectedEq)
	}
	parseValue(p)
	m.Complete(p, syntax.KEY_VALUE)
}
