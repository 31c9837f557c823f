package parser

import (
	"github.com/tombi-toml/tombi/synerr"
	"github.com/tombi-toml/tombi/syntax"
)

// parseKeys implements `Keys := Key ('.' Key)*`. TOML 1.1 additionally
// permits a line break immediately before or after the dot. Such a line
// break is trivia, never consumed here (the builder attaches it), so
// parseKeys looks at the raw tokens around the dot and, under a version
// older than V1_1_0_Preview, records NewlineInDottedKeyRequiresPreview
// while still building the KEYS node.
func parseKeys(p *Parser) {
	m := p.Start()
	parseKey(p)
	for p.at(syntax.DOT) {
		from := 0
		if p.pos > 0 {
			from = p.sig[p.pos-1] + 1
		}
		p.bump(syntax.DOT)
		to := len(p.lexed.Tokens)
		if !p.atEOF() {
			to = p.sig[p.pos]
		}
		for _, t := range p.lexed.Tokens[from:to] {
			if t.Kind == syntax.LINE_BREAK && !p.version.AtLeast(syntax.V1_1_0_Preview) {
				p.error(synerr.NewlineInDottedKeyRequiresPreview)
				break
			}
		}
		if !p.current().CanStartKey() {
			p.errorAndRecover(synerr.ExpectedKey, []syntax.Kind{syntax.EQUAL, syntax.BRACKET_END, syntax.BRACKET_START})
			break
		}
		parseKey(p)
	}
	m.Complete(p, syntax.KEYS)
}

// parseKey wraps a single key segment in its variant node. Bare keys,
// integers, floats, booleans and date/times are all accepted as bare
// key spellings (syntax.Kind.CanStartKey's doc explains why); only the
// two quoted-string kinds get their own distinct wrapper.
func parseKey(p *Parser) {
	m := p.Start()
	switch cur := p.current(); {
	case cur == syntax.BASIC_STRING:
		p.bump(syntax.BASIC_STRING)
		m.Complete(p, syntax.BASIC_STRING_KEY)
	case cur == syntax.LITERAL_STRING:
		p.bump(syntax.LITERAL_STRING)
		m.Complete(p, syntax.LITERAL_STRING_KEY)
	case cur.CanStartKey():
		p.bumpAny()
		m.Complete(p, syntax.BARE_KEY_NODE)
	default:
		p.error(synerr.ExpectedKey)
		m.Abandon(p)
	}
}
