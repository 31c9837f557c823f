package parser

import (
	"github.com/tombi-toml/tombi/synerr"
	"github.com/tombi-toml/tombi/syntax"
)

// parseRoot implements spec.md's top-level grammar: a document is a
// sequence of KeyValue, Table and ArrayOfTable items, in any order,
// under one implicit ROOT node.
func parseRoot(p *Parser) {
	m := p.Start()
	for !p.atEOF() {
		if p.shouldCancel() {
			break
		}
		parseRootItem(p)
	}
	m.Complete(p, syntax.ROOT)
}

func parseRootItem(p *Parser) {
	switch {
	case p.atArrayOfTableStart():
		parseArrayOfTable(p)
	case p.at(syntax.BRACKET_START):
		parseTable(p)
	case p.current().CanStartKey():
		parseKeyValue(p)
	default:
		// resynchronize at the end of the line (or at a header): every
		// token up to there is wrapped in an ERROR node.
		p.error(synerr.UnexpectedToken)
		for !p.atEOF() && !p.at(syntax.BRACKET_START) {
			m := p.Start()
			p.bumpAny()
			m.Complete(p, syntax.ERROR)
			for _, t := range p.lexed.Tokens[p.sig[p.pos-1]+1:] {
				if !t.Kind.IsTrivia() {
					break
				}
				if t.Kind == syntax.LINE_BREAK {
					return
				}
			}
		}
	}
}

// atArrayOfTableStart reports whether the cursor sits on a joint `[[`
// pair — the only thing that distinguishes an array-of-table header
// from a table header followed, coincidentally, by an array value.
func (p *Parser) atArrayOfTableStart() bool {
	return p.at(syntax.BRACKET_START) && p.nthKind(1) == syntax.BRACKET_START && p.atJoint()
}

func (p *Parser) atArrayOfTableEnd() bool {
	return p.at(syntax.BRACKET_END) && p.nthKind(1) == syntax.BRACKET_END && p.atJoint()
}

// atSectionEnd reports whether the cursor has reached the end of the
// current Table/ArrayOfTable body: either a new header or the document
// end.
func (p *Parser) atSectionEnd() bool {
	return p.atEOF() || p.at(syntax.BRACKET_START)
}
