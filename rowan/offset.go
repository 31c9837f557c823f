package rowan

// AtOffsetKind tags the result of TokenAtOffset: a position inside the
// text falls either nowhere (outside the tree), inside exactly one
// token, or exactly on the boundary between two adjacent tokens.
type AtOffsetKind int

const (
	AtOffsetNone AtOffsetKind = iota
	AtOffsetSingle
	AtOffsetBetween
)

// TokenAtOffset is the result of RedNode.TokenAtOffset, mirroring
// spec.md §4.2's `token_at_offset(pos) -> {None | Single | Between}`.
type TokenAtOffset struct {
	Kind        AtOffsetKind
	Token       *RedToken // set when Kind == AtOffsetSingle
	Left, Right *RedToken // set when Kind == AtOffsetBetween
}

// TokenAtOffset finds the leaf token(s) covering byte position pos.
func (r *RedNode) TokenAtOffset(pos int) TokenAtOffset {
	toks := r.leafTokens()
	for i, t := range toks {
		rng := t.TextRange()
		switch {
		case pos > rng.Start && pos < rng.End:
			return TokenAtOffset{Kind: AtOffsetSingle, Token: t}
		case pos == rng.Start:
			if i == 0 {
				return TokenAtOffset{Kind: AtOffsetSingle, Token: t}
			}
			return TokenAtOffset{Kind: AtOffsetBetween, Left: toks[i-1], Right: t}
		case pos == rng.End && i == len(toks)-1:
			return TokenAtOffset{Kind: AtOffsetSingle, Token: t}
		}
	}
	return TokenAtOffset{Kind: AtOffsetNone}
}

func (r *RedNode) leafTokens() []*RedToken {
	var out []*RedToken
	var walk func(n *RedNode)
	walk = func(n *RedNode) {
		for _, c := range n.ChildrenWithTokens() {
			switch v := c.(type) {
			case *RedToken:
				out = append(out, v)
			case *RedNode:
				walk(v)
			}
		}
	}
	walk(r)
	return out
}
