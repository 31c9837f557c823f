package ast

import (
	"strings"

	"github.com/tombi-toml/tombi/rowan"
	"github.com/tombi-toml/tombi/syntax"
)

// CommentPosition classifies a comment relative to the blank-line-
// delimited group of lines it sits in, spec.md §4.6.
type CommentPosition int

const (
	// Leading: immediately precedes a construct, no blank line between.
	Leading CommentPosition = iota
	// Tailing: shares its line with the end of the preceding construct.
	Tailing
	// BeginDangling: follows a container's opener (or a section
	// header) with no entry to attach to — either the container has no
	// entries at all (e.g. a comment inside empty `{}` or `[]`), or a
	// blank line separates the comment group from the first entry.
	BeginDangling
	// EndDangling: follows every construct in its container with
	// nothing after it to attach to.
	EndDangling
)

// Comment wraps a single COMMENT token with its classification.
type Comment struct {
	Token    *rowan.RedToken
	Position CommentPosition
}

// Text returns the comment's text without its leading '#'.
func (c Comment) Text() string {
	return strings.TrimPrefix(strings.TrimPrefix(c.Token.Text(), "#"), " ")
}

// LeadingComments returns every comment immediately preceding n (no
// blank line between the comment and n, walking backward across any
// number of contiguous comment lines) — spec.md §4.6's leading group.
// A comment that itself shares a line with some earlier token is that
// token's tailing comment, not part of n's leading group, even though
// nothing but a single line break separates it from n; the walk stops
// there instead of claiming it twice.
func LeadingComments(n *rowan.RedNode) []Comment {
	first := n.FirstToken()
	if first == nil {
		return nil
	}
	var out []Comment
	tok := first.PrevToken()
	for tok != nil {
		switch tok.Kind() {
		case syntax.WHITESPACE:
			tok = tok.PrevToken()
			continue
		case syntax.LINE_BREAK:
			// a single line break just separates the comment from n;
			// two in a row (a blank line) ends the leading group.
			prev := tok.PrevToken()
			if prev != nil && prev.Kind() == syntax.LINE_BREAK {
				return reverseComments(out)
			}
			tok = prev
			continue
		case syntax.COMMENT:
			if isTailingComment(tok) {
				return reverseComments(out)
			}
			out = append(out, Comment{Token: tok, Position: Leading})
			tok = tok.PrevToken()
			continue
		default:
			return reverseComments(out)
		}
	}
	return reverseComments(out)
}

// isTailingComment reports whether tok shares its line with an earlier
// significant token — i.e. walking backward from tok hits that token
// before any line break.
func isTailingComment(tok *rowan.RedToken) bool {
	for p := tok.PrevToken(); p != nil; p = p.PrevToken() {
		switch p.Kind() {
		case syntax.WHITESPACE:
			continue
		case syntax.LINE_BREAK:
			return false
		default:
			return true
		}
	}
	return false
}

// lastSignificantToken returns n's rightmost non-trivia descendant leaf.
// Plain RedNode.LastToken can return a trivia token instead: the
// builder attaches a completed node's own trailing trivia inside
// itself whenever nothing else gets bumped before its Finish event
// fires (no comma, no sibling token forcing an earlier flush) — see
// builder.flushTrivia's doc comment. Walking backward from LastToken
// past any trailing trivia always lands on a token still inside n,
// since the overflow only ever extends past n's real content, never
// before it.
func lastSignificantToken(n *rowan.RedNode) *rowan.RedToken {
	for tok := n.LastToken(); tok != nil; tok = tok.PrevToken() {
		if !tok.Kind().IsTrivia() {
			return tok
		}
	}
	return nil
}

// TailingComment returns the comment sharing n's last line, if any.
func TailingComment(n *rowan.RedNode) (Comment, bool) {
	last := lastSignificantToken(n)
	if last == nil {
		return Comment{}, false
	}
	return TailingCommentAfter(last)
}

// TailingCommentAfter returns the comment sharing last's line, if any —
// the same scan TailingComment performs, but anchored on an arbitrary
// token rather than a node's last token. Used to find the comment after
// an Array/InlineTable element's trailing comma, which sits outside the
// element's own syntax node.
func TailingCommentAfter(last *rowan.RedToken) (Comment, bool) {
	for tok := last.NextToken(); tok != nil; tok = tok.NextToken() {
		switch tok.Kind() {
		case syntax.WHITESPACE:
			continue
		case syntax.COMMENT:
			return Comment{Token: tok, Position: Tailing}, true
		default:
			return Comment{}, false
		}
	}
	return Comment{}, false
}

// headerTailingComment returns the comment sharing the header closer's
// line — closerKind is BRACKET_END for a Table, DOUBLE_BRACKET_END for
// an ArrayOfTable.
func headerTailingComment(n *rowan.RedNode, closerKind syntax.Kind) (Comment, bool) {
	for _, c := range n.ChildrenWithTokens() {
		if c.Kind() == closerKind {
			if tok, ok := c.(*rowan.RedToken); ok {
				return TailingCommentAfter(tok)
			}
		}
	}
	return Comment{}, false
}

// firstChildOfKind returns n's first direct child node matching any of
// kinds, or nil.
func firstChildOfKind(n *rowan.RedNode, kinds ...syntax.Kind) *rowan.RedNode {
	for _, c := range n.ChildrenWithTokens() {
		for _, k := range kinds {
			if c.Kind() == k {
				if node, ok := c.(*rowan.RedNode); ok {
					return node
				}
			}
		}
	}
	return nil
}

// lastChildOfKind returns n's last direct child node matching any of
// kinds, or nil.
func lastChildOfKind(n *rowan.RedNode, kinds ...syntax.Kind) *rowan.RedNode {
	var out *rowan.RedNode
	for _, c := range n.ChildrenWithTokens() {
		for _, k := range kinds {
			if c.Kind() == k {
				if node, ok := c.(*rowan.RedNode); ok {
					out = node
				}
			}
		}
	}
	return out
}

// sectionBeginDanglingComments collects comments between the header
// closer and the section's first KeyValue, when there is no KeyValue
// before them to attach them to. If the section has no KeyValue at
// all, every comment found belongs here unconditionally.
func sectionBeginDanglingComments(n *rowan.RedNode, closerKind syntax.Kind) []Comment {
	var closer *rowan.RedToken
	for _, c := range n.ChildrenWithTokens() {
		if c.Kind() == closerKind {
			closer, _ = c.(*rowan.RedToken)
			break
		}
	}
	if closer == nil {
		return nil
	}
	firstKV := firstChildOfKind(n, syntax.KEY_VALUE)
	var stop *rowan.RedToken
	if firstKV != nil {
		stop = firstKV.FirstToken()
	}
	return scanTrivia(closer, stop, BeginDangling, firstKV == nil, true)
}

// sectionEndDanglingComments collects comments after the section's
// last KeyValue up to the end of its reach — which, because the
// builder attaches a node's trailing trivia inside itself when nothing
// else gets bumped before its Finish fires, extends through however
// many enclosing Finish events follow with no intervening token. A
// flat token walk from the last KeyValue's own last significant token
// reaches it regardless of how deep it ended up nested. When another
// item follows (the next header), the comment group directly above it,
// with no blank line between, is that header's leading group and is
// left out; at end of input every comment found is dangling.
func sectionEndDanglingComments(n *rowan.RedNode) []Comment {
	lastKV := lastChildOfKind(n, syntax.KEY_VALUE)
	if lastKV == nil {
		return nil
	}
	last := lastSignificantToken(lastKV)
	if last == nil {
		return nil
	}
	next := last.NextToken()
	for next != nil && next.Kind().IsTrivia() {
		next = next.NextToken()
	}
	return scanTrivia(last, next, EndDangling, next == nil, true)
}

func reverseComments(in []Comment) []Comment {
	out := make([]Comment, len(in))
	for i, c := range in {
		out[len(in)-1-i] = c
	}
	return out
}

// danglingComments handles Array/InlineTable begin/end dangling groups,
// mirroring sectionBeginDanglingComments/sectionEndDanglingComments for
// containers that have an explicit closing token.
//
// afterOpen (begin-dangling): comments between the opener and the
// first real child. If there is no real child at all, every comment
// found is dangling unconditionally (BeginDanglingComments then claims
// the whole comment-only container, and EndDanglingComments must
// return nothing to avoid reporting it twice). Otherwise only the
// portion separated from the first child by a blank line counts — the
// rest is that child's own leading group.
//
// !afterOpen (end-dangling): comments between the last real child and
// the closer, found via a flat walk from the child's own last
// significant token up to the closer token — see
// sectionEndDanglingComments for why a flat walk is required here.
func danglingComments(n *rowan.RedNode, boundary syntax.Kind, afterOpen bool, childKinds ...syntax.Kind) []Comment {
	var boundaryTok *rowan.RedToken
	for _, c := range n.ChildrenWithTokens() {
		if c.Kind() == boundary {
			if tok, ok := c.(*rowan.RedToken); ok {
				boundaryTok = tok
			}
			if afterOpen {
				break
			}
		}
	}
	if boundaryTok == nil {
		return nil
	}

	if afterOpen {
		// the opener has no separate "tailing comment" concept the way
		// a Table/ArrayOfTable header closer does, so a comment sharing
		// its line is not already claimed elsewhere.
		first := firstChildOfKind(n, childKinds...)
		var stop *rowan.RedToken
		if first != nil {
			stop = first.FirstToken()
		}
		return scanTrivia(boundaryTok, stop, BeginDangling, first == nil, false)
	}

	last := lastChildOfKind(n, childKinds...)
	if last == nil {
		// BeginDanglingComments already claimed everything in a
		// container with no real children.
		return nil
	}
	lastTok := lastSignificantToken(last)
	if lastTok == nil {
		return nil
	}
	return scanTrivia(lastTok, boundaryTok, EndDangling, true, true)
}

// scanTrivia walks forward in flat token order starting just after
// from (from itself excluded), classifying each COMMENT it crosses,
// until it reaches stop (excluded, matched by text offset — a RedNode
// cursor for the same token differs by pointer identity across
// separate constructions) or, if stop is nil, a non-trivia token or
// end of input.
//
// skipSameLine, when true, discards the first comment found sharing
// from's own line (no line break crossed yet) without classifying it —
// used when that comment is already claimed elsewhere as from's own
// tailing comment (a header closer's HeaderTailingComment, or an
// element's TailingComment/ValuesWithComma entry). An opening bracket
// has no such separate claim on its own line, so callers anchoring
// there pass false.
//
// collectAll true: every comment found past that point is dangling,
// since nothing past this scan will ever claim it as a leading
// comment. collectAll false: only a group separated from stop by a
// blank line (two consecutive line breaks) counts as dangling — the
// final contiguous group (no blank line before stop) is stop's own
// leading group instead, and is dropped.
//
// COMMA is treated as trivia here: it only ever appears as the
// separator after an Array/InlineTable element, never marking a new
// boundary in its own right.
func scanTrivia(from, stop *rowan.RedToken, pos CommentPosition, collectAll, skipSameLine bool) []Comment {
	var result, pending []Comment
	breaks := 0
	sameLine := true
	for tok := from.NextToken(); tok != nil; tok = tok.NextToken() {
		if stop != nil && tok.TextRange() == stop.TextRange() {
			break
		}
		switch tok.Kind() {
		case syntax.WHITESPACE, syntax.COMMA:
			continue
		case syntax.LINE_BREAK:
			breaks++
			sameLine = false
			if breaks >= 2 && len(pending) > 0 {
				result = append(result, pending...)
				pending = nil
			}
			continue
		case syntax.COMMENT:
			if sameLine && skipSameLine {
				sameLine = false
				continue
			}
			sameLine = false
			breaks = 0
			pending = append(pending, Comment{Token: tok, Position: pos})
		default:
			if collectAll {
				result = append(result, pending...)
			}
			return result
		}
	}
	if collectAll {
		result = append(result, pending...)
	}
	return result
}
