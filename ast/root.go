// Package ast provides typed, cast-based wrappers over the rowan syntax
// tree (spec.md §4.6), mirroring original_source/crates/ast's design:
// each production gets its own Go type with a Syntax() accessor back to
// the underlying *rowan.RedNode, rather than exposing raw Kind checks to
// callers.
package ast

import (
	"github.com/tombi-toml/tombi/builder"
	"github.com/tombi-toml/tombi/rowan"
	"github.com/tombi-toml/tombi/synerr"
	"github.com/tombi-toml/tombi/syntax"
)

// Root is the top-level document node: a flat sequence of Table,
// ArrayOfTable and KeyValue items in source order.
type Root struct {
	syntax *rowan.RedNode
	Errors []synerr.Error
}

// Document builds a Root directly from source text, running the full
// lex → parse → build pipeline.
func Document(src string, version syntax.TomlVersion) *Root {
	return FromTree(builder.Build(parserResult(src, version)))
}

// FromTree wraps an already-built tree as a Root.
func FromTree(tree *builder.Tree) *Root {
	return &Root{syntax: tree.Root, Errors: tree.Errors}
}

func (r *Root) Syntax() *rowan.RedNode { return r.syntax }

// RootItem is the tagged union of what a document may contain at the
// top level.
type RootItem interface {
	Syntax() *rowan.RedNode
}

// Items returns every top-level Table, ArrayOfTable and KeyValue, in
// source order.
func (r *Root) Items() []RootItem {
	var out []RootItem
	for _, c := range r.syntax.Children() {
		switch c.Kind() {
		case syntax.TABLE:
			out = append(out, castTable(c))
		case syntax.ARRAY_OF_TABLE:
			out = append(out, castArrayOfTable(c))
		case syntax.KEY_VALUE:
			out = append(out, castKeyValue(c))
		}
	}
	return out
}

// Tables returns every top-level Table.
func (r *Root) Tables() []*Table {
	var out []*Table
	for _, c := range r.syntax.Children() {
		if t := castTable(c); t != nil {
			out = append(out, t)
		}
	}
	return out
}

// ArrayOfTables returns every top-level ArrayOfTable.
func (r *Root) ArrayOfTables() []*ArrayOfTable {
	var out []*ArrayOfTable
	for _, c := range r.syntax.Children() {
		if a := castArrayOfTable(c); a != nil {
			out = append(out, a)
		}
	}
	return out
}

// RootKeyValues returns every top-level (pre-table) KeyValue.
func (r *Root) RootKeyValues() []*KeyValue {
	var out []*KeyValue
	for _, c := range r.syntax.Children() {
		if kv := castKeyValue(c); kv != nil {
			out = append(out, kv)
		}
	}
	return out
}

// EndDanglingComments returns trailing comments at the very end of the
// document with no following item to attach to — only reachable when
// the document is comment-only, or ends with a bare root-level
// KeyValue. A trailing Table/ArrayOfTable instead absorbs them into its
// own EndDanglingComments: the builder nests a node's trailing trivia
// inside itself whenever nothing else gets bumped before its Finish
// event fires, so comments after the document's last KeyValue live
// nested inside that KeyValue's own subtree (or that section's, when a
// Table/ArrayOfTable is last) rather than as Root's direct children —
// reaching them takes a flat token walk, not a child-slice scan.
func (r *Root) EndDanglingComments() []Comment {
	lastKV := lastChildOfKind(r.syntax, syntax.KEY_VALUE)
	lastSection := lastChildOfKind(r.syntax, syntax.TABLE, syntax.ARRAY_OF_TABLE)
	if lastSection != nil && (lastKV == nil || lastSection.TextRange().Start > lastKV.TextRange().Start) {
		return nil
	}
	if lastKV == nil {
		// no root item at all: a comment-only document, where every
		// trivia token is already a direct child of Root itself.
		var comments []Comment
		for _, c := range r.syntax.ChildrenWithTokens() {
			if c.Kind() == syntax.COMMENT {
				tok, _ := c.(*rowan.RedToken)
				comments = append(comments, Comment{Token: tok, Position: EndDangling})
			}
		}
		return comments
	}
	last := lastSignificantToken(lastKV)
	if last == nil {
		return nil
	}
	return scanTrivia(last, nil, EndDangling, true, true)
}
