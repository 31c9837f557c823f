// Package lint implements the semantic checks spec.md §7 assigns to the
// layer above the parser: date/time literal validation, the dotted-key
// table conflict rule spec.md §9 describes, and JSON Schema validation
// via schemastore. None of this changes tree shape — it only ever reads
// an already-built *ast.Root.
package lint

import (
	"strconv"
	"strings"

	"github.com/tombi-toml/tombi/ast"
	"github.com/tombi-toml/tombi/syntax"
)

// BuildValue converts root into the minimal Go value tree schemastore
// needs to run JSON Schema validation: nested map[string]any/[]any plus
// string/int64/float64/bool/nil leaves. This is deliberately not a
// general TOML-to-Go decoder (spec.md's library API names parse/format/
// lint, never a "decode to struct" operation) — it exists only to feed
// jsonschema.Schema.Validate an `any` it understands.
func BuildValue(root *ast.Root) map[string]any {
	out := map[string]any{}
	for _, kv := range root.RootKeyValues() {
		setPath(out, keyPath(kv.Keys()), buildValue(kv.Value()))
	}
	for _, table := range root.Tables() {
		path := keyPath(table.Header())
		tbl := ensureTable(out, path)
		for _, kv := range table.KeyValues() {
			setPath(tbl, keyPath(kv.Keys()), buildValue(kv.Value()))
		}
	}
	for _, aot := range root.ArrayOfTables() {
		path := keyPath(aot.Header())
		tbl := map[string]any{}
		for _, kv := range aot.KeyValues() {
			setPath(tbl, keyPath(kv.Keys()), buildValue(kv.Value()))
		}
		appendArrayOfTable(out, path, tbl)
	}
	return out
}

func buildValue(v ast.Value) any {
	switch val := v.(type) {
	case nil:
		return nil
	case *ast.ScalarValue:
		return scalarValue(val)
	case *ast.Array:
		elems := val.Values()
		out := make([]any, 0, len(elems))
		for _, e := range elems {
			out = append(out, buildValue(e))
		}
		return out
	case *ast.InlineTable:
		out := map[string]any{}
		for _, kv := range val.KeyValues() {
			setPath(out, keyPath(kv.Keys()), buildValue(kv.Value()))
		}
		return out
	default:
		return nil
	}
}

// keyPath resolves a dotted Keys node to its logical segment strings.
// An unresolvable segment (escape error) falls back to its raw text
// rather than dropping the segment — a lint pass must still place the
// value somewhere.
func keyPath(keys *ast.Keys) []string {
	if keys == nil {
		return nil
	}
	segs := keys.Segments()
	out := make([]string, len(segs))
	for i, s := range segs {
		text, err := s.RawText()
		if err != nil {
			text = s.Syntax().FirstToken().Text()
		}
		out[i] = text
	}
	return out
}

func setPath(root map[string]any, path []string, value any) {
	if len(path) == 0 {
		return
	}
	m := ensureTable(root, path[:len(path)-1])
	m[path[len(path)-1]] = value
}

// ensureTable walks/creates the nested maps named by path, treating an
// already-present []any (an array of tables) as "descend into its last
// element" so dotted keys under the most recent [[array.of.table]] entry
// land in the right place.
func ensureTable(root map[string]any, path []string) map[string]any {
	m := root
	for _, seg := range path {
		next, ok := m[seg]
		if !ok {
			nm := map[string]any{}
			m[seg] = nm
			m = nm
			continue
		}
		switch n := next.(type) {
		case map[string]any:
			m = n
		case []any:
			if len(n) == 0 {
				nm := map[string]any{}
				n = append(n, nm)
				m[seg] = n
				m = nm
				continue
			}
			last, ok := n[len(n)-1].(map[string]any)
			if !ok {
				nm := map[string]any{}
				m[seg] = nm
				m = nm
				continue
			}
			m = last
		default:
			nm := map[string]any{}
			m[seg] = nm
			m = nm
		}
	}
	return m
}

func appendArrayOfTable(root map[string]any, path []string, entry map[string]any) {
	if len(path) == 0 {
		return
	}
	parent := ensureTable(root, path[:len(path)-1])
	key := path[len(path)-1]
	existing, _ := parent[key].([]any)
	parent[key] = append(existing, entry)
}

// scalarValue resolves a leaf token to the Go value a JSON Schema
// "type" check expects: string/bool/int64/float64, or the raw literal
// text for a date/time (schemas validate those with "format", which
// operates on the literal string form, not a parsed time.Time).
func scalarValue(v *ast.ScalarValue) any {
	if s, ok, err := v.StringValue(); ok && err == nil {
		return s
	}
	switch v.Kind() {
	case syntax.BOOLEAN:
		return v.RawText() == "true"
	case syntax.INTEGER_DEC:
		n, err := strconv.ParseInt(strings.ReplaceAll(v.RawText(), "_", ""), 10, 64)
		if err != nil {
			return v.RawText()
		}
		return n
	case syntax.INTEGER_HEX:
		n, err := strconv.ParseInt(strings.ReplaceAll(v.RawText(), "_", "")[2:], 16, 64)
		if err != nil {
			return v.RawText()
		}
		return n
	case syntax.INTEGER_OCT:
		n, err := strconv.ParseInt(strings.ReplaceAll(v.RawText(), "_", "")[2:], 8, 64)
		if err != nil {
			return v.RawText()
		}
		return n
	case syntax.INTEGER_BIN:
		n, err := strconv.ParseInt(strings.ReplaceAll(v.RawText(), "_", "")[2:], 2, 64)
		if err != nil {
			return v.RawText()
		}
		return n
	case syntax.FLOAT:
		f, err := strconv.ParseFloat(strings.ReplaceAll(v.RawText(), "_", ""), 64)
		if err != nil {
			return v.RawText()
		}
		return f
	case syntax.OFFSET_DATE_TIME, syntax.LOCAL_DATE_TIME, syntax.LOCAL_DATE, syntax.LOCAL_TIME:
		return v.RawText()
	default:
		return v.RawText()
	}
}
