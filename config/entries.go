package config

import (
	"strconv"

	"github.com/tombi-toml/tombi/ast"
	"github.com/tombi-toml/tombi/syntax"
)

// configEntry is one dotted-path leaf found anywhere in the config
// document — either a root key-value, or a key-value nested under a
// [table] header, its path the header's segments followed by its own.
type configEntry struct {
	path  []string
	value ast.Value
	kv    *ast.KeyValue
}

// flattenEntries walks root's top-level items and produces one
// configEntry per KeyValue, resolving each one's full dotted path by
// raw key text (so `[format]` + `indent-style` and the equivalent
// dotted `format.indent-style` root key both flatten to the same
// path) — scoped to exactly the shape spec.md §6.3's config keys need,
// not a general table-nesting resolver.
func flattenEntries(root *ast.Root) []configEntry {
	var out []configEntry
	for _, kv := range root.RootKeyValues() {
		out = append(out, configEntry{path: keyPath(kv.Keys()), value: kv.Value(), kv: kv})
	}
	for _, table := range root.Tables() {
		prefix := keyPath(table.Header())
		for _, kv := range table.KeyValues() {
			out = append(out, configEntry{path: append(append([]string{}, prefix...), keyPath(kv.Keys())...), value: kv.Value(), kv: kv})
		}
	}
	return out
}

func keyPath(keys *ast.Keys) []string {
	if keys == nil {
		return nil
	}
	var out []string
	for _, seg := range keys.Segments() {
		s, err := seg.RawText()
		if err != nil {
			s = ""
		}
		out = append(out, s)
	}
	return out
}

func stringValue(v ast.Value) (string, bool) {
	sv, ok := v.(*ast.ScalarValue)
	if !ok {
		return "", false
	}
	s, ok, err := sv.StringValue()
	if err != nil || !ok {
		return "", false
	}
	return s, true
}

func boolValue(v ast.Value) (bool, bool) {
	sv, ok := v.(*ast.ScalarValue)
	if !ok || sv.Kind() != syntax.BOOLEAN {
		return false, false
	}
	return sv.RawText() == "true", true
}

func intValue(v ast.Value) (int, bool) {
	sv, ok := v.(*ast.ScalarValue)
	if !ok || sv.Kind() != syntax.INTEGER_DEC {
		return 0, false
	}
	n, err := strconv.Atoi(sv.RawText())
	if err != nil {
		return 0, false
	}
	return n, true
}

// schemaRefs decodes the `schemas` array-of-inline-tables value into
// SchemaRef entries. A malformed element (missing/non-string `path`)
// causes the whole value to be rejected, surfaced as one warning by the
// caller rather than partial, silently-incomplete results.
func schemaRefs(v ast.Value) ([]SchemaRef, bool) {
	arr, ok := v.(*ast.Array)
	if !ok {
		return nil, false
	}
	var out []SchemaRef
	for _, elem := range arr.Values() {
		it, ok := elem.(*ast.InlineTable)
		if !ok {
			return nil, false
		}
		var ref SchemaRef
		havePath := false
		for _, kv := range it.KeyValues() {
			seg := keyPath(kv.Keys())
			if len(seg) != 1 {
				continue
			}
			switch seg[0] {
			case "path":
				s, ok := stringValue(kv.Value())
				if !ok {
					return nil, false
				}
				ref.Path = s
				havePath = true
			case "include":
				includeArr, ok := kv.Value().(*ast.Array)
				if !ok {
					return nil, false
				}
				for _, inc := range includeArr.Values() {
					s, ok := stringValue(inc)
					if !ok {
						return nil, false
					}
					ref.Include = append(ref.Include, s)
				}
			}
		}
		if !havePath {
			return nil, false
		}
		out = append(out, ref)
	}
	return out, true
}
