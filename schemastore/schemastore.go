// Package schemastore compiles and applies JSON Schemas to a TOML
// document, per SPEC_FULL.md §4's schema-store feature: a local catalog
// (`config.SchemaRef`) plus, when enabled, a remote SchemaStore-style
// catalog fetch. Grounded on
// _examples/other_examples/manifests/maurice-toml (the pack's only
// santhosh-tekuri/jsonschema/v6 consumer) for the library choice, and on
// original_source/crates/json-schema-store and
// original_source/crates/schema-store for the local/remote split and
// per-path association shape.
package schemastore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/tombi-toml/tombi/config"
	"github.com/tombi-toml/tombi/diagnostic"
)

// HTTPFetcher is the only way this package reaches outside the local
// filesystem. Per spec.md's "out of scope: HTTP" the store never dials
// a socket itself — a catalog fetch is only possible when the caller
// (cmd/tombi, lspserver) injects a concrete fetcher.
type HTTPFetcher interface {
	Fetch(url string) ([]byte, error)
}

// Store compiles and caches JSON Schemas, and resolves which schema (if
// any) applies to a given source file path.
type Store struct {
	fetcher HTTPFetcher
	schemas map[string]*jsonschema.Schema
	assocs  []association
}

type association struct {
	path    string // schema file path or catalog URL, used as cache key
	include []string
}

// New creates an empty Store. fetcher may be nil — only LoadCatalog
// needs one; local schema loading never does.
func New(fetcher HTTPFetcher) *Store {
	return &Store{fetcher: fetcher, schemas: make(map[string]*jsonschema.Schema)}
}

// LoadLocal compiles and registers every entry in refs, reading each
// schema file from disk, a relative Path being joined onto dir (refs' Path is
// typically relative to the tombi.toml that declared them).
func (s *Store) LoadLocal(dir string, refs []config.SchemaRef) ([]diagnostic.Diagnostic, error) {
	var diags []diagnostic.Diagnostic
	for _, ref := range refs {
		full := ref.Path
		if !filepath.IsAbs(full) {
			full = filepath.Join(dir, full)
		}
		if _, ok := s.schemas[full]; ok {
			s.assocs = append(s.assocs, association{path: full, include: ref.Include})
			continue
		}
		sch, err := compileFile(full)
		if err != nil {
			diags = append(diags, diagnostic.Diagnostic{
				Severity: diagnostic.SeverityWarning,
				Message:  fmt.Sprintf("loading schema %q: %v", full, err),
			})
			continue
		}
		s.schemas[full] = sch
		s.assocs = append(s.assocs, association{path: full, include: ref.Include})
	}
	return diags, nil
}

func compileFile(path string) (*jsonschema.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing schema JSON: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(path, doc); err != nil {
		return nil, fmt.Errorf("adding schema resource: %w", err)
	}
	return c.Compile(path)
}

// CatalogEntry mirrors the SchemaStore.org catalog shape (`schemas`
// array with a `url` and `fileMatch` glob list), the remote-catalog
// side of SPEC_FULL.md §4.
type CatalogEntry struct {
	Name      string   `json:"name"`
	URL       string   `json:"url"`
	FileMatch []string `json:"fileMatch"`
}

type catalogDoc struct {
	Schemas []CatalogEntry `json:"schemas"`
}

// LoadCatalog fetches and compiles every schema referenced by the
// catalog at catalogURL (only called when config.SchemaCatalogEnabled
// is true), associating each by its fileMatch glob patterns.
func (s *Store) LoadCatalog(catalogURL string) ([]diagnostic.Diagnostic, error) {
	if s.fetcher == nil {
		return nil, fmt.Errorf("schema catalog is enabled but no HTTPFetcher was configured")
	}
	raw, err := s.fetcher.Fetch(catalogURL)
	if err != nil {
		return nil, fmt.Errorf("fetching schema catalog: %w", err)
	}
	var doc catalogDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parsing schema catalog: %w", err)
	}

	var diags []diagnostic.Diagnostic
	for _, entry := range doc.Schemas {
		if _, ok := s.schemas[entry.URL]; ok {
			s.assocs = append(s.assocs, association{path: entry.URL, include: entry.FileMatch})
			continue
		}
		raw, err := s.fetcher.Fetch(entry.URL)
		if err != nil {
			diags = append(diags, diagnostic.Diagnostic{Severity: diagnostic.SeverityWarning, Message: fmt.Sprintf("fetching schema %q: %v", entry.URL, err)})
			continue
		}
		schemaDoc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
		if err != nil {
			diags = append(diags, diagnostic.Diagnostic{Severity: diagnostic.SeverityWarning, Message: fmt.Sprintf("parsing schema %q: %v", entry.URL, err)})
			continue
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(entry.URL, schemaDoc); err != nil {
			diags = append(diags, diagnostic.Diagnostic{Severity: diagnostic.SeverityWarning, Message: fmt.Sprintf("adding schema resource %q: %v", entry.URL, err)})
			continue
		}
		sch, err := c.Compile(entry.URL)
		if err != nil {
			diags = append(diags, diagnostic.Diagnostic{Severity: diagnostic.SeverityWarning, Message: fmt.Sprintf("compiling schema %q: %v", entry.URL, err)})
			continue
		}
		s.schemas[entry.URL] = sch
		s.assocs = append(s.assocs, association{path: entry.URL, include: entry.FileMatch})
	}
	return diags, nil
}

// SchemaFor returns the first registered schema whose include globs
// match sourcePath (matched with doublestar so `**` patterns work the
// way a SchemaStore fileMatch list or a tombi.toml `include` does), or
// nil if no schema applies. A schema with no include patterns at all
// matches every path — e.g. a single project-wide schema entry.
func (s *Store) SchemaFor(sourcePath string) *jsonschema.Schema {
	base := filepath.Base(sourcePath)
	for _, a := range s.assocs {
		if len(a.include) == 0 {
			return s.schemas[a.path]
		}
		for _, pattern := range a.include {
			if ok, _ := doublestar.Match(pattern, sourcePath); ok {
				return s.schemas[a.path]
			}
			if ok, _ := doublestar.Match(pattern, base); ok {
				return s.schemas[a.path]
			}
		}
	}
	return nil
}

// Validate runs schema against doc (built by lint's minimal document
// tree — see lint.BuildValue) and converts any failure into a
// Diagnostic. jsonschema.ValidationError's Error() already renders the
// full cause chain (every failing sub-schema and its instance path) as
// a single multi-line message, which is what lint surfaces to the CLI
// and LSP as one schema-validation finding per document.
func Validate(schema *jsonschema.Schema, doc any) []diagnostic.Diagnostic {
	if schema == nil {
		return nil
	}
	err := schema.Validate(doc)
	if err == nil {
		return nil
	}
	return []diagnostic.Diagnostic{{
		Severity: diagnostic.SeverityError,
		Message:  fmt.Sprintf("schema validation failed: %s", err),
	}}
}
