package main

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func TestResolveFilesPassesStdinThrough(t *testing.T) {
	got, err := resolveFiles([]string{"-"})
	if err != nil {
		t.Fatalf("resolveFiles: %v", err)
	}
	if len(got) != 1 || got[0] != "-" {
		t.Errorf("resolveFiles([-]) = %v, want [-]", got)
	}
}

func TestResolveFilesLiteralPathPassesThrough(t *testing.T) {
	got, err := resolveFiles([]string{"nonexistent.toml"})
	if err != nil {
		t.Fatalf("resolveFiles: %v", err)
	}
	if len(got) != 1 || got[0] != "nonexistent.toml" {
		t.Errorf("resolveFiles = %v, want [nonexistent.toml] (existence is checked on open, not here)", got)
	}
}

func TestResolveFilesExpandsGlob(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.toml", "b.toml", "c.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(""), 0o644); err != nil {
			t.Fatalf("writing fixture: %v", err)
		}
	}
	got, err := resolveFiles([]string{filepath.Join(dir, "*.toml")})
	if err != nil {
		t.Fatalf("resolveFiles: %v", err)
	}
	sort.Strings(got)
	want := []string{filepath.Join(dir, "a.toml"), filepath.Join(dir, "b.toml")}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("resolveFiles glob = %v, want %v", got, want)
	}
}

func TestResolveFilesGlobNoMatchErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := resolveFiles([]string{filepath.Join(dir, "*.toml")})
	if err == nil {
		t.Error("expected an error for a glob matching no files")
	}
}
