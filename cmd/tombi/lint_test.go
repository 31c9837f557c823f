package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tombi-toml/tombi/config"
)

func TestRunLintCleanFileSucceeds(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.toml")
	if err := os.WriteFile(path, []byte("a = 1\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	cfg := config.Default()
	if err := runLint(&cfg, []string{path}, false); err != nil {
		t.Errorf("runLint on a clean file returned %v, want nil", err)
	}
}

func TestRunLintReportsConflict(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.toml")
	if err := os.WriteFile(path, []byte("a.b = 1\n[a.b]\nx = 1\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	cfg := config.Default()
	err := runLint(&cfg, []string{path}, false)
	if got := exitCodeOf(err); got != exitFailure {
		t.Errorf("exitCodeOf(conflicting document) = %d, want %d", got, exitFailure)
	}
}

func TestRunLintNoFilesIsUsageError(t *testing.T) {
	cfg := config.Default()
	err := runLint(&cfg, nil, false)
	if got := exitCodeOf(err); got != exitUsage {
		t.Errorf("exitCodeOf(no files) = %d, want %d", got, exitUsage)
	}
}
