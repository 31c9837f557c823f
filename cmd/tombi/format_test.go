package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tombi-toml/tombi/config"
)

func TestRunFormatRewritesFileInPlace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.toml")
	if err := os.WriteFile(path, []byte("a    =    1\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	cfg := config.Default()
	if err := runFormat(&cfg, []string{path}, false, false); err != nil {
		t.Fatalf("runFormat: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading back formatted file: %v", err)
	}
	if want := "a = 1\n"; string(got) != want {
		t.Errorf("formatted file = %q, want %q", got, want)
	}
}

func TestRunFormatCheckReportsWithoutWriting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.toml")
	original := []byte("a    =    1\n")
	if err := os.WriteFile(path, original, 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	cfg := config.Default()
	err := runFormat(&cfg, []string{path}, true, false)
	if err == nil {
		t.Fatal("expected an error for a file that would change under --check")
	}
	if got := exitCodeOf(err); got != exitFailure {
		t.Errorf("exitCodeOf(--check failure) = %d, want %d", got, exitFailure)
	}
	got, readErr := os.ReadFile(path)
	if readErr != nil {
		t.Fatalf("reading back file: %v", readErr)
	}
	if string(got) != string(original) {
		t.Errorf("--check modified the file on disk: got %q, want unchanged %q", got, original)
	}
}

func TestRunFormatCheckCleanFileSucceeds(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.toml")
	if err := os.WriteFile(path, []byte("a = 1\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	cfg := config.Default()
	if err := runFormat(&cfg, []string{path}, true, false); err != nil {
		t.Errorf("runFormat --check on an already-clean file returned %v, want nil", err)
	}
}

func TestRunFormatNoFilesIsUsageError(t *testing.T) {
	cfg := config.Default()
	err := runFormat(&cfg, nil, false, false)
	if got := exitCodeOf(err); got != exitUsage {
		t.Errorf("exitCodeOf(no files) = %d, want %d", got, exitUsage)
	}
}
