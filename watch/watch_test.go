package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewWatchesFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tombi.toml")
	if err := os.WriteFile(path, []byte("a = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	changed := make(chan string, 1)
	w, err := New([]string{path}, func(p string) {
		select {
		case changed <- p:
		default:
		}
	})
	if err != nil {
		t.Fatalf("New returned an error: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("a = 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-changed:
		if got != path {
			t.Errorf("onChange called with %q, want %q", got, path)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("onChange was never called after a write")
	}
}

func TestNewErrorsOnMissingFile(t *testing.T) {
	_, err := New([]string{filepath.Join(t.TempDir(), "does-not-exist.toml")}, func(string) {})
	if err == nil {
		t.Fatal("expected an error watching a nonexistent path")
	}
}

func TestCloseStopsDelivery(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tombi.toml")
	if err := os.WriteFile(path, []byte("a = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	changed := make(chan string, 1)
	w, err := New([]string{path}, func(p string) { changed <- p })
	if err != nil {
		t.Fatalf("New returned an error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close returned an error: %v", err)
	}

	if err := os.WriteFile(path, []byte("a = 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-changed:
		t.Fatal("onChange fired after Close")
	case <-time.After(200 * time.Millisecond):
	}
}
