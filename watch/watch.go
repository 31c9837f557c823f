// Package watch provides a small fsnotify-based file watcher, grounded
// on robfig-soy/bundle.go's Bundle.watcher/recompiler pair: a
// background goroutine reacts to filesystem events and re-adds a watch
// lost to a rename, the same recovery bundle.go's recompiler performs.
// Its one consumer is cmd/tombi's `--watch` flag (re-lint/re-format a
// file on every save); lspserver does not use it and does not reload
// tombi.toml while the server is running.
package watch

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Logger mirrors soy.Logger (bundle.go): a package-level stderr logger
// with a short prefix, the only logging mechanism this module uses —
// spec.md's toolchain is a CLI/LSP core, not a long-running service, so
// no structured logging framework earns its keep here.
var Logger = log.New(os.Stderr, "[tombi] ", 0)

// Watcher watches a fixed set of files and calls onChange whenever one
// of them is written, created, removed or renamed.
type Watcher struct {
	fsw      *fsnotify.Watcher
	onChange func(path string)
	done     chan struct{}
}

// New starts watching every path in files. onChange is called from the
// watcher's own goroutine — callers that mutate shared state from it
// must synchronize themselves, exactly as bundle.go's recompiler leaves
// registry updates "not goroutine-safe... as long as it works in
// practice" for a development aid.
func New(files []string, onChange func(path string)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("starting file watcher: %w", err)
	}
	w := &Watcher{fsw: fsw, onChange: onChange, done: make(chan struct{})}
	for _, f := range files {
		if err := fsw.Add(f); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("watching %q: %w", f, err)
		}
	}
	go w.run()
	return w, nil
}

// Add begins watching an additional path after New has returned.
func (w *Watcher) Add(path string) error {
	return w.fsw.Add(path)
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Rename|fsnotify.Remove) != 0 {
				// fsnotify drops the watch on a rename/remove; re-add
				// after a short delay the way bundle.go's recompiler
				// does, giving editors that write-via-rename a moment
				// to finish replacing the file.
				time.Sleep(10 * time.Millisecond)
				if err := w.fsw.Add(event.Name); err != nil {
					Logger.Println(err)
				}
			}
			w.onChange(event.Name)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			Logger.Println(err)
		case <-w.done:
			return
		}
	}
}

// Close stops the watcher and releases its underlying file descriptors.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}
