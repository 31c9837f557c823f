package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tombi-toml/tombi/watch"
)

// watchFiles blocks, re-running onChange for each file in files as it
// is saved, until the process receives SIGINT/SIGTERM. Used by
// `format --watch` and `lint --watch` (SPEC_FULL.md §3's domain-stack
// table names this as one of watch's two consumers, the LSP server's
// own config-file watch being the other, see lspserver).
func watchFiles(files []string, onChange func(path string)) error {
	targets := make([]string, 0, len(files))
	for _, f := range files {
		if f != "-" {
			targets = append(targets, f)
		}
	}
	if len(targets) == 0 {
		return fmt.Errorf("--watch requires at least one file argument (not stdin)")
	}

	w, err := watch.New(targets, onChange)
	if err != nil {
		return err
	}
	defer w.Close()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	return nil
}
