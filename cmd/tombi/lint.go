package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tombi-toml/tombi/config"
	"github.com/tombi-toml/tombi/lint"
	"github.com/tombi-toml/tombi/schemastore"
)

func newLintCmd(cfg *config.Config) *cobra.Command {
	var watchFlag bool
	cmd := &cobra.Command{
		Use:   "lint [files...]",
		Short: "Check TOML files for syntax errors and semantic issues",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cfg, args, watchFlag)
		},
	}
	cmd.Flags().BoolVar(&watchFlag, "watch", false, "after the initial run, re-lint each file whenever it is saved")
	return cmd
}

func runLint(cfg *config.Config, args []string, watchOn bool) error {
	files, err := resolveFiles(args)
	if err != nil {
		return withExitCode(err, exitUsage)
	}
	if len(files) == 0 {
		return withExitCode(fmt.Errorf("no input files given"), exitUsage)
	}

	store, err := loadSchemas(cfg)
	if err != nil {
		return withExitCode(err, exitUsage)
	}

	failed := false
	for _, path := range files {
		if !lintOne(cfg, store, path) {
			failed = true
		}
	}

	if watchOn {
		if err := watchFiles(files, func(path string) {
			lintOne(cfg, store, path)
		}); err != nil {
			return withExitCode(err, exitUsage)
		}
		return nil
	}

	if failed {
		return withExitCode(fmt.Errorf("lint found issues"), exitFailure)
	}
	return nil
}

func lintOne(cfg *config.Config, store *schemastore.Store, path string) bool {
	src, readErr := readFile(path)
	if readErr != nil {
		fmt.Fprintf(os.Stderr, "tombi: %v\n", readErr)
		return false
	}
	diags := lint.Lint(src, cfg.TomlVersion, lint.Options{}, store, path)
	for _, d := range diags {
		d.File = displayName(path)
		fmt.Fprintln(os.Stderr, d.Error())
	}
	return len(diags) == 0
}

// loadSchemas builds a schemastore.Store from cfg.Schemas, resolved
// relative to the current directory (the same base a tombi.toml in
// the current directory would imply). Remote catalog fetching is
// skipped here: it needs an HTTPFetcher, an external collaborator this
// command doesn't wire up, per SPEC_FULL.md §4's "out of scope: HTTP".
func loadSchemas(cfg *config.Config) (*schemastore.Store, error) {
	if len(cfg.Schemas) == 0 {
		return nil, nil
	}
	dir, err := filepath.Abs(".")
	if err != nil {
		return nil, err
	}
	store := schemastore.New(nil)
	diags, err := store.LoadLocal(dir, cfg.Schemas)
	if err != nil {
		return nil, err
	}
	for _, d := range diags {
		fmt.Fprintln(os.Stderr, d.Error())
	}
	return store, nil
}
