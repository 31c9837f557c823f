package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tombi-toml/tombi/config"
	"github.com/tombi-toml/tombi/format"
)

func newFormatCmd(cfg *config.Config) *cobra.Command {
	var check, watchFlag bool
	cmd := &cobra.Command{
		Use:   "format [files...]",
		Short: "Format TOML files, or standard input with \"-\"",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cfg, args, check, watchFlag)
		},
	}
	cmd.Flags().BoolVar(&check, "check", false, "report files that would change, without writing them; exit 1 if any would")
	cmd.Flags().BoolVar(&watchFlag, "watch", false, "after the initial run, re-format each file whenever it is saved")
	return cmd
}

func runFormat(cfg *config.Config, args []string, check, watchOn bool) error {
	files, err := resolveFiles(args)
	if err != nil {
		return withExitCode(err, exitUsage)
	}
	if len(files) == 0 {
		return withExitCode(fmt.Errorf("no input files given"), exitUsage)
	}

	failed := false
	for _, path := range files {
		if !formatOne(cfg, path, check) {
			failed = true
		}
	}

	if watchOn {
		if err := watchFiles(files, func(path string) {
			formatOne(cfg, path, check)
		}); err != nil {
			return withExitCode(err, exitUsage)
		}
		return nil
	}

	if failed {
		return withExitCode(fmt.Errorf("format found issues"), exitFailure)
	}
	return nil
}

// formatOne formats a single file (or stdin) and reports whether it
// succeeded without issues, matching the per-file logic runFormat's
// initial pass and --watch's re-run share.
func formatOne(cfg *config.Config, path string, check bool) bool {
	src, readErr := readFile(path)
	if readErr != nil {
		fmt.Fprintf(os.Stderr, "tombi: %v\n", readErr)
		return false
	}

	formatted, diags := format.Format(src, cfg.TomlVersion, cfg.Format)
	for _, d := range diags {
		fmt.Fprintln(os.Stderr, d.Error())
	}
	if len(diags) != 0 && formatted == "" {
		return false
	}

	switch {
	case check:
		if formatted != src {
			fmt.Print(unifiedDiff(displayName(path), src, formatted))
			return false
		}
	case path == "-":
		fmt.Print(formatted)
	default:
		if writeErr := os.WriteFile(path, []byte(formatted), 0o644); writeErr != nil {
			fmt.Fprintf(os.Stderr, "tombi: writing %s: %v\n", path, writeErr)
			return false
		}
	}
	return true
}

func readFile(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

func displayName(path string) string {
	if path == "-" {
		return "<stdin>"
	}
	return path
}
