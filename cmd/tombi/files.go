package main

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// resolveFiles expands args into a concrete file list: "-" (stdin/
// stdout) passes through unchanged, an argument containing glob
// metacharacters is expanded against the filesystem with
// doublestar.FilepathGlob (so "**/*.toml" reaches into subdirectories,
// unlike filepath.Glob), and anything else is taken as a literal path
// — its existence is checked later, when it's actually opened, so a
// typo surfaces as a per-file processing failure rather than a
// blanket argument error.
func resolveFiles(args []string) ([]string, error) {
	var out []string
	for _, arg := range args {
		if arg == "-" {
			out = append(out, arg)
			continue
		}
		if !isGlobPattern(arg) {
			out = append(out, arg)
			continue
		}
		matches, err := doublestar.FilepathGlob(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("glob pattern %q matched no files", arg)
		}
		out = append(out, matches...)
	}
	return out, nil
}

func isGlobPattern(s string) bool {
	return strings.ContainsAny(s, "*?[")
}
