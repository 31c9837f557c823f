package main

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// unifiedDiff renders a line-level diff between before and after,
// prefixing unchanged lines with a space, removed lines with '-' and
// added lines with '+' — the shape `format --check` prints for a file
// that would change (SPEC_FULL.md §4, grounded on
// rust/tombi-cli/src/app/command/format.rs). Line-mode diffing
// (DiffLinesToChars/DiffCharsToLines) keeps the diff at line
// granularity instead of diffmatchpatch's default character
// granularity.
func unifiedDiff(path, before, after string) string {
	dmp := diffmatchpatch.New()
	chars1, chars2, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffMain(chars1, chars2, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	var sb strings.Builder
	fmt.Fprintf(&sb, "--- %s\n+++ %s\n", path, path)
	for _, d := range diffs {
		for _, line := range splitLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffDelete:
				sb.WriteString("-" + line + "\n")
			case diffmatchpatch.DiffInsert:
				sb.WriteString("+" + line + "\n")
			case diffmatchpatch.DiffEqual:
				sb.WriteString(" " + line + "\n")
			}
		}
	}
	return sb.String()
}

// splitLines splits s on '\n', dropping a single trailing empty
// element left by a trailing newline (DiffLinesToChars keeps line
// terminators attached to each line).
func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
