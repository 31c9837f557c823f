package main

import "testing"

func TestUnifiedDiffMarksAddedAndRemovedLines(t *testing.T) {
	before := "a = 1\nb = 2\n"
	after := "a = 1\nb = 3\n"
	out := unifiedDiff("x.toml", before, after)

	if want := "--- x.toml\n+++ x.toml\n"; out[:len(want)] != want {
		t.Errorf("unifiedDiff header = %q, want prefix %q", out, want)
	}
	if !containsLine(out, " a = 1") {
		t.Errorf("unifiedDiff output missing unchanged context line: %q", out)
	}
	if !containsLine(out, "-b = 2") {
		t.Errorf("unifiedDiff output missing removed line: %q", out)
	}
	if !containsLine(out, "+b = 3") {
		t.Errorf("unifiedDiff output missing added line: %q", out)
	}
}

func TestUnifiedDiffIdenticalTextHasNoChanges(t *testing.T) {
	src := "a = 1\n"
	out := unifiedDiff("x.toml", src, src)
	if containsLine(out, "-a = 1") || containsLine(out, "+a = 1") {
		t.Errorf("unifiedDiff on identical input produced a change line: %q", out)
	}
}

func containsLine(text, line string) bool {
	for _, l := range splitLines(text) {
		if l == line {
			return true
		}
	}
	return false
}
