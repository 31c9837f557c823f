package main

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitCodeOfNil(t *testing.T) {
	if got := exitCodeOf(nil); got != exitSuccess {
		t.Errorf("exitCodeOf(nil) = %d, want %d", got, exitSuccess)
	}
}

func TestExitCodeOfPlainError(t *testing.T) {
	if got := exitCodeOf(errors.New("boom")); got != exitFailure {
		t.Errorf("exitCodeOf(plain error) = %d, want %d", got, exitFailure)
	}
}

func TestExitCodeOfUsageError(t *testing.T) {
	err := withExitCode(errors.New("bad flag"), exitUsage)
	if got := exitCodeOf(err); got != exitUsage {
		t.Errorf("exitCodeOf(usage error) = %d, want %d", got, exitUsage)
	}
}

func TestExitCodeOfWrappedUsageError(t *testing.T) {
	err := fmt.Errorf("context: %w", withExitCode(errors.New("bad flag"), exitUsage))
	if got := exitCodeOf(err); got != exitUsage {
		t.Errorf("exitCodeOf(wrapped usage error) = %d, want %d", got, exitUsage)
	}
}

func TestWithExitCodeNil(t *testing.T) {
	if err := withExitCode(nil, exitUsage); err != nil {
		t.Errorf("withExitCode(nil, ...) = %v, want nil", err)
	}
}
