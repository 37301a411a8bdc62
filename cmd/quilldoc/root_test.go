// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"strings"
	"testing"

	"quilldoc/internal/issue"
)

func TestGetVersionStringDev(t *testing.T) {
	originalVersion := Version
	t.Cleanup(func() { Version = originalVersion })

	Version = "dev"
	if got := getVersionString(); got != "dev (built from source)" {
		t.Errorf("getVersionString() = %q", got)
	}
}

func TestGetVersionStringRelease(t *testing.T) {
	originalVersion, originalCommit, originalDate := Version, Commit, BuildDate
	t.Cleanup(func() {
		Version, Commit, BuildDate = originalVersion, originalCommit, originalDate
	})

	Version, Commit, BuildDate = "1.2.3", "abc123", "2026-08-01"
	got := getVersionString()
	for _, want := range []string{"1.2.3", "abc123", "2026-08-01"} {
		if !strings.Contains(got, want) {
			t.Errorf("getVersionString() = %q, missing %q", got, want)
		}
	}
}

func TestFormatErrorForDisplayUsesActionableFormat(t *testing.T) {
	err := issue.NewErrorContext().
		WithOperation("check snippet").
		WithSuggestion("Install the quill toolchain").
		Build()

	out := formatErrorForDisplay(err, false)
	if !strings.Contains(out, "failed to check snippet") {
		t.Errorf("output missing operation: %q", out)
	}
	if !strings.Contains(out, "Install the quill toolchain") {
		t.Errorf("output missing suggestion: %q", out)
	}
}

func TestFormatErrorForDisplayPlainError(t *testing.T) {
	if got := formatErrorForDisplay(errors.New("plain"), true); got != "plain" {
		t.Errorf("output = %q, want %q", got, "plain")
	}
}
