// SPDX-License-Identifier: MPL-2.0

package snippet

import (
	"strings"
	"testing"
)

func TestIdentityWrap(t *testing.T) {
	text := "fn Main() `q`\nMain {}\n"
	wrapped, offset := Identity.Wrap(text)
	if wrapped != text {
		t.Errorf("identity changed the text: %q", wrapped)
	}
	if offset != 0 {
		t.Errorf("identity offset = %d, want 0", offset)
	}
}

func TestScopeWrapOffsetMatchesHeader(t *testing.T) {
	text := "let x = 1\nlet y = 2"
	wrapped, offset := ScopeWrap.Wrap(text)

	if offset != 2 {
		t.Fatalf("scope-wrap offset = %d, want 2", offset)
	}

	lines := strings.Split(wrapped, "\n")
	// The original first line must sit exactly offset lines down.
	if lines[offset] != "let x = 1" {
		t.Errorf("line %d = %q, want original first line", offset, lines[offset])
	}
	if !strings.HasSuffix(strings.TrimRight(wrapped, "\n"), "}") {
		t.Errorf("scope-wrap output not brace-terminated: %q", wrapped)
	}
}

func TestTestWrapOffsetMatchesHeader(t *testing.T) {
	text := "assert (1 == 1)"
	wrapped, offset := TestWrap.Wrap(text)

	if offset != 3 {
		t.Fatalf("test-wrap offset = %d, want 3", offset)
	}

	lines := strings.Split(wrapped, "\n")
	if lines[offset] != "assert (1 == 1)" {
		t.Errorf("line %d = %q, want original first line", offset, lines[offset])
	}
	if strings.Count(wrapped, "}") < 2 {
		t.Errorf("test-wrap must close both the test block and the scope: %q", wrapped)
	}
}

func TestWrapPreservesInteriorNewlines(t *testing.T) {
	text := "a\n\nb\n"
	wrapped, _ := ScopeWrap.Wrap(text)
	if !strings.Contains(wrapped, "a\n\nb") {
		t.Errorf("interior blank line lost: %q", wrapped)
	}
}
