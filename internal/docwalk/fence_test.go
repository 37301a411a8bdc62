// SPDX-License-Identifier: MPL-2.0

package docwalk

import (
	"strings"
	"testing"
)

func TestExtractFences(t *testing.T) {
	doc := strings.Join([]string{
		"# Title",
		"",
		"```quill",
		"fn Main() `q`",
		"Main {}",
		"```",
		"prose",
		"```bash",
		"echo hi",
		"```",
		"```quill skip extra",
		"whatever",
		"```",
	}, "\n")

	fences := ExtractFences(strings.Split(doc, "\n"))
	if len(fences) != 3 {
		t.Fatalf("extracted %d fences, want 3", len(fences))
	}

	first := fences[0]
	if first.Lang != "quill" {
		t.Errorf("first fence lang = %q", first.Lang)
	}
	if first.StartLine != 3 {
		t.Errorf("first fence start line = %d, want 3", first.StartLine)
	}
	if first.Text != "fn Main() `q`\nMain {}" {
		t.Errorf("first fence text = %q", first.Text)
	}
	if first.HasSkipToken() {
		t.Error("first fence unexpectedly carries skip token")
	}

	if fences[1].Lang != "bash" {
		t.Errorf("second fence lang = %q", fences[1].Lang)
	}

	third := fences[2]
	if !third.HasSkipToken() {
		t.Error("third fence should carry skip token")
	}
	if len(third.Meta) != 2 {
		t.Errorf("third fence meta = %v, want [skip extra]", third.Meta)
	}
}

func TestExtractFencesDropsUnterminated(t *testing.T) {
	lines := []string{"```quill", "fn Main"}
	fences := ExtractFences(lines)
	if len(fences) != 0 {
		t.Fatalf("extracted %d fences from unterminated input, want 0", len(fences))
	}
}

func TestExtractFencesUntaggedFence(t *testing.T) {
	lines := []string{"```", "plain", "```"}
	fences := ExtractFences(lines)
	if len(fences) != 1 {
		t.Fatalf("extracted %d fences, want 1", len(fences))
	}
	if fences[0].Lang != "" {
		t.Errorf("lang = %q, want empty", fences[0].Lang)
	}
}
