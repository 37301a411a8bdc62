// SPDX-License-Identifier: EPL-2.0

package issue

import "testing"

func TestGetKnownIssues(t *testing.T) {
	for _, id := range []Id{
		ToolchainNotFoundId,
		SyntaxCheckFailedId,
		SyntaxCheckTimedOutId,
		ConfigLoadFailedId,
		DocsNotFoundId,
		WatchFailedId,
	} {
		iss := Get(id)
		if iss == nil {
			t.Fatalf("Get(%d) = nil", id)
		}
		if iss.Id() != id {
			t.Errorf("Get(%d).Id() = %d", id, iss.Id())
		}
		if iss.MarkdownMsg() == "" {
			t.Errorf("issue %d has no markdown message", id)
		}
	}
}

func TestGetUnknownIssueIsNil(t *testing.T) {
	if iss := Get(Id(9999)); iss != nil {
		t.Errorf("Get(9999) = %v, want nil", iss)
	}
}

func TestValuesCoversCatalog(t *testing.T) {
	if got := len(Values()); got != 6 {
		t.Errorf("Values() returned %d issues, want 6", got)
	}
}

func TestRenderProducesOutput(t *testing.T) {
	original := render
	t.Cleanup(func() { render = original })
	render = func(in string, _ string) (string, error) { return in, nil }

	out, err := Get(ToolchainNotFoundId).Render("auto")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if out == "" {
		t.Error("Render produced empty output")
	}
}
