// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"

	"quilldoc/internal/docwalk"
	"quilldoc/internal/issue"
	"quilldoc/internal/snippet"

	"github.com/spf13/cobra"
)

func TestClassifyCheckErrorByFailureKind(t *testing.T) {
	cases := []struct {
		name string
		kind snippet.FailureKind
		want issue.Id
	}{
		{"syntax failure", snippet.FailureSyntax, issue.SyntaxCheckFailedId},
		{"missing toolchain", snippet.FailureToolMissing, issue.ToolchainNotFoundId},
		{"timeout", snippet.FailureTimeout, issue.SyntaxCheckTimedOutId},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := &docwalk.DocError{
				Path:    "docs/guide.md",
				Line:    12,
				Kind:    tc.kind,
				Message: "boom",
			}
			svcErr := classifyCheckError(err)
			if svcErr.IssueID != tc.want {
				t.Errorf("IssueID = %d, want %d", svcErr.IssueID, tc.want)
			}
			if !strings.Contains(svcErr.StyledMessage, "docs/guide.md:12:1") {
				t.Errorf("styled message missing document location: %q", svcErr.StyledMessage)
			}
		})
	}
}

func TestClassifyCheckErrorMissingDocsRoot(t *testing.T) {
	err := fmt.Errorf("stat docs root: %w", fs.ErrNotExist)
	if svcErr := classifyCheckError(err); svcErr.IssueID != issue.DocsNotFoundId {
		t.Errorf("IssueID = %d, want DocsNotFoundId", svcErr.IssueID)
	}
}

func TestClassifyCheckErrorUnknownHasNoIssue(t *testing.T) {
	if svcErr := classifyCheckError(errors.New("wrapped doc walk breakage")); svcErr.IssueID != 0 {
		t.Errorf("IssueID = %d, want 0", svcErr.IssueID)
	}
}

func TestPrintCheckSummaryShowsCounts(t *testing.T) {
	var out bytes.Buffer
	c := &cobra.Command{}
	c.SetOut(&out)

	printCheckSummary(c, docwalk.Summary{
		Documents: 3,
		Fences:    7,
		Skipped:   2,
		Checked:   5,
		Failed:    0,
	})

	text := out.String()
	for _, want := range []string{"Snippet Check Summary", "3", "7", "5", "2"} {
		if !strings.Contains(text, want) {
			t.Errorf("summary output missing %q:\n%s", want, text)
		}
	}
}
