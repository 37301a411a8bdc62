// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"time"

	"quilldoc/internal/docwalk"
	"quilldoc/internal/issue"
	"quilldoc/internal/snippet"

	"github.com/spf13/cobra"
)

var (
	checkJSON    bool
	checkJobs    int
	checkTool    string
	checkTag     string
	checkTimeout int

	checkCmd = &cobra.Command{
		Use:   "check [paths...]",
		Short: "Validate quill snippets in documentation",
		Long: `Extract quill-tagged code fences from markdown documents and check
each one against the quill toolchain. Snippet fragments are wrapped in
the boilerplate they need before checking, and failures are reported at
documentation line numbers.

Paths may be directories (walked recursively for .md and .mdx files) or
individual documents. Without arguments the configured docs roots are
checked.`,
		RunE: runCheck,
	}
)

func init() {
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "output JSON summary to stdout")
	checkCmd.Flags().IntVar(&checkJobs, "jobs", 0, "max concurrently checked documents (default from config)")
	checkCmd.Flags().StringVar(&checkTool, "tool", "", "quill executable to check with (default from config)")
	checkCmd.Flags().StringVar(&checkTag, "tag", "", "fence language tag to select (default from config)")
	checkCmd.Flags().IntVar(&checkTimeout, "timeout", 0, "per-snippet check timeout in seconds (default from config)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg := activeConfig()

	roots := args
	if len(roots) == 0 {
		roots = cfg.Docs
	}

	tool := cfg.Language.Tool
	if checkTool != "" {
		tool = checkTool
	}
	tag := cfg.Language.Tag
	if checkTag != "" {
		tag = checkTag
	}
	timeout := cfg.Timeout()
	if checkTimeout > 0 {
		timeout = time.Duration(checkTimeout) * time.Second
	}
	jobs := cfg.Checker.Jobs
	if checkJobs > 0 {
		jobs = checkJobs
	}

	logger := newLogger(cmd.ErrOrStderr())

	checker := snippet.NewChecker(tool,
		snippet.WithTimeout(timeout),
		snippet.WithTempDir(cfg.Checker.TempDir),
		snippet.WithLogger(logger),
	)
	walker := docwalk.NewWalker(snippet.NewValidator(checker.Check),
		docwalk.WithTag(tag),
		docwalk.WithLogger(logger),
	)

	summary, err := walker.CheckTree(cmd.Context(), roots, jobs)
	if err != nil {
		svcErr := classifyCheckError(err)
		renderServiceError(cmd.ErrOrStderr(), svcErr)
		return &ExitError{Code: 1, Err: svcErr.Err}
	}

	if checkJSON {
		payload, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal summary: %w", err)
		}
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), string(payload)); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
		return nil
	}

	printCheckSummary(cmd, summary)
	return nil
}

// classifyCheckError maps a validation failure to an issue catalog entry and
// a styled message for CLI rendering.
func classifyCheckError(err error) *ServiceError {
	var issueID issue.Id

	var docErr *docwalk.DocError
	switch {
	case errors.As(err, &docErr):
		switch docErr.Kind {
		case snippet.FailureToolMissing:
			issueID = issue.ToolchainNotFoundId
		case snippet.FailureTimeout:
			issueID = issue.SyntaxCheckTimedOutId
		default:
			issueID = issue.SyntaxCheckFailedId
		}
	case errors.Is(err, fs.ErrNotExist):
		issueID = issue.DocsNotFoundId
	}

	styled := fmt.Sprintf("\n%s %s\n", ErrorStyle.Render("Error:"), formatErrorForDisplay(err, verbose))
	return newServiceError(err, issueID, styled)
}

func printCheckSummary(cmd *cobra.Command, summary docwalk.Summary) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, TitleStyle.Render("Snippet Check Summary"))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s %s\n", SubtitleStyle.Render("Documents:"), PathStyle.Render(strconv.Itoa(summary.Documents)))
	fmt.Fprintf(out, "%s %s\n", SubtitleStyle.Render("Fences:"), PathStyle.Render(strconv.Itoa(summary.Fences)))
	fmt.Fprintf(out, "%s %s\n", SubtitleStyle.Render("Checked:"), SuccessStyle.Render(strconv.Itoa(summary.Checked)))
	fmt.Fprintf(out, "%s %s\n", SubtitleStyle.Render("Skipped:"), WarningStyle.Render(strconv.Itoa(summary.Skipped)))
	failedStyle := SuccessStyle
	if summary.Failed > 0 {
		failedStyle = ErrorStyle
	}
	fmt.Fprintf(out, "%s %s\n", SubtitleStyle.Render("Failed:"), failedStyle.Render(strconv.Itoa(summary.Failed)))
}
