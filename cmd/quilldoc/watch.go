// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"quilldoc/internal/docwalk"
	"quilldoc/internal/issue"
	"quilldoc/internal/snippet"
	"quilldoc/internal/watch"

	"github.com/spf13/cobra"
)

var (
	watchDebounce int

	watchCmd = &cobra.Command{
		Use:   "watch [root]",
		Short: "Re-check documentation snippets as they change",
		Long: `Run an initial check over the documentation tree, then watch for
markdown changes and re-check only the documents that changed. The
watcher runs until interrupted (Ctrl+C).

The root argument defaults to the current directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runWatch,
	}
)

func init() {
	watchCmd.Flags().IntVar(&watchDebounce, "debounce", 0, "quiet period in milliseconds before re-checking (default 500)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg := activeConfig()

	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	logger := newLogger(cmd.ErrOrStderr())

	checker := snippet.NewChecker(cfg.Language.Tool,
		snippet.WithTimeout(cfg.Timeout()),
		snippet.WithTempDir(cfg.Checker.TempDir),
		snippet.WithLogger(logger),
	)
	walker := docwalk.NewWalker(snippet.NewValidator(checker.Check),
		docwalk.WithTag(cfg.Language.Tag),
		docwalk.WithLogger(logger),
	)

	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()

	// Check the whole tree once before settling into incremental mode so
	// pre-existing breakage surfaces immediately.
	fmt.Fprintf(stdout, "%s Initial check of %s\n", PathStyle.Render("→"), root)
	if summary, err := walker.CheckTree(cmd.Context(), []string{root}, cfg.Checker.Jobs); err != nil {
		// Report but keep watching; the user may fix the document and save.
		renderServiceError(stderr, classifyCheckError(err))
	} else {
		fmt.Fprintf(stdout, "%s %d fence(s) across %d document(s) ok\n",
			SuccessStyle.Render("✓"), summary.Checked, summary.Documents)
	}

	fmt.Fprintf(stdout, "\n%s Watching for changes (Ctrl+C to stop)...\n\n", PathStyle.Render("→"))

	w, err := watch.New(watch.Config{
		Root:     root,
		Debounce: time.Duration(watchDebounce) * time.Millisecond,
		Logger:   logger,
		OnChange: func(ctx context.Context, changed []string) error {
			recheckDocs(ctx, walker, stdout, stderr, root, changed)
			return nil
		},
	})
	if err != nil {
		svcErr := newServiceError(err, issue.WatchFailedId, fmt.Sprintf("\n%s %v\n", ErrorStyle.Render("Error:"), err))
		renderServiceError(stderr, svcErr)
		return &ExitError{Code: 1, Err: err}
	}

	if runErr := w.Run(cmd.Context()); runErr != nil {
		svcErr := newServiceError(runErr, issue.WatchFailedId, fmt.Sprintf("\n%s %v\n", ErrorStyle.Render("Error:"), runErr))
		renderServiceError(stderr, svcErr)
		return &ExitError{Code: 1, Err: runErr}
	}
	return nil
}

// recheckDocs validates each changed document independently so one broken
// document does not hide failures in the others.
func recheckDocs(ctx context.Context, walker *docwalk.Walker, stdout, stderr io.Writer, root string, changed []string) {
	fmt.Fprintf(stdout, "%s Detected %d change(s). Re-checking...\n", PathStyle.Render("→"), len(changed))

	failures := 0
	for _, rel := range changed {
		path := filepath.Join(root, rel)
		if _, err := walker.CheckFile(ctx, path); err != nil {
			failures++
			var docErr *docwalk.DocError
			if errors.As(err, &docErr) {
				fmt.Fprintf(stderr, "%s %s\n", ErrorStyle.Render("✗"), docErr.Error())
			} else {
				fmt.Fprintf(stderr, "%s %s: %v\n", ErrorStyle.Render("✗"), path, err)
			}
		} else {
			fmt.Fprintf(stdout, "%s %s\n", SuccessStyle.Render("✓"), path)
		}
	}

	if failures == 0 {
		fmt.Fprintf(stdout, "\n%s All changed documents ok. Watching...\n\n", PathStyle.Render("→"))
	} else {
		fmt.Fprintf(stdout, "\n%s %d document(s) failing. Watching...\n\n", PathStyle.Render("→"), failures)
	}
}
