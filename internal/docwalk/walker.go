// SPDX-License-Identifier: MPL-2.0

package docwalk

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"quilldoc/internal/snippet"
)

// DefaultTag is the canonical fence language tag for quill snippets.
const DefaultTag = "quill"

// defaultJobs bounds concurrent document validation when the caller does not
// choose a limit.
const defaultJobs = 4

// skipDirs are directory names never descended into while discovering docs.
var skipDirs = map[string]struct{}{
	".git":         {},
	"node_modules": {},
	"vendor":       {},
	"dist":         {},
	"build":        {},
	".idea":        {},
	".vscode":      {},
}

type (
	// DocError is a validation failure pinned to a document location. Line
	// is 1-based in document coordinates; Column is always 1 because the
	// checker's column refers to the wrapped candidate, not the document.
	DocError struct {
		Path    string
		Line    int
		Kind    snippet.FailureKind
		Message string
	}

	// Summary aggregates one validation pass over a set of documents.
	Summary struct {
		Documents int `json:"documents"`
		Fences    int `json:"fences"`
		Skipped   int `json:"skipped"`
		Checked   int `json:"checked"`
		Failed    int `json:"failed"`
	}

	// Walker applies the snippet validation pipeline to every quill-tagged
	// fence in a document. Construct with NewWalker.
	Walker struct {
		tag       string
		validator *snippet.Validator
		logger    *log.Logger
	}
)

// Error formats the failure the way editors expect: path:line:col: message.
func (e *DocError) Error() string {
	return fmt.Sprintf("%s:%d:1: %s", e.Path, e.Line, e.Message)
}

// WalkerOption configures a Walker.
type WalkerOption func(*Walker)

// WithTag overrides the fence language tag that selects snippets.
func WithTag(tag string) WalkerOption {
	return func(w *Walker) {
		if tag != "" {
			w.tag = tag
		}
	}
}

// WithLogger attaches a logger for per-fence progress at debug level.
func WithLogger(logger *log.Logger) WalkerOption {
	return func(w *Walker) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// NewWalker creates a Walker that validates fences with the given validator.
func NewWalker(validator *snippet.Validator, opts ...WalkerOption) *Walker {
	w := &Walker{
		tag:       DefaultTag,
		validator: validator,
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// CheckFile validates every quill-tagged fence in one document, failing fast
// on the first Failed verdict. The returned error is a *DocError for
// validation failures and a plain error for I/O or invocation breakage.
// The summary counts what was processed up to the failure.
func (w *Walker) CheckFile(ctx context.Context, path string) (Summary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Summary{}, fmt.Errorf("read document: %w", err)
	}

	summary := Summary{Documents: 1}
	for _, fence := range ExtractFences(strings.Split(string(data), "\n")) {
		if fence.Lang != w.tag {
			continue
		}
		summary.Fences++

		if fence.HasSkipToken() {
			summary.Skipped++
			w.logger.Debug("fence skipped by directive", "path", path, "line", fence.StartLine)
			continue
		}

		verdict, err := w.validator.Validate(ctx, fence.Text)
		if err != nil {
			return summary, fmt.Errorf("%s:%d: %w", path, fence.StartLine, err)
		}

		switch verdict.Status {
		case snippet.StatusSkipped:
			summary.Skipped++
			w.logger.Debug("fence skipped as pseudo-code", "path", path, "line", fence.StartLine)
		case snippet.StatusSucceeded:
			summary.Checked++
			w.logger.Debug("fence valid", "path", path, "line", fence.StartLine, "attempts", verdict.Attempts)
		case snippet.StatusFailed:
			summary.Checked++
			summary.Failed++
			return summary, &DocError{
				Path:    path,
				Line:    fence.StartLine + verdict.Line,
				Kind:    verdict.Kind,
				Message: failureMessage(verdict),
			}
		}
	}

	return summary, nil
}

// failureMessage renders a verdict per the reporting protocol: syntax
// diagnostics get the `quill syntax error:` prefix, while missing-tool and
// timeout failures keep their own wording so nobody chases a phantom syntax
// problem.
func failureMessage(v snippet.Verdict) string {
	switch v.Kind {
	case snippet.FailureToolMissing, snippet.FailureTimeout:
		return v.Message
	default:
		return "quill syntax error: " + v.Message
	}
}

// CheckTree discovers markdown documents under roots and validates them
// concurrently, each document independent of the others. It returns the
// merged summary and the first error encountered. jobs <= 0 selects a
// default bound.
func (w *Walker) CheckTree(ctx context.Context, roots []string, jobs int) (Summary, error) {
	files, err := discoverDocs(roots)
	if err != nil {
		return Summary{}, err
	}

	if jobs <= 0 {
		jobs = defaultJobs
	}

	var (
		mu    sync.Mutex
		total Summary
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for _, file := range files {
		g.Go(func() error {
			s, err := w.CheckFile(gctx, file)
			mu.Lock()
			total.Documents += s.Documents
			total.Fences += s.Fences
			total.Skipped += s.Skipped
			total.Checked += s.Checked
			total.Failed += s.Failed
			mu.Unlock()
			return err
		})
	}

	return total, g.Wait()
}

// discoverDocs walks roots collecting .md and .mdx files in a stable order.
// A root that is itself a markdown file is taken as-is.
func discoverDocs(roots []string) ([]string, error) {
	var files []string
	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("stat docs root: %w", err)
		}
		if !info.IsDir() {
			if isMarkdown(root) {
				files = append(files, root)
			}
			continue
		}

		err = filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if d.IsDir() {
				if _, ok := skipDirs[d.Name()]; ok {
					return filepath.SkipDir
				}
				return nil
			}
			if isMarkdown(path) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", root, err)
		}
	}

	sort.Strings(files)
	return files, nil
}

func isMarkdown(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".mdx":
		return true
	default:
		return false
	}
}
