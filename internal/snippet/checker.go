// SPDX-License-Identifier: MPL-2.0

package snippet

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// DefaultTimeout bounds one `quill fmt` invocation so a pathological snippet
// cannot hang the surrounding docs build.
const DefaultTimeout = 10 * time.Second

// diagnosticPattern extracts `line:column: message` from checker output. The
// path prefix before the first captured group varies by platform, so only
// the positional suffix is matched.
var diagnosticPattern = regexp.MustCompile(`(\d+):(\d+):\s*(.+)`)

// Checker persists candidate programs to transient files and runs the quill
// toolchain's fmt command over them. The zero value is not usable; construct
// with NewChecker.
type Checker struct {
	tool    string
	tempDir string
	timeout time.Duration
	logger  *log.Logger
}

// CheckerOption configures a Checker.
type CheckerOption func(*Checker)

// WithTempDir overrides the directory for transient candidate files.
func WithTempDir(dir string) CheckerOption {
	return func(c *Checker) {
		if dir != "" {
			c.tempDir = dir
		}
	}
}

// WithTimeout overrides the per-invocation deadline. Zero or negative values
// fall back to DefaultTimeout.
func WithTimeout(d time.Duration) CheckerOption {
	return func(c *Checker) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger attaches a logger for temp-file lifecycle and invocation
// diagnostics at debug level.
func WithLogger(logger *log.Logger) CheckerOption {
	return func(c *Checker) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewChecker creates a Checker that invokes the given quill executable.
// tool may be a bare name (resolved against PATH at invocation time) or an
// explicit path.
func NewChecker(tool string, opts ...CheckerOption) *Checker {
	c := &Checker{
		tool:    tool,
		tempDir: os.TempDir(),
		timeout: DefaultTimeout,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Tool returns the configured quill executable name or path.
func (c *Checker) Tool() string {
	return c.tool
}

// Check writes text to a uniquely-named transient file, runs
// `<tool> fmt <file>` against it, and normalizes the result into an Outcome.
// The subprocess is invoked argument-vector style; document content never
// reaches a shell. The transient file is removed on every exit path, with
// removal errors swallowed.
//
// A returned error means the invocation itself broke unexpectedly (temp file
// write failure, a spawn error that is not "executable missing") and the
// validation pass should abort. Everything the checker can say about the
// text arrives as an Outcome instead.
func (c *Checker) Check(ctx context.Context, text string) (Outcome, error) {
	path := c.tempPath()
	if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
		return Outcome{}, fmt.Errorf("write candidate file: %w", err)
	}
	defer func() {
		if rmErr := os.Remove(path); rmErr != nil {
			c.logger.Debug("remove candidate file", "path", path, "err", rmErr)
		}
	}()

	runCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(runCtx, c.tool, "fmt", path)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	if runErr == nil {
		return Outcome{Kind: FailureNone}, nil
	}

	// Deadline expiry surfaces as a killed process; check the context before
	// interpreting the exit state.
	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		return Outcome{
			Kind:    FailureTimeout,
			Message: fmt.Sprintf("%s fmt did not finish within %s", c.tool, c.timeout),
		}, nil
	}

	// exec wraps the platform's "executable missing" signal behind
	// exec.ErrNotFound for PATH lookups; an explicit tool path that does not
	// exist surfaces as fs.ErrNotExist instead. Both mean the dependency is
	// absent. Other spawn failures (e.g. permission denied) are genuinely
	// unexpected and propagate as errors rather than being conflated with a
	// missing dependency.
	if errors.Is(runErr, exec.ErrNotFound) || errors.Is(runErr, fs.ErrNotExist) {
		return Outcome{
			Kind:    FailureToolMissing,
			Message: fmt.Sprintf("quill toolchain not found (looked for %q); install it or set language.tool", c.tool),
		}, nil
	}

	var exitErr *exec.ExitError
	if !errors.As(runErr, &exitErr) {
		return Outcome{}, fmt.Errorf("run %s fmt: %w", c.tool, runErr)
	}

	diag := stderr.String()
	if strings.TrimSpace(diag) == "" {
		diag = stdout.String()
	}
	c.logger.Debug("checker rejected candidate", "path", path, "exit", exitErr.ExitCode())

	return parseDiagnostic(diag, path), nil
}

// tempPath builds a transient file name from a high-resolution timestamp and
// a UUID so concurrent validations never collide.
func (c *Checker) tempPath() string {
	name := fmt.Sprintf("quilldoc-%d-%s.q", time.Now().UnixNano(), uuid.NewString())
	return filepath.Join(c.tempDir, name)
}

// parseDiagnostic extracts a structured failure from checker output. It
// looks for a `line:column: message` pattern anywhere in the text; failing
// that, it strips a leading `error: <path>:` style prefix and keeps the rest
// as a message with no line.
func parseDiagnostic(diag, path string) Outcome {
	if m := diagnosticPattern.FindStringSubmatch(diag); m != nil {
		line, err := strconv.Atoi(m[1])
		if err == nil && line > 0 {
			return Outcome{
				Kind:    FailureSyntax,
				Line:    line,
				Message: strings.TrimSpace(m[3]),
			}
		}
	}

	msg := strings.TrimSpace(diag)
	msg = strings.TrimPrefix(msg, "error:")
	msg = strings.TrimSpace(msg)
	msg = strings.TrimPrefix(msg, path+":")
	msg = strings.TrimSpace(msg)
	if msg == "" {
		msg = "syntax check failed"
	}
	return Outcome{Kind: FailureSyntax, Message: msg}
}
