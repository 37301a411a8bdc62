// SPDX-License-Identifier: MPL-2.0

// Package watch re-runs snippet validation when documentation changes.
//
// It monitors a documentation tree with fsnotify, filters events against
// doublestar glob patterns, and fires a debounced callback with the set of
// changed documents. Rapid editor save sequences (write then rename of a
// temp file) coalesce into a single re-check.
package watch

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// defaultDebounce is the quiet period after the last filesystem event before
// the callback fires.
const defaultDebounce = 500 * time.Millisecond

// defaultIgnores excludes paths that never contain documentation worth
// re-checking. The directory entries mirror the set the document walker
// skips, plus editor swap files and OS metadata.
var defaultIgnores = []string{
	"**/.git/**",
	"**/node_modules/**",
	"**/vendor/**",
	"**/dist/**",
	"**/build/**",
	"**/.idea/**",
	"**/.vscode/**",
	"**/*.swp",
	"**/*.swo",
	"**/*~",
	"**/.DS_Store",
}

type (
	// Config holds the parameters for a Watcher.
	Config struct {
		// Root is the directory to watch recursively. An empty value
		// defaults to the current working directory.
		Root string

		// Patterns are doublestar globs selecting which files trigger the
		// callback, resolved relative to Root. An empty slice falls back to
		// DefaultPatterns.
		Patterns []string

		// Ignore are additional doublestar globs for paths that never
		// trigger the callback, merged with the built-in defaults.
		Ignore []string

		// Debounce is the quiet period after the last event before the
		// callback fires. Zero or negative values use defaultDebounce.
		Debounce time.Duration

		// OnChange receives the deduplicated changed document paths,
		// relative to Root. A nil callback is a no-op.
		OnChange func(ctx context.Context, changed []string) error

		// Logger receives watcher diagnostics. nil discards them.
		Logger *log.Logger
	}

	// Watcher monitors a documentation tree and fires a debounced callback
	// when matching documents change. Run must be called exactly once.
	Watcher struct {
		cfg      Config
		fsw      *fsnotify.Watcher
		patterns []string
		ignores  []string
		logger   *log.Logger
		debounce time.Duration
		root     string
		started  atomic.Bool
	}
)

// DefaultPatterns returns the glob patterns watched when none are configured.
func DefaultPatterns() []string {
	return []string{"**/*.md", "**/*.mdx"}
}

// DefaultIgnores returns a copy of the built-in ignore patterns.
func DefaultIgnores() []string {
	return slices.Clone(defaultIgnores)
}

// New creates a Watcher from the given Config. It resolves Root to an
// absolute path, validates all glob patterns, and registers every
// non-ignored directory under Root for monitoring.
func New(cfg Config) (*Watcher, error) {
	root := cfg.Root
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("watch: determine working directory: %w", err)
		}
		root = wd
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("watch: resolve root directory: %w", err)
	}

	patterns := cfg.Patterns
	if len(patterns) == 0 {
		patterns = DefaultPatterns()
	}

	// Validate globs eagerly so a typo fails at construction time instead
	// of silently matching nothing at runtime.
	if err := validatePatterns(patterns, "watch"); err != nil {
		return nil, err
	}
	if err := validatePatterns(cfg.Ignore, "ignore"); err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: create fsnotify watcher: %w", err)
	}

	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = defaultDebounce
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	ignores := make([]string, 0, len(defaultIgnores)+len(cfg.Ignore))
	ignores = append(ignores, defaultIgnores...)
	ignores = append(ignores, cfg.Ignore...)

	w := &Watcher{
		cfg:      cfg,
		fsw:      fsw,
		patterns: patterns,
		ignores:  ignores,
		logger:   logger,
		debounce: debounce,
		root:     absRoot,
	}

	if err := w.addDirectories(); err != nil {
		if closeErr := fsw.Close(); closeErr != nil {
			logger.Warn("close after init failure", "error", closeErr)
		}
		return nil, err
	}

	return w, nil
}

// Run blocks until ctx is cancelled, processing filesystem events and
// dispatching debounced callbacks. It returns nil on clean context
// cancellation and propagates fatal watcher errors. A second call returns
// an error immediately.
func (w *Watcher) Run(ctx context.Context) error {
	if !w.started.CompareAndSwap(false, true) {
		return fmt.Errorf("watch: Run called more than once")
	}

	var (
		mu      sync.Mutex
		pending = make(map[string]struct{})
		timer   *time.Timer
		running atomic.Bool
	)

	// fire drains the pending set and invokes OnChange. The running guard
	// prevents overlapping invocations when a re-check outlasts the
	// debounce window; in that case the timer is re-armed so the pending
	// set is not lost.
	fire := func() {
		if ctx.Err() != nil {
			return
		}
		if !running.CompareAndSwap(false, true) {
			w.logger.Debug("previous re-check still running, deferring")
			mu.Lock()
			if timer != nil {
				timer.Reset(w.debounce)
			}
			mu.Unlock()
			return
		}
		defer running.Store(false)

		mu.Lock()
		if len(pending) == 0 {
			mu.Unlock()
			return
		}
		changed := slices.Sorted(maps.Keys(pending))
		clear(pending)
		mu.Unlock()

		if w.cfg.OnChange != nil {
			if err := w.cfg.OnChange(ctx, changed); err != nil {
				w.logger.Error("re-check failed", "error", err)
			}
		}
	}

	defer func() {
		mu.Lock()
		localTimer := timer
		mu.Unlock()
		if localTimer != nil && !localTimer.Stop() {
			select {
			case <-localTimer.C:
			default:
			}
		}
		if closeErr := w.fsw.Close(); closeErr != nil {
			w.logger.Warn("close fsnotify", "error", closeErr)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case evt, ok := <-w.fsw.Events:
			if !ok {
				return fmt.Errorf("watch: fsnotify event channel closed unexpectedly")
			}

			rel, err := filepath.Rel(w.root, evt.Name)
			if err != nil {
				rel = evt.Name
			}

			if w.isIgnored(rel) {
				continue
			}

			// Extend recursive watches to directories created after
			// startup, even when they do not match the doc patterns.
			if evt.Has(fsnotify.Create) {
				w.maybeAddDir(evt.Name)
			}

			if !w.matchesPatterns(rel) {
				continue
			}

			mu.Lock()
			pending[rel] = struct{}{}
			if timer == nil {
				timer = time.AfterFunc(w.debounce, fire)
			} else {
				timer.Reset(w.debounce)
			}
			mu.Unlock()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return fmt.Errorf("watch: fsnotify error channel closed unexpectedly")
			}
			// Resource exhaustion means the watcher cannot recover.
			// isFatalFsnotifyError is platform-specific.
			if isFatalFsnotifyError(err) {
				return fmt.Errorf("watch: fatal fsnotify error: %w", err)
			}
			w.logger.Warn("fsnotify error", "error", err)
		}
	}
}

// addDirectories walks Root and registers every non-ignored directory with
// fsnotify. Pattern filtering happens when events arrive, not here, so
// documents created later in already-watched directories are still seen.
func (w *Watcher) addDirectories() error {
	walkErr := filepath.WalkDir(w.root, func(path string, d os.DirEntry, walkDirErr error) error {
		if walkDirErr != nil {
			// Permission errors on individual directories are common and
			// should not abort the walk.
			w.logger.Warn("skipping inaccessible path", "path", path, "error", walkDirErr)
			return nil //nolint:nilerr // intentional skip of inaccessible paths
		}
		if !d.IsDir() {
			return nil
		}

		rel, relErr := filepath.Rel(w.root, path)
		if relErr != nil {
			return nil //nolint:nilerr // skip paths that cannot be made relative
		}

		if w.isIgnored(rel) || w.isIgnored(rel+"/") {
			return filepath.SkipDir
		}

		if addErr := w.fsw.Add(path); addErr != nil {
			return fmt.Errorf("watch: add directory %q: %w", path, addErr)
		}
		return nil
	})
	if walkErr != nil {
		return fmt.Errorf("watch: walk directory tree: %w", walkErr)
	}
	return nil
}

// maybeAddDir registers path with fsnotify if it is a non-ignored directory.
func (w *Watcher) maybeAddDir(path string) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return
	}

	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		return
	}

	if w.isIgnored(rel) || w.isIgnored(rel+"/") {
		return
	}

	if addErr := w.fsw.Add(path); addErr != nil {
		w.logger.Warn("add new directory", "path", path, "error", addErr)
	}
}

func (w *Watcher) isIgnored(rel string) bool {
	normalized := filepath.ToSlash(rel)
	for _, pat := range w.ignores {
		if matched, matchErr := doublestar.Match(pat, normalized); matchErr == nil && matched {
			return true
		}
	}
	return false
}

func (w *Watcher) matchesPatterns(rel string) bool {
	normalized := filepath.ToSlash(rel)
	for _, pat := range w.patterns {
		if matched, matchErr := doublestar.Match(pat, normalized); matchErr == nil && matched {
			return true
		}
	}
	return false
}

// validatePatterns checks that every pattern is a valid doublestar glob.
func validatePatterns(patterns []string, label string) error {
	for _, pat := range patterns {
		if _, err := doublestar.Match(pat, ""); err != nil {
			return fmt.Errorf("watch: invalid %s pattern %q: %w", label, pat, err)
		}
	}
	return nil
}
