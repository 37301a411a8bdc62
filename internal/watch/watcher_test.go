// SPDX-License-Identifier: MPL-2.0

package watch

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"testing"
	"time"
)

// TestDebounceCoalescesEvents verifies that rapid successive writes produce a
// single callback carrying all changed documents.
func TestDebounceCoalescesEvents(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	var (
		mu        sync.Mutex
		calls     int
		collected []string
	)
	done := make(chan struct{})

	w, err := New(Config{
		Root:     dir,
		Debounce: 100 * time.Millisecond,
		OnChange: func(_ context.Context, changed []string) error {
			mu.Lock()
			defer mu.Unlock()
			calls++
			collected = append(collected, changed...)
			close(done)
			return nil
		},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runErr := make(chan error, 1)
	go func() { runErr <- w.Run(ctx) }()

	// Give the event loop a moment to start before generating events.
	time.Sleep(50 * time.Millisecond)

	for _, name := range []string{"guide.md", "intro.mdx"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("# doc\n"), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("callback never fired")
	}

	mu.Lock()
	defer mu.Unlock()
	if calls != 1 {
		t.Errorf("callback fired %d times, want 1", calls)
	}
	for _, want := range []string{"guide.md", "intro.mdx"} {
		if !slices.Contains(collected, want) {
			t.Errorf("changed set %v missing %q", collected, want)
		}
	}

	cancel()
	if err := <-runErr; err != nil {
		t.Errorf("Run returned %v on cancellation", err)
	}
}

// TestOnlyDocumentsTriggerCallback verifies that the default patterns filter
// out non-markdown files.
func TestOnlyDocumentsTriggerCallback(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	var (
		mu        sync.Mutex
		collected []string
	)
	done := make(chan struct{})

	w, err := New(Config{
		Root:     dir,
		Debounce: 100 * time.Millisecond,
		OnChange: func(_ context.Context, changed []string) error {
			mu.Lock()
			defer mu.Unlock()
			collected = append(collected, changed...)
			close(done)
			return nil
		},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx) //nolint:errcheck

	time.Sleep(50 * time.Millisecond)

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "readme.md"), []byte("# x\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("callback never fired")
	}

	mu.Lock()
	defer mu.Unlock()
	if !slices.Contains(collected, "readme.md") {
		t.Errorf("changed set %v missing readme.md", collected)
	}
	if slices.Contains(collected, "notes.txt") {
		t.Errorf("changed set %v includes non-document notes.txt", collected)
	}
}

// TestIgnoredDirectoriesAreSkipped verifies that documents inside default
// ignore directories never trigger the callback.
func TestIgnoredDirectoriesAreSkipped(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ignored := filepath.Join(dir, "node_modules")
	if err := os.MkdirAll(ignored, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	var (
		mu        sync.Mutex
		collected []string
	)
	done := make(chan struct{})

	w, err := New(Config{
		Root:     dir,
		Debounce: 100 * time.Millisecond,
		OnChange: func(_ context.Context, changed []string) error {
			mu.Lock()
			defer mu.Unlock()
			collected = append(collected, changed...)
			close(done)
			return nil
		},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx) //nolint:errcheck

	time.Sleep(50 * time.Millisecond)

	if err := os.WriteFile(filepath.Join(ignored, "dep.md"), []byte("# x\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "guide.md"), []byte("# x\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("callback never fired")
	}

	mu.Lock()
	defer mu.Unlock()
	for _, path := range collected {
		if filepath.ToSlash(path) == "node_modules/dep.md" {
			t.Errorf("ignored document triggered callback: %v", collected)
		}
	}
}

func TestRunTwiceFails(t *testing.T) {
	t.Parallel()

	w, err := New(Config{Root: t.TempDir()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := w.Run(ctx); err != nil {
		t.Fatalf("first Run: %v", err)
	}
	if err := w.Run(context.Background()); err == nil {
		t.Error("second Run succeeded, want error")
	}
}

func TestInvalidPatternRejected(t *testing.T) {
	t.Parallel()

	if _, err := New(Config{Root: t.TempDir(), Patterns: []string{"[unclosed"}}); err == nil {
		t.Error("New accepted invalid watch pattern")
	}
	if _, err := New(Config{Root: t.TempDir(), Ignore: []string{"[unclosed"}}); err == nil {
		t.Error("New accepted invalid ignore pattern")
	}
}

func TestDefaultPatternsCoverMarkdown(t *testing.T) {
	t.Parallel()

	pats := DefaultPatterns()
	for _, want := range []string{"**/*.md", "**/*.mdx"} {
		if !slices.Contains(pats, want) {
			t.Errorf("DefaultPatterns() = %v, missing %q", pats, want)
		}
	}
}

func TestDefaultIgnoresReturnsCopy(t *testing.T) {
	t.Parallel()

	a := DefaultIgnores()
	a[0] = "mutated"
	if b := DefaultIgnores(); b[0] == "mutated" {
		t.Error("DefaultIgnores exposes internal slice")
	}
}
