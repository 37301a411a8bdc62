// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestActionableErrorMessage(t *testing.T) {
	cause := errors.New("file not found")
	err := NewErrorContext().
		WithOperation("load configuration").
		WithResource("./config.cue").
		WithSuggestion("Check the path").
		Wrap(cause).
		Build()

	if err == nil {
		t.Fatal("Build returned nil")
	}
	want := "failed to load configuration: ./config.cue: file not found"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is cannot reach the cause")
	}
}

func TestBuildWithoutOperationIsNil(t *testing.T) {
	if err := NewErrorContext().WithResource("x").BuildError(); err != nil {
		t.Errorf("BuildError without operation = %v, want nil", err)
	}
}

func TestFormatIncludesSuggestions(t *testing.T) {
	err := NewErrorContext().
		WithOperation("validate document").
		WithSuggestion("Mark the fence with skip").
		Build()

	out := err.Format(false)
	if !strings.Contains(out, "• Mark the fence with skip") {
		t.Errorf("Format missing suggestion: %q", out)
	}
}

func TestFormatVerboseShowsErrorChain(t *testing.T) {
	inner := errors.New("inner")
	err := WrapWithOperation(fmt.Errorf("outer: %w", inner), "check snippet")

	out := err.Format(true)
	if !strings.Contains(out, "Error chain:") {
		t.Errorf("verbose Format missing chain: %q", out)
	}
	if !strings.Contains(out, "2. inner") {
		t.Errorf("verbose Format did not unwrap to inner error: %q", out)
	}
}
