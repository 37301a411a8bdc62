// SPDX-License-Identifier: MPL-2.0

package snippet

import "context"

// Status is the terminal state of one snippet validation.
type Status int

const (
	// StatusSucceeded means some attempt produced a syntactically valid
	// program.
	StatusSucceeded Status = iota

	// StatusSkipped means the snippet was classified pseudo-code and no
	// checker invocation occurred.
	StatusSkipped

	// StatusFailed means every applicable attempt was rejected; the verdict
	// carries the failure to report.
	StatusFailed
)

// String returns the status name for logs and summaries.
func (s Status) String() string {
	switch s {
	case StatusSucceeded:
		return "succeeded"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Verdict is the only externally observable output per snippet. On failure,
// Line (when non-zero) is 1-based and already remapped to the original
// snippet's coordinates; callers add the fence's document position on top.
type Verdict struct {
	Status  Status
	Shape   Shape
	Kind    FailureKind
	Line    int
	Message string

	// Attempts counts checker invocations, including a spawn attempt that
	// discovered the tool is missing.
	Attempts int
}

// CheckFunc is the checker dependency of a Validator. Tests substitute
// in-process fakes; production wires Checker.Check.
type CheckFunc func(ctx context.Context, text string) (Outcome, error)

// fallback pairs a shape predicate with the strategy to try when the
// identity attempt fails. The slice below is the whole retry ladder; keeping
// it as ordered data rather than nested conditionals keeps the fallback
// priority auditable.
type fallback struct {
	applies  func(Shape) bool
	strategy Strategy
}

var fallbacks = []fallback{
	{applies: func(s Shape) bool { return s == ShapeScopeBody }, strategy: ScopeWrap},
	{applies: func(s Shape) bool { return s == ShapeAssertFragment }, strategy: TestWrap},
}

// Validator drives the classify → wrap → check retry ladder for one snippet
// at a time. It holds no mutable state; each Validate call is a pure
// function of its input text and the checker's behavior.
type Validator struct {
	check CheckFunc
}

// NewValidator creates a Validator backed by the given check function.
func NewValidator(check CheckFunc) *Validator {
	return &Validator{check: check}
}

// Validate classifies text and walks the retry ladder: the snippet as
// written first, then the wrapped variant selected by its shape. It stops at
// the first success. When no wrapping strategy applies, the reported failure
// is the identity attempt's outcome verbatim — always an error the checker
// actually produced, never an invented one. A non-nil error means the
// checker invocation itself broke and the validation pass should abort.
func (v *Validator) Validate(ctx context.Context, text string) (Verdict, error) {
	shape := Classify(text)
	if shape == ShapePseudoCode {
		return Verdict{Status: StatusSkipped, Shape: shape}, nil
	}

	identity, err := v.check(ctx, text)
	if err != nil {
		return Verdict{}, err
	}
	if identity.OK() {
		return Verdict{Status: StatusSucceeded, Shape: shape, Attempts: 1}, nil
	}
	if identity.Kind == FailureToolMissing || identity.Kind == FailureTimeout {
		// Wrapping cannot fix a missing tool or make the same text check
		// faster; surface the outcome as-is.
		return failed(shape, identity, 1), nil
	}

	for _, fb := range fallbacks {
		if !fb.applies(shape) {
			continue
		}
		wrapped, offset := fb.strategy.Wrap(text)
		outcome, err := v.check(ctx, wrapped)
		if err != nil {
			return Verdict{}, err
		}
		if outcome.OK() {
			// Success needs no line, so no wrapper-relative coordinate can
			// ever leak.
			return Verdict{Status: StatusSucceeded, Shape: shape, Attempts: 2}, nil
		}
		return failed(shape, Remap(outcome, offset), 2), nil
	}

	return failed(shape, identity, 1), nil
}

func failed(shape Shape, o Outcome, attempts int) Verdict {
	return Verdict{
		Status:   StatusFailed,
		Shape:    shape,
		Kind:     o.Kind,
		Line:     o.Line,
		Message:  o.Message,
		Attempts: attempts,
	}
}
