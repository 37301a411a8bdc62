// SPDX-License-Identifier: MPL-2.0

package snippet

// FailureKind distinguishes why a checker invocation did not succeed.
type FailureKind int

const (
	// FailureNone means the checker accepted the text.
	FailureNone FailureKind = iota

	// FailureSyntax means the checker rejected the text with a diagnostic.
	FailureSyntax

	// FailureToolMissing means the quill executable could not be located or
	// started. Retrying wrapped variants cannot help, so the validator
	// short-circuits on this kind.
	FailureToolMissing

	// FailureTimeout means the checker ran past the configured deadline.
	// Also short-circuits retries: a wrapped variant of the same text is
	// just as likely to hang.
	FailureTimeout
)

// String returns the failure kind name for logs and summaries.
func (k FailureKind) String() string {
	switch k {
	case FailureNone:
		return "none"
	case FailureSyntax:
		return "syntax"
	case FailureToolMissing:
		return "tool-missing"
	case FailureTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// Outcome is the normalized result of one checker invocation. Line, when
// non-zero, is 1-based and relative to whatever text was actually checked —
// it must pass through Remap with the producing strategy's offset before it
// can be shown against the original snippet.
type Outcome struct {
	Kind    FailureKind
	Line    int
	Message string
}

// OK reports whether the checker accepted the text.
func (o Outcome) OK() bool {
	return o.Kind == FailureNone
}

// Remap translates an error line reported inside a wrapped program back to
// the original snippet's coordinates. Outcomes without a line pass through
// unchanged. The floor at line 1 guards against a diagnostic landing inside
// the boilerplate header, which a correct offset never produces but must not
// yield a non-positive line. The input is never mutated.
func Remap(o Outcome, offset int) Outcome {
	if o.Line == 0 {
		return o
	}
	remapped := o
	remapped.Line = o.Line - offset
	if remapped.Line < 1 {
		remapped.Line = 1
	}
	return remapped
}
