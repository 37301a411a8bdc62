// SPDX-License-Identifier: MPL-2.0

package snippet

import "strings"

// Strategy is a named text transformation that turns a snippet into a
// candidate program, paired with the fixed number of boilerplate lines it
// prepends before the snippet's first line. Strategies are static and
// stateless; the validator tries them in priority order.
type Strategy struct {
	// Name identifies the strategy in logs and verdicts.
	Name string

	// Offset is the number of boilerplate lines prepended before the
	// original content. Error lines reported inside the wrapped text are
	// shifted back by this amount.
	Offset int

	apply func(string) string
}

// Wrap applies the strategy to text and returns the candidate program
// together with the strategy's line offset.
func (s Strategy) Wrap(text string) (string, int) {
	return s.apply(text), s.Offset
}

// The wrapper boilerplate declares a dummy function returning an opaque
// quoted result and invokes it to open a scope. The declaration must stay on
// exactly the lines counted by each strategy's Offset or remapped error
// lines drift.
const (
	wrapHeader  = "fn QDoc() `q`\nQDoc {\n"
	wrapTrailer = "\n}\n"
	testHeader  = "test \"t\" {\n"
)

var (
	// Identity attempts the snippet exactly as written.
	Identity = Strategy{
		Name:   "identity",
		Offset: 0,
		apply:  func(text string) string { return text },
	}

	// ScopeWrap embeds the snippet in a dummy function scope. Valid scope
	// content becomes a complete program; two header lines precede the
	// snippet.
	ScopeWrap = Strategy{
		Name:   "scope-wrap",
		Offset: 2,
		apply: func(text string) string {
			return wrapHeader + trimTrailingNewlines(text) + wrapTrailer
		},
	}

	// TestWrap additionally opens a test block inside the scope, so a bare
	// assertion list becomes a complete program; three header lines precede
	// the snippet.
	TestWrap = Strategy{
		Name:   "test-wrap",
		Offset: 3,
		apply: func(text string) string {
			return wrapHeader + testHeader + trimTrailingNewlines(text) + wrapTrailer + "}\n"
		},
	}
)

// trimTrailingNewlines drops trailing newlines so the closing braces land on
// their own lines without inflating the wrapped program with blank lines.
// Leading lines are preserved untouched; they are what the offset counts
// against.
func trimTrailingNewlines(text string) string {
	return strings.TrimRight(text, "\n")
}
