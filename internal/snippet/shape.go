// SPDX-License-Identifier: MPL-2.0

package snippet

import (
	"regexp"
	"strings"
)

// Shape is the surface classification of a snippet's text. It decides which
// wrap strategy the validator falls back to when the snippet does not parse
// as written.
type Shape int

const (
	// ShapeFullProgram means the snippet looks like a complete program and is
	// attempted exactly as written, with no fallback.
	ShapeFullProgram Shape = iota

	// ShapeScopeBody means the snippet shows the inside of a function body
	// (it contains a test/group construct without the enclosing declaration).
	ShapeScopeBody

	// ShapeAssertFragment means the snippet is a bare assertion list meant to
	// live inside a test block.
	ShapeAssertFragment

	// ShapePseudoCode means the snippet is illustrative pseudo-code that was
	// never meant to parse standalone; it is excluded from validation.
	ShapePseudoCode
)

// String returns the shape name for logs and test failure messages.
func (s Shape) String() string {
	switch s {
	case ShapeFullProgram:
		return "full-program"
	case ShapeScopeBody:
		return "scope-body"
	case ShapeAssertFragment:
		return "assertion-fragment"
	case ShapePseudoCode:
		return "pseudo-code"
	default:
		return "unknown"
	}
}

var (
	// fnStubPattern matches a function declaration stub with no parameter
	// list or body, e.g. a line containing just `fn handleRetries`. Docs use
	// these to name a function without showing it.
	fnStubPattern = regexp.MustCompile(`(?m)^\s*fn\s+[A-Za-z_][A-Za-z0-9_]*\s*$`)

	// bareInvocationPattern matches a capitalized invocation opening a brace
	// scope at the start of a line, e.g. `Pipeline {`.
	bareInvocationPattern = regexp.MustCompile(`(?m)^\s*[A-Z][A-Za-z0-9_]*\s*\{`)

	// fnDeclPattern detects any fn declaration, used to tell a real program
	// containing an invocation apart from a bare invocation fragment.
	fnDeclPattern = regexp.MustCompile(`(?m)^\s*(pub\s+)?fn\s`)

	// scopeConstructPattern matches the test/group constructs that only occur
	// inside a function body: the case-sensitive keyword followed by a quoted
	// label.
	scopeConstructPattern = regexp.MustCompile(`(?m)(?:^|\s)(?:test|group)\s+"`)

	// assertLinePattern matches a line that starts (after leading whitespace)
	// with `assert` whose next token opens its argument list or block.
	assertLinePattern = regexp.MustCompile(`(?m)^\s*assert\s*[({]`)
)

// Classify inspects a snippet's text and returns its Shape. It is a pure
// function over the text; the categories overlap in source text, so the
// checks run in fallback-priority order and pseudo-code short-circuits
// everything else.
func Classify(text string) Shape {
	if isPseudoCode(text) {
		return ShapePseudoCode
	}
	if scopeConstructPattern.MatchString(text) {
		return ShapeScopeBody
	}
	if assertLinePattern.MatchString(text) {
		return ShapeAssertFragment
	}
	return ShapeFullProgram
}

// isPseudoCode reports whether the text is an illustrative fragment that can
// never parse standalone: it contains an ellipsis placeholder, a function
// declaration stub, or a bare capitalized invocation with no enclosing fn
// declaration.
func isPseudoCode(text string) bool {
	if strings.Contains(text, "...") || strings.ContainsRune(text, '…') {
		return true
	}
	if fnStubPattern.MatchString(text) {
		return true
	}
	if bareInvocationPattern.MatchString(text) && !fnDeclPattern.MatchString(text) {
		return true
	}
	return false
}
