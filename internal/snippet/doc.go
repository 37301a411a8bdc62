// SPDX-License-Identifier: MPL-2.0

// Package snippet validates Quill code snippets extracted from documentation.
//
// A snippet lifted out of a docs page is rarely a complete program: it may be
// the inside of a function body, a bare list of assertions, or illustrative
// pseudo-code that was never meant to parse. This package classifies a
// snippet's surface shape, wraps it in synthetic boilerplate when needed,
// drives the external `quill fmt` checker over the candidates in a fixed
// fallback order, and remaps any reported error line back to the snippet's
// own coordinates.
package snippet
