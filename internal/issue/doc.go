// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// It defines error types that carry remediation steps and a catalog of
// Markdown-formatted guidance rendered with glamour, so validation failures
// tell the user what to do next instead of just what broke.
package issue
