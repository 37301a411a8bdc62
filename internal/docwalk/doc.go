// SPDX-License-Identifier: MPL-2.0

// Package docwalk traverses markdown documentation, locates quill-tagged
// code fences, and drives snippet validation over them. A document fails
// fast on its first unrecoverable fence; independent documents are checked
// concurrently.
package docwalk
