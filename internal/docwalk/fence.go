// SPDX-License-Identifier: MPL-2.0

package docwalk

import (
	"slices"
	"strings"
)

// Fence is one fenced code block extracted from a document. It is immutable
// once extracted and lives only for the duration of one validation pass.
type Fence struct {
	// Lang is the declared language tag (first info-string token), empty for
	// untagged fences.
	Lang string

	// Meta holds the remaining whitespace-delimited info-string tokens.
	Meta []string

	// Text is the fence body without the delimiter lines.
	Text string

	// StartLine is the 1-based document line of the opening delimiter. The
	// fence's first content line is StartLine+1, so a snippet-relative error
	// line L maps to document line StartLine+L.
	StartLine int
}

// HasSkipToken reports whether the fence metadata carries the literal `skip`
// token that disables validation for this block.
func (f Fence) HasSkipToken() bool {
	return slices.Contains(f.Meta, "skip")
}

// ExtractFences scans document lines for triple-backtick fences and returns
// them in document order. Delimiters toggle fence state, so an unterminated
// trailing fence is dropped rather than guessed at.
func ExtractFences(lines []string) []Fence {
	var fences []Fence
	var body []string
	var current Fence
	inside := false

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "```") {
			if inside {
				body = append(body, line)
			}
			continue
		}

		if inside {
			current.Text = strings.Join(body, "\n")
			fences = append(fences, current)
			inside = false
			body = nil
			continue
		}

		lang, meta := parseInfoString(strings.TrimPrefix(trimmed, "```"))
		current = Fence{Lang: lang, Meta: meta, StartLine: i + 1}
		inside = true
	}

	return fences
}

// parseInfoString splits a fence info string into the language tag and the
// remaining metadata tokens.
func parseInfoString(info string) (string, []string) {
	tokens := strings.Fields(info)
	if len(tokens) == 0 {
		return "", nil
	}
	return tokens[0], tokens[1:]
}
