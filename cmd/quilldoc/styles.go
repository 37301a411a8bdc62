// SPDX-License-Identifier: MPL-2.0

package cmd

import "github.com/charmbracelet/lipgloss"

// Color palette shared across all CLI output, tuned for dark terminals.
const (
	// ColorPrimary is purple, used for titles and primary emphasis.
	ColorPrimary = lipgloss.Color("#7C3AED")

	// ColorMuted is gray, used for subtitles and de-emphasized content.
	ColorMuted = lipgloss.Color("#6B7280")

	// ColorSuccess is green, used for passing checks.
	ColorSuccess = lipgloss.Color("#10B981")

	// ColorError is red, used for failed snippets.
	ColorError = lipgloss.Color("#EF4444")

	// ColorWarning is amber, used for skipped fences and warnings.
	ColorWarning = lipgloss.Color("#F59E0B")

	// ColorHighlight is blue, used for paths and commands.
	ColorHighlight = lipgloss.Color("#3B82F6")
)

// Base styles built from the palette.
var (
	// TitleStyle is for primary headers.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// SubtitleStyle is for secondary headers and summary labels.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// SuccessStyle is for success messages and counts.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// ErrorStyle is for error messages and failure indicators.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	// WarningStyle is for warnings and skip counts.
	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// PathStyle is for file paths and command names.
	PathStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)
)
