package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Never use inline lipgloss.Color literals outside this block.
var (
	// ColorCyan is used for identifiable nouns: file paths, aliases, command kinds.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "patched" command status.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "ignored" command status.
	ColorYellow = lipgloss.Color("220")

	// ColorBoldRed is used for the "unsupported" and "failed" statuses.
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (file paths, aliases, command kinds).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleAction styles action verbs.
	StyleAction = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome (scope prefixes, separators).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// Command status constants.
const (
	StatusPatched     = "patched"
	StatusUnchanged   = "unchanged"
	StatusIgnored     = "ignored"
	StatusUnsupported = "unsupported"
	StatusFailed      = "failed"
)

// StatusStyle returns the lipgloss style for a given command status string.
// Unknown statuses return an unstyled default.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusPatched:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusUnchanged:
		return lipgloss.NewStyle().Faint(true)
	case StatusIgnored:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusUnsupported, StatusFailed:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// minCommandColumnWidth is the minimum width of the command column before the
// status suffix, so status words align.
const minCommandColumnWidth = 56

// FormatCommandLine renders a command with a right-aligned, color-coded status.
//
// Format: c:<kind> <subject>  <status>
func FormatCommandLine(kind, subject, status string) string {
	label := kind
	if subject != "" {
		label = fmt.Sprintf("%s %s", kind, subject)
	}

	padding := minCommandColumnWidth - len(label)
	if padding < 2 {
		padding = 2
	}

	prefix := StyleDim.Render("c:")
	styledLabel := StyleNoun.Render(label)
	styledStatus := StatusStyle(status).Render(status)

	return prefix + styledLabel + strings.Repeat(" ", padding) + styledStatus
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}
