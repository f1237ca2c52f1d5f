package output

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pmezard/go-difflib/difflib"
)

// FileChange is the before/after content of one project file.
type FileChange struct {
	Path   string
	Before string
	After  string
}

// RenderFileDiff renders a unified diff for one file. When color is true,
// added and removed lines are styled.
func RenderFileDiff(change FileChange, color bool) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(change.Before),
		B:        difflib.SplitLines(change.After),
		FromFile: "a/" + change.Path,
		ToFile:   "b/" + change.Path,
		Context:  3,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", err
	}
	if !color {
		return text, nil
	}

	added := lipgloss.NewStyle().Foreground(ColorGreen)
	removed := lipgloss.NewStyle().Foreground(ColorBoldRed)

	var sb strings.Builder
	for _, line := range strings.SplitAfter(text, "\n") {
		if line == "" {
			continue
		}
		body := strings.TrimSuffix(line, "\n")
		switch {
		case strings.HasPrefix(body, "+++"), strings.HasPrefix(body, "---"):
			sb.WriteString(StyleSummary.Render(body))
		case strings.HasPrefix(body, "@@"):
			sb.WriteString(StyleDim.Render(body))
		case strings.HasPrefix(body, "+"):
			sb.WriteString(added.Render(body))
		case strings.HasPrefix(body, "-"):
			sb.WriteString(removed.Render(body))
		default:
			sb.WriteString(body)
		}
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// RenderDiff renders every changed file in order followed by a summary line.
func RenderDiff(changes []FileChange, color bool) (string, error) {
	if len(changes) == 0 {
		return "No changes detected.\n", nil
	}

	var sb strings.Builder
	for _, change := range changes {
		text, err := RenderFileDiff(change, color)
		if err != nil {
			return "", err
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	sb.WriteString("Summary: ")
	sb.WriteString(pluralize(len(changes), "file", "files"))
	sb.WriteString(" changed\n")
	return sb.String(), nil
}

// pluralize returns "N item" or "N items" appropriately.
func pluralize(count int, singular, plural string) string {
	label := plural
	if count == 1 {
		label = singular
	}
	return strconv.Itoa(count) + " " + label
}
