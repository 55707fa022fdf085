package tagchips

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"docsmith/internal/tui/state"
	"docsmith/internal/tui/util"
)

// View renders topic tags in a stable order using colored chips when
// possible and ASCII fallbacks when color is disabled.
func View(tags []state.Tag, noColor bool) string {
	if len(tags) == 0 {
		return ""
	}
	noColor = util.NoColor(noColor)

	parts := make([]string, 0, len(tags))
	for _, t := range tags {
		parts = append(parts, renderChip(t, noColor))
	}
	return strings.Join(parts, " ")
}

func renderChip(t state.Tag, noColor bool) string {
	label := chipLabel(t)
	if noColor {
		return fmt.Sprintf("[%s]", label)
	}
	return chipStyle(t).Render(label)
}

func chipLabel(t state.Tag) string {
	switch t.Kind {
	case state.EDITED:
		return "Edited"
	case state.PLACEHOLDER:
		return "Placeholder"
	case state.EMPTY:
		return "Empty"
	case state.LINES:
		return fmt.Sprintf("%dL", t.Value)
	case state.CHARS:
		return fmt.Sprintf("%dC", t.Value)
	default:
		return "Tag"
	}
}

func chipStyle(t state.Tag) lipgloss.Style {
	p := util.DefaultPalette()
	base := lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(p.Text)
	switch t.Kind {
	case state.EDITED:
		return base.Background(p.Success)
	case state.PLACEHOLDER:
		return base.Background(p.Muted)
	case state.EMPTY:
		return base.Background(p.Warning).Foreground(lipgloss.Color("#111111"))
	case state.LINES, state.CHARS:
		return base.Background(lipgloss.Color("#5A5A5A")).Bold(false)
	default:
		return base
	}
}
