package topics

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"docsmith/internal/tui/state"
	chips "docsmith/internal/tui/widgets/tagchips"
)

// Item is one row of the topic sidebar.
type Item struct {
	Label    string
	Tags     []state.Tag
	Selected bool
}

var (
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3D6DFF"))
	normalStyle   = lipgloss.NewStyle()
)

// RenderTags is a thin adapter over the TagChips widget for list items.
func RenderTags(tags []state.Tag, noColor bool) string {
	return chips.View(tags, noColor)
}

// List renders the sidebar: a marker and label per topic with its chips below.
func List(items []Item, noColor bool) string {
	var b strings.Builder
	for i, it := range items {
		marker := "  "
		style := normalStyle
		if it.Selected {
			marker = "> "
			style = selectedStyle
		}
		if noColor {
			style = normalStyle
		}
		b.WriteString(marker + style.Render(it.Label) + "\n")
		if tags := RenderTags(it.Tags, noColor); tags != "" {
			b.WriteString("  " + tags + "\n")
		}
		if i < len(items)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
