package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"docsmith/internal/tui/state"
	"docsmith/internal/tui/util"
)

// Prompt is the question shown above the buttons.
const Prompt = "Quit docsmith?"

// View renders the exit dialog with the selected button highlighted.
func View(p state.Popup, noColor bool) string {
	pal := util.DefaultPalette()
	button := lipgloss.NewStyle().Padding(0, 2).Margin(0, 1)
	active := button.Background(pal.Primary).Foreground(pal.Text).Bold(true)
	box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(pal.Warning).Padding(1, 2)

	buttons := make([]string, 0, len(state.ExitActions))
	for i, a := range state.ExitActions {
		switch {
		case noColor && i == p.Index():
			buttons = append(buttons, "> "+a.Label()+" <")
		case noColor:
			buttons = append(buttons, "  "+a.Label()+"  ")
		case i == p.Index():
			buttons = append(buttons, active.Render(a.Label()))
		default:
			buttons = append(buttons, button.Render(a.Label()))
		}
	}
	if noColor {
		return Prompt + "\n\n" + strings.Join(buttons, " ")
	}
	body := lipgloss.JoinVertical(lipgloss.Center, Prompt, "", lipgloss.JoinHorizontal(lipgloss.Top, buttons...))
	return box.Render(body)
}
