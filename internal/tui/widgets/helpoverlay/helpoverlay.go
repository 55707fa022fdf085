package helpoverlay

import (
	"github.com/charmbracelet/bubbles/help"

	"docsmith/internal/tui/state"
)

type HelpOverlay struct {
	model help.Model
}

func NewHelpOverlay() HelpOverlay { return HelpOverlay{model: help.New()} }

// View renders the bindings of the current mode: the short list normally, the
// grouped full list when ShowHelp is set.
func (h HelpOverlay) View(s state.UIState, keys help.KeyMap) string {
	m := h.model
	m.Width = s.Width
	m.ShowAll = s.ShowHelp
	return m.View(keys)
}
