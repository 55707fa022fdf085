package statusbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"docsmith/internal/tui/state"
	"docsmith/internal/tui/util"
)

// Info is the per-frame data the status line shows beside the UI state.
type Info struct {
	Topic  string
	Row    int
	Col    int
	Scroll string
}

type StatusBar struct {
	NoColor bool
}

func NewStatusBar(noColor bool) StatusBar { return StatusBar{NoColor: noColor} }

// View composes a concise status line reflecting key UI state.
func (b StatusBar) View(s state.UIState, info Info) string {
	mode := "[" + s.Mode.String() + "]"
	pos := fmt.Sprintf("Ln %d, Col %d", info.Row+1, info.Col+1)

	parts := []string{b.modeStyle(s.Mode).Render(mode), info.Topic, pos}
	if info.Scroll != "" {
		parts = append(parts, info.Scroll)
	}
	if s.ShowDiff {
		parts = append(parts, "diff")
	}
	if s.Notice != "" {
		notice := s.Notice
		if s.NoticeError && !b.NoColor {
			notice = lipgloss.NewStyle().Foreground(util.DefaultPalette().Danger).Render(notice)
		} else if s.NoticeError {
			notice = "ERROR: " + notice
		}
		parts = append(parts, notice)
	}
	return strings.Join(parts, "  ")
}

func (b StatusBar) modeStyle(m state.Mode) lipgloss.Style {
	if b.NoColor {
		return lipgloss.NewStyle()
	}
	p := util.DefaultPalette()
	base := lipgloss.NewStyle().Bold(true)
	switch m {
	case state.Editing:
		return base.Foreground(p.Success)
	case state.ExitConfirm:
		return base.Foreground(p.Warning)
	default:
		return base.Foreground(p.Primary)
	}
}
