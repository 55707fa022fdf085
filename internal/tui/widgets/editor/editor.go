package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	buffer "docsmith/internal/editor"
	"docsmith/internal/tui/state"
)

var (
	cursorStyle = lipgloss.NewStyle().Reverse(true)
	pendingMark = lipgloss.NewStyle().Faint(true)
)

type Editor struct{}

func NewEditor() Editor { return Editor{} }

// View renders the visible window of buf, clipped to width display cells. The
// cursor is drawn only while editing; rows scroll horizontally to keep it on screen.
func (Editor) View(s state.UIState, buf *buffer.Buffer, view buffer.Viewport, width int) string {
	start, end := view.Window(buf.Extent())
	cur := buf.Cursor()
	editing := s.Mode == state.Editing

	rows := make([]string, 0, end-start)
	for row := start; row < end; row++ {
		var line []rune
		if row < buf.LineCount() {
			line = []rune(buf.Line(row))
		}
		if editing && row == cur.Row {
			rows = append(rows, renderCursorLine(line, cur.Col, width))
			continue
		}
		if row >= buf.LineCount() {
			rows = append(rows, pendingMark.Render("~"))
			continue
		}
		rows = append(rows, clip(line, 0, width))
	}
	return strings.Join(rows, "\n")
}

// Indicator is the vertical scroll position, e.g. "11-20/57".
func Indicator(view buffer.Viewport, total int) string {
	start, end := view.Window(total)
	if total == 0 || end == start {
		return fmt.Sprintf("0/%d", total)
	}
	return fmt.Sprintf("%d-%d/%d", start+1, end, total)
}

func renderCursorLine(line []rune, col, width int) string {
	if col > len(line) {
		col = len(line)
	}
	under := " "
	if col < len(line) {
		under = string(line[col])
	}
	cursorCol := runewidth.StringWidth(string(line[:col]))
	skip := 0
	if width > 0 && cursorCol >= width {
		skip = cursorCol - width + runewidth.StringWidth(under)
	}
	before := clip(line[:col], skip, width)
	room := width - runewidth.StringWidth(before) - runewidth.StringWidth(under)
	after := ""
	if col < len(line) && room > 0 {
		after = clip(line[col+1:], 0, room)
	}
	return before + cursorStyle.Render(under) + after
}

// clip drops the first skip display cells of line and keeps at most width cells.
// A width of zero or less means unlimited.
func clip(line []rune, skip, width int) string {
	var b strings.Builder
	pos, used := 0, 0
	for _, r := range line {
		w := runewidth.RuneWidth(r)
		if pos < skip {
			pos += w
			continue
		}
		if width > 0 && used+w > width {
			break
		}
		b.WriteRune(r)
		used += w
	}
	return b.String()
}
