package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"docsmith/internal/config"
	"docsmith/internal/document"
	"docsmith/internal/editor"
	"docsmith/internal/templates"
	"docsmith/internal/topic"
	"docsmith/internal/tui/state"
	"docsmith/internal/tui/util"
	"docsmith/internal/tui/views/topics"
	"docsmith/internal/tui/widgets/diff"
	editorw "docsmith/internal/tui/widgets/editor"
	"docsmith/internal/tui/widgets/helpoverlay"
	"docsmith/internal/tui/widgets/popup"
	"docsmith/internal/tui/widgets/statusbar"
)

const sidebarWidth = 30

// Run opens the composer on the alternate screen and blocks until the user quits.
func Run(cfg config.Config, logger *log.Logger) error {
	store := topic.NewStore(templates.Source(cfg.TemplatesDir), logger)
	m, err := NewModel(cfg, store, logger)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run terminal UI: %w", err)
	}
	return nil
}

// ===== Model =====

// Option customizes a Model.
type Option func(*Model)

// WithClipboard replaces the system clipboard reader.
func WithClipboard(read func() (string, error)) Option {
	return func(m *Model) { m.paste = read }
}

// Model is the single owner of the editing session: the topic store, the UI
// state and the key bindings. Every key goes through dispatch, which routes it by mode.
type Model struct {
	cfg   config.Config
	log   *log.Logger
	store *topic.Store
	ui    state.UIState
	keys  KeyMap

	help   helpoverlay.HelpOverlay
	editor editorw.Editor
	status statusbar.StatusBar

	paste    func() (string, error)
	noColor  bool
	quitting bool
}

// NewModel wires store to the UI. Key overrides from cfg are applied here.
func NewModel(cfg config.Config, store *topic.Store, logger *log.Logger, opts ...Option) (*Model, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	keys := DefaultKeyMap()
	if err := keys.Apply(cfg.Keys); err != nil {
		return nil, fmt.Errorf("key bindings: %w", err)
	}
	noColor := util.NoColor(cfg.NoColor)
	m := &Model{
		cfg:     cfg,
		log:     logger,
		store:   store,
		keys:    keys,
		help:    helpoverlay.NewHelpOverlay(),
		editor:  editorw.NewEditor(),
		status:  statusbar.NewStatusBar(noColor),
		paste:   clipboard.ReadAll,
		noColor: noColor,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

type refreshMsg struct{}

func (m *Model) tick() tea.Cmd {
	if m.cfg.RefreshInterval <= 0 {
		return nil
	}
	return tea.Tick(m.cfg.RefreshInterval, func(time.Time) tea.Msg { return refreshMsg{} })
}

func (m *Model) Init() tea.Cmd { return m.tick() }

// Update handles all TUI interactions.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ui = state.Resize(m.ui, msg.Width, msg.Height)
		m.follow()
		return m, nil

	case refreshMsg:
		// Placeholders are re-read only between edits so the buffer never
		// changes under the cursor.
		if m.ui.Mode == state.Navigation {
			m.store.Refresh()
		}
		m.follow()
		return m, m.tick()

	case tea.KeyMsg:
		cmd := m.dispatch(msg)
		m.follow()
		return m, cmd
	}
	return m, nil
}

func (m *Model) dispatch(msg tea.KeyMsg) tea.Cmd {
	switch m.ui.Mode {
	case state.Editing:
		return m.handleEditing(msg)
	case state.ExitConfirm:
		return m.handleExitConfirm(msg)
	default:
		return m.handleNavigation(msg)
	}
}

func (m *Model) handleNavigation(msg tea.KeyMsg) tea.Cmd {
	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		return m.quit("quit without saving")
	case key.Matches(msg, k.Edit):
		m.ui = state.EnterEditing(m.ui)
	case key.Matches(msg, k.Exit):
		m.ui = state.RequestExit(m.ui)
	case key.Matches(msg, k.Save):
		m.save()
	case key.Matches(msg, k.Up):
		m.store.Previous()
		m.ui = state.SetNotice(m.ui, "")
	case key.Matches(msg, k.Down):
		m.store.Next()
		m.ui = state.SetNotice(m.ui, "")
	case key.Matches(msg, k.Diff):
		m.ui = state.ToggleDiff(m.ui)
	case key.Matches(msg, k.Help):
		m.ui = state.ToggleHelp(m.ui)
	}
	return nil
}

func (m *Model) handleEditing(msg tea.KeyMsg) tea.Cmd {
	buf, view := m.store.Active()
	k := m.keys
	switch {
	case msg.Paste:
		buf.InsertText(string(msg.Runes))
	case key.Matches(msg, k.ForceQuit):
		return m.quit("quit while editing")
	case key.Matches(msg, k.Done):
		m.store.Commit(m.store.Selected())
		m.ui = state.LeaveEditing(m.ui)
	case key.Matches(msg, k.Paste):
		m.pasteClipboard(buf)
	case key.Matches(msg, k.Newline):
		buf.SplitLine()
	case key.Matches(msg, k.Backspace):
		buf.DeleteBackward()
	case key.Matches(msg, k.Left):
		buf.MoveLeft()
	case key.Matches(msg, k.Right):
		buf.MoveRight()
	case key.Matches(msg, k.LineUp):
		buf.MoveUp()
	case key.Matches(msg, k.LineDown):
		buf.MoveDown()
	case key.Matches(msg, k.Home):
		buf.MoveHome()
	case key.Matches(msg, k.End):
		buf.MoveEnd()
	case key.Matches(msg, k.Top):
		view.ScrollToTop(buf)
	case key.Matches(msg, k.Bottom):
		view.ScrollToBottom(buf)
	case msg.Type == tea.KeySpace:
		buf.InsertRune(' ')
	case msg.Type == tea.KeyRunes && !msg.Alt:
		buf.InsertText(string(msg.Runes))
	}
	return nil
}

func (m *Model) handleExitConfirm(msg tea.KeyMsg) tea.Cmd {
	k := m.keys
	switch {
	case key.Matches(msg, k.PrevButton):
		m.ui = state.PreviousButton(m.ui)
	case key.Matches(msg, k.NextButton):
		m.ui = state.NextButton(m.ui)
	case key.Matches(msg, k.Dismiss):
		m.ui = state.CancelExit(m.ui)
	case key.Matches(msg, k.Confirm):
		switch m.ui.Popup.Selected() {
		case state.ExitWithoutSaving:
			return m.quit("exit without saving")
		case state.ExitWithSave:
			if m.save() {
				return m.quit("exit after save")
			}
			m.ui = state.CancelExit(m.ui)
		default:
			m.ui = state.CancelExit(m.ui)
		}
	}
	return nil
}

func (m *Model) quit(reason string) tea.Cmd {
	m.log.Info("quitting", "reason", reason)
	m.quitting = true
	return tea.Quit
}

// save writes the document and reports the outcome in the status bar.
func (m *Model) save() bool {
	sections := m.store.Sections()
	path, err := document.Save(m.cfg.OutputDir, m.cfg.FileName, sections)
	if err != nil {
		m.log.Error("save failed", "err", err)
		m.ui = state.SetError(m.ui, fmt.Sprintf("save failed: %v", err))
		return false
	}
	m.log.Info("document saved", "path", path, "sections", len(sections))
	m.ui = state.SetNotice(m.ui, "saved "+path)
	return true
}

func (m *Model) pasteClipboard(buf *editor.Buffer) {
	if m.paste == nil {
		return
	}
	text, err := m.paste()
	if err == nil && text == "" {
		err = errors.New("clipboard is empty")
	}
	if err != nil {
		m.log.Debug("clipboard unavailable", "err", err)
		return
	}
	buf.InsertText(text)
}

// follow re-runs the viewport adjustment for the active buffer.
func (m *Model) follow() {
	buf, view := m.store.Active()
	view.Follow(buf, m.contentHeight())
}

// ===== Layout =====

// contentHeight is the number of text rows inside the content pane.
func (m *Model) contentHeight() int {
	chrome := 1 + 1 + 2 + lipgloss.Height(m.helpView())
	if h := m.ui.Height - chrome; h > 0 {
		return h
	}
	return 0
}

func (m *Model) contentWidth() int {
	if w := m.ui.Width - sidebarWidth - 2; w > 10 {
		return w
	}
	return 10
}

func (m *Model) helpView() string {
	return m.help.View(m.ui, m.keys.ForMode(m.ui.Mode))
}

// ===== Views =====

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
	paneStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder())
	focusColor = lipgloss.AdaptiveColor{Light: "205", Dark: "213"}
)

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	header := titleStyle.Render("docsmith") + "  " + faintStyle.Render(m.cfg.OutputPath())

	var body string
	if m.ui.Mode == state.ExitConfirm {
		dialog := popup.View(m.ui.Popup, m.noColor)
		body = lipgloss.Place(m.ui.Width, m.contentHeight()+2, lipgloss.Center, lipgloss.Center, dialog)
	} else {
		sidebar := lipgloss.NewStyle().Width(sidebarWidth).Render(topics.List(m.items(), m.noColor))
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, m.paneView())
	}

	buf, view := m.store.Active()
	cur := buf.Cursor()
	info := statusbar.Info{
		Topic:  m.store.Selected().Label(),
		Row:    cur.Row,
		Col:    cur.Col,
		Scroll: editorw.Indicator(*view, buf.Extent()),
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body, m.status.View(m.ui, info), m.helpView())
}

func (m *Model) paneView() string {
	height, width := m.contentHeight(), m.contentWidth()
	buf, view := m.store.Active()

	var content string
	if m.ui.ShowDiff {
		t := m.store.Selected()
		content = clipRows(diff.View(m.store.Placeholder(t), buf.Lines(), m.noColor), height)
	} else {
		content = m.editor.View(m.ui, buf, *view, width)
	}

	style := paneStyle.Width(width).Height(height)
	if m.ui.Mode == state.Editing && !m.noColor {
		style = style.BorderForeground(focusColor)
	}
	return style.Render(content)
}

func (m *Model) items() []topics.Item {
	items := make([]topics.Item, 0, topic.Count)
	for _, t := range topic.All {
		placeholder := m.store.Placeholder(t)
		lines := placeholder
		switch {
		case t == m.store.Selected():
			buf, _ := m.store.Active()
			lines = buf.Lines()
		case m.store.Edited(t):
			lines = m.store.Committed(t)
		}
		items = append(items, topics.Item{
			Label:    t.Label(),
			Tags:     util.ComputeTags(lines, placeholder, m.store.Edited(t)),
			Selected: t == m.store.Selected(),
		})
	}
	return items
}

func clipRows(s string, n int) string {
	rows := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	if len(rows) > n {
		rows = rows[:n]
	}
	return strings.Join(rows, "\n")
}
