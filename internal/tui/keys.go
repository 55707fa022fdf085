package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"docsmith/internal/tui/state"
)

// KeyMap holds every binding, grouped by the mode that reads it.
type KeyMap struct {
	// Navigation
	Edit key.Binding
	Exit key.Binding
	Save key.Binding
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
	Diff key.Binding
	Help key.Binding

	// Editing
	Paste     key.Binding
	Newline   key.Binding
	Backspace key.Binding
	Left      key.Binding
	Right     key.Binding
	LineUp    key.Binding
	LineDown  key.Binding
	Home      key.Binding
	End       key.Binding
	Top       key.Binding
	Bottom    key.Binding
	Done      key.Binding
	ForceQuit key.Binding

	// Exit dialog
	PrevButton key.Binding
	NextButton key.Binding
	Dismiss    key.Binding
	Confirm    key.Binding
}

// DefaultKeyMap returns the built-in bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Edit: key.NewBinding(key.WithKeys("i", "enter"), key.WithHelp("i/enter", "edit")),
		Exit: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "exit")),
		Save: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous topic")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next topic")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Diff: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "diff")),
		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),

		Paste:     key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
		Newline:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "new line")),
		Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("backspace", "delete")),
		Left:      key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right:     key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		LineUp:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		LineDown:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Home:      key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "line start")),
		End:       key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "line end")),
		Top:       key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "top")),
		Bottom:    key.NewBinding(key.WithKeys("f2"), key.WithHelp("f2", "bottom")),
		Done:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "done")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),

		PrevButton: key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←/h", "previous")),
		NextButton: key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→/l/tab", "next")),
		Dismiss:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Confirm:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "choose")),
	}
}

func (k *KeyMap) actions() map[string]*key.Binding {
	return map[string]*key.Binding{
		"edit":        &k.Edit,
		"exit":        &k.Exit,
		"save":        &k.Save,
		"up":          &k.Up,
		"down":        &k.Down,
		"quit":        &k.Quit,
		"diff":        &k.Diff,
		"help":        &k.Help,
		"paste":       &k.Paste,
		"newline":     &k.Newline,
		"backspace":   &k.Backspace,
		"left":        &k.Left,
		"right":       &k.Right,
		"line_up":     &k.LineUp,
		"line_down":   &k.LineDown,
		"home":        &k.Home,
		"end":         &k.End,
		"top":         &k.Top,
		"bottom":      &k.Bottom,
		"done":        &k.Done,
		"force_quit":  &k.ForceQuit,
		"prev_button": &k.PrevButton,
		"next_button": &k.NextButton,
		"dismiss":     &k.Dismiss,
		"confirm":     &k.Confirm,
	}
}

// Apply replaces the keys of the named actions. Unknown actions and empty key
// lists are rejected so a typo in the config file does not silently unbind a key.
func (k *KeyMap) Apply(overrides map[string][]string) error {
	if len(overrides) == 0 {
		return nil
	}
	actions := k.actions()
	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		b, ok := actions[strings.ToLower(name)]
		if !ok {
			return fmt.Errorf("unknown key action %q", name)
		}
		keys := overrides[name]
		if len(keys) == 0 {
			return fmt.Errorf("key action %q has no keys", name)
		}
		b.SetKeys(keys...)
		b.SetHelp(strings.Join(keys, "/"), b.Help().Desc)
	}
	return nil
}

// ForMode returns the bindings the help footer shows in mode m.
func (k KeyMap) ForMode(m state.Mode) help.KeyMap {
	switch m {
	case state.Editing:
		return modeKeys{
			short: []key.Binding{k.Done, k.Paste, k.Top, k.Bottom},
			full: [][]key.Binding{
				{k.Left, k.Right, k.LineUp, k.LineDown},
				{k.Home, k.End, k.Top, k.Bottom},
				{k.Newline, k.Backspace, k.Paste},
				{k.Done, k.ForceQuit},
			},
		}
	case state.ExitConfirm:
		bs := []key.Binding{k.PrevButton, k.NextButton, k.Confirm, k.Dismiss}
		return modeKeys{short: bs, full: [][]key.Binding{bs}}
	default:
		return modeKeys{
			short: []key.Binding{k.Up, k.Down, k.Edit, k.Save, k.Exit, k.Help},
			full: [][]key.Binding{
				{k.Up, k.Down},
				{k.Edit, k.Diff},
				{k.Save, k.Exit, k.Quit},
				{k.Help},
			},
		}
	}
}

type modeKeys struct {
	short []key.Binding
	full  [][]key.Binding
}

func (m modeKeys) ShortHelp() []key.Binding  { return m.short }
func (m modeKeys) FullHelp() [][]key.Binding { return m.full }
