package state

// Mode is the dispatcher state: it decides which operations a key may trigger.
type Mode int

const (
	Navigation Mode = iota
	Editing
	ExitConfirm
)

func (m Mode) String() string {
	switch m {
	case Editing:
		return "EDIT"
	case ExitConfirm:
		return "EXIT?"
	default:
		return "NAV"
	}
}

// UIState holds cross-widget UI state used by the status bar, panes and popup.
type UIState struct {
	// Mode & panes
	Mode     Mode
	ShowDiff bool
	ShowHelp bool

	// Layout
	Width  int
	Height int

	// Exit dialog selection
	Popup Popup

	// Notices and ephemeral messages
	Notice      string
	NoticeError bool
}
