package state

// ExitAction is one of the exit dialog buttons.
type ExitAction int

const (
	Cancel ExitAction = iota
	ExitWithoutSaving
	ExitWithSave
)

// ExitActions lists the dialog buttons in display order.
var ExitActions = [3]ExitAction{Cancel, ExitWithoutSaving, ExitWithSave}

// Label is the button caption.
func (a ExitAction) Label() string {
	switch a {
	case ExitWithoutSaving:
		return "Exit"
	case ExitWithSave:
		return "Save"
	default:
		return "Cancel"
	}
}

// Popup is the exit dialog selection. The index is always kept in [0, 3).
type Popup struct {
	selected int
}

func NewPopup() Popup { return Popup{} }

func (p Popup) Next() Popup {
	p.selected = (p.selected + 1) % len(ExitActions)
	return p
}

func (p Popup) Previous() Popup {
	p.selected = (p.selected + len(ExitActions) - 1) % len(ExitActions)
	return p
}

func (p Popup) Index() int { return p.selected }

// Selected resolves the highlighted button.
func (p Popup) Selected() ExitAction { return ExitActions[p.selected] }
