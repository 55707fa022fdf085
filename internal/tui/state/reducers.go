package state

// EnterEditing switches Navigation to Editing. Other modes are left unchanged.
func EnterEditing(s UIState) UIState {
	if s.Mode != Navigation {
		return s
	}
	s.Mode = Editing
	s.ShowDiff = false
	s.Notice = "[EDIT] esc to finish"
	s.NoticeError = false
	return s
}

// LeaveEditing returns from Editing to Navigation.
func LeaveEditing(s UIState) UIState {
	if s.Mode != Editing {
		return s
	}
	s.Mode = Navigation
	s.Notice = ""
	s.NoticeError = false
	return s
}

// RequestExit opens the exit dialog with Cancel preselected.
func RequestExit(s UIState) UIState {
	if s.Mode != Navigation {
		return s
	}
	s.Mode = ExitConfirm
	s.Popup = NewPopup()
	return s
}

// CancelExit closes the exit dialog.
func CancelExit(s UIState) UIState {
	if s.Mode != ExitConfirm {
		return s
	}
	s.Mode = Navigation
	return s
}

// ToggleDiff flips the diff pane. It is only available while navigating.
func ToggleDiff(s UIState) UIState {
	if s.Mode == Navigation {
		s.ShowDiff = !s.ShowDiff
	}
	return s
}

// ToggleHelp flips between the short and full key help.
func ToggleHelp(s UIState) UIState {
	s.ShowHelp = !s.ShowHelp
	return s
}

// Resize records the terminal size.
func Resize(s UIState, width, height int) UIState {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	s.Width = width
	s.Height = height
	return s
}

// SetNotice shows an informational message in the status bar.
func SetNotice(s UIState, msg string) UIState {
	s.Notice = msg
	s.NoticeError = false
	return s
}

// SetError shows a failure in the status bar.
func SetError(s UIState, msg string) UIState {
	s.Notice = msg
	s.NoticeError = true
	return s
}

// NextButton and PreviousButton move the exit dialog selection.
func NextButton(s UIState) UIState {
	if s.Mode == ExitConfirm {
		s.Popup = s.Popup.Next()
	}
	return s
}

func PreviousButton(s UIState) UIState {
	if s.Mode == ExitConfirm {
		s.Popup = s.Popup.Previous()
	}
	return s
}
