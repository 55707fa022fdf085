package tui

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"docsmith/internal/config"
	"docsmith/internal/editor"
	"docsmith/internal/topic"
	"docsmith/internal/tui/state"
)

func seedSource() topic.Source {
	return topic.SourceFunc(func(t topic.Topic) ([]string, error) {
		return []string{"seed " + t.FileName()}, nil
	})
}

func newTestModel(t *testing.T, opts ...Option) *Model {
	t.Helper()
	cfg := config.Default()
	cfg.OutputDir = t.TempDir()
	cfg.NoColor = true
	m, err := NewModel(cfg, topic.NewStore(seedSource(), nil), nil, opts...)
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func press(m *Model, msgs ...tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func activeLines(m *Model) []string {
	buf, _ := m.store.Active()
	return buf.Lines()
}

func TestEnterAndLeaveEditing(t *testing.T) {
	m := newTestModel(t)
	press(m, runes("i"))
	if m.ui.Mode != state.Editing {
		t.Fatalf("mode = %v, want Editing", m.ui.Mode)
	}
	press(m, runes("Hi"), tea.KeyMsg{Type: tea.KeySpace}, tea.KeyMsg{Type: tea.KeyEsc})
	if m.ui.Mode != state.Navigation {
		t.Fatalf("mode = %v, want Navigation", m.ui.Mode)
	}
	want := []string{"Hi seed project_name.md"}
	if got := m.store.Committed(topic.ProjectName); !reflect.DeepEqual(got, want) {
		t.Fatalf("committed = %q, want %q", got, want)
	}
}

func TestNavigationKeysDoNotTypeIntoBuffer(t *testing.T) {
	m := newTestModel(t)
	press(m, runes("j"), runes("j"))
	if m.store.Selected() != topic.Guides {
		t.Fatalf("selected = %v, want Guides", m.store.Selected())
	}
	press(m, runes("k"), tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyUp})
	if m.store.Selected() != topic.Reference {
		t.Fatalf("selected = %v, want Reference after wrapping", m.store.Selected())
	}
	if got := activeLines(m); !reflect.DeepEqual(got, []string{"seed reference.md"}) {
		t.Fatalf("navigation modified the buffer: %q", got)
	}
}

func TestEditingKeysDoNotSwitchTopics(t *testing.T) {
	m := newTestModel(t)
	press(m, tea.KeyMsg{Type: tea.KeyEnter}, runes("jk"), tea.KeyMsg{Type: tea.KeyDown})
	if m.store.Selected() != topic.ProjectName {
		t.Fatalf("selected = %v, want ProjectName", m.store.Selected())
	}
	if got := activeLines(m); got[0] != "jkseed project_name.md" {
		t.Fatalf("line = %q", got[0])
	}
}

func TestSplitAndBackspace(t *testing.T) {
	m := newTestModel(t)
	press(m, runes("i"), tea.KeyMsg{Type: tea.KeyEnd}, tea.KeyMsg{Type: tea.KeyEnter}, runes("x"))
	if got := activeLines(m); !reflect.DeepEqual(got, []string{"seed project_name.md", "x"}) {
		t.Fatalf("lines = %q", got)
	}
	press(m, tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyBackspace})
	if got := activeLines(m); !reflect.DeepEqual(got, []string{"seed project_name.md"}) {
		t.Fatalf("lines = %q", got)
	}
}

func TestClipboardPaste(t *testing.T) {
	m := newTestModel(t, WithClipboard(func() (string, error) { return "a\r\nb", nil }))
	press(m, runes("i"), tea.KeyMsg{Type: tea.KeyCtrlV})
	if got := activeLines(m); !reflect.DeepEqual(got, []string{"a", "bseed project_name.md"}) {
		t.Fatalf("lines = %q", got)
	}
}

func TestClipboardFailureIsNoop(t *testing.T) {
	for name, read := range map[string]func() (string, error){
		"error": func() (string, error) { return "", errors.New("no clipboard") },
		"empty": func() (string, error) { return "", nil },
	} {
		t.Run(name, func(t *testing.T) {
			m := newTestModel(t, WithClipboard(read))
			press(m, runes("i"), tea.KeyMsg{Type: tea.KeyCtrlV})
			if got := activeLines(m); !reflect.DeepEqual(got, []string{"seed project_name.md"}) {
				t.Fatalf("lines = %q", got)
			}
			if m.ui.Mode != state.Editing {
				t.Fatalf("mode = %v", m.ui.Mode)
			}
		})
	}
}

func TestBracketedPaste(t *testing.T) {
	m := newTestModel(t)
	press(m, runes("i"), tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("one\ntwo "), Paste: true})
	if got := activeLines(m); !reflect.DeepEqual(got, []string{"one", "two seed project_name.md"}) {
		t.Fatalf("lines = %q", got)
	}
}

func TestScrollKeysKeepCursorVisible(t *testing.T) {
	m := newTestModel(t)
	press(m, runes("i"))
	buf, view := m.store.Active()
	for i := 0; i < 60; i++ {
		press(m, tea.KeyMsg{Type: tea.KeyEnter})
	}
	press(m, tea.KeyMsg{Type: tea.KeyF1})
	if view.Offset != 0 || buf.Cursor() != (editor.Cursor{}) {
		t.Fatalf("top: offset=%d cursor=%+v", view.Offset, buf.Cursor())
	}
	press(m, tea.KeyMsg{Type: tea.KeyF2})
	row := buf.Cursor().Row
	if row != buf.LineCount()-1 {
		t.Fatalf("bottom: row = %d, want %d", row, buf.LineCount()-1)
	}
	if row < view.Offset || row >= view.Offset+view.Height {
		t.Fatalf("row %d outside [%d,%d)", row, view.Offset, view.Offset+view.Height)
	}
}

func TestExitDialogCancel(t *testing.T) {
	m := newTestModel(t)
	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.ui.Mode != state.ExitConfirm || m.ui.Popup.Selected() != state.Cancel {
		t.Fatalf("mode=%v selected=%v", m.ui.Mode, m.ui.Popup.Selected())
	}
	if cmd := press(m, tea.KeyMsg{Type: tea.KeyEnter}); isQuit(cmd) {
		t.Fatalf("Cancel must not quit")
	}
	if m.ui.Mode != state.Navigation {
		t.Fatalf("mode = %v, want Navigation", m.ui.Mode)
	}
}

func TestExitDialogWrapsAndDismisses(t *testing.T) {
	m := newTestModel(t)
	press(m, tea.KeyMsg{Type: tea.KeyEsc}, tea.KeyMsg{Type: tea.KeyLeft})
	if m.ui.Popup.Selected() != state.ExitWithSave {
		t.Fatalf("selected = %v, want ExitWithSave", m.ui.Popup.Selected())
	}
	press(m, tea.KeyMsg{Type: tea.KeyTab}, runes("l"), runes("h"))
	if m.ui.Popup.Selected() != state.Cancel {
		t.Fatalf("selected = %v, want Cancel", m.ui.Popup.Selected())
	}
	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.ui.Mode != state.Navigation {
		t.Fatalf("mode = %v", m.ui.Mode)
	}
}

func TestExitWithoutSaving(t *testing.T) {
	m := newTestModel(t)
	cmd := press(m, tea.KeyMsg{Type: tea.KeyEsc}, runes("l"), tea.KeyMsg{Type: tea.KeyEnter})
	if !isQuit(cmd) {
		t.Fatalf("expected quit")
	}
	if _, err := os.Stat(m.cfg.OutputPath()); !os.IsNotExist(err) {
		t.Fatalf("no document should be written, stat err = %v", err)
	}
	if m.View() != "" {
		t.Fatalf("view should be empty after quitting")
	}
}

func TestExitWithSave(t *testing.T) {
	m := newTestModel(t)
	press(m, runes("j"), runes("i"), runes("Step one "), tea.KeyMsg{Type: tea.KeyEsc})
	cmd := press(m, tea.KeyMsg{Type: tea.KeyEsc}, runes("l"), runes("l"), tea.KeyMsg{Type: tea.KeyEnter})
	if !isQuit(cmd) {
		t.Fatalf("expected quit after save")
	}
	data, err := os.ReadFile(m.cfg.OutputPath())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	want := "## Tutorials\nStep one seed tutorials.md\n\n"
	if string(data) != want {
		t.Fatalf("document = %q, want %q", data, want)
	}
}

func TestExitWithSaveFailureStays(t *testing.T) {
	m := newTestModel(t)
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	m.cfg.OutputDir = filepath.Join(blocker, "sub")
	cmd := press(m, tea.KeyMsg{Type: tea.KeyEsc}, runes("h"), tea.KeyMsg{Type: tea.KeyEnter})
	if isQuit(cmd) {
		t.Fatalf("failed save must not quit")
	}
	if m.ui.Mode != state.Navigation || !m.ui.NoticeError {
		t.Fatalf("mode=%v notice=%q error=%v", m.ui.Mode, m.ui.Notice, m.ui.NoticeError)
	}
}

func TestSaveFromNavigation(t *testing.T) {
	m := newTestModel(t)
	press(m, runes("i"), runes("Docs "), tea.KeyMsg{Type: tea.KeyEsc}, runes("s"))
	if m.ui.NoticeError || !strings.HasPrefix(m.ui.Notice, "saved ") {
		t.Fatalf("notice = %q", m.ui.Notice)
	}
	data, err := os.ReadFile(m.cfg.OutputPath())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.HasPrefix(string(data), "# Docs seed project_name.md\n\n") {
		t.Fatalf("document = %q", data)
	}
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(t)
	if !isQuit(press(m, runes("q"))) {
		t.Fatalf("q should quit from Navigation")
	}
	m = newTestModel(t)
	if !isQuit(press(m, runes("i"), tea.KeyMsg{Type: tea.KeyCtrlC})) {
		t.Fatalf("ctrl+c should quit from Editing")
	}
	m = newTestModel(t)
	if isQuit(press(m, runes("i"), runes("q"))) {
		t.Fatalf("q must be typed while editing")
	}
}

func TestDiffAndHelpToggles(t *testing.T) {
	m := newTestModel(t)
	press(m, runes("d"), runes("?"))
	if !m.ui.ShowDiff || !m.ui.ShowHelp {
		t.Fatalf("toggles not applied: %+v", m.ui)
	}
	if !strings.Contains(m.View(), "No changes from placeholder") {
		t.Fatalf("diff pane missing from view")
	}
	press(m, runes("i"))
	if m.ui.ShowDiff {
		t.Fatalf("entering edit mode should close the diff pane")
	}
}

func TestRefreshTickReloadsPlaceholder(t *testing.T) {
	seed := "v1"
	cfg := config.Default()
	cfg.OutputDir = t.TempDir()
	store := topic.NewStore(topic.SourceFunc(func(topic.Topic) ([]string, error) {
		return []string{seed}, nil
	}), nil)
	m, err := NewModel(cfg, store, nil)
	if err != nil {
		t.Fatal(err)
	}
	seed = "v2"
	press(m, runes("i"))
	if _, cmd := m.Update(refreshMsg{}); cmd == nil {
		t.Fatalf("refresh should schedule the next tick")
	}
	if got := activeLines(m); got[0] != "v1" {
		t.Fatalf("refresh must not touch the buffer while editing, got %q", got)
	}
	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	seed = "v3"
	m.Update(refreshMsg{})
	if got := activeLines(m); got[0] != "v1" {
		t.Fatalf("committed topic must not be refreshed, got %q", got)
	}
	press(m, runes("j"))
	seed = "v4"
	m.Update(refreshMsg{})
	if got := activeLines(m); got[0] != "v4" {
		t.Fatalf("got %q, want refreshed placeholder", got)
	}
}

func TestKeyOverrides(t *testing.T) {
	cfg := config.Default()
	cfg.OutputDir = t.TempDir()
	cfg.Keys = map[string][]string{"save": {"ctrl+s"}}
	m, err := NewModel(cfg, topic.NewStore(seedSource(), nil), nil)
	if err != nil {
		t.Fatal(err)
	}
	press(m, runes("s"))
	if m.ui.Notice != "" {
		t.Fatalf("s should no longer save, notice = %q", m.ui.Notice)
	}
	press(m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if !strings.HasPrefix(m.ui.Notice, "saved ") {
		t.Fatalf("ctrl+s should save, notice = %q", m.ui.Notice)
	}

	cfg.Keys = map[string][]string{"teleport": {"t"}}
	if _, err := NewModel(cfg, topic.NewStore(seedSource(), nil), nil); err == nil {
		t.Fatalf("expected error for unknown action")
	}
}

func TestViewRendersLayout(t *testing.T) {
	m := newTestModel(t)
	out := m.View()
	for _, w := range []string{"docsmith", "> Project Name", "How-To Guides", "[NAV]", "seed project_name.md"} {
		if !strings.Contains(out, w) {
			t.Fatalf("expected %q in view:\n%s", w, out)
		}
	}
	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if !strings.Contains(m.View(), "> Cancel <") {
		t.Fatalf("exit dialog missing:\n%s", m.View())
	}
}
