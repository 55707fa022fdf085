package topic

import (
	"io"
	"slices"

	"github.com/charmbracelet/log"

	"docsmith/internal/editor"
)

// DummyPlaceholder replaces seed text that could not be loaded.
const DummyPlaceholder = "empty"

// Section is one committed topic, ready for the persistence sink.
type Section struct {
	Topic Topic
	Lines []string
}

type entry struct {
	buf       *editor.Buffer
	view      editor.Viewport
	committed []string
	edited    bool
}

// Store maps every topic to its own buffer and committed snapshot, and tracks which
// topic is selected. The selected topic's buffer is the active one.
type Store struct {
	source   Source
	log      *log.Logger
	entries  [Count]entry
	selected Topic
	warned   [Count]bool
}

// NewStore selects ProjectName and loads its placeholder.
func NewStore(source Source, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Store{source: source, log: logger}
	s.Select(ProjectName)
	return s
}

func (s *Store) Selected() Topic { return s.selected }

// Active returns the selected topic's buffer and viewport.
func (s *Store) Active() (*editor.Buffer, *editor.Viewport) {
	e := &s.entries[s.selected]
	return e.buf, &e.view
}

// Edited reports whether t has been committed at least once.
func (s *Store) Edited(t Topic) bool { return t.Valid() && s.entries[t].edited }

// Committed returns a copy of t's committed lines, or nil if t was never committed.
func (s *Store) Committed(t Topic) []string {
	if !s.Edited(t) {
		return nil
	}
	return append([]string(nil), s.entries[t].committed...)
}

// Select makes t active. Committed topics come back with cursor and scroll position as
// they were left; others get a fresh buffer with the placeholder text.
func (s *Store) Select(t Topic) {
	if !t.Valid() {
		return
	}
	s.selected = t
	e := &s.entries[t]
	if e.edited && e.buf != nil {
		return
	}
	e.buf = editor.NewBuffer(s.Placeholder(t))
	e.view = editor.Viewport{Height: e.view.Height}
	s.log.Debug("topic selected", "topic", t, "placeholder", true)
}

// Switch moves the selection to t, committing the current topic first when the caller
// is leaving edit mode.
func (s *Store) Switch(t Topic, editing bool) {
	if editing {
		s.Commit(s.selected)
	}
	s.Select(t)
}

// Next and Previous cycle the selection through the topic order.
func (s *Store) Next() { s.Select(s.selected.Next()) }

func (s *Store) Previous() { s.Select(s.selected.Previous()) }

// Commit snapshots the active buffer under t, replacing anything committed before.
func (s *Store) Commit(t Topic) {
	if !t.Valid() {
		return
	}
	buf, view := s.Active()
	e := &s.entries[t]
	e.committed = buf.Lines()
	e.edited = true
	if t != s.selected {
		e.buf = editor.NewBuffer(e.committed)
		e.view = editor.Viewport{Height: view.Height}
	}
	s.log.Debug("topic committed", "topic", t, "lines", len(e.committed))
}

// Refresh reloads the placeholder of the selected topic when it has never been edited.
// Template files edited on disk show up without restarting. Callers must not refresh
// while the topic is being edited.
func (s *Store) Refresh() {
	e := &s.entries[s.selected]
	if e.edited {
		return
	}
	lines := s.Placeholder(s.selected)
	if e.buf != nil && slices.Equal(e.buf.Lines(), lines) {
		return
	}
	cur := editor.Cursor{}
	if e.buf != nil {
		cur = e.buf.Cursor()
	}
	e.buf = editor.NewBuffer(lines)
	e.buf.SetCursor(cur)
}

// Placeholder returns t's seed text, or a single dummy line when the source fails.
func (s *Store) Placeholder(t Topic) []string {
	if s.source == nil || !t.Valid() {
		return []string{DummyPlaceholder}
	}
	lines, err := s.source.Placeholder(t)
	if err != nil {
		if !s.warned[t] {
			s.log.Warn("placeholder unavailable", "topic", t, "err", err)
			s.warned[t] = true
		}
		return []string{DummyPlaceholder}
	}
	return lines
}

// Sections returns the committed topics in topic order.
func (s *Store) Sections() []Section {
	var out []Section
	for _, t := range All {
		if !s.entries[t].edited {
			continue
		}
		out = append(out, Section{Topic: t, Lines: s.Committed(t)})
	}
	return out
}
