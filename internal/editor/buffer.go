package editor

import "strings"

// Cursor addresses a rune inside a Buffer. Col is a rune index, not a byte offset.
type Cursor struct {
	Row int
	Col int
}

// Buffer is an ordered list of lines with a 2D cursor.
//
// The cursor may sit one row past the last line (Row == len(lines)). That is the
// pending-append position: the next rune or line break materializes a real line there.
// An empty buffer has zero lines and the cursor at (0, 0), which is such a position.
type Buffer struct {
	lines  [][]rune
	cursor Cursor
}

// NewBuffer returns a buffer seeded with lines and the cursor at (0, 0).
func NewBuffer(lines []string) *Buffer {
	b := &Buffer{lines: make([][]rune, 0, len(lines))}
	for _, l := range lines {
		b.lines = append(b.lines, []rune(l))
	}
	return b
}

// NewBufferFromText splits text on newlines. A trailing newline does not produce an
// extra empty line.
func NewBufferFromText(text string) *Buffer {
	text = normalizeNewlines(text)
	if text == "" {
		return NewBuffer(nil)
	}
	return NewBuffer(strings.Split(strings.TrimSuffix(text, "\n"), "\n"))
}

func (b *Buffer) Cursor() Cursor { return b.cursor }

// LineCount returns the number of materialized lines.
func (b *Buffer) LineCount() int { return len(b.lines) }

// Extent is the number of rows the cursor can occupy: the line count, plus one while
// the cursor is on the pending-append row.
func (b *Buffer) Extent() int {
	if b.pending() {
		return len(b.lines) + 1
	}
	return len(b.lines)
}

// Line returns line i, or "" when i is out of range.
func (b *Buffer) Line(i int) string {
	if i < 0 || i >= len(b.lines) {
		return ""
	}
	return string(b.lines[i])
}

// Lines returns a copy of the buffer contents.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	for i, l := range b.lines {
		out[i] = string(l)
	}
	return out
}

// Text joins the lines with newlines.
func (b *Buffer) Text() string { return strings.Join(b.Lines(), "\n") }

// SetCursor moves the cursor to c, clamped into a valid position.
func (b *Buffer) SetCursor(c Cursor) {
	if c.Row < 0 {
		c.Row = 0
	}
	if c.Row > len(b.lines) {
		c.Row = len(b.lines)
	}
	b.cursor.Row = c.Row
	b.cursor.Col = c.Col
	b.clampCol()
}

func (b *Buffer) pending() bool { return b.cursor.Row >= len(b.lines) }

func (b *Buffer) lineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

func (b *Buffer) clampCol() {
	if b.cursor.Col < 0 {
		b.cursor.Col = 0
	}
	if n := b.lineLen(b.cursor.Row); b.cursor.Col > n {
		b.cursor.Col = n
	}
}

// InsertRune inserts r at the cursor and advances the column.
func (b *Buffer) InsertRune(r rune) {
	if b.pending() {
		b.lines = append(b.lines, []rune{})
		b.cursor.Row = len(b.lines) - 1
	}
	b.clampCol()
	line := b.lines[b.cursor.Row]
	col := b.cursor.Col
	next := make([]rune, 0, len(line)+1)
	next = append(next, line[:col]...)
	next = append(next, r)
	next = append(next, line[col:]...)
	b.lines[b.cursor.Row] = next
	b.cursor.Col++
}

// SplitLine breaks the current line at the cursor; the cursor lands at the start of
// the new line.
func (b *Buffer) SplitLine() {
	if b.pending() {
		b.lines = append(b.lines, []rune{})
		b.cursor.Row = len(b.lines)
		b.cursor.Col = 0
		return
	}
	b.clampCol()
	row, col := b.cursor.Row, b.cursor.Col
	line := b.lines[row]
	before := append([]rune(nil), line[:col]...)
	after := append([]rune(nil), line[col:]...)

	b.lines[row] = before
	b.lines = append(b.lines, nil)
	copy(b.lines[row+2:], b.lines[row+1:])
	b.lines[row+1] = after

	b.cursor.Row = row + 1
	b.cursor.Col = 0
}

// DeleteBackward removes the rune before the cursor, joining with the previous line
// at column 0. It does nothing at (0, 0).
func (b *Buffer) DeleteBackward() {
	if b.pending() {
		// nothing to remove on the pending row; fall back onto the last line's end
		if b.cursor.Row > 0 {
			b.cursor.Row = len(b.lines) - 1
			b.cursor.Col = b.lineLen(b.cursor.Row)
		}
		return
	}
	b.clampCol()
	row, col := b.cursor.Row, b.cursor.Col
	if col > 0 {
		line := b.lines[row]
		b.lines[row] = append(line[:col-1:col-1], line[col:]...)
		b.cursor.Col--
		return
	}
	if row == 0 {
		return
	}
	removed := b.lines[row]
	b.lines = append(b.lines[:row], b.lines[row+1:]...)
	prev := b.lines[row-1]
	b.cursor.Row = row - 1
	b.cursor.Col = len(prev)
	b.lines[row-1] = append(prev[:len(prev):len(prev)], removed...)
}

// InsertText feeds s through InsertRune and SplitLine, as if typed. CRLF and lone CR
// count as one line break.
func (b *Buffer) InsertText(s string) {
	for _, r := range normalizeNewlines(s) {
		if r == '\n' {
			b.SplitLine()
			continue
		}
		b.InsertRune(r)
	}
}

func (b *Buffer) MoveLeft() {
	if b.cursor.Col > 0 {
		b.cursor.Col--
		return
	}
	if b.cursor.Row > 0 {
		b.cursor.Row--
		b.cursor.Col = b.lineLen(b.cursor.Row)
	}
}

func (b *Buffer) MoveRight() {
	if b.pending() {
		return
	}
	if b.cursor.Col < b.lineLen(b.cursor.Row) {
		b.cursor.Col++
		return
	}
	if b.cursor.Row+1 < len(b.lines) {
		b.cursor.Row++
		b.cursor.Col = 0
	}
}

func (b *Buffer) MoveUp() {
	if b.cursor.Row == 0 {
		return
	}
	b.cursor.Row--
	b.clampCol()
}

func (b *Buffer) MoveDown() {
	if b.cursor.Row+1 >= len(b.lines) {
		return
	}
	b.cursor.Row++
	b.clampCol()
}

// MoveHome and MoveEnd jump within the current line.
func (b *Buffer) MoveHome() { b.cursor.Col = 0 }

func (b *Buffer) MoveEnd() { b.cursor.Col = b.lineLen(b.cursor.Row) }

// MoveToTop puts the cursor at (0, 0).
func (b *Buffer) MoveToTop() { b.cursor = Cursor{} }

// MoveToBottom puts the cursor at the end of the last line.
func (b *Buffer) MoveToBottom() {
	if len(b.lines) == 0 {
		b.cursor = Cursor{}
		return
	}
	last := len(b.lines) - 1
	b.cursor = Cursor{Row: last, Col: b.lineLen(last)}
}

func normalizeNewlines(s string) string {
	if !strings.ContainsRune(s, '\r') {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
