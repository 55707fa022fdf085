package editor

// Viewport is the visible window into a Buffer: Offset is the first visible row and
// Height the number of content rows available to the renderer.
type Viewport struct {
	Offset int
	Height int
}

// Adjust scrolls so cursorRow is visible, then clamps Offset to [0, max(0, total-height)].
// It also records height, which may change between frames.
func (v *Viewport) Adjust(cursorRow, height, total int) {
	v.Height = height
	if height <= 0 {
		v.Offset = 0
		return
	}
	if cursorRow >= v.Offset+height {
		v.Offset = cursorRow - height + 1
	}
	if cursorRow < v.Offset {
		v.Offset = cursorRow
	}
	v.clamp(total)
}

// Follow is Adjust for the buffer's current cursor, using the buffer's extent so the
// pending-append row stays on screen.
func (v *Viewport) Follow(b *Buffer, height int) {
	v.Adjust(b.Cursor().Row, height, b.Extent())
}

// ScrollToTop shows the first page and moves the cursor to (0, 0).
func (v *Viewport) ScrollToTop(b *Buffer) {
	v.Offset = 0
	b.MoveToTop()
}

// ScrollToBottom shows the last page and moves the cursor to the end of the last line.
func (v *Viewport) ScrollToBottom(b *Buffer) {
	v.Offset = maxOffset(b.LineCount(), v.Height)
	b.MoveToBottom()
}

// Window returns the half-open row range [start, end) to draw for total rows.
func (v Viewport) Window(total int) (start, end int) {
	if v.Height <= 0 || total <= 0 {
		return 0, 0
	}
	start = v.Offset
	if start > total {
		start = total
	}
	end = start + v.Height
	if end > total {
		end = total
	}
	return start, end
}

func (v *Viewport) clamp(total int) {
	if m := maxOffset(total, v.Height); v.Offset > m {
		v.Offset = m
	}
	if v.Offset < 0 {
		v.Offset = 0
	}
}

func maxOffset(total, height int) int {
	if total-height > 0 {
		return total - height
	}
	return 0
}
