package state

// TagKind enumerates the status chips shown next to a topic.
type TagKind int

const (
	// Stable ordering for display: Edited, Placeholder, Empty, Lines, Chars
	EDITED TagKind = iota
	PLACEHOLDER
	EMPTY
	LINES
	CHARS
)

// Tag represents a single status chip. Value is used for numeric counters
// (line and character counts). Non-numeric tags use Value = 0.
type Tag struct {
	Kind  TagKind
	Value int
}
