package util

import (
	"strings"
	"unicode/utf8"

	"docsmith/internal/tui/state"
)

// ComputeTags calculates the status chips for a topic given its current lines, the
// placeholder it was seeded with, and whether it has been committed.
//
// The returned slice preserves a stable order:
//
//	Edited, Placeholder, Empty, Lines, Chars
//
// Rules:
//   - Edited and Placeholder are mutually exclusive. A topic is Edited once it was
//     committed or while its text differs from the placeholder; a committed topic
//     whose text still equals the placeholder stays Edited.
//   - Empty is set when every line is blank.
//   - Lines and Chars are always included; Chars counts runes, excluding newlines.
func ComputeTags(lines, placeholder []string, edited bool) []state.Tag {
	tags := make([]state.Tag, 0, 5)

	if edited || Changed(lines, placeholder) {
		tags = append(tags, state.Tag{Kind: state.EDITED})
	} else {
		tags = append(tags, state.Tag{Kind: state.PLACEHOLDER})
	}

	if blank(lines) {
		tags = append(tags, state.Tag{Kind: state.EMPTY})
	}

	tags = append(tags, state.Tag{Kind: state.LINES, Value: len(lines)})
	tags = append(tags, state.Tag{Kind: state.CHARS, Value: runeCount(lines)})
	return tags
}

// Changed reports whether lines differ from the placeholder text.
func Changed(lines, placeholder []string) bool {
	return strings.Join(lines, "\n") != strings.Join(placeholder, "\n")
}

func blank(lines []string) bool {
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			return false
		}
	}
	return true
}

func runeCount(lines []string) int {
	n := 0
	for _, l := range lines {
		n += utf8.RuneCountInString(l)
	}
	return n
}
