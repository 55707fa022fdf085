package diff

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	dmp "github.com/sergi/go-diff/diffmatchpatch"
)

var (
	delLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"})
	addLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"})
	delChar = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"}).Underline(true)
	addChar = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"}).Underline(true)
	faint   = lipgloss.NewStyle().Faint(true)
	header  = lipgloss.NewStyle().Bold(true)
)

// NoChanges is shown when the text still equals its placeholder.
const NoChanges = "No changes from placeholder"

// View renders a unified diff of placeholder against current. Lines are matched
// with a line-mode diff; a removed run immediately followed by an added run of
// the same length gets character-level highlights.
func View(placeholder, current []string, noColor bool) string {
	before := strings.Join(placeholder, "\n")
	after := strings.Join(current, "\n")
	r := renderer{noColor: noColor}
	if before == after {
		return r.style(faint, NoChanges) + "\n"
	}

	d := dmp.New()
	a, b, lines := d.DiffLinesToChars(before+"\n", after+"\n")
	diffs := d.DiffCharsToLines(d.DiffMain(a, b, false), lines)

	var sb strings.Builder
	sb.WriteString(r.style(header, "PLACEHOLDER → CURRENT") + "\n")
	for i := 0; i < len(diffs); i++ {
		df := diffs[i]
		switch df.Type {
		case dmp.DiffEqual:
			for _, l := range splitDiffLines(df.Text) {
				sb.WriteString("  " + r.style(faint, l) + "\n")
			}
		case dmp.DiffDelete:
			removed := splitDiffLines(df.Text)
			if i+1 < len(diffs) && diffs[i+1].Type == dmp.DiffInsert {
				added := splitDiffLines(diffs[i+1].Text)
				if len(added) == len(removed) {
					for j := range removed {
						r.pair(&sb, d, removed[j], added[j])
					}
					i++
					continue
				}
			}
			for _, l := range removed {
				sb.WriteString(r.style(delLine, "- "+l) + "\n")
			}
		case dmp.DiffInsert:
			for _, l := range splitDiffLines(df.Text) {
				sb.WriteString(r.style(addLine, "+ "+l) + "\n")
			}
		}
	}
	return sb.String()
}

type renderer struct {
	noColor bool
}

func (r renderer) style(s lipgloss.Style, text string) string {
	if r.noColor {
		return text
	}
	return s.Render(text)
}

// pair writes a changed line as a -/+ couple with char-level spans.
func (r renderer) pair(sb *strings.Builder, d *dmp.DiffMatchPatch, before, after string) {
	diffs := d.DiffMain(before, after, false)
	diffs = d.DiffCleanupSemantic(diffs)

	sb.WriteString(r.style(delLine, "- "))
	for _, df := range diffs {
		switch df.Type {
		case dmp.DiffDelete:
			sb.WriteString(r.style(delChar, df.Text))
		case dmp.DiffEqual:
			sb.WriteString(r.style(delLine, df.Text))
		}
	}
	sb.WriteString("\n")

	sb.WriteString(r.style(addLine, "+ "))
	for _, df := range diffs {
		switch df.Type {
		case dmp.DiffInsert:
			sb.WriteString(r.style(addChar, df.Text))
		case dmp.DiffEqual:
			sb.WriteString(r.style(addLine, df.Text))
		}
	}
	sb.WriteString("\n")
}

func splitDiffLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}
