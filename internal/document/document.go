// Package document turns committed topics into the Markdown README and writes it.
package document

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"docsmith/internal/topic"
)

const (
	// FilePermissions is the mode of the written document.
	FilePermissions = 0o644
	// DirPermissions is the mode of a created output directory.
	DirPermissions = 0o755

	defaultTitle = "Documentation"
)

var preamble = []string{
	"This documentation follows the Diátaxis framework.",
	"Learn more at https://diataxis.fr/",
}

// Render serializes sections. ProjectName, when present, becomes the document title;
// every other topic is a "## <label>" section followed by its lines and a blank line.
// Sections are written in topic order regardless of the order given.
func Render(sections []topic.Section) []byte {
	var byTopic [topic.Count]*topic.Section
	for i := range sections {
		if s := &sections[i]; s.Topic.Valid() {
			byTopic[s.Topic] = s
		}
	}

	var b bytes.Buffer
	if p := byTopic[topic.ProjectName]; p != nil {
		fmt.Fprintf(&b, "# %s\n\n", title(p.Lines))
		for _, l := range preamble {
			b.WriteString(l + "\n")
		}
		b.WriteString("\n")
	}
	for _, t := range topic.All {
		s := byTopic[t]
		if t == topic.ProjectName || s == nil {
			continue
		}
		fmt.Fprintf(&b, "## %s\n", t.Label())
		for _, l := range s.Lines {
			b.WriteString(l + "\n")
		}
		b.WriteString("\n")
	}
	return b.Bytes()
}

func title(lines []string) string {
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return defaultTitle
	}
	return strings.TrimSpace(lines[0])
}

// Save renders sections into dir/name, creating dir if needed. The file is written to a
// temporary sibling and renamed into place, so a failed save leaves any previous
// document untouched. It returns the written path.
func Save(dir, name string, sections []topic.Section) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, DirPermissions); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(dir, name)

	tmp, err := os.CreateTemp(dir, "."+name+".*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(Render(sections)); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Chmod(FilePermissions); err != nil {
		tmp.Close()
		return "", fmt.Errorf("chmod %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("replace %s: %w", path, err)
	}
	return path, nil
}
