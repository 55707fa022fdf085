// Package templates supplies the seed text shown for topics that have not been edited.
package templates

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"docsmith/internal/topic"
)

//go:embed defaults/*.md
var defaults embed.FS

// DirSource reads <Dir>/<topic file name>.
type DirSource struct {
	Dir string
}

func (d DirSource) Placeholder(t topic.Topic) ([]string, error) {
	data, err := os.ReadFile(filepath.Join(d.Dir, t.FileName()))
	if err != nil {
		return nil, fmt.Errorf("read template for %s: %w", t.Label(), err)
	}
	return splitLines(string(data)), nil
}

// Embedded serves the templates compiled into the binary.
type Embedded struct{}

func (Embedded) Placeholder(t topic.Topic) ([]string, error) {
	data, err := defaults.ReadFile("defaults/" + t.FileName())
	if err != nil {
		return nil, fmt.Errorf("embedded template for %s: %w", t.Label(), err)
	}
	return splitLines(string(data)), nil
}

// Source prefers templates in dir and falls back to the embedded defaults.
func Source(dir string) topic.Source {
	if dir == "" {
		return Embedded{}
	}
	return topic.FirstOf(DirSource{Dir: dir}, Embedded{})
}

// Scaffold writes the embedded templates into dir. Existing files are kept unless
// overwrite is set. It returns the paths it wrote.
func Scaffold(dir string, overwrite bool) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create templates dir: %w", err)
	}
	var written []string
	for _, t := range topic.All {
		path := filepath.Join(dir, t.FileName())
		if !overwrite {
			if _, err := os.Stat(path); err == nil {
				continue
			} else if !errors.Is(err, fs.ErrNotExist) {
				return written, fmt.Errorf("stat %s: %w", path, err)
			}
		}
		data, err := defaults.ReadFile("defaults/" + t.FileName())
		if err != nil {
			return written, err
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return written, fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}

func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return []string{}
	}
	return strings.Split(s, "\n")
}
