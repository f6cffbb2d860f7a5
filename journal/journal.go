package journal

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/deepnoodle-ai/fern/date"
)

// entryPattern matches journal entry files within the journal directory.
const entryPattern = "*.md"

// Entry is one persisted daily journal document.
type Entry struct {
	Path     string
	Markdown string
}

// Journal stores entries as markdown files in a single directory. The
// dated filename convention (YYYY-MM-DD-title.md) makes lexicographic
// order chronological, which is what LatestEntry relies on.
type Journal struct {
	dir string
}

// NewAt returns a journal rooted at the given directory.
func NewAt(dir string) *Journal {
	return &Journal{dir: dir}
}

// Dir returns the journal's directory.
func (j *Journal) Dir() string {
	return j.dir
}

// LatestEntry returns the most recent entry, or nil if the journal is
// empty. A missing journal directory counts as an empty journal.
func (j *Journal) LatestEntry() (*Entry, error) {
	dirEntries, err := os.ReadDir(j.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read journal directory %q: %w", j.dir, err)
	}

	var names []string
	for _, dirEntry := range dirEntries {
		if dirEntry.IsDir() {
			continue
		}
		matched, err := doublestar.Match(entryPattern, dirEntry.Name())
		if err != nil {
			return nil, fmt.Errorf("bad entry pattern %q: %w", entryPattern, err)
		}
		if matched {
			names = append(names, dirEntry.Name())
		}
	}
	if len(names) == 0 {
		return nil, nil
	}
	sort.Strings(names)

	path := filepath.Join(j.dir, names[len(names)-1])
	markdown, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read entry %q: %w", path, err)
	}
	return &Entry{Path: path, Markdown: string(markdown)}, nil
}

// AddEntry writes a new entry file and returns its path. The journal
// directory is created if needed.
func (j *Journal) AddEntry(name, contents string) (string, error) {
	if err := os.MkdirAll(j.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create journal directory %q: %w", j.dir, err)
	}
	path := filepath.Join(j.dir, name)
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		return "", fmt.Errorf("failed to write entry %q: %w", path, err)
	}
	return path, nil
}

var droppedTitleChars = regexp.MustCompile(`[()\[\]?']`)

// NormalizeTitle turns an entry title into its filename form: lowercase,
// spaces as dashes, brackets and punctuation stripped.
func NormalizeTitle(raw string) string {
	lower := strings.ReplaceAll(strings.ToLower(raw), " ", "-")
	return droppedTitleChars.ReplaceAllString(lower, "")
}

// Filename builds the dated entry filename for a title.
func Filename(day date.Date, title string) string {
	return fmt.Sprintf("%s-%s.md", day, NormalizeTitle(title))
}
