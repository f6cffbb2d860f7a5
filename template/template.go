package template

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/deepnoodle-ai/fern/date"
)

// dayTemplate lays out a whole entry: the title line, then each rendered
// section in configured order, trimmed and separated by blank lines.
const dayTemplate = `# {{.Title}} on {{.Date}}
{{range .Sections}}
{{trim .}}
{{end}}`

// Day is a fully rendered journal entry waiting to be laid out: the
// entry title, its date, and the section texts produced by the section
// pipeline, keyed by section name.
type Day struct {
	Title    string
	Date     date.Date
	Sections map[string]string
}

// Render lays the entry out as one markdown document. Order names the
// sections to include, in order; names missing from the section map are
// skipped rather than rendered as empty placeholders.
func (d Day) Render(order []string) (string, error) {
	sections := make([]string, 0, len(order))
	for _, name := range order {
		if text, ok := d.Sections[name]; ok {
			sections = append(sections, text)
		}
	}

	tmpl, err := template.New("day").Funcs(template.FuncMap{
		"trim": strings.TrimSpace,
	}).Parse(dayTemplate)
	if err != nil {
		return "", fmt.Errorf("invalid day template: %w", err)
	}

	var out strings.Builder
	err = tmpl.Execute(&out, map[string]any{
		"Title":    d.Title,
		"Date":     d.Date.String(),
		"Sections": sections,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render day template: %w", err)
	}
	return out.String(), nil
}

// DefaultOrder is the section order used when the configuration does not
// specify one.
var DefaultOrder = []string{"notes", "todos", "prs", "reminders", "tasks"}
