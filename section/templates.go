package section

import (
	"fmt"
	"strings"
	"text/template"
)

// Default section templates, used when the configuration carries no
// override. Overrides use the same text/template syntax and data.
const (
	DefaultNotesTemplate = `## Notes

> This is where your notes will go!
`

	DefaultTodosTemplate = `## TODOs

{{range .Todos}}{{.}}

{{end}}`

	DefaultPullRequestsTemplate = `## Pull Requests

{{range .Prs}}* [ ] ` + "`{{.Title}}`" + ` on [{{.Repo}}]({{.URL}}) by {{.Author}}
{{end}}`

	DefaultRemindersTemplate = `## Your reminders for today:

{{range .Reminders}}* [ ] {{.}}
{{end}}`

	DefaultTasksTemplate = `## Open tasks

{{range .Tasks}}* [ ] {{.Summary}} [here]({{.Href}})
{{end}}`
)

func render(name, tmpl string, data any) (string, error) {
	parsed, err := template.New(name).Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("invalid %s template: %w", name, err)
	}
	var out strings.Builder
	if err := parsed.Execute(&out, data); err != nil {
		return "", fmt.Errorf("failed to render %s template: %w", name, err)
	}
	return out.String(), nil
}

func trimEach(items []string) []string {
	trimmed := make([]string, 0, len(items))
	for _, item := range items {
		trimmed = append(trimmed, strings.TrimRight(item, " \t\n"))
	}
	return trimmed
}
