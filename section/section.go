package section

import (
	"context"
	"fmt"

	"github.com/deepnoodle-ai/fern/date"
	"github.com/deepnoodle-ai/fern/github"
	"github.com/deepnoodle-ai/fern/jira"
	"github.com/deepnoodle-ai/fern/journal"
	"github.com/deepnoodle-ai/fern/log"
	"github.com/deepnoodle-ai/fern/reminder"
	"github.com/deepnoodle-ai/fern/todo"
)

// Kind enumerates the section kinds a journal entry can carry. The set is
// closed on purpose: rendering dispatches with an exhaustive switch so a
// new kind cannot be added without handling it there.
type Kind int

const (
	KindNotes Kind = iota
	KindTodos
	KindPullRequests
	KindReminders
	KindTasks
)

// Name returns the section's name as used in configuration and in the
// rendered-section map handed to the template.
func (k Kind) Name() string {
	switch k {
	case KindNotes:
		return "notes"
	case KindTodos:
		return "todos"
	case KindPullRequests:
		return "prs"
	case KindReminders:
		return "reminders"
	case KindTasks:
		return "tasks"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Section is one enabled section together with its configuration. Exactly
// the field matching Kind is set.
type Section struct {
	Kind         Kind
	Notes        *NotesConfig
	Todos        *TodosConfig
	PullRequests *github.Config
	Reminders    *RemindersConfig
	Tasks        *jira.Config
}

// NotesConfig configures the free-form notes section.
type NotesConfig struct {
	Template string `mapstructure:"template,omitempty" yaml:"template,omitempty"`
}

// TodosConfig configures the carried-forward TODOs section.
type TodosConfig struct {
	Template string `mapstructure:"template,omitempty" yaml:"template,omitempty"`
}

// RemindersConfig configures the rendering of today's reminders. The
// store itself is located by reminder.Config and handed in via Deps.
type RemindersConfig struct {
	Template string `mapstructure:"template,omitempty" yaml:"template,omitempty"`
}

// Deps carries the collaborators a section may need to render: the
// journal holding the previous entry, the clock supplying today, and the
// loaded reminder store.
type Deps struct {
	Journal   *journal.Journal
	Clock     date.Clock
	Reminders *reminder.Store
	Logger    log.Logger
}

// Render produces the text of one section. Failures are the caller's to
// surface; no partial section text is returned.
func Render(ctx context.Context, s Section, deps Deps) (string, error) {
	switch s.Kind {
	case KindNotes:
		return renderNotes(s.Notes)
	case KindTodos:
		return renderTodos(s.Todos, deps)
	case KindPullRequests:
		return renderPullRequests(ctx, s.PullRequests)
	case KindReminders:
		return renderReminders(s.Reminders, deps)
	case KindTasks:
		return renderTasks(ctx, s.Tasks)
	default:
		return "", fmt.Errorf("unknown section kind %q", s.Kind.Name())
	}
}

// BuildAll renders every given section and returns the name-to-text map
// for the day template. The first render failure fails the whole build:
// a partial document is never produced.
func BuildAll(ctx context.Context, sections []Section, deps Deps) (map[string]string, error) {
	rendered := make(map[string]string, len(sections))
	for _, s := range sections {
		text, err := Render(ctx, s, deps)
		if err != nil {
			return nil, fmt.Errorf("failed to render %s section: %w", s.Kind.Name(), err)
		}
		rendered[s.Kind.Name()] = text
	}
	return rendered, nil
}

// Each section renderer below falls back to its default template when no
// override is configured. Defaults are constants, computed fresh per
// render, never shared mutable state.

func renderNotes(config *NotesConfig) (string, error) {
	tmpl := DefaultNotesTemplate
	if config != nil && config.Template != "" {
		tmpl = config.Template
	}
	return render("notes", tmpl, nil)
}

func renderTodos(config *TodosConfig, deps Deps) (string, error) {
	var todos []string
	entry, err := deps.Journal.LatestEntry()
	if err != nil {
		return "", err
	}
	if entry != nil {
		todos = todo.Extract(entry.Markdown)
		if deps.Logger != nil {
			deps.Logger.Info("carried forward open todos",
				"count", len(todos), "entry", entry.Path)
		}
	}

	tmpl := DefaultTodosTemplate
	if config != nil && config.Template != "" {
		tmpl = config.Template
	}
	return render("todos", tmpl, map[string]any{"Todos": trimEach(todos)})
}

func renderPullRequests(ctx context.Context, config *github.Config) (string, error) {
	prs, err := config.Fetch(ctx)
	if err != nil {
		return "", err
	}

	tmpl := DefaultPullRequestsTemplate
	if config.Template != "" {
		tmpl = config.Template
	}
	return render("prs", tmpl, map[string]any{"Prs": prs})
}

func renderReminders(config *RemindersConfig, deps Deps) (string, error) {
	due := deps.Reminders.DueOn(deps.Clock.Today())

	tmpl := DefaultRemindersTemplate
	if config != nil && config.Template != "" {
		tmpl = config.Template
	}
	return render("reminders", tmpl, map[string]any{"Reminders": due})
}

func renderTasks(ctx context.Context, config *jira.Config) (string, error) {
	tasks, err := config.Fetch(ctx)
	if err != nil {
		return "", err
	}

	tmpl := DefaultTasksTemplate
	if config.Template != "" {
		tmpl = config.Template
	}
	return render("tasks", tmpl, map[string]any{"Tasks": tasks})
}
