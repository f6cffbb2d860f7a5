package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/deepnoodle-ai/fern/github"
	"github.com/deepnoodle-ai/fern/jira"
	"github.com/deepnoodle-ai/fern/reminder"
	"github.com/deepnoodle-ai/fern/section"
	"github.com/deepnoodle-ai/fern/template"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath overrides the configuration file location.
const EnvConfigPath = "JOURNAL__CONFIG"

// defaultFileName is looked up in the home directory when no override is
// set.
const defaultFileName = ".journal.yaml"

// NotesSection is the notes section configuration plus its enabled flag.
// Notes are on by default; set enabled: false to drop them.
type NotesSection struct {
	Enabled             *bool `mapstructure:"enabled" yaml:"enabled,omitempty"`
	section.NotesConfig `mapstructure:",squash" yaml:",inline"`
}

// TodosSection is the TODO carry-forward configuration plus its enabled
// flag. Like notes, on by default.
type TodosSection struct {
	Enabled             *bool `mapstructure:"enabled" yaml:"enabled,omitempty"`
	section.TodosConfig `mapstructure:",squash" yaml:",inline"`
}

// RemindersSection couples the store location with the reminders section
// template.
type RemindersSection struct {
	reminder.Config         `mapstructure:",squash" yaml:",inline"`
	section.RemindersConfig `mapstructure:",squash" yaml:",inline"`
}

// Config is everything the journal reads from its YAML file and
// JOURNAL__-prefixed environment variables.
type Config struct {
	Dir          string            `mapstructure:"dir" yaml:"dir"`
	Sections     []string          `mapstructure:"sections" yaml:"sections,omitempty"`
	Notes        *NotesSection     `mapstructure:"notes" yaml:"notes,omitempty"`
	Todos        *TodosSection     `mapstructure:"todo" yaml:"todo,omitempty"`
	PullRequests *github.Config    `mapstructure:"pull_requests" yaml:"pull_requests,omitempty"`
	Reminders    *RemindersSection `mapstructure:"reminders" yaml:"reminders,omitempty"`
	Jira         *jira.Config      `mapstructure:"jira" yaml:"jira,omitempty"`
}

// Path returns the configuration file location: $JOURNAL__CONFIG if set,
// otherwise ~/.journal.yaml.
func Path() (string, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("unable to determine the home directory: %w", err)
	}
	return filepath.Join(home, defaultFileName), nil
}

// Load reads the configuration from Path, merged with environment
// variables. A missing file is an error that explains where the file was
// expected.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// envKeys lists every leaf the environment can supply or override.
// AutomaticEnv alone is not enough: viper only consults the environment
// for keys it already knows from the file, so a subtree present only in
// the environment would be silently dropped without these bindings.
var envKeys = []string{
	"dir",
	"sections",
	"notes.enabled",
	"notes.template",
	"todo.enabled",
	"todo.template",
	"pull_requests.enabled",
	"pull_requests.auth.personal_access_token",
	"pull_requests.template",
	"reminders.enabled",
	"reminders.location",
	"reminders.template",
	"jira.enabled",
	"jira.base_url",
	"jira.auth.user",
	"jira.auth.personal_access_token",
	"jira.template",
}

// LoadFrom reads the configuration from an explicit file path, still
// merging JOURNAL__-prefixed environment variables on top.
func LoadFrom(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf(
			"%s does not exist. We need a configuration file to work.\n"+
				"You can either use a '%s' file in your HOME directory or configure it with the %s environment variable",
			path, defaultFileName, EnvConfigPath)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("JOURNAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "__"))
	v.AutomaticEnv()
	for _, key := range envKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind environment key %q: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read configuration %q: %w", path, err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to parse configuration %q: %w", path, err)
	}
	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Reminders != nil && c.Reminders.Location == "" {
		c.Reminders.Location = filepath.Join(c.Dir, "reminders.json")
	}
}

// SectionOrder returns the configured section order, falling back to the
// default when none is set.
func (c *Config) SectionOrder() []string {
	if len(c.Sections) > 0 {
		return c.Sections
	}
	return template.DefaultOrder
}

func enabledByDefault(flag *bool) bool {
	return flag == nil || *flag
}

// EnabledSections assembles the section list for a new entry, in
// configured order. Notes and todos are on unless disabled; pull
// requests, reminders, and tasks need explicit configuration.
func (c *Config) EnabledSections() []section.Section {
	var sections []section.Section
	for _, name := range c.SectionOrder() {
		switch name {
		case "notes":
			if c.Notes == nil {
				sections = append(sections, section.Section{Kind: section.KindNotes})
			} else if enabledByDefault(c.Notes.Enabled) {
				notes := c.Notes.NotesConfig
				sections = append(sections, section.Section{Kind: section.KindNotes, Notes: &notes})
			}
		case "todos":
			if c.Todos == nil {
				sections = append(sections, section.Section{Kind: section.KindTodos})
			} else if enabledByDefault(c.Todos.Enabled) {
				todos := c.Todos.TodosConfig
				sections = append(sections, section.Section{Kind: section.KindTodos, Todos: &todos})
			}
		case "prs":
			if c.PullRequests != nil && c.PullRequests.Enabled {
				sections = append(sections, section.Section{Kind: section.KindPullRequests, PullRequests: c.PullRequests})
			}
		case "reminders":
			if c.Reminders != nil && c.Reminders.IsEnabled() {
				reminders := c.Reminders.RemindersConfig
				sections = append(sections, section.Section{Kind: section.KindReminders, Reminders: &reminders})
			}
		case "tasks":
			if c.Jira != nil && c.Jira.Enabled {
				sections = append(sections, section.Section{Kind: section.KindTasks, Tasks: c.Jira})
			}
		}
	}
	return sections
}

// RemindersEnabled reports whether the reminder store is configured and
// switched on.
func (c *Config) RemindersEnabled() bool {
	return c.Reminders != nil && c.Reminders.IsEnabled()
}

// ReminderLocation returns the configured reminder store path. Only valid
// when RemindersEnabled.
func (c *Config) ReminderLocation() string {
	if c.Reminders == nil {
		return ""
	}
	return c.Reminders.Location
}

// Show serializes the effective configuration as YAML with access tokens
// masked.
func (c *Config) Show() (string, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to serialize configuration: %w", err)
	}
	return string(out), nil
}
