package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/deepnoodle-ai/fern/section"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".journal.yml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestConfigReadFromYAML(t *testing.T) {
	path := writeConfig(t, `
dir: file/from/yaml
pull_requests:
  enabled: true
  auth:
    personal_access_token: "my-access-token"
  select:
    - repo: felipesere/sane-flags
      authors:
        - felipesere
reminders:
  enabled: true
`)

	config, err := LoadFrom(path)
	require.NoError(t, err)
	require.Equal(t, "file/from/yaml", config.Dir)

	require.NotNil(t, config.PullRequests)
	require.True(t, config.PullRequests.Enabled)
	require.Equal(t, "my-access-token", config.PullRequests.Auth.PersonalAccessToken.Reveal())
	require.Len(t, config.PullRequests.Select, 1)
	require.Equal(t, "felipesere/sane-flags", string(config.PullRequests.Select[0].Repo))

	require.NotNil(t, config.Reminders)
	require.True(t, config.Reminders.IsEnabled())
	require.Equal(t, filepath.Join("file/from/yaml", "reminders.json"), config.Reminders.Location,
		"store location defaults into the journal directory")
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, "dir: file/from/yaml\n")
	t.Setenv("JOURNAL_DIR", "dir/from/env")

	config, err := LoadFrom(path)
	require.NoError(t, err)
	require.Equal(t, "dir/from/env", config.Dir)
}

func TestEnvironmentSuppliesMissingSubtree(t *testing.T) {
	// No pull_requests block in the file at all: the environment alone
	// has to introduce the subtree, not just override existing keys.
	path := writeConfig(t, "dir: somewhere\n")
	t.Setenv("JOURNAL_PULL_REQUESTS__ENABLED", "true")
	t.Setenv("JOURNAL_PULL_REQUESTS__AUTH__PERSONAL_ACCESS_TOKEN", "token-from-env")

	config, err := LoadFrom(path)
	require.NoError(t, err)
	require.NotNil(t, config.PullRequests)
	require.True(t, config.PullRequests.Enabled)
	require.Equal(t, "token-from-env", config.PullRequests.Auth.PersonalAccessToken.Reveal())
}

func TestMissingConfigFileIsDescriptive(t *testing.T) {
	missing := filepath.Join(t.TempDir(), ".journal.yaml")

	_, err := LoadFrom(missing)
	require.Error(t, err)
	require.Contains(t, err.Error(), missing)
	require.Contains(t, err.Error(), EnvConfigPath)
}

func TestEnabledSections(t *testing.T) {
	t.Run("defaults to notes and todos", func(t *testing.T) {
		path := writeConfig(t, "dir: somewhere\n")
		config, err := LoadFrom(path)
		require.NoError(t, err)

		kinds := sectionKinds(config.EnabledSections())
		require.Equal(t, []section.Kind{section.KindNotes, section.KindTodos}, kinds)
	})

	t.Run("sections can be disabled", func(t *testing.T) {
		path := writeConfig(t, `
dir: somewhere
notes:
  enabled: false
`)
		config, err := LoadFrom(path)
		require.NoError(t, err)

		kinds := sectionKinds(config.EnabledSections())
		require.Equal(t, []section.Kind{section.KindTodos}, kinds)
	})

	t.Run("configured sections join in configured order", func(t *testing.T) {
		path := writeConfig(t, `
dir: somewhere
sections: [reminders, todos, notes]
reminders:
  enabled: true
`)
		config, err := LoadFrom(path)
		require.NoError(t, err)

		kinds := sectionKinds(config.EnabledSections())
		require.Equal(t,
			[]section.Kind{section.KindReminders, section.KindTodos, section.KindNotes},
			kinds)
	})

	t.Run("prs and tasks need explicit enabling", func(t *testing.T) {
		path := writeConfig(t, `
dir: somewhere
pull_requests:
  enabled: false
  auth:
    personal_access_token: "token"
jira:
  base_url: https://x.y/abc
`)
		config, err := LoadFrom(path)
		require.NoError(t, err)

		kinds := sectionKinds(config.EnabledSections())
		require.NotContains(t, kinds, section.KindPullRequests)
		require.NotContains(t, kinds, section.KindTasks)
	})
}

func TestShowMasksTokens(t *testing.T) {
	path := writeConfig(t, `
dir: somewhere
pull_requests:
  enabled: true
  auth:
    personal_access_token: "my-access-token"
jira:
  enabled: true
  base_url: https://x.y/abc
  auth:
    user: foo
    personal_access_token: "jira-token"
  query:
    project: EOPS
`)
	config, err := LoadFrom(path)
	require.NoError(t, err)

	shown, err := config.Show()
	require.NoError(t, err)
	require.NotContains(t, shown, "my-access-token")
	require.NotContains(t, shown, "jira-token")
	require.Contains(t, shown, "***")
	require.Contains(t, shown, "somewhere")
}

func sectionKinds(sections []section.Section) []section.Kind {
	kinds := make([]section.Kind, 0, len(sections))
	for _, s := range sections {
		kinds = append(kinds, s.Kind)
	}
	return kinds
}
