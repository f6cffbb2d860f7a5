package jira

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
)

// Token is a personal access token that serializes as asterisks.
type Token string

func (t Token) String() string {
	return "***"
}

// Reveal returns the actual token value for authentication.
func (t Token) Reveal() string {
	return string(t)
}

func (t Token) MarshalYAML() (interface{}, error) {
	return "***", nil
}

// Auth is the basic-auth credential pair for the Jira API.
type Auth struct {
	User                string `mapstructure:"user" yaml:"user"`
	PersonalAccessToken Token  `mapstructure:"personal_access_token" yaml:"personal_access_token"`
}

// JQL is a map of field=value clauses combined with "and".
type JQL map[string]string

// Query renders the clauses as a JQL expression. Keys are sorted so the
// query is stable across runs.
func (j JQL) Query() string {
	keys := make([]string, 0, len(j))
	for key := range j {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s=%q", key, j[key]))
	}
	return strings.Join(parts, " and ")
}

// Config describes how the journal queries Jira for open tasks.
type Config struct {
	Enabled  bool   `mapstructure:"enabled" yaml:"enabled"`
	BaseURL  string `mapstructure:"base_url" yaml:"base_url"`
	Auth     Auth   `mapstructure:"auth" yaml:"auth"`
	Query    JQL    `mapstructure:"query" yaml:"query"`
	Template string `mapstructure:"template,omitempty" yaml:"template,omitempty"`
}

// Task is the slice of a Jira issue the journal renders.
type Task struct {
	Summary string
	Href    string
}

// Fetch runs the configured query and extracts a Task per issue. Issues
// missing a summary or self link are skipped.
func (c *Config) Fetch(ctx context.Context) ([]Task, error) {
	return c.fetch(ctx, http.DefaultClient)
}

func (c *Config) fetch(ctx context.Context, client *http.Client) ([]Task, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build jira request: %w", err)
	}
	req.SetBasicAuth(c.Auth.User, c.Auth.PersonalAccessToken.Reveal())

	params := url.Values{}
	params.Set("jql", c.Query.Query())
	params.Set("maxResults", "50")
	req.URL.RawQuery = params.Encode()

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("jira request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("jira request failed with status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read jira response: %w", err)
	}

	var tasks []Task
	for _, issue := range gjson.GetBytes(body, "issues").Array() {
		summary := issue.Get("fields.summary")
		href := issue.Get("self")
		if !summary.Exists() || !href.Exists() {
			continue
		}
		tasks = append(tasks, Task{Summary: summary.String(), Href: href.String()})
	}
	return tasks, nil
}
