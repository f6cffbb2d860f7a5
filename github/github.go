package github

import (
	"context"
	"fmt"
	"strings"

	gh "github.com/google/go-github/v68/github"
)

// Token is a personal access token. It never prints or serializes as
// anything but asterisks.
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

// Auth holds the credentials used to talk to GitHub.
type Auth struct {
	PersonalAccessToken Token `mapstructure:"personal_access_token" yaml:"personal_access_token"`
}

// Repo is an "owner/name" repository reference.
type Repo string

func (r Repo) split() (string, string, error) {
	parts := strings.Split(string(r), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("repo %q did not have exactly 2 components", string(r))
	}
	return parts[0], parts[1], nil
}

// Selector names one repository to pull from and the local filters to
// apply to its open pull requests.
type Selector struct {
	Repo    Repo     `mapstructure:"repo" yaml:"repo"`
	Authors []string `mapstructure:"authors,omitempty" yaml:"authors,omitempty"`
	Labels  []string `mapstructure:"labels,omitempty" yaml:"labels,omitempty"`
}

// matches applies the selector's author and label filters. An empty filter
// matches everything; labels need at least one in common.
func (s Selector) matches(pr PullRequest) bool {
	if len(s.Authors) > 0 && !contains(s.Authors, pr.Author) {
		return false
	}
	if len(s.Labels) > 0 && !intersects(s.Labels, pr.Labels) {
		return false
	}
	return true
}

// Config describes how the journal selects outstanding pull requests.
type Config struct {
	Enabled  bool       `mapstructure:"enabled" yaml:"enabled"`
	Auth     Auth       `mapstructure:"auth" yaml:"auth"`
	Select   []Selector `mapstructure:"select" yaml:"select"`
	Template string     `mapstructure:"template,omitempty" yaml:"template,omitempty"`
}

// PullRequest is the slice of a GitHub pull request the journal renders.
type PullRequest struct {
	Title  string
	Repo   string
	Author string
	URL    string
	Labels []string
}

// Fetch lists the open pull requests matching every selector, fully
// paginated, in selector order.
func (c *Config) Fetch(ctx context.Context) ([]PullRequest, error) {
	client := gh.NewClient(nil).WithAuthToken(c.Auth.PersonalAccessToken.Reveal())
	return c.fetch(ctx, client)
}

func (c *Config) fetch(ctx context.Context, client *gh.Client) ([]PullRequest, error) {
	var all []PullRequest
	for _, selector := range c.Select {
		owner, name, err := selector.Repo.split()
		if err != nil {
			return nil, err
		}

		opts := &gh.PullRequestListOptions{
			State:       "open",
			ListOptions: gh.ListOptions{PerPage: 50},
		}
		for {
			page, resp, err := client.PullRequests.List(ctx, owner, name, opts)
			if err != nil {
				return nil, fmt.Errorf("failed to list pull requests for %s: %w", selector.Repo, err)
			}
			for _, raw := range page {
				pr := fromGitHub(raw)
				if selector.matches(pr) {
					all = append(all, pr)
				}
			}
			if resp.NextPage == 0 {
				break
			}
			opts.Page = resp.NextPage
		}
	}
	return all, nil
}

func fromGitHub(raw *gh.PullRequest) PullRequest {
	labels := make([]string, 0, len(raw.Labels))
	for _, label := range raw.Labels {
		labels = append(labels, label.GetName())
	}
	return PullRequest{
		Title:  raw.GetTitle(),
		Repo:   raw.GetBase().GetRepo().GetFullName(),
		Author: raw.GetUser().GetLogin(),
		URL:    raw.GetHTMLURL(),
		Labels: labels,
	}
}

func contains(haystack []string, needle string) bool {
	for _, value := range haystack {
		if value == needle {
			return true
		}
	}
	return false
}

func intersects(a, b []string) bool {
	for _, value := range a {
		if contains(b, value) {
			return true
		}
	}
	return false
}
