package github

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	gh "github.com/google/go-github/v68/github"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRepoSplit(t *testing.T) {
	owner, name, err := Repo("deepnoodle-ai/fern").split()
	require.NoError(t, err)
	require.Equal(t, "deepnoodle-ai", owner)
	require.Equal(t, "fern", name)

	for _, bad := range []string{"fern", "a/b/c", "/fern", "owner/"} {
		_, _, err := Repo(bad).split()
		require.Error(t, err, "repo %q", bad)
		require.Contains(t, err.Error(), bad)
	}
}

func TestSelectorMatching(t *testing.T) {
	pr := PullRequest{
		Author: "felipe",
		Labels: []string{"foo", "bar"},
	}

	t.Run("author filter", func(t *testing.T) {
		selector := Selector{Authors: []string{"felipe"}}
		require.True(t, selector.matches(pr))

		other := pr
		other.Author = "anna"
		require.False(t, selector.matches(other))
	})

	t.Run("at least one label must match", func(t *testing.T) {
		selector := Selector{Labels: []string{"foo"}}
		require.True(t, selector.matches(pr))

		other := pr
		other.Labels = []string{"batz"}
		require.False(t, selector.matches(other))
	})

	t.Run("author and label filters combine", func(t *testing.T) {
		selector := Selector{Authors: []string{"felipe"}, Labels: []string{"foo"}}
		require.True(t, selector.matches(pr))

		wrongLabels := pr
		wrongLabels.Labels = []string{"batz"}
		require.False(t, selector.matches(wrongLabels))

		wrongAuthor := pr
		wrongAuthor.Author = "anna"
		require.False(t, selector.matches(wrongAuthor))
	})

	t.Run("empty filters match everything", func(t *testing.T) {
		require.True(t, Selector{}.matches(pr))
	})
}

// apiClient returns a go-github client pointed at the test server.
func apiClient(t *testing.T, server *httptest.Server) *gh.Client {
	t.Helper()
	base, err := url.Parse(server.URL + "/")
	require.NoError(t, err)
	client := gh.NewClient(server.Client())
	client.BaseURL = base
	return client
}

func TestFetchFollowsPaginationAndSelectorOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "open", r.URL.Query().Get("state"))
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/repos/acme/widgets/pulls":
			if r.URL.Query().Get("page") == "2" {
				fmt.Fprint(w, `[
					{"title": "Fix crash", "html_url": "https://example.com/widgets/2",
					 "user": {"login": "felipe"}, "labels": [],
					 "base": {"repo": {"full_name": "acme/widgets"}}}
				]`)
				return
			}
			w.Header().Set("Link",
				fmt.Sprintf(`<http://%s/repos/acme/widgets/pulls?page=2>; rel="next"`, r.Host))
			fmt.Fprint(w, `[
				{"title": "Add feature", "html_url": "https://example.com/widgets/1",
				 "user": {"login": "felipe"}, "labels": [{"name": "feature"}],
				 "base": {"repo": {"full_name": "acme/widgets"}}},
				{"title": "Someone else's work", "html_url": "https://example.com/widgets/9",
				 "user": {"login": "anna"}, "labels": [],
				 "base": {"repo": {"full_name": "acme/widgets"}}}
			]`)
		case "/repos/acme/gadgets/pulls":
			fmt.Fprint(w, `[
				{"title": "Polish docs", "html_url": "https://example.com/gadgets/1",
				 "user": {"login": "anna"}, "labels": [],
				 "base": {"repo": {"full_name": "acme/gadgets"}}}
			]`)
		default:
			t.Errorf("unexpected request path %q", r.URL.Path)
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	config := &Config{
		Select: []Selector{
			{Repo: "acme/widgets", Authors: []string{"felipe"}},
			{Repo: "acme/gadgets"},
		},
	}

	prs, err := config.fetch(context.Background(), apiClient(t, server))
	require.NoError(t, err)
	require.Equal(t, []PullRequest{
		{Title: "Add feature", Repo: "acme/widgets", Author: "felipe",
			URL: "https://example.com/widgets/1", Labels: []string{"feature"}},
		{Title: "Fix crash", Repo: "acme/widgets", Author: "felipe",
			URL: "https://example.com/widgets/2", Labels: []string{}},
		{Title: "Polish docs", Repo: "acme/gadgets", Author: "anna",
			URL: "https://example.com/gadgets/1", Labels: []string{}},
	}, prs, "second page follows the first, selectors keep their order, filtered PRs are dropped")
}

func TestFetchFailureNamesTheRepo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "no such repository"}`, http.StatusNotFound)
	}))
	defer server.Close()

	config := &Config{Select: []Selector{{Repo: "acme/missing"}}}

	_, err := config.fetch(context.Background(), apiClient(t, server))
	require.Error(t, err)
	require.Contains(t, err.Error(), "acme/missing")
}

func TestTokenNeverLeaks(t *testing.T) {
	auth := Auth{PersonalAccessToken: Token("super-secret")}

	require.Equal(t, "***", auth.PersonalAccessToken.String())

	out, err := yaml.Marshal(auth)
	require.NoError(t, err)
	require.NotContains(t, string(out), "super-secret")
	require.Contains(t, string(out), "***")

	require.Equal(t, "super-secret", auth.PersonalAccessToken.Reveal())
}
