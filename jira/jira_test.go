package jira

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestJQLQueryIsStable(t *testing.T) {
	query := JQL{
		"project":  "EOPS",
		"status":   "In Progress",
		"assignee": "61ba1",
	}

	require.Equal(t, `assignee="61ba1" and project="EOPS" and status="In Progress"`, query.Query())
}

func TestFetchExtractsTasks(t *testing.T) {
	var gotAuth, gotJQL string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotJQL = r.URL.Query().Get("jql")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"issues": [
				{"self": "https://x.y/rest/api/2/issue/1", "fields": {"summary": "First task"}},
				{"fields": {"summary": "No self link, skipped"}},
				{"self": "https://x.y/rest/api/2/issue/3", "fields": {"summary": "Third task"}}
			]
		}`))
	}))
	defer server.Close()

	config := &Config{
		BaseURL: server.URL,
		Auth:    Auth{User: "foo", PersonalAccessToken: Token("bar")},
		Query:   JQL{"project": "EOPS"},
	}

	tasks, err := config.fetch(context.Background(), server.Client())
	require.NoError(t, err)
	require.Equal(t, []Task{
		{Summary: "First task", Href: "https://x.y/rest/api/2/issue/1"},
		{Summary: "Third task", Href: "https://x.y/rest/api/2/issue/3"},
	}, tasks)

	require.NotEmpty(t, gotAuth, "request must carry basic auth")
	require.Equal(t, `project="EOPS"`, gotJQL)
}

func TestFetchSurfacesHTTPFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer server.Close()

	config := &Config{BaseURL: server.URL}

	_, err := config.fetch(context.Background(), server.Client())
	require.Error(t, err)
	require.Contains(t, err.Error(), "403")
}

func TestTokenNeverLeaks(t *testing.T) {
	auth := Auth{User: "foo", PersonalAccessToken: Token("bar")}

	out, err := yaml.Marshal(auth)
	require.NoError(t, err)
	require.NotContains(t, string(out), "bar")
	require.Contains(t, string(out), "***")
}
