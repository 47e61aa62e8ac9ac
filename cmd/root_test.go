package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielolaszy/sprint-summary/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T, jiraURL, githubURL string) {
	t.Helper()
	t.Setenv("JIRA_URL", jiraURL)
	t.Setenv("JIRA_EMAIL", "dev@example.com")
	t.Setenv("JIRA_API_TOKEN", "jira-token")
	t.Setenv("GITHUB_TOKEN", "gh-token")
	t.Setenv("GITHUB_USERNAME", "octocat")
	t.Setenv("GITHUB_DOMAIN", "")
	t.Setenv("GITHUB_API_URL", githubURL)
	t.Setenv("HTTP_TIMEOUT", "5s")
	t.Setenv("LOG_LEVEL", "error")
}

func runCommand(t *testing.T, input string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer

	root := NewRootCmd()
	root.SetIn(strings.NewReader(input))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func newJiraServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"issues": [{"key": "ABC-1", "fields": {"summary": "Fix login redirect", "status": {"name": "Done"}}}], "isLast": true}`)
	}))
	t.Cleanup(server.Close)
	return server
}

func newGitHubServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"total_count": 1, "items": [{"number": 42, "title": "Add retry", "state": "open",
			"html_url": "https://github.com/myorg/myrepo/pull/42",
			"repository_url": "https://api.github.com/repos/myorg/myrepo"}]}`)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestMissingConfiguration(t *testing.T) {
	setRequiredEnv(t, "", "")
	t.Setenv("GITHUB_TOKEN", "")

	stdout, stderr, err := runCommand(t, "14\n\n")

	var missing *config.MissingVarsError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, []string{"JIRA_URL", "GITHUB_TOKEN"}, missing.Vars)

	assert.Contains(t, stderr, "❌ Missing required environment variables:")
	assert.Contains(t, stderr, "   - JIRA_URL\n")
	assert.Contains(t, stderr, "   - GITHUB_TOKEN\n")
	assert.NotContains(t, stdout, "Enter the sprint start date", "no prompt before configuration is valid")
}

func TestConciseRun(t *testing.T) {
	jiraServer := newJiraServer(t)
	githubServer := newGitHubServer(t)
	setRequiredEnv(t, jiraServer.URL, githubServer.URL)

	stdout, _, err := runCommand(t, "bad\n2024-03-01\n2024-03-15\n", "--concise")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Invalid format. Please use YYYY-MM-DD or enter number of days back.")
	assert.Contains(t, stdout, "Using start date: 2024-03-01")
	assert.Contains(t, stdout, "Using end date: 2024-03-15")
	assert.Contains(t, stdout, "Completed JIRA Tickets:\nABC-1: Fix login redirect - "+jiraServer.URL+"/browse/ABC-1\n")
	assert.Contains(t, stdout, "GitHub PR Reviews:\nmyrepo #42: Add retry - https://github.com/myorg/myrepo/pull/42\n")
}

func TestFullRunWithFailingJira(t *testing.T) {
	jiraServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	t.Cleanup(jiraServer.Close)
	githubServer := newGitHubServer(t)
	setRequiredEnv(t, jiraServer.URL, githubServer.URL)

	stdout, stderr, err := runCommand(t, "14\n\n")
	require.NoError(t, err, "fetch failures do not fail the run")

	assert.Contains(t, stderr, "❌ Error fetching JIRA tickets:")
	assert.Contains(t, stdout, "📊 SPRINT SUMMARY")
	assert.Contains(t, stdout, "No completed tickets found in date range.")
	assert.Contains(t, stdout, "🔄 [myrepo] #42: Add retry")
	assert.Contains(t, stdout, "Total: 1 PR(s) reviewed")
}

func TestClosedInput(t *testing.T) {
	jiraServer := newJiraServer(t)
	githubServer := newGitHubServer(t)
	setRequiredEnv(t, jiraServer.URL, githubServer.URL)

	_, _, err := runCommand(t, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read date range")
}

func TestRejectsArguments(t *testing.T) {
	_, _, err := runCommand(t, "", "extra")
	assert.Error(t, err)
}
