package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allVars = map[string]string{
	"JIRA_URL":        "https://example.atlassian.net/",
	"JIRA_EMAIL":      "dev@example.com",
	"JIRA_API_TOKEN":  "jira-token",
	"GITHUB_TOKEN":    "gh-token",
	"GITHUB_USERNAME": "octocat",
}

// setEnv sets every required variable, then applies overrides.
func setEnv(t *testing.T, overrides map[string]string) {
	t.Helper()
	for _, name := range []string{"GITHUB_DOMAIN", "GITHUB_API_URL", "HTTP_TIMEOUT", "LOG_LEVEL"} {
		t.Setenv(name, "")
	}
	for k, v := range allVars {
		t.Setenv(k, v)
	}
	for k, v := range overrides {
		t.Setenv(k, v)
	}
}

func TestLoadConfig(t *testing.T) {
	setEnv(t, nil)

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://example.atlassian.net", config.Jira.URL)
	assert.Equal(t, "dev@example.com", config.Jira.Email)
	assert.Equal(t, "jira-token", config.Jira.Token)
	assert.Equal(t, "gh-token", config.GitHub.Token)
	assert.Equal(t, "octocat", config.GitHub.Username)
	assert.Equal(t, "github.com", config.GitHub.Domain)
	assert.Equal(t, DefaultHTTPTimeout, config.HTTP.Timeout)
	assert.Equal(t, "info", config.LogLevel)
}

func TestLoadConfigMissingVars(t *testing.T) {
	for name := range allVars {
		t.Run(name, func(t *testing.T) {
			setEnv(t, map[string]string{name: ""})

			config, err := LoadConfig()
			assert.Nil(t, config)
			require.Error(t, err)

			var missing *MissingVarsError
			require.True(t, errors.As(err, &missing))
			assert.Equal(t, []string{name}, missing.Vars)
			assert.Contains(t, err.Error(), name)
		})
	}
}

func TestLoadConfigListsEveryMissingVar(t *testing.T) {
	setEnv(t, map[string]string{
		"JIRA_URL":        "",
		"JIRA_API_TOKEN":  "  ",
		"GITHUB_USERNAME": "",
	})

	_, err := LoadConfig()

	var missing *MissingVarsError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, []string{"JIRA_URL", "JIRA_API_TOKEN", "GITHUB_USERNAME"}, missing.Vars)
}

func TestLoadConfigTimeout(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Duration
		wantErr bool
	}{
		{name: "Custom timeout", value: "10s", want: 10 * time.Second},
		{name: "Not a duration", value: "soon", wantErr: true},
		{name: "Zero", value: "0s", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnv(t, map[string]string{"HTTP_TIMEOUT": tt.value})

			config, err := LoadConfig()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, config)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, config.HTTP.Timeout)
		})
	}
}

func TestGitHubBaseAPIURL(t *testing.T) {
	tests := []struct {
		name   string
		config GitHubConfig
		want   string
	}{
		{name: "Default GitHub.com", config: GitHubConfig{Domain: "github.com"}, want: "https://api.github.com/"},
		{name: "Empty domain", config: GitHubConfig{}, want: "https://api.github.com/"},
		{name: "GitHub Enterprise", config: GitHubConfig{Domain: "github.example.com"}, want: "https://github.example.com/api/v3/"},
		{name: "Explicit API URL", config: GitHubConfig{Domain: "github.com", APIURL: "http://127.0.0.1:8080"}, want: "http://127.0.0.1:8080/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.config.BaseAPIURL())
		})
	}
}
