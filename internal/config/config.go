// Package config provides centralized configuration management for the application.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	// DefaultGitHubDomain is used when GITHUB_DOMAIN is not set.
	DefaultGitHubDomain = "github.com"

	// DefaultHTTPTimeout bounds every outbound request.
	DefaultHTTPTimeout = 30 * time.Second
)

// Config holds all configuration parameters for the application.
type Config struct {
	Jira     JiraConfig
	GitHub   GitHubConfig
	HTTP     HTTPConfig
	LogLevel string
}

// JiraConfig holds JIRA specific configuration.
type JiraConfig struct {
	URL   string
	Email string
	Token string
}

// GitHubConfig holds GitHub specific configuration.
type GitHubConfig struct {
	Token    string
	Username string
	Domain   string
	// APIURL overrides the API endpoint derived from Domain.
	APIURL string
}

// HTTPConfig holds settings shared by both API clients.
type HTTPConfig struct {
	Timeout time.Duration
}

// MissingVarsError reports every required environment variable that was empty.
type MissingVarsError struct {
	Vars []string
}

func (e *MissingVarsError) Error() string {
	return fmt.Sprintf("missing required environment variables: %s", strings.Join(e.Vars, ", "))
}

// required lists the variables that must be present, in reporting order.
var required = []struct {
	key string
	env string
}{
	{"jira.url", "JIRA_URL"},
	{"jira.email", "JIRA_EMAIL"},
	{"jira.token", "JIRA_API_TOKEN"},
	{"github.token", "GITHUB_TOKEN"},
	{"github.username", "GITHUB_USERNAME"},
}

// LoadConfig initializes and loads configuration from environment variables.
// It returns a *MissingVarsError naming every absent required variable.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for _, r := range required {
		if err := v.BindEnv(r.key, r.env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", r.env, err)
		}
	}
	optional := map[string]string{
		"github.domain":  "GITHUB_DOMAIN",
		"github.api_url": "GITHUB_API_URL",
		"http.timeout":   "HTTP_TIMEOUT",
		"log.level":      "LOG_LEVEL",
	}
	for key, env := range optional {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	v.SetDefault("github.domain", DefaultGitHubDomain)
	v.SetDefault("http.timeout", DefaultHTTPTimeout.String())
	v.SetDefault("log.level", "info")

	if err := validateConfig(v); err != nil {
		return nil, err
	}

	timeout, err := time.ParseDuration(v.GetString("http.timeout"))
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT %q: %w", v.GetString("http.timeout"), err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT %q: must be positive", v.GetString("http.timeout"))
	}

	config := &Config{
		Jira: JiraConfig{
			URL:   strings.TrimRight(v.GetString("jira.url"), "/"),
			Email: v.GetString("jira.email"),
			Token: v.GetString("jira.token"),
		},
		GitHub: GitHubConfig{
			Token:    v.GetString("github.token"),
			Username: v.GetString("github.username"),
			Domain:   v.GetString("github.domain"),
			APIURL:   v.GetString("github.api_url"),
		},
		HTTP: HTTPConfig{
			Timeout: timeout,
		},
		LogLevel: strings.ToLower(v.GetString("log.level")),
	}

	return config, nil
}

// validateConfig ensures that all required configuration values are provided.
func validateConfig(v *viper.Viper) error {
	var missingVars []string

	for _, r := range required {
		if strings.TrimSpace(v.GetString(r.key)) == "" {
			missingVars = append(missingVars, r.env)
		}
	}

	if len(missingVars) > 0 {
		return &MissingVarsError{Vars: missingVars}
	}

	return nil
}

// BaseAPIURL returns the REST endpoint for the configured GitHub host.
func (c GitHubConfig) BaseAPIURL() string {
	if c.APIURL != "" {
		if !strings.HasSuffix(c.APIURL, "/") {
			return c.APIURL + "/"
		}
		return c.APIURL
	}

	domain := c.Domain
	if domain == "" {
		domain = DefaultGitHubDomain
	}
	if domain == DefaultGitHubDomain {
		return "https://api.github.com/"
	}
	return fmt.Sprintf("https://%s/api/v3/", domain)
}
