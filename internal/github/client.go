// Package github provides functionality for interacting with the GitHub API.
package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/danielolaszy/sprint-summary/internal/config"
	"github.com/danielolaszy/sprint-summary/internal/daterange"
	"github.com/danielolaszy/sprint-summary/internal/logging"
	"github.com/danielolaszy/sprint-summary/pkg/models"
	"github.com/google/go-github/v41/github"
	"golang.org/x/oauth2"
)

const (
	searchPath = "search/issues"
	perPage    = 100
)

// Client encapsulates the GitHub API client.
type Client struct {
	client   *github.Client
	username string
}

// NewClient creates a new GitHub API client for the configured host.
// Requests carry the token as a bearer credential and time out after timeout.
func NewClient(cfg config.GitHubConfig, timeout time.Duration) (*Client, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("github token not found in configuration")
	}
	if cfg.Username == "" {
		return nil, fmt.Errorf("github username not found in configuration")
	}

	apiURL := cfg.BaseAPIURL()

	logging.Debug("github configuration",
		"domain", cfg.Domain,
		"api_url", apiURL,
		"username", cfg.Username,
		"token", logging.MaskSensitive(cfg.Token))

	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: cfg.Token},
	)
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, &http.Client{Timeout: timeout})
	tc := oauth2.NewClient(ctx, ts)
	tc.Timeout = timeout

	client := github.NewClient(tc)

	if apiURL != client.BaseURL.String() {
		parsedURL, err := url.Parse(apiURL)
		if err != nil {
			return nil, fmt.Errorf("invalid github api url: %w", err)
		}

		client.BaseURL = parsedURL
		client.UploadURL = parsedURL
	}

	return &Client{client: client, username: cfg.Username}, nil
}

// ReviewQuery builds the search query for pull requests the user reviewed
// that were updated within the range.
func ReviewQuery(username string, rng daterange.Range) string {
	return fmt.Sprintf("is:pr reviewed-by:%s updated:%s..%s", username, rng.StartString(), rng.EndString())
}

// ReviewedPullRequests returns the first page of pull requests reviewed by the
// configured user, most recently updated first.
func (c *Client) ReviewedPullRequests(ctx context.Context, rng daterange.Range) ([]models.Review, error) {
	if c.client == nil {
		return nil, fmt.Errorf("GitHub client not initialized")
	}

	query := ReviewQuery(c.username, rng)
	params := url.Values{}
	params.Set("q", query)
	params.Set("sort", "updated")
	params.Set("order", "desc")
	params.Set("per_page", strconv.Itoa(perPage))

	// Search.Issues swaps the Accept header for a preview media type,
	// so the request is built here to keep the v3 default.
	req, err := c.client.NewRequest(http.MethodGet, searchPath+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build GitHub search request: %w", err)
	}

	logging.Debug("searching github pull requests", "query", query)

	var result github.IssuesSearchResult
	resp, err := c.client.Do(ctx, req, &result)
	if err != nil {
		status := 0
		if resp != nil {
			status = resp.StatusCode
		}
		logging.Error("failed to search github pull requests", "error", err, "status_code", status)
		return nil, fmt.Errorf("failed to search GitHub pull requests: %w", err)
	}

	reviews := make([]models.Review, 0, len(result.Issues))
	for _, issue := range result.Issues {
		reviews = append(reviews, toReview(issue))
	}

	logging.Debug("fetched github reviews", "count", len(reviews), "total", result.GetTotal())
	return reviews, nil
}

func toReview(issue *github.Issue) models.Review {
	return models.Review{
		Number:    issue.GetNumber(),
		Title:     issue.GetTitle(),
		Repo:      RepoName(issue.GetRepositoryURL()),
		State:     issue.GetState(),
		URL:       issue.GetHTMLURL(),
		UpdatedAt: issue.GetUpdatedAt(),
	}
}

// RepoName returns the last path segment of a repository API URL,
// e.g. "myrepo" for "https://api.github.com/repos/myorg/myrepo".
func RepoName(repositoryURL string) string {
	trimmed := strings.TrimRight(repositoryURL, "/")
	if i := strings.LastIndex(trimmed, "/"); i >= 0 {
		return trimmed[i+1:]
	}
	return trimmed
}
