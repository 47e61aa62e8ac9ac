// Package jira provides functionality for querying completed tickets from JIRA.
package jira

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	jira "github.com/andygrunwald/go-jira"
	"github.com/danielolaszy/sprint-summary/internal/config"
	"github.com/danielolaszy/sprint-summary/internal/daterange"
	"github.com/danielolaszy/sprint-summary/internal/logging"
	"github.com/danielolaszy/sprint-summary/pkg/models"
)

const (
	searchPath = "rest/api/3/search/jql"
	maxResults = 100
)

// searchFields restricts the response to the values the summary shows.
var searchFields = []string{"summary", "status", "key", "updated"}

// Client handles interactions with the JIRA API.
type Client struct {
	client  *jira.Client
	baseURL string
}

// searchResult is the body returned by the enhanced JQL search endpoint.
type searchResult struct {
	Issues        []jira.Issue `json:"issues"`
	NextPageToken string       `json:"nextPageToken,omitempty"`
	IsLast        bool         `json:"isLast"`
}

// NewClient creates a JIRA client authenticated with the account email and API token.
func NewClient(cfg config.JiraConfig, timeout time.Duration) (*Client, error) {
	if cfg.URL == "" || cfg.Email == "" || cfg.Token == "" {
		return nil, fmt.Errorf("jira url, email and token are required")
	}

	baseURL := strings.TrimRight(cfg.URL, "/")

	tp := jira.BasicAuthTransport{
		Username: cfg.Email,
		Password: cfg.Token,
	}
	httpClient := tp.Client()
	httpClient.Timeout = timeout

	client, err := jira.NewClient(httpClient, baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create JIRA client: %w", err)
	}

	logging.Debug("jira configuration",
		"url", baseURL,
		"email", cfg.Email,
		"token", logging.MaskSensitive(cfg.Token))

	return &Client{
		client:  client,
		baseURL: baseURL,
	}, nil
}

// CompletedJQL builds the query for tickets assigned to the current user
// that reached Done and were updated within the range.
func CompletedJQL(rng daterange.Range) string {
	return fmt.Sprintf(`assignee = currentUser() AND status = Done AND updated >= "%s" AND updated <= "%s"`,
		rng.StartString(), rng.EndString())
}

// CompletedTickets returns the first page of tickets completed within the range.
func (c *Client) CompletedTickets(ctx context.Context, rng daterange.Range) ([]models.Ticket, error) {
	if c.client == nil {
		return nil, fmt.Errorf("JIRA client not initialized")
	}

	jql := CompletedJQL(rng)
	params := url.Values{}
	params.Set("jql", jql)
	params.Set("fields", strings.Join(searchFields, ","))
	params.Set("maxResults", strconv.Itoa(maxResults))

	req, err := c.client.NewRequestWithContext(ctx, http.MethodGet, searchPath+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build JIRA search request: %w", err)
	}

	logging.Debug("searching jira issues", "jql", jql)

	var result searchResult
	resp, err := c.client.Do(req, &result)
	if err != nil {
		status := 0
		if resp != nil {
			status = resp.StatusCode
			resp.Body.Close()
		}
		logging.Error("failed to search jira issues", "error", err, "status_code", status)
		return nil, fmt.Errorf("failed to search JIRA issues: %w (status: %d)", err, status)
	}

	tickets := make([]models.Ticket, 0, len(result.Issues))
	for _, issue := range result.Issues {
		tickets = append(tickets, c.toTicket(issue))
	}

	logging.Debug("fetched jira tickets", "count", len(tickets), "is_last", result.IsLast)
	return tickets, nil
}

func (c *Client) toTicket(issue jira.Issue) models.Ticket {
	ticket := models.Ticket{
		Key: issue.Key,
		URL: fmt.Sprintf("%s/browse/%s", c.baseURL, issue.Key),
	}
	if issue.Fields == nil {
		return ticket
	}

	ticket.Summary = issue.Fields.Summary
	if issue.Fields.Status != nil {
		ticket.Status = issue.Fields.Status.Name
	}
	ticket.Updated = time.Time(issue.Fields.Updated)
	return ticket
}
