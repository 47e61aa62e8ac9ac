// Package cmd provides the command-line interface for the sprint summary tool.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/danielolaszy/sprint-summary/internal/config"
	"github.com/danielolaszy/sprint-summary/internal/daterange"
	"github.com/danielolaszy/sprint-summary/internal/github"
	"github.com/danielolaszy/sprint-summary/internal/jira"
	"github.com/danielolaszy/sprint-summary/internal/logging"
	"github.com/danielolaszy/sprint-summary/internal/report"
	"github.com/danielolaszy/sprint-summary/internal/summary"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the sprint-summary command.
func NewRootCmd() *cobra.Command {
	var concise bool

	cmd := &cobra.Command{
		Use:   "sprint-summary",
		Short: "Summarize completed JIRA tickets and GitHub PR reviews",
		Long: `Generate a summary of your completed JIRA tickets and GitHub PR reviews
for a sprint.

You are prompted for the sprint start date (YYYY-MM-DD, or a number of days
back) and end date (YYYY-MM-DD, or Enter for today). Tickets assigned to you
that reached Done and pull requests you reviewed within that range are listed.

Required environment variables (a .env file in the working directory is also read):
  JIRA_URL          base URL of your JIRA site, e.g. https://acme.atlassian.net
  JIRA_EMAIL        account email used for basic auth
  JIRA_API_TOKEN    JIRA API token
  GITHUB_TOKEN      GitHub personal access token
  GITHUB_USERNAME   GitHub login whose reviews are listed

Optional:
  GITHUB_DOMAIN     GitHub Enterprise host (default github.com)
  GITHUB_API_URL    explicit GitHub API endpoint
  HTTP_TIMEOUT      request timeout, e.g. 15s (default 30s)
  LOG_LEVEL         debug, info, warn or error (default info)

Example:
  sprint-summary --concise`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), concise)
		},
	}

	cmd.Flags().BoolVar(&concise, "concise", false, "Output in concise format for easy copy/paste")

	return cmd
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

func run(ctx context.Context, in io.Reader, out, errOut io.Writer, concise bool) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		var missing *config.MissingVarsError
		if errors.As(err, &missing) {
			printMissing(errOut, missing)
		}
		return err
	}

	logging.SetupLogger(errOut, logging.LogLevel(cfg.LogLevel))
	logging.Debug("configuration loaded",
		"jira_url", cfg.Jira.URL,
		"github_username", cfg.GitHub.Username,
		"timeout", cfg.HTTP.Timeout)

	rng, err := daterange.NewPrompter(in, out).Resolve()
	if err != nil {
		return fmt.Errorf("failed to read date range: %w", err)
	}

	jiraClient, err := jira.NewClient(cfg.Jira, cfg.HTTP.Timeout)
	if err != nil {
		return fmt.Errorf("failed to initialize JIRA client: %w", err)
	}

	githubClient, err := github.NewClient(cfg.GitHub, cfg.HTTP.Timeout)
	if err != nil {
		return fmt.Errorf("failed to initialize GitHub client: %w", err)
	}

	collector := &summary.Collector{
		Tickets: jiraClient,
		Reviews: githubClient,
		Diag:    errOut,
	}
	s := collector.Collect(ctx, rng)

	if concise {
		report.Concise(out, s)
	} else {
		report.Full(out, s)
	}

	return nil
}

func printMissing(w io.Writer, missing *config.MissingVarsError) {
	fmt.Fprintln(w, "❌ Missing required environment variables:")
	for _, name := range missing.Vars {
		fmt.Fprintf(w, "   - %s\n", name)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Please set these variables and try again.")
}
