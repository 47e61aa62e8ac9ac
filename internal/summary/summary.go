// Package summary gathers tickets and reviews for a date range.
//
// A failing source is reported and treated as having no results,
// so one unreachable service never prevents the other from being shown.
package summary

import (
	"context"
	"fmt"
	"io"

	"github.com/danielolaszy/sprint-summary/internal/daterange"
	"github.com/danielolaszy/sprint-summary/internal/logging"
	"github.com/danielolaszy/sprint-summary/pkg/models"
	"github.com/schollz/progressbar/v3"
)

// TicketSource returns tickets completed within a range.
type TicketSource interface {
	CompletedTickets(ctx context.Context, rng daterange.Range) ([]models.Ticket, error)
}

// ReviewSource returns pull requests reviewed within a range.
type ReviewSource interface {
	ReviewedPullRequests(ctx context.Context, rng daterange.Range) ([]models.Review, error)
}

// Summary is everything the report needs.
type Summary struct {
	Range   daterange.Range
	Tickets []models.Ticket
	Reviews []models.Review
}

// FetchCompletedTickets never fails: errors are written to diag and yield no tickets.
func FetchCompletedTickets(ctx context.Context, src TicketSource, rng daterange.Range, diag io.Writer) []models.Ticket {
	tickets, err := src.CompletedTickets(ctx, rng)
	if err != nil {
		fmt.Fprintf(diag, "❌ Error fetching JIRA tickets: %v\n", err)
		return []models.Ticket{}
	}
	if tickets == nil {
		return []models.Ticket{}
	}
	return tickets
}

// FetchReviewedPRs never fails: errors are written to diag and yield no reviews.
func FetchReviewedPRs(ctx context.Context, src ReviewSource, rng daterange.Range, diag io.Writer) []models.Review {
	reviews, err := src.ReviewedPullRequests(ctx, rng)
	if err != nil {
		fmt.Fprintf(diag, "❌ Error fetching GitHub PR reviews: %v\n", err)
		return []models.Review{}
	}
	if reviews == nil {
		return []models.Review{}
	}
	return reviews
}

// Collector runs both fetches and shows progress on Diag.
type Collector struct {
	Tickets TicketSource
	Reviews ReviewSource
	Diag    io.Writer
}

// Collect fetches tickets, then reviews. Results are always usable.
func (c *Collector) Collect(ctx context.Context, rng daterange.Range) Summary {
	diag := c.Diag
	if diag == nil {
		diag = io.Discard
	}

	bar := progressbar.NewOptions(2,
		progressbar.OptionSetWriter(diag),
		progressbar.OptionSetDescription("Fetching JIRA tickets"),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetElapsedTime(false),
		progressbar.OptionSetPredictTime(false),
	)

	tickets := FetchCompletedTickets(ctx, c.Tickets, rng, diag)
	_ = bar.Add(1)

	bar.Describe("Fetching GitHub PR reviews")
	reviews := FetchReviewedPRs(ctx, c.Reviews, rng, diag)
	_ = bar.Add(1)

	_ = bar.Finish()

	logging.Info("summary collected",
		"start", rng.StartString(),
		"end", rng.EndString(),
		"tickets", len(tickets),
		"reviews", len(reviews))

	return Summary{
		Range:   rng,
		Tickets: tickets,
		Reviews: reviews,
	}
}
