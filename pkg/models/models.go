// Package models defines data structures shared across the application.
package models

import (
	"time"
)

// Ticket represents a completed JIRA ticket as shown in the summary.
type Ticket struct {
	// Key is the full JIRA ticket identifier (e.g., "ABC-123")
	Key string

	// Summary is the ticket's summary field
	Summary string

	// Status is the name of the ticket's workflow status (e.g., "Done")
	Status string

	// URL is the browse link for the ticket
	URL string

	// Updated is the timestamp of the ticket's last update
	Updated time.Time
}

// Review represents a pull request the user reviewed.
type Review struct {
	// Number is the pull request number in its repository (e.g., 42)
	Number int

	// Title is the pull request's title
	Title string

	// Repo is the repository name without its owner
	Repo string

	// State is the pull request state as reported by GitHub ("open" or "closed")
	State string

	// URL is the pull request's web link
	URL string

	// UpdatedAt is the timestamp when the pull request was last updated
	UpdatedAt time.Time
}

// IsClosed reports whether the pull request is no longer open.
func (r Review) IsClosed() bool {
	return r.State == "closed"
}
