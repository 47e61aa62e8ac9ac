// Package report renders a sprint summary as console text.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/danielolaszy/sprint-summary/internal/summary"
	"github.com/danielolaszy/sprint-summary/pkg/models"
)

const width = 60

var (
	ruleHeavy = strings.Repeat("=", width)
	ruleLight = strings.Repeat("-", width)
)

type styles struct {
	title   lipgloss.Style
	heading lipgloss.Style
	total   lipgloss.Style
}

// newStyles binds styles to w so that no escape codes reach a non-terminal.
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FFFF")),
		heading: r.NewStyle().Bold(true),
		total:   r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// Full writes the decorated report.
func Full(w io.Writer, s summary.Summary) {
	st := newStyles(w)

	fmt.Fprintln(w, ruleHeavy)
	fmt.Fprintln(w, st.title.Render("📊 SPRINT SUMMARY"))
	fmt.Fprintf(w, "📅 Date Range: %s to %s\n", s.Range.StartString(), s.Range.EndString())
	fmt.Fprintln(w, ruleHeavy)
	fmt.Fprintln(w)

	fmt.Fprintln(w, st.heading.Render("✅ COMPLETED JIRA TICKETS"))
	fmt.Fprintln(w, ruleLight)
	if len(s.Tickets) > 0 {
		for _, ticket := range s.Tickets {
			fmt.Fprintf(w, "%s: %s\n", ticket.Key, ticket.Summary)
			fmt.Fprintf(w, "   %s\n", ticket.URL)
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, st.total.Render(fmt.Sprintf("Total: %d ticket(s)", len(s.Tickets))))
	} else {
		fmt.Fprintln(w, "No completed tickets found in date range.")
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, ruleHeavy)
	fmt.Fprintln(w)

	fmt.Fprintln(w, st.heading.Render("👀 GITHUB PR REVIEWS"))
	fmt.Fprintln(w, ruleLight)
	if len(s.Reviews) > 0 {
		for _, pr := range s.Reviews {
			fmt.Fprintf(w, "%s [%s] #%d: %s\n", stateGlyph(pr), pr.Repo, pr.Number, pr.Title)
			fmt.Fprintf(w, "   %s\n", pr.URL)
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, st.total.Render(fmt.Sprintf("Total: %d PR(s) reviewed", len(s.Reviews))))
	} else {
		fmt.Fprintln(w, "No PR reviews found in date range.")
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, ruleHeavy)
}

// Concise writes one line per entry, suitable for pasting into another tool.
func Concise(w io.Writer, s summary.Summary) {
	fmt.Fprintln(w, "Completed JIRA Tickets:")
	if len(s.Tickets) > 0 {
		for _, ticket := range s.Tickets {
			fmt.Fprintf(w, "%s: %s - %s\n", ticket.Key, ticket.Summary, ticket.URL)
		}
	} else {
		fmt.Fprintln(w, "None")
	}

	fmt.Fprintln(w)

	fmt.Fprintln(w, "GitHub PR Reviews:")
	if len(s.Reviews) > 0 {
		for _, pr := range s.Reviews {
			fmt.Fprintf(w, "%s #%d: %s - %s\n", pr.Repo, pr.Number, pr.Title, pr.URL)
		}
	} else {
		fmt.Fprintln(w, "None")
	}
}

func stateGlyph(pr models.Review) string {
	if pr.IsClosed() {
		return "✅"
	}
	return "🔄"
}
