package daterange

import (
	"bufio"
	"fmt"
	"io"
	"time"
)

// Prompter asks for the start and end date until it gets input it can parse.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
	now func() time.Time
}

// NewPrompter reads answers from in and writes prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewScanner(in),
		out: out,
		now: time.Now,
	}
}

// WithClock replaces the time source used for "days back" and "today".
func (p *Prompter) WithClock(now func() time.Time) *Prompter {
	p.now = now
	return p
}

// Resolve prompts for both dates.
func (p *Prompter) Resolve() (Range, error) {
	start, err := p.StartDate()
	if err != nil {
		return Range{}, err
	}
	end, err := p.EndDate()
	if err != nil {
		return Range{}, err
	}
	return Range{Start: start, End: end}, nil
}

// StartDate re-prompts until the answer is a day count or a date.
// It only returns an error when input is exhausted.
func (p *Prompter) StartDate() (time.Time, error) {
	fmt.Fprintln(p.out, "📅 Enter the sprint start date")
	fmt.Fprintln(p.out)

	return p.loop(
		"Start date (YYYY-MM-DD) or days back (e.g., '14'): ",
		"Invalid format. Please use YYYY-MM-DD or enter number of days back.",
		"Using start date: %s\n",
		ParseStartDate,
	)
}

// EndDate re-prompts until the answer is empty or a date.
// It only returns an error when input is exhausted.
func (p *Prompter) EndDate() (time.Time, error) {
	fmt.Fprintln(p.out, "📅 Enter the sprint end date")
	fmt.Fprintln(p.out)

	return p.loop(
		"End date (YYYY-MM-DD) or press Enter for today: ",
		"Invalid format. Please use YYYY-MM-DD or press Enter for today.",
		"Using end date: %s\n",
		ParseEndDate,
	)
}

func (p *Prompter) loop(prompt, invalid, echo string, parse func(string, time.Time) (time.Time, error)) (time.Time, error) {
	for {
		fmt.Fprint(p.out, prompt)

		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return time.Time{}, fmt.Errorf("failed to read input: %w", err)
			}
			return time.Time{}, io.ErrUnexpectedEOF
		}

		date, err := parse(p.in.Text(), p.now())
		if err != nil {
			fmt.Fprintln(p.out, invalid)
			fmt.Fprintln(p.out)
			continue
		}

		fmt.Fprintf(p.out, echo, date.Format(Layout))
		fmt.Fprintln(p.out)
		return date, nil
	}
}
