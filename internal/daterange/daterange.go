// Package daterange resolves the sprint date range from interactive input.
package daterange

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// Layout is the calendar date format accepted from the user and sent to both APIs.
const Layout = "2006-01-02"

var (
	// ErrInvalidStart is returned for start input that is neither a day count nor a date.
	ErrInvalidStart = errors.New("start date must be YYYY-MM-DD or a number of days back")

	// ErrInvalidEnd is returned for end input that is neither empty nor a date.
	ErrInvalidEnd = errors.New("end date must be YYYY-MM-DD or empty")
)

// Range is the inclusive interval the summary covers.
type Range struct {
	Start time.Time
	End   time.Time
}

// StartString returns Start formatted with Layout.
func (r Range) StartString() string {
	return r.Start.Format(Layout)
}

// EndString returns End formatted with Layout.
func (r Range) EndString() string {
	return r.End.Format(Layout)
}

// ParseStartDate interprets input as either a number of days before now
// or a YYYY-MM-DD date at midnight in now's location.
func ParseStartDate(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)

	if isDigits(input) {
		days, err := strconv.Atoi(input)
		if err != nil {
			return time.Time{}, ErrInvalidStart
		}
		return now.AddDate(0, 0, -days), nil
	}

	date, err := parseDate(input, now.Location())
	if err != nil {
		return time.Time{}, ErrInvalidStart
	}
	return date, nil
}

// ParseEndDate interprets empty input as now, otherwise as a YYYY-MM-DD date.
func ParseEndDate(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)

	if input == "" {
		return now, nil
	}

	date, err := parseDate(input, now.Location())
	if err != nil {
		return time.Time{}, ErrInvalidEnd
	}
	return date, nil
}

func parseDate(input string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(Layout, input, loc)
}

// isDigits is true only for a non-empty string of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
