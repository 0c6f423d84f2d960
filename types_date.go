package pyft

import (
	"fmt"
	"strings"
	"time"
)

// entryDateFormat is the format users type on the command line.
// It is permissive: single-digit month and day are accepted.
const entryDateFormat = "1/2/2006"

// DateFormat is the format used to persist dates, ISO-8601. It sorts
// lexically, which the store relies on to list entries by date.
const DateFormat = "2006-01-02"

// Date represents a calendar date with day-level granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns the current date.
func Today() Date { return NewDate(time.Now().Date()) }

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// String formats the date in ISO-8601.
func (d Date) String() string { return d.time().Format(DateFormat) }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return NewDate(d.y, d.m, d.d+i) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// ParseEntryDate parses the date argument of an entry. The input is
// case-folded first, so "TODAY" and "today" parse identically.
//
// It accepts the relative tokens "today", "yesterday" and "tomorrow", and
// otherwise the MM/DD/YYYY form. Out-of-range components (month 13, day 40)
// are errors, not normalized dates.
func ParseEntryDate(s string) (Date, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "today":
		return Today(), nil
	case "yesterday":
		return Today().Add(-1), nil
	case "tomorrow":
		return Today().Add(1), nil
	}
	t, err := time.Parse(entryDateFormat, strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return NewDate(t.Date()), nil
}

// FallbackDate parses a date argument like ParseEntryDate, but never fails:
// on a malformed input it returns today's date and defaulted=true so the
// caller can warn the user instead of aborting the whole creation.
func FallbackDate(s string) (d Date, defaulted bool) {
	d, err := ParseEntryDate(s)
	if err != nil {
		return Today(), true
	}
	return d, false
}

// ParseStoredDate reads a date back from the store's ISO-8601 column.
func ParseStoredDate(s string) (Date, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid stored date %q: %w", s, err)
	}
	return NewDate(t.Date()), nil
}
