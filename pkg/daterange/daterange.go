// Package daterange normalizes the flexible date filters accepted by the API
// (exact day, year-month, bare year) into a canonical half-open timestamp
// range suitable for a parameterized SQL predicate.
package daterange

import (
	"fmt"
	"time"
)

// Kind identifies which of the mutually exclusive filter modes is active.
type Kind int

const (
	None Kind = iota
	ByYear
	ByMonth
	ByDate
)

const (
	dayLayout   = "2006-01-02"
	monthLayout = "2006-01"
)

// Filter is the resolved date filter. Zero value means no filtering.
type Filter struct {
	Kind  Kind
	Year  int
	Month time.Time // first day of the month, UTC
	Day   time.Time // midnight of the day, UTC
}

// Parse resolves the three optional inputs into a single Filter. When more
// than one input is supplied the most specific one wins: an exact date
// overrides a month, which overrides a year. They are never combined.
func Parse(exactDate, yearMonth string, year int) (Filter, error) {
	f := Filter{}

	if year != 0 {
		if year < 0 {
			return Filter{}, fmt.Errorf("invalid year %d", year)
		}
		f = Filter{Kind: ByYear, Year: year}
	}

	if yearMonth != "" {
		m, err := time.Parse(monthLayout, yearMonth)
		if err != nil {
			return Filter{}, fmt.Errorf("invalid month %q (want YYYY-MM): %w", yearMonth, err)
		}
		f = Filter{Kind: ByMonth, Month: m.UTC()}
	}

	if exactDate != "" {
		d, err := time.Parse(dayLayout, exactDate)
		if err != nil {
			return Filter{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", exactDate, err)
		}
		f = Filter{Kind: ByDate, Day: d.UTC()}
	}

	return f, nil
}

// Bounds returns the half-open range [start, end) covered by the filter.
// ok is false for the None kind, meaning the predicate should be omitted.
func (f Filter) Bounds() (start, end time.Time, ok bool) {
	switch f.Kind {
	case ByYear:
		start = time.Date(f.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
		end = start.AddDate(1, 0, 0)
		return start, end, true
	case ByMonth:
		start = f.Month
		end = start.AddDate(0, 1, 0)
		return start, end, true
	case ByDate:
		start = f.Day
		end = start.AddDate(0, 0, 1)
		return start, end, true
	default:
		return time.Time{}, time.Time{}, false
	}
}

// IsZero reports whether the filter carries no range.
func (f Filter) IsZero() bool {
	return f.Kind == None
}
