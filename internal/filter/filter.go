// Package filter restricts an event collection to what the calendar
// currently displays: a free-text search term combined with a week or
// month window around a reference date.
package filter

import (
	"strings"
	"time"

	"iljeong/internal/model"
)

// View selects the calendar window used for display filtering.
type View string

const (
	ViewWeek  View = "week"
	ViewMonth View = "month"
)

// Events returns the events matching both the search term and the view
// window containing the reference time, preserving input order. The input
// slice is not mutated.
func Events(events []model.Event, term string, reference time.Time, view View) []model.Event {
	ref := model.DateOf(reference)

	matched := make([]model.Event, 0)
	for _, e := range events {
		if !matchesTerm(e, term) {
			continue
		}
		if !inView(e, ref, view) {
			continue
		}
		matched = append(matched, e)
	}
	return matched
}

// matchesTerm does a case-insensitive substring match against title and
// description. The empty term matches everything. Location is not part of
// the match key.
func matchesTerm(e model.Event, term string) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	return strings.Contains(strings.ToLower(e.Title), needle) ||
		strings.Contains(strings.ToLower(e.Description), needle)
}

func inView(e model.Event, ref model.Date, view View) bool {
	d, err := model.DateFromString(e.Date)
	if err != nil {
		// an event with an unparseable date can't fall into any window
		return false
	}

	switch view {
	case ViewWeek:
		sunday, saturday := ref.WeekBounds()
		return !d.IsBefore(sunday) && !d.IsAfter(saturday)
	case ViewMonth:
		return d.InSameMonth(ref)
	default:
		return false
	}
}
