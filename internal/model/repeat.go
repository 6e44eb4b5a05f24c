package model

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

// RepeatType names how often an event recurs.
type RepeatType string

const (
	RepeatNone    RepeatType = "none"
	RepeatDaily   RepeatType = "daily"
	RepeatWeekly  RepeatType = "weekly"
	RepeatMonthly RepeatType = "monthly"
	RepeatYearly  RepeatType = "yearly"
)

// RepeatInfo is recurrence metadata carried on an event. Events are not
// expanded into multiple occurrences; the metadata is stored as-is.
type RepeatInfo struct {
	Type     RepeatType `json:"type" yaml:"type"`
	Interval int        `json:"interval" yaml:"interval"`
	EndDate  string     `json:"endDate,omitempty" yaml:"endDate,omitempty"`
}

// NoRepeat is the canonical "does not recur" value.
func NoRepeat() RepeatInfo {
	return RepeatInfo{Type: RepeatNone, Interval: 1}
}

// Normalized enforces the invariant that a non-repeating event carries no
// stray recurrence metadata: type "none" always yields interval 1 and no
// end date. For repeating events a non-positive interval defaults to 1.
func (r RepeatInfo) Normalized() RepeatInfo {
	if r.Type == RepeatNone || r.Type == "" {
		return NoRepeat()
	}
	if r.Interval <= 0 {
		r.Interval = 1
	}
	return r
}

// Repeats reports whether the event actually recurs.
func (r RepeatInfo) Repeats() bool {
	return r.Type != RepeatNone && r.Type != ""
}

var rruleFreqs = map[RepeatType]rrule.Frequency{
	RepeatDaily:   rrule.DAILY,
	RepeatWeekly:  rrule.WEEKLY,
	RepeatMonthly: rrule.MONTHLY,
	RepeatYearly:  rrule.YEARLY,
}

// RRule serializes the recurrence metadata as an iCalendar RRULE value
// (e.g. "FREQ=WEEKLY;INTERVAL=2;UNTIL=..."), anchored at the given start.
// Returns the empty string for non-repeating events.
func (r RepeatInfo) RRule(start time.Time) (string, error) {
	r = r.Normalized()
	if !r.Repeats() {
		return "", nil
	}

	freq, ok := rruleFreqs[r.Type]
	if !ok {
		return "", fmt.Errorf("unknown repeat type '%s'", r.Type)
	}

	opt := rrule.ROption{
		Freq:     freq,
		Interval: r.Interval,
		Dtstart:  start,
	}
	if r.EndDate != "" {
		until, err := DateFromString(r.EndDate)
		if err != nil {
			return "", fmt.Errorf("repeat end date: %w", err)
		}
		opt.Until = time.Date(until.Year, time.Month(until.Month), until.Day, 23, 59, 59, 0, time.Local)
	}

	rule, err := rrule.NewRRule(opt)
	if err != nil {
		return "", err
	}
	return rule.String(), nil
}
