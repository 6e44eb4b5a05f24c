// Package ics serializes events into the iCalendar format for use in
// other calendar applications. Recurrence metadata is written as an RRULE
// property; occurrences are not expanded.
package ics

import (
	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"iljeong/internal/model"
)

// Export renders the given events as a VCALENDAR document. Events whose
// date or times do not parse are skipped (they occupy no interval to
// export).
func Export(events []model.Event) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//iljeong//calendar//KO")

	for _, e := range events {
		r := e.Range()
		if !r.Start.Valid || !r.End.Valid {
			log.Warn().Str("event", e.String()).Msg("skipping event with unparseable date/time in export")
			continue
		}

		uid := e.ID
		if uid == "" {
			uid = uuid.NewString()
		}

		ve := cal.AddEvent(uid)
		ve.SetStartAt(r.Start.Time)
		ve.SetEndAt(r.End.Time)
		ve.SetSummary(e.Title)
		if e.Description != "" {
			ve.SetDescription(e.Description)
		}
		if e.Location != "" {
			ve.SetLocation(e.Location)
		}
		if e.Category != "" {
			ve.AddProperty(ical.ComponentPropertyCategories, e.Category)
		}

		if e.Repeat.Repeats() {
			rule, err := e.Repeat.RRule(r.Start.Time)
			if err != nil {
				log.Warn().Err(err).Str("event", e.String()).Msg("skipping recurrence rule in export")
			} else if rule != "" {
				ve.AddProperty(ical.ComponentPropertyRrule, rule)
			}
		}
	}

	return cal.Serialize()
}
