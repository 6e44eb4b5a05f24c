// Package notify decides which events are due for a reminder and owns the
// session-scoped dedup state that keeps each reminder from firing twice.
package notify

import (
	"fmt"
	"time"

	"iljeong/internal/model"
)

// Notification is a single reminder shown to the user. It lives only in
// session state and is never persisted.
type Notification struct {
	EventID string
	Message string
}

// Upcoming returns, in input order, every event whose reminder threshold
// has been crossed at now and whose ID is not yet in notified. An event is
// due iff now is at or after (start - notificationTime minutes) and at or
// before the start itself; events already started stay quiet.
func Upcoming(events []model.Event, now time.Time, notified map[string]struct{}) []model.Event {
	due := make([]model.Event, 0)
	for _, e := range events {
		if _, already := notified[e.ID]; already {
			continue
		}
		start := model.ParseDateTime(e.Date, e.StartTime)
		if !start.Valid {
			continue
		}
		minutesUntil := start.Time.Sub(now).Minutes()
		if minutesUntil >= 0 && minutesUntil <= float64(e.NotificationTime) {
			due = append(due, e)
		}
	}
	return due
}

// Message builds the reminder text for an event. An empty title still
// yields a well-formed message.
func Message(e model.Event) string {
	return fmt.Sprintf("%d분 후 %s 일정이 시작됩니다.", e.NotificationTime, e.Title)
}
