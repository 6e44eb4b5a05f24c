// Package form maps raw event form input into the canonical persisted
// event shape. It is a pure mapping: no validation, no I/O.
package form

import "iljeong/internal/model"

// Fields are the scalar form inputs. They pass through to the event
// unchanged; recurrence lives in separate inputs because it is gated by a
// toggle.
type Fields struct {
	Title            string
	Date             string
	StartTime        string
	EndTime          string
	Description      string
	Location         string
	Category         string
	NotificationTime int
}

// Prepare assembles the event to persist. When editing, the existing
// event's ID is carried over (and nothing else: scalar fields come from
// the form alone). The recurrence inputs only apply while the repeat
// toggle is on; with the toggle off they are discarded entirely and the
// event gets the canonical no-repeat value.
func Prepare(editing *model.Event, fields Fields, isRepeating bool, repeatType model.RepeatType, repeatInterval int, repeatEndDate string) model.Event {
	e := model.Event{
		Title:            fields.Title,
		Date:             fields.Date,
		StartTime:        fields.StartTime,
		EndTime:          fields.EndTime,
		Description:      fields.Description,
		Location:         fields.Location,
		Category:         fields.Category,
		NotificationTime: fields.NotificationTime,
	}
	if editing != nil {
		e.ID = editing.ID
	}

	if !isRepeating {
		e.Repeat = model.NoRepeat()
		return e
	}

	e.Repeat = model.RepeatInfo{
		Type:     repeatType,
		Interval: repeatInterval,
		EndDate:  repeatEndDate,
	}.Normalized()
	return e
}
