package model

// TimeRange is the interval an event occupies, derived fresh from its date
// and time strings. Either side can be invalid on its own if its inputs
// are malformed.
type TimeRange struct {
	Start DateTime
	End   DateTime
}

// Range converts the event's date plus start/end times into a TimeRange.
func (e Event) Range() TimeRange {
	return TimeRange{
		Start: ParseDateTime(e.Date, e.StartTime),
		End:   ParseDateTime(e.Date, e.EndTime),
	}
}

// Overlaps reports whether two events intersect in time. The comparison is
// half-open: events that merely touch (one's end equals the other's start)
// do not overlap. A range with an invalid endpoint never overlaps
// anything.
func Overlaps(a, b Event) bool {
	ra, rb := a.Range(), b.Range()
	return ra.Start.Before(rb.End) && rb.Start.Before(ra.End)
}

// FindOverlapping returns every element of existing that overlaps the
// candidate, in input order. Entries carrying the candidate's own
// (non-empty) ID are skipped, so an event being edited does not conflict
// with its stored self.
func FindOverlapping(candidate Event, existing []Event) []Event {
	overlapping := make([]Event, 0)
	for _, e := range existing {
		if candidate.ID != "" && e.ID == candidate.ID {
			continue
		}
		if Overlaps(candidate, e) {
			overlapping = append(overlapping, e)
		}
	}
	return overlapping
}
