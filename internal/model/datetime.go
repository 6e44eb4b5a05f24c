package model

import "time"

// InvalidDateTimeString is what an invalid DateTime stringifies to.
const InvalidDateTimeString = "Invalid Date"

// DateTime is a point in time derived from a date string and a time string,
// tagged with validity. Malformed input does not produce an error but the
// invalid variant, which orders before/after nothing: every comparison
// against it is false. Callers that care have to check Valid explicitly.
type DateTime struct {
	Time  time.Time
	Valid bool
}

// InvalidDateTime returns the invalid sentinel value.
func InvalidDateTime() DateTime {
	return DateTime{}
}

// ParseDateTime combines a YYYY-MM-DD date string and an HH:MM time string
// into a local-time instant. If either part is empty or malformed the
// result is invalid.
func ParseDateTime(date string, timeOfDay string) DateTime {
	d, err := DateFromString(date)
	if err != nil {
		return InvalidDateTime()
	}
	t, err := TimestampFromString(timeOfDay)
	if err != nil {
		return InvalidDateTime()
	}
	return DateTime{
		Time:  time.Date(d.Year, time.Month(d.Month), d.Day, t.Hour, t.Minute, 0, 0, time.Local),
		Valid: true,
	}
}

// Before reports whether a is strictly before b. Always false if either
// side is invalid.
func (a DateTime) Before(b DateTime) bool {
	return a.Valid && b.Valid && a.Time.Before(b.Time)
}

func (a DateTime) String() string {
	if !a.Valid {
		return InvalidDateTimeString
	}
	return a.Time.Format("2006-01-02 15:04")
}
