package model

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Date is a calendar date without any time-of-day information.
type Date struct {
	Year  int
	Month int
	Day   int
}

var dateRegexp = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

// DateFromString parses a date in YYYY-MM-DD format. The date has to be a
// valid calendar date (e.g. no month 13, no Feb 30).
func DateFromString(s string) (Date, error) {
	parsed := dateRegexp.FindStringSubmatch(s)
	if len(parsed) != 4 {
		return Date{}, fmt.Errorf("string '%s' does not fit the YYYY-MM-DD format", s)
	}

	year, errY := strconv.Atoi(parsed[1])
	month, errM := strconv.Atoi(parsed[2])
	day, errD := strconv.Atoi(parsed[3])
	if errY != nil || errM != nil || errD != nil {
		return Date{}, fmt.Errorf("could not convert string '%s' (assuming YYYY-MM-DD format) to integers", s)
	}

	d := Date{Year: year, Month: month, Day: day}
	if !d.Valid() {
		return Date{}, fmt.Errorf("date %s (from string '%s') not valid", d.ToString(), s)
	}
	return d, nil
}

// DateOf returns the date a given point in time falls on.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

func (d Date) ToString() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func (d Date) Valid() bool {
	if d.Month < 1 || d.Month > 12 {
		return false
	}
	if d.Day < 1 || d.Day > d.GetLastOfMonth().Day {
		return false
	}
	return true
}

func lastDaysOfMonth() map[int]int {
	return map[int]int{
		1:  31,
		2:  28,
		3:  31,
		4:  30,
		5:  31,
		6:  30,
		7:  31,
		8:  31,
		9:  30,
		10: 31,
		11: 30,
		12: 31,
	}
}

// GetLastOfMonth returns the last date of the month of the receiver.
func (d Date) GetLastOfMonth() Date {
	var lastDay int

	switch {
	case d.Month == 2 && d.isLeapYear():
		lastDay = 29
	default:
		lastDay = lastDaysOfMonth()[d.Month]
	}

	return Date{Year: d.Year, Month: d.Month, Day: lastDay}
}

func (d Date) isLeapYear() bool {
	return d.Year%4 == 0 && (!(d.Year%100 == 0) || d.Year%400 == 0)
}

func (d Date) Prev() Date {
	if d.Day == 1 {
		if d.Month == 1 {
			d.Year--
			d.Month = 12
			d.Day = 31
		} else {
			d.Month--
			d.Day = d.GetLastOfMonth().Day
		}
	} else {
		d.Day--
	}
	return d
}

func (d Date) Next() Date {
	if d == d.GetLastOfMonth() {
		d.Day = 1
		if d.Month == 12 {
			d.Month = 1
			d.Year++
		} else {
			d.Month++
		}
	} else {
		d.Day++
	}
	return d
}

func (d Date) Forward(by int) Date {
	for i := 0; i < by; i++ {
		d = d.Next()
	}
	return d
}

// Whether a date A is after a date B.
func (a Date) IsAfter(b Date) bool {
	switch {
	case a.Year != b.Year:
		return a.Year > b.Year
	case a.Month != b.Month:
		return a.Month > b.Month
	default:
		return a.Day > b.Day
	}
}

// Whether a date A is before a date B.
func (a Date) IsBefore(b Date) bool {
	return b.IsAfter(a) && a != b
}

func (d Date) ToWeekday() time.Weekday {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.Local).Weekday()
}

// WeekBounds returns the first and last date of the calendar week the
// receiver is in. Weeks run Sunday through Saturday.
func (d Date) WeekBounds() (sunday Date, saturday Date) {
	for d.ToWeekday() != time.Sunday {
		d = d.Prev()
	}
	return d, d.Forward(6)
}

// InSameMonth reports whether two dates share calendar year and month.
func (a Date) InSameMonth(b Date) bool {
	return a.Year == b.Year && a.Month == b.Month
}
