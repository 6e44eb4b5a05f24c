package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Timestamp is a wall-clock time of day (24h).
type Timestamp struct {
	Hour, Minute int
}

// TimestampFromString parses a timestamp in HH:MM format (hour 0-23,
// minute 0-59).
func TimestampFromString(s string) (Timestamp, error) {
	components := strings.Split(s, ":")
	if len(components) != 2 || len(components[0]) != 2 || len(components[1]) != 2 {
		return Timestamp{}, fmt.Errorf("string '%s' does not fit the HH:MM format", s)
	}
	h, errH := strconv.Atoi(components[0])
	m, errM := strconv.Atoi(components[1])
	if errH != nil || errM != nil {
		return Timestamp{}, fmt.Errorf("could not convert string '%s' (assuming HH:MM format) to integers", s)
	}
	t := Timestamp{Hour: h, Minute: m}
	if !t.Legal() {
		return Timestamp{}, fmt.Errorf("timestamp from string '%s' has illegal values (%d) (%d)", s, h, m)
	}
	return t, nil
}

func (t Timestamp) ToString() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

func (t Timestamp) Legal() bool {
	return (t.Hour < 24 && t.Minute < 60) && (t.Hour >= 0 && t.Minute >= 0)
}

func (a Timestamp) IsBefore(b Timestamp) bool {
	if b.Hour > a.Hour {
		return true
	} else if b.Hour == a.Hour {
		return b.Minute > a.Minute
	} else {
		return false
	}
}

func (a Timestamp) IsAfter(b Timestamp) bool {
	return b.IsBefore(a)
}

// toMinutes returns the number of minutes into the day (from 00:00) that
// this timestamp is.
func (t Timestamp) toMinutes() int {
	return t.Hour*60 + t.Minute
}

// DurationInMinutesUntil returns the duration in minutes up to a given
// timestamp t2. Does not check that t2 is in fact later!
func (t1 Timestamp) DurationInMinutesUntil(t2 Timestamp) int {
	return t2.toMinutes() - t1.toMinutes()
}
