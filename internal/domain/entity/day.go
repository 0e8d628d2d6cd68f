package entity

import (
	"time"

	"sitekhata/internal/errors"
)

// dayLayout is the ISO-8601 calendar-day format every ledger date uses.
const dayLayout = "2006-01-02"

// Day is a calendar day with no time-of-day component, held as its ISO string.
// Attendance identity and all date comparisons rely on exact day-string equality.
type Day string

// ParseDay validates an ISO date string and returns it as a Day.
func ParseDay(s string) (Day, error) {
	if _, err := time.Parse(dayLayout, s); err != nil {
		return "", errors.Wrapf(err, "invalid calendar day %q", s)
	}

	return Day(s), nil
}

// DayOf truncates a time to its calendar day.
func DayOf(t time.Time) Day {
	return Day(t.Format(dayLayout))
}

// Today returns the current calendar day.
func Today() Day {
	return DayOf(time.Now())
}

// String returns the ISO date string.
func (d Day) String() string {
	return string(d)
}

// Time returns the day as a time.Time at midnight UTC. Invalid days yield the
// zero time; construct Days through ParseDay or DayOf to avoid that.
func (d Day) Time() time.Time {
	t, _ := time.Parse(dayLayout, string(d))

	return t
}

// Before reports whether d falls before other.
func (d Day) Before(other Day) bool {
	return string(d) < string(other)
}

// After reports whether d falls after other.
func (d Day) After(other Day) bool {
	return string(d) > string(other)
}
