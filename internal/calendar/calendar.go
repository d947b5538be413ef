// Package calendar keeps workout dates in the 8-digit integer encoding used
// on the wire and in storage (YYYYMMDD), so range queries stay plain integer
// comparisons, and provides the period boundaries the stats endpoints need.
package calendar

import (
	"regexp"
	"time"
)

// Date encodes a calendar date as YYYYMMDD, e.g. 20250901.
type Date int

// clockPattern is a strict lexical check: two digits, colon, two digits,
// colon, two digits. Magnitudes are deliberately not range-checked.
var clockPattern = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}$`)

// ValidClock reports whether s matches the HH:MM:SS shape used for start
// times, durations and timed sets.
func ValidClock(s string) bool {
	return clockPattern.MatchString(s)
}

// New builds a Date from its components. No validation is applied.
func New(year, month, day int) Date {
	return Date(year*10000 + month*100 + day)
}

// FromTime converts a time.Time to its Date encoding.
func FromTime(t time.Time) Date {
	return New(t.Year(), int(t.Month()), t.Day())
}

// Today returns the current local date.
func Today() Date {
	return FromTime(time.Now())
}

func (d Date) Year() int  { return int(d) / 10000 }
func (d Date) Month() int { return int(d) / 100 % 100 }
func (d Date) Day() int   { return int(d) % 100 }

// Valid reports whether d is an acceptable workout date: year 1752 or later
// (the day-of-week arithmetic below is only defined for the Gregorian
// calendar), month 1-12 and day 1-31. The day bound is a flat 31 for every
// month, so Feb 31 passes.
func (d Date) Valid() bool {
	if d.Year() < 1752 {
		return false
	}
	if m := d.Month(); m < 1 || m > 12 {
		return false
	}
	if day := d.Day(); day < 1 || day > 31 {
		return false
	}
	return true
}

// Time converts d to a time.Time at midnight UTC. Out-of-range components are
// normalized by the time package.
func (d Date) Time() time.Time {
	return time.Date(d.Year(), time.Month(d.Month()), d.Day(), 0, 0, 0, 0, time.UTC)
}

// AddDays walks d forward or backward by whole days using real calendar
// arithmetic, then re-encodes.
func (d Date) AddDays(days int) Date {
	return FromTime(d.Time().AddDate(0, 0, days))
}

// DayOfWeek computes the weekday of d (0=Sunday .. 6=Saturday) with Zeller's
// congruence. Only meaningful for Gregorian dates, hence the 1752 floor in
// Valid.
func (d Date) DayOfWeek() int {
	year, month, day := d.Year(), d.Month(), d.Day()
	if month < 3 {
		month += 12
		year--
	}
	k := year % 100
	j := year / 100
	h := (day + 13*(month+1)/5 + k + k/4 + j/4 + 5*j) % 7
	// Zeller yields 0=Saturday; shift so Sunday is 0.
	return (h + 6) % 7
}

// StartOfWeek returns the most recent Sunday on or before d.
func (d Date) StartOfWeek() Date {
	return d.AddDays(-d.DayOfWeek())
}

// StartOfMonth returns the first day of d's month.
func (d Date) StartOfMonth() Date {
	return New(d.Year(), d.Month(), 1)
}

// StartOfYear returns January 1st of d's year.
func (d Date) StartOfYear() Date {
	return New(d.Year(), 1, 1)
}
