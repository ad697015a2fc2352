package utils

import (
	"math"
	"time"
)

// DateOf drops the time of day and location of t, keeping its calendar day as midnight UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDay compares calendar days only. Time of day and location are ignored.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// StartOfMonth returns the first calendar day of t's month.
func StartOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

// EndOfMonth returns the last calendar day of t's month.
func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, -1)
}

// DaysInMonth returns the number of calendar days in t's month.
func DaysInMonth(t time.Time) int {
	return EndOfMonth(t).Day()
}

// SameMonth reports whether a and b fall in the same year and month.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// WithinRange reports whether day lies in the inclusive range [start, end], compared by calendar day.
func WithinRange(day, start, end time.Time) bool {
	d := DateOf(day)
	return !d.Before(DateOf(start)) && !d.After(DateOf(end))
}

// DaysBetweenInclusive counts calendar days from start to end, both included.
func DaysBetweenInclusive(start, end time.Time) int {
	return int(DateOf(end).Sub(DateOf(start)).Hours()/24) + 1
}

// SinceMidnight returns the time-of-day offset of t in its own location.
func SinceMidnight(t time.Time) time.Duration {
	y, m, d := t.Date()
	return t.Sub(time.Date(y, m, d, 0, 0, 0, 0, t.Location()))
}

// Round rounds f to the given number of decimal places.
func Round(f float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(f*p) / p
}
