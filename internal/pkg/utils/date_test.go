package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateOf_DropsTimeAndZone(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*60*60)
	got := DateOf(time.Date(2024, 6, 1, 23, 30, 0, 0, jakarta))

	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestSameDay(t *testing.T) {
	a := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	b := time.Date(2024, 6, 1, 23, 59, 0, 0, time.UTC)
	c := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(a, c))
}

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		month time.Time
		want  int
	}{
		{time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), 29},
		{time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC), 28},
		{time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC), 30},
		{time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), 31},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, DaysInMonth(c.month), c.month.Format("2006-01"))
	}
}

func TestWithinRange_Inclusive(t *testing.T) {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

	assert.True(t, WithinRange(start, start, end))
	assert.True(t, WithinRange(end.Add(15*time.Hour), start, end))
	assert.False(t, WithinRange(end.AddDate(0, 0, 1), start, end))
	assert.False(t, WithinRange(start.Add(-time.Minute), start, end))
}

func TestDaysBetweenInclusive(t *testing.T) {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, DaysBetweenInclusive(start, start))
	assert.Equal(t, 3, DaysBetweenInclusive(start, start.AddDate(0, 0, 2)))
}

func TestSinceMidnight(t *testing.T) {
	got := SinceMidnight(time.Date(2024, 6, 1, 9, 15, 0, 0, time.UTC))

	assert.Equal(t, 9*time.Hour+15*time.Minute, got)
}

func TestRound(t *testing.T) {
	assert.Equal(t, 8.5, Round(8.499999, 2))
	assert.Equal(t, 7.33, Round(22.0/3.0, 2))
}
