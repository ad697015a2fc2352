package attendance

import (
	"time"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/utils"
)

// ForDay returns the first record, in collection order, dated on the same calendar day as date.
// It returns nil when there is none.
func ForDay(records []Attendance, date time.Time) *Attendance {
	for i := range records {
		if utils.SameDay(records[i].Date, date) {
			match := records[i].Clone()
			return &match
		}
	}
	return nil
}

// CalendarDay is one cell of the month grid.
type CalendarDay struct {
	Date   time.Time
	Record *Attendance
}

// MonthGrid returns one cell per day from the first to the last day of month.
func MonthGrid(records []Attendance, month time.Time) []CalendarDay {
	first := utils.StartOfMonth(month)
	days := utils.DaysInMonth(month)

	grid := make([]CalendarDay, 0, days)
	for i := 0; i < days; i++ {
		day := first.AddDate(0, 0, i)
		grid = append(grid, CalendarDay{
			Date:   day,
			Record: ForDay(records, day),
		})
	}
	return grid
}
