package attendance

import (
	"math"
	"time"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/utils"
)

// MonthlyStats is the per-month attendance summary.
type MonthlyStats struct {
	Month            string `json:"month"`
	PresentDays      int    `json:"present_days"`
	AbsentDays       int    `json:"absent_days"`
	LateDays         int    `json:"late_days"`
	TotalDaysInMonth int    `json:"total_days_in_month"`
	AttendanceRate   int    `json:"attendance_rate"`
}

// ComputeMonthlyStats counts the records dated inside month.
// Late days also count as present days; half-day records only count toward the total.
func ComputeMonthlyStats(records []Attendance, month time.Time) MonthlyStats {
	stats := MonthlyStats{
		Month:            month.Format("2006-01"),
		TotalDaysInMonth: utils.DaysInMonth(month),
	}

	for _, a := range records {
		if !utils.SameMonth(a.Date, month) {
			continue
		}
		switch a.Status {
		case StatusPresent:
			stats.PresentDays++
		case StatusLate:
			stats.PresentDays++
			stats.LateDays++
		case StatusAbsent:
			stats.AbsentDays++
		}
	}

	if stats.TotalDaysInMonth > 0 {
		rate := float64(stats.PresentDays) / float64(stats.TotalDaysInMonth) * 100
		stats.AttendanceRate = int(math.Round(rate))
	}
	return stats
}
