package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations.
// The caller is taken from the session on ctx.
type AttendanceService interface {
	// PunchIn opens today's record for the calling employee
	PunchIn(ctx context.Context) (AttendanceResponse, error)

	// PunchOut closes today's record for the calling employee
	PunchOut(ctx context.Context) (AttendanceResponse, error)

	// GetToday returns the caller's record for today, nil when not punched in
	GetToday(ctx context.Context) (*AttendanceResponse, error)

	// ListRecent returns the first limit records visible to the caller
	ListRecent(ctx context.Context, limit int) (ListAttendanceResponse, error)

	// GetCalendar returns the month grid of the filtered records
	GetCalendar(ctx context.Context, filter AttendanceFilter) (CalendarResponse, error)

	// GetMonthlyStats summarizes the filtered records of one month
	GetMonthlyStats(ctx context.Context, filter AttendanceFilter) (MonthlyStats, error)
}
