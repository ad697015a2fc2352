package attendance

import (
	"time"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/validator"
)

// AttendanceFilter narrows attendance views. Month uses the YYYY-MM format.
type AttendanceFilter struct {
	EmployeeID string `json:"employee_id,omitempty"`
	Month      string `json:"month,omitempty"`
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Month != "" {
		if _, ok := validator.IsValidMonth(f.Month); !ok {
			errs.Add("month", "month must be in YYYY-MM format")
		}
	}

	return errs.Err()
}

// MonthStart returns the first day of the filtered month, if one is set and valid.
func (f AttendanceFilter) MonthStart() (time.Time, bool) {
	if f.Month == "" {
		return time.Time{}, false
	}
	return validator.IsValidMonth(f.Month)
}

type AttendanceResponse struct {
	ID           string     `json:"id"`
	EmployeeID   string     `json:"employee_id"`
	EmployeeName string     `json:"employee_name"`
	Date         string     `json:"date"`
	PunchIn      *time.Time `json:"punch_in,omitempty"`
	PunchOut     *time.Time `json:"punch_out,omitempty"`
	WorkingHours *float64   `json:"working_hours,omitempty"`
	Status       string     `json:"status"`
}

func NewAttendanceResponse(a Attendance, employeeName string) AttendanceResponse {
	return AttendanceResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		EmployeeName: employeeName,
		Date:         a.Date.Format(time.DateOnly),
		PunchIn:      a.PunchIn,
		PunchOut:     a.PunchOut,
		WorkingHours: a.WorkingHours,
		Status:       string(a.Status),
	}
}

type ListAttendanceResponse struct {
	TotalCount int                  `json:"total_count"`
	Records    []AttendanceResponse `json:"records"`
}

type CalendarDayResponse struct {
	Date         string  `json:"date"`
	Status       *string `json:"status,omitempty"`
	AttendanceID *string `json:"attendance_id,omitempty"`
	IsToday      bool    `json:"is_today"`
}

type CalendarResponse struct {
	Month string                `json:"month"` // Format: "YYYY-MM"
	Days  []CalendarDayResponse `json:"days"`
}

// NewCalendarResponse renders a month grid, flagging the cell that matches today.
func NewCalendarResponse(month time.Time, grid []CalendarDay, today time.Time) CalendarResponse {
	days := make([]CalendarDayResponse, 0, len(grid))
	for _, cell := range grid {
		day := CalendarDayResponse{
			Date:    cell.Date.Format(time.DateOnly),
			IsToday: cell.Date.Format(time.DateOnly) == today.Format(time.DateOnly),
		}
		if cell.Record != nil {
			status := string(cell.Record.Status)
			id := cell.Record.ID
			day.Status = &status
			day.AttendanceID = &id
		}
		days = append(days, day)
	}
	return CalendarResponse{
		Month: month.Format("2006-01"),
		Days:  days,
	}
}
