package attendance

import (
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/utils"
)

// FilterAttendance applies the visibility rule for session, then the filter.
// Without attendance.view_all a caller only sees their own rows; otherwise EmployeeID may narrow them.
func FilterAttendance(records []Attendance, session user.Session, filter AttendanceFilter) []Attendance {
	month, hasMonth := filter.MonthStart()

	result := make([]Attendance, 0, len(records))
	for _, a := range records {
		if !session.CanSee(user.PermissionAttendanceViewAll, a.EmployeeID) {
			continue
		}
		if filter.EmployeeID != "" && a.EmployeeID != filter.EmployeeID {
			continue
		}
		if hasMonth && !utils.SameMonth(a.Date, month) {
			continue
		}
		result = append(result, a)
	}
	return result
}
