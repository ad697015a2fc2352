package dashboard

import "github.com/cmlabs-hris/hris-dashboard-go/internal/domain/attendance"

// DashboardResponse is the combined response for the main dashboard endpoint
type DashboardResponse struct {
	Date           string                          `json:"date"` // Format: "YYYY-MM-DD"
	Stats          Stats                           `json:"stats"`
	DepartmentMix  []DepartmentCount               `json:"department_mix"`
	RecentActivity []attendance.AttendanceResponse `json:"recent_activity"`
}
