package dashboard

import (
	"context"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/leave"
)

// Snapshot holds the collections the dashboard derives from, read at one instant.
type Snapshot struct {
	Employees     []employee.Employee
	Attendance    []attendance.Attendance
	LeaveRequests []leave.LeaveRequest
}

type DashboardRepository interface {
	// Snapshot copies every collection under a single read so the derived counts agree with each other
	Snapshot(ctx context.Context) (Snapshot, error)
}
