package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/clock"
)

// RecentActivityLimit is the number of attendance rows shown on the dashboard.
const RecentActivityLimit = 5

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
	clock clock.Clock
}

func NewDashboardService(dashboardRepo dashboard.DashboardRepository, clk clock.Clock) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: dashboardRepo,
		clock:               clk,
	}
}

// GetDashboard derives every figure from one snapshot of the store.
// The headline counters are company-wide; the recent activity follows the caller's visibility.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context) (*dashboard.DashboardResponse, error) {
	session, err := user.RequireSession(ctx)
	if err != nil {
		return nil, err
	}

	snap, err := s.DashboardRepository.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load dashboard data: %w", err)
	}
	employees, records, requests := snap.Employees, snap.Attendance, snap.LeaveRequests

	today := s.clock.Now()
	names := employee.NewNames(employees)

	visible := attendance.FilterAttendance(records, session, attendance.AttendanceFilter{})
	if len(visible) > RecentActivityLimit {
		visible = visible[:RecentActivityLimit]
	}
	recent := make([]attendance.AttendanceResponse, 0, len(visible))
	for _, a := range visible {
		recent = append(recent, attendance.NewAttendanceResponse(a, names.Of(a.EmployeeID)))
	}

	return &dashboard.DashboardResponse{
		Date:           today.Format(time.DateOnly),
		Stats:          dashboard.ComputeStats(employees, records, requests, today),
		DepartmentMix:  dashboard.DepartmentBreakdown(employees),
		RecentActivity: recent,
	}, nil
}
