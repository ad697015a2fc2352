package attendance

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/clock"
)

// DefaultRecentLimit is the size of the recent activity list.
const DefaultRecentLimit = 5

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	clock  clock.Clock
	policy attendance.Policy
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	clk clock.Clock,
	policy attendance.Policy,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		clock:                clk,
		policy:               policy,
	}
}

// PunchIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) PunchIn(ctx context.Context) (attendance.AttendanceResponse, error) {
	session, err := user.RequireEmployee(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, session.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	record := attendance.NewPunchIn(emp.ID, s.clock.Now(), s.policy)
	created, err := s.AttendanceRepository.Create(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	slog.Info("Punched in", "employee_id", emp.ID, "attendance_id", created.ID, "status", created.Status)
	return attendance.NewAttendanceResponse(created, emp.Name), nil
}

// PunchOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) PunchOut(ctx context.Context) (attendance.AttendanceResponse, error) {
	session, err := user.RequireEmployee(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := s.clock.Now()
	today, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, session.EmployeeID, now)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if today == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotPunchedIn
	}

	updated, err := s.AttendanceRepository.Update(ctx, today.ID, func(a *attendance.Attendance) error {
		return a.RecordPunchOut(now, s.policy)
	})
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to record punch out: %w", err)
	}

	slog.Info("Punched out", "employee_id", session.EmployeeID, "attendance_id", updated.ID, "working_hours", *updated.WorkingHours)
	return attendance.NewAttendanceResponse(updated, s.employeeName(ctx, updated.EmployeeID)), nil
}

// GetToday implements attendance.AttendanceService.
// Callers without an employee record have nothing to punch and get nil.
func (s *AttendanceServiceImpl) GetToday(ctx context.Context) (*attendance.AttendanceResponse, error) {
	session, err := user.RequireSession(ctx)
	if err != nil {
		return nil, err
	}
	if session.EmployeeID == "" {
		return nil, nil
	}

	today, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, session.EmployeeID, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if today == nil {
		return nil, nil
	}

	resp := attendance.NewAttendanceResponse(*today, s.employeeName(ctx, today.EmployeeID))
	return &resp, nil
}

// ListRecent implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListRecent(ctx context.Context, limit int) (attendance.ListAttendanceResponse, error) {
	session, err := user.RequireSession(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	records, err := s.AttendanceRepository.List(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}
	visible := attendance.FilterAttendance(records, session, attendance.AttendanceFilter{})
	if len(visible) > limit {
		visible = visible[:limit]
	}

	names, err := s.names(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(visible))
	for _, a := range visible {
		responses = append(responses, attendance.NewAttendanceResponse(a, names.Of(a.EmployeeID)))
	}
	return attendance.ListAttendanceResponse{
		TotalCount: len(responses),
		Records:    responses,
	}, nil
}

// GetCalendar implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetCalendar(ctx context.Context, filter attendance.AttendanceFilter) (attendance.CalendarResponse, error) {
	records, err := s.monthRecords(ctx, &filter)
	if err != nil {
		return attendance.CalendarResponse{}, err
	}

	month, _ := filter.MonthStart()
	grid := attendance.MonthGrid(records, month)
	return attendance.NewCalendarResponse(month, grid, s.clock.Now()), nil
}

// GetMonthlyStats implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetMonthlyStats(ctx context.Context, filter attendance.AttendanceFilter) (attendance.MonthlyStats, error) {
	records, err := s.monthRecords(ctx, &filter)
	if err != nil {
		return attendance.MonthlyStats{}, err
	}

	month, _ := filter.MonthStart()
	return attendance.ComputeMonthlyStats(records, month), nil
}

// monthRecords validates filter, defaults it to the current month and returns the visible records of that month.
func (s *AttendanceServiceImpl) monthRecords(ctx context.Context, filter *attendance.AttendanceFilter) ([]attendance.Attendance, error) {
	session, err := user.RequireSession(ctx)
	if err != nil {
		return nil, err
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	if filter.Month == "" {
		filter.Month = s.clock.Now().Format("2006-01")
	}

	records, err := s.AttendanceRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return attendance.FilterAttendance(records, session, *filter), nil
}

func (s *AttendanceServiceImpl) names(ctx context.Context) (employee.Names, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employee.NewNames(employees), nil
}

func (s *AttendanceServiceImpl) employeeName(ctx context.Context, id string) string {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.UnknownName
	}
	return emp.Name
}
