package leave

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/clock"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/utils"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	leave.LeaveRequestRepository
	employee.EmployeeRepository
	clock clock.Clock
}

func NewLeaveService(
	leaveRequestRepo leave.LeaveRequestRepository,
	employeeRepo employee.EmployeeRepository,
	clk clock.Clock,
) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRequestRepository: leaveRequestRepo,
		EmployeeRepository:     employeeRepo,
		clock:                  clk,
	}
}

// ApplyLeave implements leave.LeaveService.
func (s *LeaveServiceImpl) ApplyLeave(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	session, err := user.RequireSession(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	employeeID, err := applicantID(session, req)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	today := utils.DateOf(s.clock.Now())
	created, err := s.LeaveRequestRepository.Create(ctx, req.ToLeaveRequest(emp.ID, today))
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	slog.Info("Leave requested", "leave_request_id", created.ID, "employee_id", emp.ID, "type", created.Type, "days", created.Days())
	return leave.NewLeaveRequestResponse(created, emp.Name), nil
}

// applicantID picks whose leave is being filed. Employees file for themselves; admins must name the employee.
func applicantID(session user.Session, req leave.CreateLeaveRequestRequest) (string, error) {
	if session.IsAdmin() {
		if validator.IsEmpty(req.EmployeeID) {
			return "", validator.ValidationErrors{
				{Field: "employee_id", Message: "employee_id is required when filing as admin"},
			}
		}
		return req.EmployeeID, nil
	}
	if session.EmployeeID == "" {
		return "", user.ErrEmployeeContextRequired
	}
	return session.EmployeeID, nil
}

// GetLeaveRequest implements leave.LeaveService.
// Requests the caller may not see are reported as not found.
func (s *LeaveServiceImpl) GetLeaveRequest(ctx context.Context, id string) (leave.LeaveRequestResponse, error) {
	session, err := user.RequireSession(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	request, err := s.LeaveRequestRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	if !session.CanSee(user.PermissionLeaveViewAll, request.EmployeeID) {
		return leave.LeaveRequestResponse{}, fmt.Errorf("leave request with id %s: %w", id, leave.ErrLeaveRequestNotFound)
	}

	return leave.NewLeaveRequestResponse(request, s.employeeName(ctx, request.EmployeeID)), nil
}

// ListLeaveRequests implements leave.LeaveService.
func (s *LeaveServiceImpl) ListLeaveRequests(ctx context.Context, filter leave.LeaveRequestFilter) (leave.ListLeaveRequestResponse, error) {
	session, err := user.RequireSession(ctx)
	if err != nil {
		return leave.ListLeaveRequestResponse{}, err
	}

	requests, err := s.LeaveRequestRepository.List(ctx)
	if err != nil {
		return leave.ListLeaveRequestResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return leave.ListLeaveRequestResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}
	names := employee.NewNames(employees)

	filtered := leave.FilterLeaveRequests(requests, session, filter)
	responses := make([]leave.LeaveRequestResponse, 0, len(filtered))
	for _, r := range filtered {
		responses = append(responses, leave.NewLeaveRequestResponse(r, names.Of(r.EmployeeID)))
	}

	return leave.ListLeaveRequestResponse{
		TotalCount: len(responses),
		Stats:      leave.ComputeLeaveStats(filtered),
		Requests:   responses,
	}, nil
}

// DecideLeaveRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) DecideLeaveRequest(ctx context.Context, req leave.DecideLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	session, err := user.RequireAdmin(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	today := s.clock.Now()
	decided, err := s.LeaveRequestRepository.Update(ctx, req.ID, func(r *leave.LeaveRequest) error {
		return r.Decide(leave.LeaveRequestStatus(req.Decision), session.DisplayName, today)
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to decide leave request: %w", err)
	}

	slog.Info("Leave request decided", "leave_request_id", decided.ID, "status", decided.Status, "by", session.DisplayName)
	return leave.NewLeaveRequestResponse(decided, s.employeeName(ctx, decided.EmployeeID)), nil
}

func (s *LeaveServiceImpl) employeeName(ctx context.Context, id string) string {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.UnknownName
	}
	return emp.Name
}
