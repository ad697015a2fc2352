package employee

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/user"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepo,
	}
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	session, err := user.RequireSession(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	e, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return employee.NewEmployeeResponse(e, session.Can(user.PermissionEmployeeManage)), nil
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	session, err := user.RequireAdmin(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.EmployeeRepository.Create(ctx, req.ToEmployee())
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	slog.Info("Created employee", "employee_id", created.ID, "department", created.Department, "by", session.UserID)
	return employee.NewEmployeeResponse(created, true), nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	session, err := user.RequireAdmin(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.EmployeeRepository.Update(ctx, req.ID, func(e *employee.Employee) error {
		req.Apply(e)
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	slog.Info("Updated employee", "employee_id", updated.ID, "by", session.UserID)
	return employee.NewEmployeeResponse(updated, true), nil
}

// DeleteEmployee implements employee.EmployeeService.
// Attendance and leave rows of the employee are kept and render with an unknown name.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	session, err := user.RequireAdmin(ctx)
	if err != nil {
		return err
	}

	if err := s.EmployeeRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	slog.Info("Deleted employee", "employee_id", id, "by", session.UserID)
	return nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	session, err := user.RequireSession(ctx)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	all, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return employee.ListEmployeeResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	filtered := employee.FilterEmployees(all, filter)
	responses := make([]employee.EmployeeResponse, 0, len(filtered))
	for _, e := range filtered {
		responses = append(responses, employee.NewEmployeeResponse(e, session.Can(user.PermissionEmployeeManage)))
	}

	return employee.ListEmployeeResponse{
		TotalCount:  len(responses),
		Departments: employee.Departments(all),
		Employees:   responses,
	}, nil
}

// ListDepartments implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListDepartments(ctx context.Context) ([]string, error) {
	if _, err := user.RequireSession(ctx); err != nil {
		return nil, err
	}

	all, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employee.Departments(all), nil
}
