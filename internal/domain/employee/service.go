package employee

import (
	"context"
)

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// GetEmployee retrieves a single employee by ID
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// CreateEmployee creates a new employee (admin only)
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// UpdateEmployee patches an existing employee (admin only)
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// DeleteEmployee permanently removes an employee (admin only)
	DeleteEmployee(ctx context.Context, id string) error

	// ListEmployees lists employees matching the filter
	ListEmployees(ctx context.Context, filter EmployeeFilter) (ListEmployeeResponse, error)

	// ListDepartments lists the distinct departments across all employees
	ListDepartments(ctx context.Context) ([]string, error)
}
