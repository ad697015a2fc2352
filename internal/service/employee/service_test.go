package employee

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/clock"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/validator"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminCtx() context.Context {
	return user.WithSession(context.Background(), user.Session{UserID: "admin-1", Role: user.RoleAdmin, DisplayName: "Admin User"})
}

func employeeCtx(employeeID string) context.Context {
	return user.WithSession(context.Background(), user.Session{UserID: "emp-" + employeeID, Role: user.RoleEmployee, EmployeeID: employeeID})
}

func newTestService(t *testing.T) employee.EmployeeService {
	t.Helper()
	store := memory.NewStore(clock.Fixed{At: time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)})
	return NewEmployeeService(memory.NewEmployeeRepository(store))
}

func createRequest(name, email, department string) employee.CreateEmployeeRequest {
	salary := decimal.NewFromInt(75000)
	return employee.CreateEmployeeRequest{
		Name:        name,
		Email:       email,
		Phone:       "+1-555-0123",
		Role:        "Software Engineer",
		Department:  department,
		JoiningDate: "2023-01-15",
		Salary:      &salary,
	}
}

// ===== EMPLOYEE SERVICE TESTS =====

func TestEmployeeService_Create_Success(t *testing.T) {
	// Setup
	svc := newTestService(t)

	// Act
	created, err := svc.CreateEmployee(adminCtx(), createRequest("John Doe", "john@company.com", "Engineering"))

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "active", created.Status)
	assert.Equal(t, "2023-01-15", created.JoiningDate)
	require.NotNil(t, created.Salary)
	assert.Equal(t, "75000", created.Salary.String())
}

func TestEmployeeService_Create_RequiresAdmin(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CreateEmployee(employeeCtx("1"), createRequest("John Doe", "john@company.com", "Engineering"))
	assert.ErrorIs(t, err, user.ErrAdminPrivilegeRequired)

	_, err = svc.CreateEmployee(context.Background(), createRequest("John Doe", "john@company.com", "Engineering"))
	assert.ErrorIs(t, err, user.ErrSessionRequired)
}

func TestEmployeeService_Create_ValidationError(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CreateEmployee(adminCtx(), employee.CreateEmployeeRequest{Name: "No Email"})

	var validationErrs validator.ValidationErrors
	assert.ErrorAs(t, err, &validationErrs)
}

func TestEmployeeService_Create_DuplicateEmail(t *testing.T) {
	// Setup
	svc := newTestService(t)
	_, err := svc.CreateEmployee(adminCtx(), createRequest("John Doe", "john@company.com", "Engineering"))
	require.NoError(t, err)

	// Act
	_, err = svc.CreateEmployee(adminCtx(), createRequest("John Again", "John@Company.com", "Product"))

	// Assert
	assert.ErrorIs(t, err, employee.ErrEmailExists)
}

func TestEmployeeService_Update_Success(t *testing.T) {
	// Setup
	svc := newTestService(t)
	created, err := svc.CreateEmployee(adminCtx(), createRequest("John Doe", "john@company.com", "Engineering"))
	require.NoError(t, err)

	// Act
	department := "Platform"
	updated, err := svc.UpdateEmployee(adminCtx(), employee.UpdateEmployeeRequest{ID: created.ID, Department: &department})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Platform", updated.Department)
	assert.Equal(t, "John Doe", updated.Name)
}

func TestEmployeeService_Update_EveryFieldRoundTrips(t *testing.T) {
	// Setup
	svc := newTestService(t)
	created, err := svc.CreateEmployee(adminCtx(), createRequest("John Doe", "john@company.com", "Engineering"))
	require.NoError(t, err)

	name := "Jane Roe"
	email := "jane@company.com"
	phone := "+1-555-0199"
	role := "Engineering Manager"
	department := "Platform"
	joiningDate := "2022-03-01"
	status := "inactive"
	salary := decimal.RequireFromString("91500.50")
	avatar := "https://cdn.company.com/jane.png"
	req := employee.UpdateEmployeeRequest{
		ID:          created.ID,
		Name:        &name,
		Email:       &email,
		Phone:       &phone,
		Role:        &role,
		Department:  &department,
		JoiningDate: &joiningDate,
		Status:      &status,
		Salary:      &salary,
		AvatarURL:   &avatar,
	}

	// Act
	_, err = svc.UpdateEmployee(adminCtx(), req)
	require.NoError(t, err)
	got, err := svc.GetEmployee(adminCtx(), created.ID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, name, got.Name)
	assert.Equal(t, email, got.Email)
	assert.Equal(t, phone, got.Phone)
	assert.Equal(t, role, got.Role)
	assert.Equal(t, department, got.Department)
	assert.Equal(t, joiningDate, got.JoiningDate)
	assert.Equal(t, status, got.Status)
	require.NotNil(t, got.Salary)
	assert.True(t, salary.Equal(*got.Salary))
	require.NotNil(t, got.AvatarURL)
	assert.Equal(t, avatar, *got.AvatarURL)
}

func TestEmployeeService_Update_BlankAvatarIsRegenerated(t *testing.T) {
	svc := newTestService(t)
	created, err := svc.CreateEmployee(adminCtx(), createRequest("John Doe", "john@company.com", "Engineering"))
	require.NoError(t, err)
	blank := ""
	name := "Mary Major"

	_, err = svc.UpdateEmployee(adminCtx(), employee.UpdateEmployeeRequest{ID: created.ID, AvatarURL: &blank})
	require.NoError(t, err)
	renamed, err := svc.UpdateEmployee(adminCtx(), employee.UpdateEmployeeRequest{ID: created.ID, Name: &name})

	require.NoError(t, err)
	require.NotNil(t, renamed.AvatarURL)
	assert.Equal(t, employee.DefaultAvatarURL("Mary Major"), *renamed.AvatarURL)
}

func TestEmployeeService_Update_NotFound(t *testing.T) {
	svc := newTestService(t)
	name := "Ghost"

	_, err := svc.UpdateEmployee(adminCtx(), employee.UpdateEmployeeRequest{ID: "missing", Name: &name})

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeService_Delete_Success(t *testing.T) {
	// Setup
	svc := newTestService(t)
	created, err := svc.CreateEmployee(adminCtx(), createRequest("John Doe", "john@company.com", "Engineering"))
	require.NoError(t, err)

	// Act
	err = svc.DeleteEmployee(adminCtx(), created.ID)

	// Assert
	require.NoError(t, err)
	_, err = svc.GetEmployee(adminCtx(), created.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.ErrorIs(t, svc.DeleteEmployee(adminCtx(), created.ID), employee.ErrEmployeeNotFound)
}

func TestEmployeeService_Get_HidesSalaryFromEmployees(t *testing.T) {
	svc := newTestService(t)
	created, err := svc.CreateEmployee(adminCtx(), createRequest("John Doe", "john@company.com", "Engineering"))
	require.NoError(t, err)

	asEmployee, err := svc.GetEmployee(employeeCtx(created.ID), created.ID)
	require.NoError(t, err)
	assert.Nil(t, asEmployee.Salary)

	asAdmin, err := svc.GetEmployee(adminCtx(), created.ID)
	require.NoError(t, err)
	assert.NotNil(t, asAdmin.Salary)
}

func TestEmployeeService_List_FilterAndDepartments(t *testing.T) {
	// Setup
	svc := newTestService(t)
	for _, req := range []employee.CreateEmployeeRequest{
		createRequest("John Doe", "john@company.com", "Engineering"),
		createRequest("Sarah Wilson", "sarah@company.com", "Product"),
		createRequest("Alex Chen", "alex@company.com", "Engineering"),
	} {
		_, err := svc.CreateEmployee(adminCtx(), req)
		require.NoError(t, err)
	}

	// Act
	result, err := svc.ListEmployees(employeeCtx("1"), employee.EmployeeFilter{Department: "Engineering"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalCount)
	assert.Equal(t, "John Doe", result.Employees[0].Name)
	assert.Equal(t, "Alex Chen", result.Employees[1].Name)
	assert.Nil(t, result.Employees[0].Salary)
	assert.Equal(t, []string{"Engineering", "Product"}, result.Departments)

	departments, err := svc.ListDepartments(employeeCtx("1"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Engineering", "Product"}, departments)
}
