package leave

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/clock"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/validator"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 6, 3, 14, 0, 0, 0, time.UTC)

func adminCtx() context.Context {
	return user.WithSession(context.Background(), user.Session{UserID: "admin-1", Role: user.RoleAdmin, DisplayName: "Admin User"})
}

func employeeCtx(employeeID string) context.Context {
	return user.WithSession(context.Background(), user.Session{UserID: "emp-" + employeeID, Role: user.RoleEmployee, EmployeeID: employeeID})
}

func newTestService(t *testing.T) leave.LeaveService {
	t.Helper()
	store := memory.NewStore(clock.Fixed{At: now})
	require.NoError(t, store.Seed(
		[]employee.Employee{
			{ID: "1", Name: "John Doe", Email: "john@company.com"},
			{ID: "2", Name: "Sarah Wilson", Email: "sarah@company.com"},
		},
		nil, nil, nil,
	))
	return NewLeaveService(memory.NewLeaveRequestRepository(store), memory.NewEmployeeRepository(store), clock.Fixed{At: now})
}

func casualLeave() leave.CreateLeaveRequestRequest {
	return leave.CreateLeaveRequestRequest{
		Type:      "casual",
		StartDate: "2024-06-10",
		EndDate:   "2024-06-12",
		Reason:    "Family vacation",
	}
}

// ===== LEAVE SERVICE TESTS =====

func TestLeaveService_ApplyLeave_Employee(t *testing.T) {
	// Setup
	svc := newTestService(t)
	req := casualLeave()
	req.EmployeeID = "2" // ignored for employees

	// Act
	created, err := svc.ApplyLeave(employeeCtx("1"), req)

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "1", created.EmployeeID)
	assert.Equal(t, "John Doe", created.EmployeeName)
	assert.Equal(t, "pending", created.Status)
	assert.Equal(t, "2024-06-03", created.AppliedDate)
	assert.Equal(t, 3, created.Days)
	assert.Nil(t, created.ApprovedBy)
}

func TestLeaveService_ApplyLeave_AdminMustNameEmployee(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.ApplyLeave(adminCtx(), casualLeave())
	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "employee_id")

	req := casualLeave()
	req.EmployeeID = "2"
	created, err := svc.ApplyLeave(adminCtx(), req)
	require.NoError(t, err)
	assert.Equal(t, "Sarah Wilson", created.EmployeeName)
}

func TestLeaveService_ApplyLeave_Errors(t *testing.T) {
	svc := newTestService(t)

	req := casualLeave()
	req.EndDate = "2024-06-01"
	_, err := svc.ApplyLeave(employeeCtx("1"), req)
	var validationErrs validator.ValidationErrors
	assert.ErrorAs(t, err, &validationErrs)

	_, err = svc.ApplyLeave(employeeCtx("404"), casualLeave())
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	_, err = svc.ApplyLeave(context.Background(), casualLeave())
	assert.ErrorIs(t, err, user.ErrSessionRequired)
}

func TestLeaveService_GetLeaveRequest_HiddenFromOtherEmployees(t *testing.T) {
	svc := newTestService(t)
	created, err := svc.ApplyLeave(employeeCtx("1"), casualLeave())
	require.NoError(t, err)

	_, err = svc.GetLeaveRequest(employeeCtx("2"), created.ID)
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)

	own, err := svc.GetLeaveRequest(employeeCtx("1"), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, own.ID)

	_, err = svc.GetLeaveRequest(adminCtx(), created.ID)
	assert.NoError(t, err)
}

func TestLeaveService_DecideLeaveRequest_Approve(t *testing.T) {
	// Setup
	svc := newTestService(t)
	created, err := svc.ApplyLeave(employeeCtx("1"), casualLeave())
	require.NoError(t, err)

	// Act
	decided, err := svc.DecideLeaveRequest(adminCtx(), leave.DecideLeaveRequestRequest{ID: created.ID, Decision: "approved"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "approved", decided.Status)
	require.NotNil(t, decided.ApprovedBy)
	assert.Equal(t, "Admin User", *decided.ApprovedBy)
	require.NotNil(t, decided.ApprovedDate)
	assert.Equal(t, "2024-06-03", *decided.ApprovedDate)
}

func TestLeaveService_DecideLeaveRequest_Twice(t *testing.T) {
	svc := newTestService(t)
	created, err := svc.ApplyLeave(employeeCtx("1"), casualLeave())
	require.NoError(t, err)
	_, err = svc.DecideLeaveRequest(adminCtx(), leave.DecideLeaveRequestRequest{ID: created.ID, Decision: "rejected"})
	require.NoError(t, err)

	_, err = svc.DecideLeaveRequest(adminCtx(), leave.DecideLeaveRequestRequest{ID: created.ID, Decision: "approved"})

	assert.ErrorIs(t, err, leave.ErrInvalidTransition)
	got, err := svc.GetLeaveRequest(adminCtx(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "rejected", got.Status)
}

func TestLeaveService_DecideLeaveRequest_Errors(t *testing.T) {
	svc := newTestService(t)
	created, err := svc.ApplyLeave(employeeCtx("1"), casualLeave())
	require.NoError(t, err)

	_, err = svc.DecideLeaveRequest(employeeCtx("1"), leave.DecideLeaveRequestRequest{ID: created.ID, Decision: "approved"})
	assert.ErrorIs(t, err, user.ErrAdminPrivilegeRequired)

	_, err = svc.DecideLeaveRequest(adminCtx(), leave.DecideLeaveRequestRequest{ID: "missing", Decision: "approved"})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)

	_, err = svc.DecideLeaveRequest(adminCtx(), leave.DecideLeaveRequestRequest{ID: created.ID, Decision: "pending"})
	var validationErrs validator.ValidationErrors
	assert.ErrorAs(t, err, &validationErrs)
}

func TestLeaveService_ListLeaveRequests_StatsFollowFilter(t *testing.T) {
	// Setup
	svc := newTestService(t)
	first, err := svc.ApplyLeave(employeeCtx("1"), casualLeave())
	require.NoError(t, err)
	_, err = svc.ApplyLeave(employeeCtx("1"), casualLeave())
	require.NoError(t, err)
	sick := casualLeave()
	sick.Type = "sick"
	_, err = svc.ApplyLeave(employeeCtx("2"), sick)
	require.NoError(t, err)
	_, err = svc.DecideLeaveRequest(adminCtx(), leave.DecideLeaveRequestRequest{ID: first.ID, Decision: "approved"})
	require.NoError(t, err)

	// Act
	all, err := svc.ListLeaveRequests(adminCtx(), leave.LeaveRequestFilter{})
	require.NoError(t, err)
	pending, err := svc.ListLeaveRequests(adminCtx(), leave.LeaveRequestFilter{Status: "pending"})
	require.NoError(t, err)
	own, err := svc.ListLeaveRequests(employeeCtx("2"), leave.LeaveRequestFilter{Type: "all"})
	require.NoError(t, err)

	// Assert
	assert.Equal(t, leave.LeaveStats{Total: 3, Pending: 2, Approved: 1}, all.Stats)
	assert.Equal(t, 2, pending.TotalCount)
	assert.Equal(t, leave.LeaveStats{Total: 2, Pending: 2}, pending.Stats)
	assert.Equal(t, 1, own.TotalCount)
	assert.Equal(t, "Sarah Wilson", own.Requests[0].EmployeeName)
}
