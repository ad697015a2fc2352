package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/fixtures"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/clock"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var now = time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC)

func newSampleService(t *testing.T) dashboard.DashboardService {
	t.Helper()
	clk := clock.Fixed{At: now}
	ds, err := fixtures.Sample(now, bcrypt.MinCost)
	require.NoError(t, err)

	store := memory.NewStore(clk)
	require.NoError(t, store.Seed(ds.Employees, ds.Attendance, ds.LeaveRequests, ds.Users))

	return NewDashboardService(memory.NewDashboardRepository(store), clk)
}

func TestDashboardService_GetDashboard_Admin(t *testing.T) {
	// Setup
	svc := newSampleService(t)
	ctx := user.WithSession(context.Background(), user.Session{UserID: "admin-1", Role: user.RoleAdmin})

	// Act
	data, err := svc.GetDashboard(ctx)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "2024-06-03", data.Date)
	assert.Equal(t, dashboard.Stats{
		TotalEmployees:    5,
		PresentToday:      4,
		LeavesToday:       0,
		ActiveDepartments: 4,
	}, data.Stats)
	assert.Equal(t, []dashboard.DepartmentCount{
		{Department: "Engineering", Employees: 2},
		{Department: "Product", Employees: 1},
		{Department: "Design", Employees: 1},
		{Department: "Marketing", Employees: 1},
	}, data.DepartmentMix)
	require.Len(t, data.RecentActivity, RecentActivityLimit)
	assert.Equal(t, "John Doe", data.RecentActivity[0].EmployeeName)
}

func TestDashboardService_GetDashboard_EmployeeSeesOwnActivity(t *testing.T) {
	svc := newSampleService(t)
	ctx := user.WithSession(context.Background(), user.Session{UserID: "emp-1", Role: user.RoleEmployee, EmployeeID: "1"})

	data, err := svc.GetDashboard(ctx)

	require.NoError(t, err)
	assert.Equal(t, 5, data.Stats.TotalEmployees)
	require.Len(t, data.RecentActivity, 1)
	assert.Equal(t, "1", data.RecentActivity[0].EmployeeID)
}

func TestDashboardService_GetDashboard_RequiresSession(t *testing.T) {
	svc := newSampleService(t)

	_, err := svc.GetDashboard(context.Background())

	assert.ErrorIs(t, err, user.ErrSessionRequired)
}
