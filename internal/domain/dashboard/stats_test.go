package dashboard

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
)

var today = time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC)

func date(offset int) time.Time {
	return time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func TestComputeStats(t *testing.T) {
	// Setup
	employees := []employee.Employee{
		{ID: "1", Department: "Engineering", Status: employee.StatusActive},
		{ID: "2", Department: "Product", Status: employee.StatusActive},
		{ID: "3", Department: "Design", Status: employee.StatusInactive},
		{ID: "5", Department: "Engineering", Status: employee.StatusActive},
	}
	records := []attendance.Attendance{
		{EmployeeID: "1", Date: date(0), Status: attendance.StatusPresent},
		{EmployeeID: "2", Date: date(0), Status: attendance.StatusLate},
		{EmployeeID: "3", Date: date(0), Status: attendance.StatusAbsent},
		{EmployeeID: "5", Date: date(0), Status: attendance.StatusHalfDay},
		{EmployeeID: "5", Date: date(-1), Status: attendance.StatusPresent},
	}
	requests := []leave.LeaveRequest{
		{EmployeeID: "1", Status: leave.LeaveRequestStatusApproved, StartDate: date(-1), EndDate: date(1)},
		{EmployeeID: "2", Status: leave.LeaveRequestStatusPending, StartDate: date(0), EndDate: date(0)},
		{EmployeeID: "5", Status: leave.LeaveRequestStatusApproved, StartDate: date(0), EndDate: date(0)},
		{EmployeeID: "3", Status: leave.LeaveRequestStatusApproved, StartDate: date(-5), EndDate: date(-1)},
	}

	// Act
	stats := ComputeStats(employees, records, requests, today)

	// Assert
	assert.Equal(t, Stats{
		TotalEmployees:    3,
		PresentToday:      2,
		LeavesToday:       2,
		ActiveDepartments: 3,
	}, stats)
}

func TestComputeStats_Empty(t *testing.T) {
	assert.Equal(t, Stats{}, ComputeStats(nil, nil, nil, today))
}

func TestDepartmentBreakdown(t *testing.T) {
	employees := []employee.Employee{
		{Department: "Engineering"},
		{Department: "Product"},
		{Department: "Engineering"},
	}

	assert.Equal(t, []DepartmentCount{
		{Department: "Engineering", Employees: 2},
		{Department: "Product", Employees: 1},
	}, DepartmentBreakdown(employees))
}
