package dashboard

import (
	"time"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/utils"
)

// Stats holds the headline counters of the dashboard.
type Stats struct {
	TotalEmployees    int `json:"total_employees"`    // active only
	PresentToday      int `json:"present_today"`      // present or late today
	LeavesToday       int `json:"leaves_today"`       // approved leave covering today
	ActiveDepartments int `json:"active_departments"` // inactive employees included
}

// ComputeStats derives the headline counters from the three collections.
func ComputeStats(employees []employee.Employee, records []attendance.Attendance, requests []leave.LeaveRequest, today time.Time) Stats {
	var stats Stats

	departments := make(map[string]struct{})
	for _, e := range employees {
		if e.Status == employee.StatusActive {
			stats.TotalEmployees++
		}
		departments[e.Department] = struct{}{}
	}
	stats.ActiveDepartments = len(departments)

	for _, a := range records {
		if utils.SameDay(a.Date, today) && a.Status.IsPresent() {
			stats.PresentToday++
		}
	}

	for _, r := range requests {
		if r.Status == leave.LeaveRequestStatusApproved && r.Covers(today) {
			stats.LeavesToday++
		}
	}

	return stats
}

// DepartmentCount is one slice of the department mix chart.
type DepartmentCount struct {
	Department string `json:"department"`
	Employees  int    `json:"employees"`
}

// DepartmentBreakdown counts employees per department in first-seen order.
func DepartmentBreakdown(employees []employee.Employee) []DepartmentCount {
	index := make(map[string]int)
	breakdown := make([]DepartmentCount, 0)
	for _, e := range employees {
		i, ok := index[e.Department]
		if !ok {
			i = len(breakdown)
			index[e.Department] = i
			breakdown = append(breakdown, DepartmentCount{Department: e.Department})
		}
		breakdown[i].Employees++
	}
	return breakdown
}
