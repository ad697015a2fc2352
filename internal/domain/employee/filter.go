package employee

import (
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/utils"
)

// FilterEmployees keeps employees matching every active criterion, preserving input order.
// Search is a case-insensitive substring match against name, email or role title.
func FilterEmployees(employees []Employee, filter EmployeeFilter) []Employee {
	result := make([]Employee, 0, len(employees))
	for _, e := range employees {
		if !matchesSearch(e, filter.Search) {
			continue
		}
		if !utils.MatchesSelector(filter.Department, e.Department) {
			continue
		}
		if !utils.MatchesSelector(filter.Status, string(e.Status)) {
			continue
		}
		result = append(result, e)
	}
	return result
}

func matchesSearch(e Employee, search string) bool {
	if search == "" {
		return true
	}
	return utils.ContainsFold(e.Name, search) ||
		utils.ContainsFold(e.Email, search) ||
		utils.ContainsFold(e.RoleTitle, search)
}

// Departments lists distinct departments in first-seen order.
func Departments(employees []Employee) []string {
	seen := make(map[string]struct{}, len(employees))
	departments := make([]string, 0)
	for _, e := range employees {
		if _, ok := seen[e.Department]; ok {
			continue
		}
		seen[e.Department] = struct{}{}
		departments = append(departments, e.Department)
	}
	return departments
}
