package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSession_CanSee_FollowsViewAllPermission(t *testing.T) {
	admin := Session{UserID: "admin-1", Role: RoleAdmin}
	employee := Session{UserID: "emp-1", Role: RoleEmployee, EmployeeID: "1"}
	unlinked := Session{UserID: "emp-9", Role: RoleEmployee}

	for _, viewAll := range []Permission{PermissionLeaveViewAll, PermissionAttendanceViewAll} {
		assert.True(t, admin.CanSee(viewAll, "2"))
		assert.True(t, employee.CanSee(viewAll, "1"))
		assert.False(t, employee.CanSee(viewAll, "2"))
		assert.False(t, unlinked.CanSee(viewAll, ""))
	}
}

func TestSession_Can(t *testing.T) {
	admin := Session{Role: RoleAdmin}
	employee := Session{Role: RoleEmployee}

	assert.True(t, admin.Can(PermissionEmployeeManage))
	assert.False(t, employee.Can(PermissionEmployeeManage))
	assert.True(t, employee.Can(PermissionDashboardView))
	assert.False(t, Session{Role: "guest"}.Can(PermissionDashboardView))
}
