package leave

import (
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/utils"
)

// FilterLeaveRequests applies the visibility rule for session, then the status and type filters.
// Without leave.view_all a caller only sees their own requests. Input order is preserved.
func FilterLeaveRequests(requests []LeaveRequest, session user.Session, filter LeaveRequestFilter) []LeaveRequest {
	result := make([]LeaveRequest, 0, len(requests))
	for _, r := range requests {
		if !session.CanSee(user.PermissionLeaveViewAll, r.EmployeeID) {
			continue
		}
		if !utils.MatchesSelector(filter.Status, string(r.Status)) {
			continue
		}
		if !utils.MatchesSelector(filter.Type, string(r.Type)) {
			continue
		}
		result = append(result, r)
	}
	return result
}
