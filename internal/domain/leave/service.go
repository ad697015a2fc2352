package leave

import (
	"context"
)

type LeaveService interface {
	// ApplyLeave files a pending request for the caller, or for req.EmployeeID when the caller is admin
	ApplyLeave(ctx context.Context, req CreateLeaveRequestRequest) (LeaveRequestResponse, error)
	GetLeaveRequest(ctx context.Context, id string) (LeaveRequestResponse, error)

	// ListLeaveRequests returns the caller-visible requests that pass filter, with filter-scoped stats
	ListLeaveRequests(ctx context.Context, filter LeaveRequestFilter) (ListLeaveRequestResponse, error)

	// DecideLeaveRequest approves or rejects a pending request. Admin only.
	DecideLeaveRequest(ctx context.Context, req DecideLeaveRequestRequest) (LeaveRequestResponse, error)
}
