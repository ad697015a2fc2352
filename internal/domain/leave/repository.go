package leave

import (
	"context"
)

// LeaveRequestRepository defines data access methods for leave requests.
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// Update runs fn against a copy of the request and commits it only when fn returns nil.
	Update(ctx context.Context, id string, fn func(*LeaveRequest) error) (LeaveRequest, error)

	// List returns every request in insertion order
	List(ctx context.Context) ([]LeaveRequest, error)
}
