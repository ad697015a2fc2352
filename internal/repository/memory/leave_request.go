package memory

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/leave"
)

type leaveRequestRepositoryImpl struct {
	store *Store
}

func NewLeaveRequestRepository(store *Store) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{store: store}
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	id, err := r.store.newID()
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := r.store.now()
	request.ID = id
	request.CreatedAt = now
	request.UpdatedAt = now
	r.store.leaves.put(id, request)

	return request.Clone(), nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	request, ok := r.store.leaves.get(id)
	if !ok {
		return leave.LeaveRequest{}, fmt.Errorf("leave request with id %s: %w", id, leave.ErrLeaveRequestNotFound)
	}
	return request, nil
}

// Update implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Update(ctx context.Context, id string, fn func(*leave.LeaveRequest) error) (leave.LeaveRequest, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	request, ok := r.store.leaves.get(id)
	if !ok {
		return leave.LeaveRequest{}, fmt.Errorf("leave request with id %s: %w", id, leave.ErrLeaveRequestNotFound)
	}
	if err := fn(&request); err != nil {
		return leave.LeaveRequest{}, err
	}

	request.ID = id
	request.UpdatedAt = r.store.now()
	r.store.leaves.put(id, request)
	return request, nil
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) List(ctx context.Context) ([]leave.LeaveRequest, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.store.leaves.list(), nil
}
