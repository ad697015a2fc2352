package memory

import (
	"context"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/dashboard"
)

type dashboardRepositoryImpl struct {
	store *Store
}

func NewDashboardRepository(store *Store) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{store: store}
}

// Snapshot implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) Snapshot(ctx context.Context) (dashboard.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return dashboard.Snapshot{}, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return dashboard.Snapshot{
		Employees:     r.store.employees.list(),
		Attendance:    r.store.attendance.list(),
		LeaveRequests: r.store.leaves.list(),
	}, nil
}
