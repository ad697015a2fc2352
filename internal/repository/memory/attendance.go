package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/utils"
)

type attendanceRepositoryImpl struct {
	store *Store
}

func NewAttendanceRepository(store *Store) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{store: store}
}

// Create implements attendance.AttendanceRepository.
// The duplicate check and the insert happen under one lock, so two concurrent punch-ins cannot both win.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	id, err := r.store.newID()
	if err != nil {
		return attendance.Attendance{}, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.attendance.find(sameEmployeeDay(a.EmployeeID, a.Date)); exists {
		return attendance.Attendance{}, attendance.ErrAlreadyPunchedIn
	}

	now := r.store.now()
	a.ID = id
	a.Date = utils.DateOf(a.Date)
	a.CreatedAt = now
	a.UpdatedAt = now
	r.store.attendance.put(id, a)

	return a.Clone(), nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	a, ok := r.store.attendance.get(id)
	if !ok {
		return attendance.Attendance{}, fmt.Errorf("attendance with id %s: %w", id, attendance.ErrAttendanceNotFound)
	}
	return a, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	a, ok := r.store.attendance.find(sameEmployeeDay(employeeID, date))
	if !ok {
		return nil, nil
	}
	return &a, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, id string, fn func(*attendance.Attendance) error) (attendance.Attendance, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	a, ok := r.store.attendance.get(id)
	if !ok {
		return attendance.Attendance{}, fmt.Errorf("attendance with id %s: %w", id, attendance.ErrAttendanceNotFound)
	}
	if err := fn(&a); err != nil {
		return attendance.Attendance{}, err
	}

	a.ID = id
	a.UpdatedAt = r.store.now()
	r.store.attendance.put(id, a)
	return a, nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context) ([]attendance.Attendance, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.store.attendance.list(), nil
}

func sameEmployeeDay(employeeID string, date time.Time) func(attendance.Attendance) bool {
	return func(a attendance.Attendance) bool {
		return a.EmployeeID == employeeID && utils.SameDay(a.Date, date)
	}
}
