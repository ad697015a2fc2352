package memory

import (
	"fmt"
	"sync"
	"time"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/clock"
	"github.com/google/uuid"
)

// Store owns every collection for the lifetime of the process.
// One RWMutex guards all of them: reads share, writes exclude.
type Store struct {
	mu sync.RWMutex

	employees  *collection[employee.Employee]
	attendance *collection[attendance.Attendance]
	leaves     *collection[leave.LeaveRequest]
	users      *collection[user.User]

	clock clock.Clock
	newID func() (string, error)
}

type Option func(*Store)

// WithIDGenerator replaces the UUIDv7 generator, mostly for tests.
func WithIDGenerator(fn func() (string, error)) Option {
	return func(s *Store) {
		s.newID = fn
	}
}

func NewStore(clk clock.Clock, opts ...Option) *Store {
	s := &Store{
		employees:  newCollection(employee.Employee.Clone),
		attendance: newCollection(attendance.Attendance.Clone),
		leaves:     newCollection(leave.LeaveRequest.Clone),
		users:      newCollection(user.User.Clone),
		clock:      clk,
		newID:      newUUID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func newUUID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate id: %w", err)
	}
	return id.String(), nil
}

func (s *Store) now() time.Time {
	return s.clock.Now()
}

// Seed loads records as-is, bypassing the uniqueness checks of the repositories.
// Records without an ID get a fresh one.
func (s *Store) Seed(employees []employee.Employee, records []attendance.Attendance, requests []leave.LeaveRequest, users []user.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for _, e := range employees {
		if err := s.ensureID(&e.ID); err != nil {
			return err
		}
		stampCreated(&e.CreatedAt, &e.UpdatedAt, now)
		s.employees.put(e.ID, e)
	}
	for _, a := range records {
		if err := s.ensureID(&a.ID); err != nil {
			return err
		}
		stampCreated(&a.CreatedAt, &a.UpdatedAt, now)
		s.attendance.put(a.ID, a)
	}
	for _, r := range requests {
		if err := s.ensureID(&r.ID); err != nil {
			return err
		}
		stampCreated(&r.CreatedAt, &r.UpdatedAt, now)
		s.leaves.put(r.ID, r)
	}
	for _, u := range users {
		if err := s.ensureID(&u.ID); err != nil {
			return err
		}
		s.users.put(u.ID, u)
	}
	return nil
}

func (s *Store) ensureID(id *string) error {
	if *id != "" {
		return nil
	}
	fresh, err := s.newID()
	if err != nil {
		return err
	}
	*id = fresh
	return nil
}

func stampCreated(createdAt, updatedAt *time.Time, now time.Time) {
	if createdAt.IsZero() {
		*createdAt = now
	}
	if updatedAt.IsZero() {
		*updatedAt = *createdAt
	}
}
