package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create stores a new record. It fails with ErrAlreadyPunchedIn when the employee
	// already has a record on that date.
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetByID retrieves attendance by ID
	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByEmployeeAndDate returns the first record for the employee on date, or nil.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// Update runs fn against a copy of the record and commits it only when fn returns nil.
	Update(ctx context.Context, id string, fn func(*Attendance) error) (Attendance, error)

	// List returns every record in insertion order
	List(ctx context.Context) ([]Attendance, error)
}
