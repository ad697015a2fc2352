package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	// Create fails with ErrEmailExists when another employee already uses the email.
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	// Update runs fn against a copy of the stored employee and commits it only when fn returns nil.
	// The email uniqueness rule of Create applies to the result.
	Update(ctx context.Context, id string, fn func(*Employee) error) (Employee, error)
	Delete(ctx context.Context, id string) error
}
