package memory

import (
	"context"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/employee"
)

type employeeRepositoryImpl struct {
	store *Store
}

func NewEmployeeRepository(store *Store) employee.EmployeeRepository {
	return &employeeRepositoryImpl{store: store}
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	id, err := r.store.newID()
	if err != nil {
		return employee.Employee{}, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.emailTaken(newEmployee.Email, "") {
		return employee.Employee{}, employee.ErrEmailExists
	}

	now := r.store.now()
	newEmployee.ID = id
	newEmployee.CreatedAt = now
	newEmployee.UpdatedAt = now
	r.store.employees.put(id, newEmployee)

	return newEmployee.Clone(), nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	e, ok := r.store.employees.get(id)
	if !ok {
		return employee.Employee{}, fmt.Errorf("employee with id %s: %w", id, employee.ErrEmployeeNotFound)
	}
	return e, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.store.employees.list(), nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, id string, fn func(*employee.Employee) error) (employee.Employee, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	e, ok := r.store.employees.get(id)
	if !ok {
		return employee.Employee{}, fmt.Errorf("employee with id %s: %w", id, employee.ErrEmployeeNotFound)
	}
	before := e.Email
	if err := fn(&e); err != nil {
		return employee.Employee{}, err
	}
	if !strings.EqualFold(before, e.Email) && r.emailTaken(e.Email, id) {
		return employee.Employee{}, employee.ErrEmailExists
	}

	e.ID = id
	e.UpdatedAt = r.store.now()
	r.store.employees.put(id, e)
	return e, nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if !r.store.employees.remove(id) {
		return fmt.Errorf("employee with id %s: %w", id, employee.ErrEmployeeNotFound)
	}
	return nil
}

// emailTaken reports whether an employee other than excludeID uses email, ignoring case.
// Callers must hold the store lock.
func (r *employeeRepositoryImpl) emailTaken(email, excludeID string) bool {
	_, found := r.store.employees.find(func(e employee.Employee) bool {
		return e.ID != excludeID && strings.EqualFold(e.Email, strings.TrimSpace(email))
	})
	return found
}
