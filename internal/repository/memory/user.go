package memory

import (
	"context"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/user"
)

type userRepositoryImpl struct {
	store *Store
}

func NewUserRepository(store *Store) user.UserRepository {
	return &userRepositoryImpl{store: store}
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if err := r.store.ensureID(&newUser.ID); err != nil {
		return user.User{}, err
	}
	r.store.users.put(newUser.ID, newUser)
	return newUser.Clone(), nil
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	u, ok := r.store.users.find(func(u user.User) bool {
		return strings.EqualFold(u.Email, strings.TrimSpace(email))
	})
	if !ok {
		return user.User{}, fmt.Errorf("user with email %s: %w", email, user.ErrUserNotFound)
	}
	return u, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	u, ok := r.store.users.get(id)
	if !ok {
		return user.User{}, fmt.Errorf("user with id %s: %w", id, user.ErrUserNotFound)
	}
	return u, nil
}
