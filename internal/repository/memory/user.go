package memory

import (
	"context"
	"sort"
	"strings"

	"vehiclerental-backend/internal/domain"
)

type userRepository struct {
	store *Store
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	key := strings.ToLower(user.Email)
	if _, exists := r.store.users[key]; exists {
		return domain.NewValidationError("email %s is already registered", user.Email)
	}
	r.store.users[key] = user
	return nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	user, ok := r.store.users[strings.ToLower(email)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	users := make([]domain.User, 0, len(r.store.users))
	for _, u := range r.store.users {
		users = append(users, *u)
	}
	sort.Slice(users, func(i, j int) bool {
		return strings.ToLower(users[i].Email) < strings.ToLower(users[j].Email)
	})
	return users, nil
}
