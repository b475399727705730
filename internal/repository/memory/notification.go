package memory

import (
	"context"
	"strings"

	"vehiclerental-backend/internal/domain"
)

type notificationRepository struct {
	store *Store
}

func (r *notificationRepository) Create(ctx context.Context, note *domain.Notification) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.notifications = append(r.store.notifications, note)
	return nil
}

func (r *notificationRepository) ListByUser(ctx context.Context, email string) ([]domain.Notification, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var notes []domain.Notification
	// Newest first.
	for i := len(r.store.notifications) - 1; i >= 0; i-- {
		n := r.store.notifications[i]
		if strings.EqualFold(n.UserEmail, email) {
			notes = append(notes, *n)
		}
	}
	return notes, nil
}

func (r *notificationRepository) MarkAsRead(ctx context.Context, id, email string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, n := range r.store.notifications {
		if n.ID == id && strings.EqualFold(n.UserEmail, email) {
			n.Read = true
			return nil
		}
	}
	return domain.ErrNotFound
}
