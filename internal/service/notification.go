package service

import (
	"context"

	"vehiclerental-backend/internal/domain"
	"vehiclerental-backend/internal/repository"
)

type notificationService struct {
	noteRepo repository.NotificationRepository
}

func NewNotificationService(noteRepo repository.NotificationRepository) NotificationService {
	return &notificationService{noteRepo: noteRepo}
}

func (s *notificationService) GetNotifications(ctx context.Context, email string) ([]domain.Notification, error) {
	return s.noteRepo.ListByUser(ctx, email)
}

func (s *notificationService) MarkAsRead(ctx context.Context, email, notificationID string) error {
	return s.noteRepo.MarkAsRead(ctx, notificationID, email)
}
