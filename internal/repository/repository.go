package repository

import (
	"context"
	"time"

	"vehiclerental-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) error
	GetByID(ctx context.Context, id string) (*domain.Vehicle, error)
	Update(ctx context.Context, vehicle *domain.Vehicle) error
	// List returns the catalog sorted by price per day, cheapest first.
	List(ctx context.Context) ([]domain.Vehicle, error)
}

type BookingRepository interface {
	// Create persists the booking and assigns its sequential ID (B0, B1, ...).
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) error
	List(ctx context.Context) ([]domain.Booking, error)
	ListByCustomer(ctx context.Context, email string) ([]domain.Booking, error)
	// ListApprovedDueBefore returns approved bookings whose return date has
	// passed, for the overdue report job.
	ListApprovedDueBefore(ctx context.Context, cutoff time.Time) ([]domain.Booking, error)
}

type PaymentRepository interface {
	// Create persists the payment and assigns its sequential ID (P1, P2, ...).
	Create(ctx context.Context, payment *domain.Payment) error
	GetByID(ctx context.Context, id string) (*domain.Payment, error)
	List(ctx context.Context) ([]domain.Payment, error)
	ListByCustomer(ctx context.Context, email string) ([]domain.Payment, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	ListByUser(ctx context.Context, email string) ([]domain.Notification, error)
	MarkAsRead(ctx context.Context, id, email string) error
}
