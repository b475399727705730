package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"vehiclerental-backend/internal/domain"
)

type AuthService interface {
	Register(ctx context.Context, name, email, password string, role domain.Role) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, string, error) // access, refresh
	RefreshToken(ctx context.Context, refresh string) (string, string, error)
	GetUser(ctx context.Context, email string) (*domain.User, error)
}

// AddVehicleParams carries the form fields for a new catalog entry.
type AddVehicleParams struct {
	ID          string
	Brand       string
	Model       string
	Year        int
	PricePerDay decimal.Decimal
	Quantity    int
	Category    domain.VehicleCategory
	Subtype     string
}

type CatalogService interface {
	AddVehicle(ctx context.Context, actorEmail string, params AddVehicleParams) (*domain.Vehicle, error)
	GetVehicle(ctx context.Context, id string) (*domain.Vehicle, error)
	ListVehicles(ctx context.Context) ([]domain.Vehicle, error)
	AddQuantity(ctx context.Context, actorEmail, vehicleID string, delta int) error
}

// RentalService is the ledger: the actor-qualified entry points that tie
// bookings, inventory and payments together.
type RentalService interface {
	RequestBooking(ctx context.Context, customerEmail, vehicleID string, rentalDate, returnDate time.Time) (*domain.Booking, error)
	ApproveBooking(ctx context.Context, adminEmail, bookingID string) (*domain.Payment, error)
	RejectBooking(ctx context.Context, adminEmail, bookingID, reason string) error
	CompleteBooking(ctx context.Context, adminEmail, bookingID string) error
	GetBooking(ctx context.Context, actorEmail, bookingID string) (*domain.Booking, error)
	ListBookings(ctx context.Context, actorEmail string) ([]domain.Booking, error)
}

type PaymentService interface {
	ListPayments(ctx context.Context, actorEmail string) ([]domain.Payment, error)
	GetPayment(ctx context.Context, actorEmail, paymentID string) (*domain.Payment, error)
}

type NotificationService interface {
	GetNotifications(ctx context.Context, email string) ([]domain.Notification, error)
	MarkAsRead(ctx context.Context, email, notificationID string) error
}

type EmailService interface {
	SendBookingApprovalNotification(ctx context.Context, toEmail, toName, vehicleDesc, bookingID string, amount decimal.Decimal) error
	SendBookingRejectionNotification(ctx context.Context, toEmail, toName, vehicleDesc, bookingID, reason string) error
	SendOverdueReport(ctx context.Context, toEmail string, bookingIDs []string) error
}
