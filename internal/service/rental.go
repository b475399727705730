package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"vehiclerental-backend/internal/domain"
	"vehiclerental-backend/internal/logger"
	"vehiclerental-backend/internal/repository"
)

// ledgerMu serializes every mutation that couples booking status with
// vehicle stock: approve, reject, complete and admin restock. The
// repositories guard their own maps, but domain objects are shared
// pointers mutated between a Get and an Update.
var ledgerMu sync.Mutex

type rentalService struct {
	bookingRepo repository.BookingRepository
	vehicleRepo repository.VehicleRepository
	userRepo    repository.UserRepository
	paymentRepo repository.PaymentRepository
	noteRepo    repository.NotificationRepository
	emailSvc    EmailService
}

func NewRentalService(
	bookingRepo repository.BookingRepository,
	vehicleRepo repository.VehicleRepository,
	userRepo repository.UserRepository,
	paymentRepo repository.PaymentRepository,
	noteRepo repository.NotificationRepository,
	emailSvc EmailService,
) RentalService {
	return &rentalService{
		bookingRepo: bookingRepo,
		vehicleRepo: vehicleRepo,
		userRepo:    userRepo,
		paymentRepo: paymentRepo,
		noteRepo:    noteRepo,
		emailSvc:    emailSvc,
	}
}

// RequestBooking creates a pending booking for the calling customer. No
// unit is reserved here; availability is only settled at approval time.
func (s *rentalService) RequestBooking(ctx context.Context, customerEmail, vehicleID string, rentalDate, returnDate time.Time) (*domain.Booking, error) {
	customer, err := s.userRepo.GetByEmail(ctx, customerEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve customer: %w", err)
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve vehicle: %w", err)
	}

	booking, err := domain.NewBooking(customer, vehicle, rentalDate, returnDate)
	if err != nil {
		return nil, err
	}

	// Persisting assigns the booking number; a failed request above never
	// consumes one.
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	logger.Info("booking requested",
		"booking_id", booking.ID,
		"customer", customer.Email,
		"vehicle_id", vehicle.ID,
		"total_cost", booking.TotalCost.String())
	return booking, nil
}

// ApproveBooking runs the approval transition and creates the payment
// record for the booking's frozen cost, dated now.
func (s *rentalService) ApproveBooking(ctx context.Context, adminEmail, bookingID string) (*domain.Payment, error) {
	ledgerMu.Lock()
	defer ledgerMu.Unlock()

	admin, err := s.userRepo.GetByEmail(ctx, adminEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve actor: %w", err)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := booking.CanApprove(admin); err != nil {
		return nil, err
	}

	// Validate the payment before any state changes, so a booking is never
	// approved without a receipt.
	payment, err := domain.NewPayment(booking.ID, booking.Customer, booking.TotalCost, time.Now())
	if err != nil {
		return nil, err
	}

	if err := booking.Approve(admin); err != nil {
		return nil, err
	}

	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}
	if err := s.vehicleRepo.Update(ctx, booking.Vehicle); err != nil {
		return nil, err
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	s.notifyCustomer(ctx, booking, "Booking Approved",
		fmt.Sprintf("Your booking %s for %s was approved. Amount charged: %s.",
			booking.ID, booking.Vehicle.Description(), payment.Amount.StringFixed(2)))
	if err := s.emailSvc.SendBookingApprovalNotification(ctx, booking.Customer.Email, booking.Customer.Name, booking.Vehicle.Description(), booking.ID, payment.Amount); err != nil {
		logger.Warn("failed to send approval email", "booking_id", booking.ID, "error", err)
	}

	logger.Info("booking approved",
		"booking_id", booking.ID,
		"payment_id", payment.ID,
		"admin", admin.Email,
		"remaining_quantity", booking.Vehicle.Quantity)
	return payment, nil
}

func (s *rentalService) RejectBooking(ctx context.Context, adminEmail, bookingID, reason string) error {
	ledgerMu.Lock()
	defer ledgerMu.Unlock()

	admin, err := s.userRepo.GetByEmail(ctx, adminEmail)
	if err != nil {
		return fmt.Errorf("failed to resolve actor: %w", err)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}

	if err := booking.Reject(admin, reason); err != nil {
		return err
	}
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return err
	}

	msg := fmt.Sprintf("Your booking %s for %s was rejected.", booking.ID, booking.Vehicle.Description())
	if reason != "" {
		msg += " Reason: " + reason
	}
	s.notifyCustomer(ctx, booking, "Booking Rejected", msg)
	if err := s.emailSvc.SendBookingRejectionNotification(ctx, booking.Customer.Email, booking.Customer.Name, booking.Vehicle.Description(), booking.ID, reason); err != nil {
		logger.Warn("failed to send rejection email", "booking_id", booking.ID, "error", err)
	}

	logger.Info("booking rejected", "booking_id", booking.ID, "admin", admin.Email, "reason", reason)
	return nil
}

// CompleteBooking records the vehicle-returned event and restocks the unit.
func (s *rentalService) CompleteBooking(ctx context.Context, adminEmail, bookingID string) error {
	ledgerMu.Lock()
	defer ledgerMu.Unlock()

	admin, err := s.userRepo.GetByEmail(ctx, adminEmail)
	if err != nil {
		return fmt.Errorf("failed to resolve actor: %w", err)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}

	if err := booking.Complete(admin); err != nil {
		return err
	}
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return err
	}
	if err := s.vehicleRepo.Update(ctx, booking.Vehicle); err != nil {
		return err
	}

	logger.Info("booking completed", "booking_id", booking.ID, "admin", admin.Email, "quantity", booking.Vehicle.Quantity)
	return nil
}

func (s *rentalService) GetBooking(ctx context.Context, actorEmail, bookingID string) (*domain.Booking, error) {
	actor, err := s.userRepo.GetByEmail(ctx, actorEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve actor: %w", err)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !actor.HasRole(domain.RoleAdmin) && !booking.Customer.EmailMatches(actor.Email) {
		return nil, domain.NewAuthorizationError("only the requesting customer or an admin may view this booking")
	}
	return booking, nil
}

func (s *rentalService) ListBookings(ctx context.Context, actorEmail string) ([]domain.Booking, error) {
	actor, err := s.userRepo.GetByEmail(ctx, actorEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve actor: %w", err)
	}

	if actor.HasRole(domain.RoleAdmin) {
		return s.bookingRepo.List(ctx)
	}
	return s.bookingRepo.ListByCustomer(ctx, actor.Email)
}

func (s *rentalService) notifyCustomer(ctx context.Context, booking *domain.Booking, title, message string) {
	note := &domain.Notification{
		ID:        uuid.NewString(),
		UserEmail: booking.Customer.Email,
		Title:     title,
		Message:   message,
		Attributes: map[string]string{
			"booking_id": booking.ID,
		},
		CreatedOn: time.Now(),
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		logger.Warn("failed to store notification", "booking_id", booking.ID, "error", err)
	}
}
