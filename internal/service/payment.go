package service

import (
	"context"
	"fmt"

	"vehiclerental-backend/internal/domain"
	"vehiclerental-backend/internal/repository"
)

type paymentService struct {
	paymentRepo repository.PaymentRepository
	userRepo    repository.UserRepository
}

func NewPaymentService(paymentRepo repository.PaymentRepository, userRepo repository.UserRepository) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		userRepo:    userRepo,
	}
}

// ListPayments returns every payment for admins and the caller's own
// payments for customers.
func (s *paymentService) ListPayments(ctx context.Context, actorEmail string) ([]domain.Payment, error) {
	actor, err := s.userRepo.GetByEmail(ctx, actorEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve actor: %w", err)
	}

	if actor.HasRole(domain.RoleAdmin) {
		return s.paymentRepo.List(ctx)
	}
	return s.paymentRepo.ListByCustomer(ctx, actor.Email)
}

func (s *paymentService) GetPayment(ctx context.Context, actorEmail, paymentID string) (*domain.Payment, error) {
	actor, err := s.userRepo.GetByEmail(ctx, actorEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve actor: %w", err)
	}

	payment, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	if !actor.HasRole(domain.RoleAdmin) && !payment.Customer.EmailMatches(actor.Email) {
		return nil, domain.NewAuthorizationError("only the paying customer or an admin may view this payment")
	}
	return payment, nil
}
