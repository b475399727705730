package service

import (
	"context"
	"fmt"

	"vehiclerental-backend/internal/domain"
	"vehiclerental-backend/internal/logger"
	"vehiclerental-backend/internal/repository"
)

type catalogService struct {
	vehicleRepo repository.VehicleRepository
	userRepo    repository.UserRepository
}

func NewCatalogService(vehicleRepo repository.VehicleRepository, userRepo repository.UserRepository) CatalogService {
	return &catalogService{
		vehicleRepo: vehicleRepo,
		userRepo:    userRepo,
	}
}

func (s *catalogService) AddVehicle(ctx context.Context, actorEmail string, params AddVehicleParams) (*domain.Vehicle, error) {
	actor, err := s.userRepo.GetByEmail(ctx, actorEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve actor: %w", err)
	}
	if err := domain.RequireRole(actor, domain.RoleAdmin); err != nil {
		return nil, err
	}

	vehicle, err := domain.NewVehicle(
		params.ID,
		params.Brand,
		params.Model,
		params.Year,
		params.PricePerDay,
		params.Quantity,
		params.Category,
		params.Subtype,
	)
	if err != nil {
		return nil, err
	}

	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, err
	}

	logger.Info("vehicle added to catalog", "vehicle_id", vehicle.ID, "admin", actor.Email)
	return vehicle, nil
}

func (s *catalogService) GetVehicle(ctx context.Context, id string) (*domain.Vehicle, error) {
	return s.vehicleRepo.GetByID(ctx, id)
}

func (s *catalogService) ListVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	return s.vehicleRepo.List(ctx)
}

// AddQuantity takes the ledger mutex: the read-modify-write on quantity
// must not interleave with an approval renting the same vehicle.
func (s *catalogService) AddQuantity(ctx context.Context, actorEmail, vehicleID string, delta int) error {
	ledgerMu.Lock()
	defer ledgerMu.Unlock()

	actor, err := s.userRepo.GetByEmail(ctx, actorEmail)
	if err != nil {
		return fmt.Errorf("failed to resolve actor: %w", err)
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return err
	}

	// The role check lives on the vehicle mutation itself, so there is no
	// unprivileged path to the update.
	if err := vehicle.AddQuantity(delta, actor); err != nil {
		return err
	}

	if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
		return err
	}

	logger.Info("vehicle quantity updated", "vehicle_id", vehicle.ID, "delta", delta, "quantity", vehicle.Quantity, "admin", actor.Email)
	return nil
}
