package memory

import (
	"context"
	"sort"

	"vehiclerental-backend/internal/domain"
)

type vehicleRepository struct {
	store *Store
}

func (r *vehicleRepository) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.vehicles[vehicle.ID]; exists {
		return domain.NewValidationError("vehicle %s already exists", vehicle.ID)
	}
	r.store.vehicles[vehicle.ID] = vehicle
	r.store.vehicleOrder = append(r.store.vehicleOrder, vehicle.ID)
	return nil
}

func (r *vehicleRepository) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	vehicle, ok := r.store.vehicles[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return vehicle, nil
}

func (r *vehicleRepository) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.vehicles[vehicle.ID]; !ok {
		return domain.ErrNotFound
	}
	r.store.vehicles[vehicle.ID] = vehicle
	return nil
}

func (r *vehicleRepository) List(ctx context.Context) ([]domain.Vehicle, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	vehicles := make([]domain.Vehicle, 0, len(r.store.vehicleOrder))
	for _, id := range r.store.vehicleOrder {
		vehicles = append(vehicles, *r.store.vehicles[id])
	}
	sort.SliceStable(vehicles, func(i, j int) bool {
		return vehicles[i].PricePerDay.LessThan(vehicles[j].PricePerDay)
	})
	return vehicles, nil
}
