package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"vehiclerental-backend/internal/domain"
)

func TestCatalogService_AddVehicle(t *testing.T) {
	admin, customer := testUsers()

	params := AddVehicleParams{
		ID:          "C001",
		Brand:       "Toyota",
		Model:       "Corolla",
		Year:        2020,
		PricePerDay: decimal.NewFromInt(50),
		Quantity:    3,
		Category:    domain.VehicleCategoryCar,
		Subtype:     "Sedan",
	}

	t.Run("admin adds a vehicle", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepo)
		userRepo := new(MockUserRepo)
		svc := NewCatalogService(vehicleRepo, userRepo)
		ctx := context.Background()

		userRepo.On("GetByEmail", ctx, admin.Email).Return(admin, nil)
		vehicleRepo.On("Create", ctx, mock.AnythingOfType("*domain.Vehicle")).Return(nil)

		vehicle, err := svc.AddVehicle(ctx, admin.Email, params)
		require.NoError(t, err)
		assert.Equal(t, "C001", vehicle.ID)
		assert.Equal(t, 3, vehicle.Quantity)
		vehicleRepo.AssertExpectations(t)
	})

	t.Run("customer is refused", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepo)
		userRepo := new(MockUserRepo)
		svc := NewCatalogService(vehicleRepo, userRepo)
		ctx := context.Background()

		userRepo.On("GetByEmail", ctx, customer.Email).Return(customer, nil)

		_, err := svc.AddVehicle(ctx, customer.Email, params)
		var authErr *domain.AuthorizationError
		assert.ErrorAs(t, err, &authErr)
		vehicleRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("invalid year never reaches the repository", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepo)
		userRepo := new(MockUserRepo)
		svc := NewCatalogService(vehicleRepo, userRepo)
		ctx := context.Background()

		bad := params
		bad.Year = 1700

		userRepo.On("GetByEmail", ctx, admin.Email).Return(admin, nil)

		_, err := svc.AddVehicle(ctx, admin.Email, bad)
		var vErr *domain.ValidationError
		assert.ErrorAs(t, err, &vErr)
		vehicleRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestCatalogService_AddQuantity(t *testing.T) {
	admin, customer := testUsers()

	t.Run("admin restocks", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepo)
		userRepo := new(MockUserRepo)
		svc := NewCatalogService(vehicleRepo, userRepo)
		vehicle := testVehicle(t, 3)
		ctx := context.Background()

		userRepo.On("GetByEmail", ctx, admin.Email).Return(admin, nil)
		vehicleRepo.On("GetByID", ctx, "C001").Return(vehicle, nil)
		vehicleRepo.On("Update", ctx, vehicle).Return(nil)

		require.NoError(t, svc.AddQuantity(ctx, admin.Email, "C001", 5))
		assert.Equal(t, 8, vehicle.Quantity)
	})

	t.Run("customer is refused before any update", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepo)
		userRepo := new(MockUserRepo)
		svc := NewCatalogService(vehicleRepo, userRepo)
		vehicle := testVehicle(t, 3)
		ctx := context.Background()

		userRepo.On("GetByEmail", ctx, customer.Email).Return(customer, nil)
		vehicleRepo.On("GetByID", ctx, "C001").Return(vehicle, nil)

		err := svc.AddQuantity(ctx, customer.Email, "C001", 5)
		var authErr *domain.AuthorizationError
		assert.ErrorAs(t, err, &authErr)
		assert.Equal(t, 3, vehicle.Quantity)
		vehicleRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("unknown vehicle", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepo)
		userRepo := new(MockUserRepo)
		svc := NewCatalogService(vehicleRepo, userRepo)
		ctx := context.Background()

		userRepo.On("GetByEmail", ctx, admin.Email).Return(admin, nil)
		vehicleRepo.On("GetByID", ctx, "nope").Return(nil, domain.ErrNotFound)

		err := svc.AddQuantity(ctx, admin.Email, "nope", 5)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
