package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"vehiclerental-backend/internal/domain"
)

var (
	testRentalDate = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	testReturnDate = time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC)
)

func testUsers() (*domain.User, *domain.User) {
	admin := &domain.User{Name: "Alice", Email: "alice@rental.test", Role: domain.RoleAdmin}
	customer := &domain.User{Name: "Bob", Email: "bob@rental.test", Role: domain.RoleCustomer}
	return admin, customer
}

func testVehicle(t *testing.T, quantity int) *domain.Vehicle {
	t.Helper()
	v, err := domain.NewVehicle("C001", "Toyota", "Corolla", 2020, decimal.NewFromInt(50), quantity, domain.VehicleCategoryCar, "Sedan")
	require.NoError(t, err)
	return v
}

func newRentalFixture() (*MockBookingRepo, *MockVehicleRepo, *MockUserRepo, *MockPaymentRepo, *MockNotificationRepo, *MockEmailService, RentalService) {
	bookingRepo := new(MockBookingRepo)
	vehicleRepo := new(MockVehicleRepo)
	userRepo := new(MockUserRepo)
	paymentRepo := new(MockPaymentRepo)
	noteRepo := new(MockNotificationRepo)
	emailSvc := new(MockEmailService)
	svc := NewRentalService(bookingRepo, vehicleRepo, userRepo, paymentRepo, noteRepo, emailSvc)
	return bookingRepo, vehicleRepo, userRepo, paymentRepo, noteRepo, emailSvc, svc
}

func TestRentalService_RequestBooking(t *testing.T) {
	_, customer := testUsers()

	t.Run("success", func(t *testing.T) {
		bookingRepo, vehicleRepo, userRepo, _, _, _, svc := newRentalFixture()
		vehicle := testVehicle(t, 3)
		ctx := context.Background()

		userRepo.On("GetByEmail", ctx, customer.Email).Return(customer, nil)
		vehicleRepo.On("GetByID", ctx, "C001").Return(vehicle, nil)
		bookingRepo.On("Create", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)

		booking, err := svc.RequestBooking(ctx, customer.Email, "C001", testRentalDate, testReturnDate)
		require.NoError(t, err)
		assert.Equal(t, domain.BookingStatusPending, booking.Status)
		assert.True(t, decimal.NewFromInt(150).Equal(booking.TotalCost))
		bookingRepo.AssertExpectations(t)
	})

	t.Run("invalid dates never reach the repository", func(t *testing.T) {
		bookingRepo, vehicleRepo, userRepo, _, _, _, svc := newRentalFixture()
		vehicle := testVehicle(t, 3)
		ctx := context.Background()

		userRepo.On("GetByEmail", ctx, customer.Email).Return(customer, nil)
		vehicleRepo.On("GetByID", ctx, "C001").Return(vehicle, nil)

		booking, err := svc.RequestBooking(ctx, customer.Email, "C001", testReturnDate, testRentalDate)
		assert.Nil(t, booking)
		var vErr *domain.ValidationError
		assert.ErrorAs(t, err, &vErr)
		bookingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unknown vehicle", func(t *testing.T) {
		_, vehicleRepo, userRepo, _, _, _, svc := newRentalFixture()
		ctx := context.Background()

		userRepo.On("GetByEmail", ctx, customer.Email).Return(customer, nil)
		vehicleRepo.On("GetByID", ctx, "nope").Return(nil, domain.ErrNotFound)

		_, err := svc.RequestBooking(ctx, customer.Email, "nope", testRentalDate, testReturnDate)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestRentalService_ApproveBooking(t *testing.T) {
	admin, customer := testUsers()

	t.Run("success creates payment for frozen cost", func(t *testing.T) {
		bookingRepo, vehicleRepo, userRepo, paymentRepo, noteRepo, emailSvc, svc := newRentalFixture()
		vehicle := testVehicle(t, 3)
		booking, err := domain.NewBooking(customer, vehicle, testRentalDate, testReturnDate)
		require.NoError(t, err)
		booking.ID = "B0"
		ctx := context.Background()

		userRepo.On("GetByEmail", ctx, admin.Email).Return(admin, nil)
		bookingRepo.On("GetByID", ctx, "B0").Return(booking, nil)
		bookingRepo.On("Update", ctx, booking).Return(nil)
		vehicleRepo.On("Update", ctx, vehicle).Return(nil)
		paymentRepo.On("Create", ctx, mock.AnythingOfType("*domain.Payment")).Return(nil)
		noteRepo.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).Return(nil)
		emailSvc.On("SendBookingApprovalNotification", ctx, customer.Email, customer.Name, vehicle.Description(), "B0", mock.Anything).Return(nil)

		payment, err := svc.ApproveBooking(ctx, admin.Email, "B0")
		require.NoError(t, err)
		assert.Equal(t, "B0", payment.BookingID)
		assert.True(t, decimal.NewFromInt(150).Equal(payment.Amount))
		assert.Equal(t, domain.BookingStatusApproved, booking.Status)
		assert.True(t, booking.IsPaid)
		assert.Equal(t, 2, vehicle.Quantity)
		paymentRepo.AssertExpectations(t)
	})

	t.Run("customer cannot approve", func(t *testing.T) {
		bookingRepo, _, userRepo, paymentRepo, _, _, svc := newRentalFixture()
		vehicle := testVehicle(t, 3)
		booking, err := domain.NewBooking(customer, vehicle, testRentalDate, testReturnDate)
		require.NoError(t, err)
		booking.ID = "B0"
		ctx := context.Background()

		userRepo.On("GetByEmail", ctx, customer.Email).Return(customer, nil)
		bookingRepo.On("GetByID", ctx, "B0").Return(booking, nil)

		_, err = svc.ApproveBooking(ctx, customer.Email, "B0")
		var authErr *domain.AuthorizationError
		assert.ErrorAs(t, err, &authErr)
		assert.Equal(t, domain.BookingStatusPending, booking.Status)
		assert.Equal(t, 3, vehicle.Quantity)
		paymentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unavailable vehicle blocks approval", func(t *testing.T) {
		bookingRepo, _, userRepo, paymentRepo, _, _, svc := newRentalFixture()
		vehicle := testVehicle(t, 0)
		booking, err := domain.NewBooking(customer, vehicle, testRentalDate, testReturnDate)
		require.NoError(t, err)
		booking.ID = "B0"
		ctx := context.Background()

		userRepo.On("GetByEmail", ctx, admin.Email).Return(admin, nil)
		bookingRepo.On("GetByID", ctx, "B0").Return(booking, nil)

		_, err = svc.ApproveBooking(ctx, admin.Email, "B0")
		var stateErr *domain.StateError
		assert.ErrorAs(t, err, &stateErr)
		assert.Equal(t, domain.BookingStatusPending, booking.Status)
		assert.Equal(t, 0, vehicle.Quantity)
		paymentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestRentalService_RejectBooking(t *testing.T) {
	admin, customer := testUsers()

	bookingRepo, _, userRepo, _, noteRepo, emailSvc, svc := newRentalFixture()
	vehicle := testVehicle(t, 3)
	booking, err := domain.NewBooking(customer, vehicle, testRentalDate, testReturnDate)
	require.NoError(t, err)
	booking.ID = "B0"
	ctx := context.Background()

	userRepo.On("GetByEmail", ctx, admin.Email).Return(admin, nil)
	bookingRepo.On("GetByID", ctx, "B0").Return(booking, nil)
	bookingRepo.On("Update", ctx, booking).Return(nil)
	noteRepo.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).Return(nil)
	emailSvc.On("SendBookingRejectionNotification", ctx, customer.Email, customer.Name, vehicle.Description(), "B0", "no insurance").Return(nil)

	require.NoError(t, svc.RejectBooking(ctx, admin.Email, "B0", "no insurance"))
	assert.Equal(t, domain.BookingStatusRejected, booking.Status)
	assert.Equal(t, "no insurance", booking.RejectionReason)
	assert.Equal(t, 3, vehicle.Quantity)
}

func TestRentalService_CompleteBooking(t *testing.T) {
	admin, customer := testUsers()

	bookingRepo, vehicleRepo, userRepo, _, _, _, svc := newRentalFixture()
	vehicle := testVehicle(t, 3)
	booking, err := domain.NewBooking(customer, vehicle, testRentalDate, testReturnDate)
	require.NoError(t, err)
	booking.ID = "B0"
	require.NoError(t, booking.Approve(admin))
	require.Equal(t, 2, vehicle.Quantity)
	ctx := context.Background()

	userRepo.On("GetByEmail", ctx, admin.Email).Return(admin, nil)
	bookingRepo.On("GetByID", ctx, "B0").Return(booking, nil)
	bookingRepo.On("Update", ctx, booking).Return(nil)
	vehicleRepo.On("Update", ctx, vehicle).Return(nil)

	require.NoError(t, svc.CompleteBooking(ctx, admin.Email, "B0"))
	assert.Equal(t, domain.BookingStatusCompleted, booking.Status)
	assert.Equal(t, 3, vehicle.Quantity)
}

func TestRentalService_GetBooking_Authorization(t *testing.T) {
	admin, customer := testUsers()
	stranger := &domain.User{Name: "Eve", Email: "eve@rental.test", Role: domain.RoleCustomer}

	bookingRepo, _, userRepo, _, _, _, svc := newRentalFixture()
	vehicle := testVehicle(t, 3)
	booking, err := domain.NewBooking(customer, vehicle, testRentalDate, testReturnDate)
	require.NoError(t, err)
	booking.ID = "B0"
	ctx := context.Background()

	userRepo.On("GetByEmail", ctx, admin.Email).Return(admin, nil)
	userRepo.On("GetByEmail", ctx, customer.Email).Return(customer, nil)
	userRepo.On("GetByEmail", ctx, stranger.Email).Return(stranger, nil)
	bookingRepo.On("GetByID", ctx, "B0").Return(booking, nil)

	_, err = svc.GetBooking(ctx, admin.Email, "B0")
	assert.NoError(t, err)
	_, err = svc.GetBooking(ctx, customer.Email, "B0")
	assert.NoError(t, err)

	_, err = svc.GetBooking(ctx, stranger.Email, "B0")
	var authErr *domain.AuthorizationError
	assert.ErrorAs(t, err, &authErr)
}
