package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"vehiclerental-backend/internal/security"
	"vehiclerental-backend/internal/service"
)

// Services bundles everything the router needs
type Services struct {
	Auth         service.AuthService
	Catalog      service.CatalogService
	Rental       service.RentalService
	Payment      service.PaymentService
	Notification service.NotificationService
}

// NewRouter builds the API router with auth middleware applied to every
// route. Per-route security levels live in the config package.
func NewRouter(svcs Services, tokenManager security.TokenManager) *mux.Router {
	authHandler := NewAuthHandler(svcs.Auth)
	vehicleHandler := NewVehicleHandler(svcs.Catalog)
	bookingHandler := NewBookingHandler(svcs.Rental)
	paymentHandler := NewPaymentHandler(svcs.Payment)
	notificationHandler := NewNotificationHandler(svcs.Notification)

	router := mux.NewRouter()
	router.Use(NewAuthMiddleware(tokenManager).Handler)

	api := router.PathPrefix("/api/v1").Subrouter()

	// Auth
	api.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", authHandler.Refresh).Methods(http.MethodPost)

	// Catalog
	api.HandleFunc("/vehicles", vehicleHandler.ListVehicles).Methods(http.MethodGet)
	api.HandleFunc("/vehicles", vehicleHandler.AddVehicle).Methods(http.MethodPost)
	api.HandleFunc("/vehicles/{id}", vehicleHandler.GetVehicle).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/{id}/quantity", vehicleHandler.AddQuantity).Methods(http.MethodPost)

	// Bookings
	api.HandleFunc("/bookings", bookingHandler.RequestBooking).Methods(http.MethodPost)
	api.HandleFunc("/bookings", bookingHandler.ListBookings).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{id}", bookingHandler.GetBooking).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{id}/approve", bookingHandler.ApproveBooking).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{id}/reject", bookingHandler.RejectBooking).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{id}/complete", bookingHandler.CompleteBooking).Methods(http.MethodPost)

	// Payments
	api.HandleFunc("/payments", paymentHandler.ListPayments).Methods(http.MethodGet)
	api.HandleFunc("/payments/{id}", paymentHandler.GetPayment).Methods(http.MethodGet)

	// Notifications
	api.HandleFunc("/notifications", notificationHandler.GetNotifications).Methods(http.MethodGet)
	api.HandleFunc("/notifications/{id}/read", notificationHandler.MarkAsRead).Methods(http.MethodPost)

	return router
}
