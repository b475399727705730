// Package memory holds all state in process memory. The rental core is
// specified without durable persistence; the store is the single place
// that owns the data maps, the booking/payment sequence counters and the
// lock that keeps them consistent under concurrent API calls.
package memory

import (
	"sync"

	"vehiclerental-backend/internal/domain"
	"vehiclerental-backend/internal/repository"
)

type Store struct {
	mu sync.Mutex

	users         map[string]*domain.User // keyed by lowercased email
	vehicles      map[string]*domain.Vehicle
	vehicleOrder  []string
	bookings      map[string]*domain.Booking
	bookingOrder  []string
	bookingSeq    int // next booking number, first ID is B0
	payments      map[string]*domain.Payment
	paymentOrder  []string
	paymentSeq    int // incremented before use, first ID is P1
	notifications []*domain.Notification

	UserRepository         repository.UserRepository
	VehicleRepository      repository.VehicleRepository
	BookingRepository      repository.BookingRepository
	PaymentRepository      repository.PaymentRepository
	NotificationRepository repository.NotificationRepository
}

// NewStore creates an empty store. Sequence counters start fresh, so a new
// store per test gives deterministic IDs.
func NewStore() *Store {
	s := &Store{
		users:    make(map[string]*domain.User),
		vehicles: make(map[string]*domain.Vehicle),
		bookings: make(map[string]*domain.Booking),
		payments: make(map[string]*domain.Payment),
	}
	s.UserRepository = &userRepository{store: s}
	s.VehicleRepository = &vehicleRepository{store: s}
	s.BookingRepository = &bookingRepository{store: s}
	s.PaymentRepository = &paymentRepository{store: s}
	s.NotificationRepository = &notificationRepository{store: s}
	return s
}
