package memory

import (
	"context"
	"fmt"
	"time"

	"vehiclerental-backend/internal/domain"
)

type bookingRepository struct {
	store *Store
}

// Create assigns the next booking ID under the store lock. Numbers are
// never reused; only successfully constructed bookings reach this point,
// so a failed request does not consume one.
func (r *bookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	booking.ID = fmt.Sprintf("B%d", r.store.bookingSeq)
	r.store.bookingSeq++
	r.store.bookings[booking.ID] = booking
	r.store.bookingOrder = append(r.store.bookingOrder, booking.ID)
	return nil
}

func (r *bookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	booking, ok := r.store.bookings[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return booking, nil
}

func (r *bookingRepository) Update(ctx context.Context, booking *domain.Booking) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.bookings[booking.ID]; !ok {
		return domain.ErrNotFound
	}
	r.store.bookings[booking.ID] = booking
	return nil
}

func (r *bookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	bookings := make([]domain.Booking, 0, len(r.store.bookingOrder))
	for _, id := range r.store.bookingOrder {
		bookings = append(bookings, *r.store.bookings[id])
	}
	return bookings, nil
}

func (r *bookingRepository) ListByCustomer(ctx context.Context, email string) ([]domain.Booking, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var bookings []domain.Booking
	for _, id := range r.store.bookingOrder {
		b := r.store.bookings[id]
		if b.Customer.EmailMatches(email) {
			bookings = append(bookings, *b)
		}
	}
	return bookings, nil
}

func (r *bookingRepository) ListApprovedDueBefore(ctx context.Context, cutoff time.Time) ([]domain.Booking, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var bookings []domain.Booking
	for _, id := range r.store.bookingOrder {
		b := r.store.bookings[id]
		if b.Status == domain.BookingStatusApproved && b.ReturnDate.Before(cutoff) {
			bookings = append(bookings, *b)
		}
	}
	return bookings, nil
}
