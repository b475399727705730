package memory

import (
	"context"
	"fmt"

	"vehiclerental-backend/internal/domain"
)

type paymentRepository struct {
	store *Store
}

// Create assigns the next payment ID under the store lock. The counter is
// incremented before use, so the first payment is P1.
func (r *paymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.paymentSeq++
	payment.ID = fmt.Sprintf("P%d", r.store.paymentSeq)
	r.store.payments[payment.ID] = payment
	r.store.paymentOrder = append(r.store.paymentOrder, payment.ID)
	return nil
}

func (r *paymentRepository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	payment, ok := r.store.payments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return payment, nil
}

func (r *paymentRepository) List(ctx context.Context) ([]domain.Payment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	payments := make([]domain.Payment, 0, len(r.store.paymentOrder))
	for _, id := range r.store.paymentOrder {
		payments = append(payments, *r.store.payments[id])
	}
	return payments, nil
}

func (r *paymentRepository) ListByCustomer(ctx context.Context, email string) ([]domain.Payment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var payments []domain.Payment
	for _, id := range r.store.paymentOrder {
		p := r.store.payments[id]
		if p.Customer.EmailMatches(email) {
			payments = append(payments, *p)
		}
	}
	return payments, nil
}
