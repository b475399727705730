package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Payment is the receipt created when a booking is approved. It is
// immutable except through the setters below, which re-run validation.
type Payment struct {
	ID        string          `json:"id"` // assigned by the repository on create: P1, P2, ...
	BookingID string          `json:"booking_id"`
	Customer  *User           `json:"customer"`
	Amount    decimal.Decimal `json:"amount"`
	Date      time.Time       `json:"date"`
}

func NewPayment(bookingID string, customer *User, amount decimal.Decimal, date time.Time) (*Payment, error) {
	if strings.TrimSpace(bookingID) == "" {
		return nil, NewValidationError("booking id cannot be empty")
	}
	if customer == nil {
		return nil, NewValidationError("customer cannot be nil")
	}
	if err := validateAmount(amount); err != nil {
		return nil, err
	}
	if err := validatePaymentDate(date); err != nil {
		return nil, err
	}

	return &Payment{
		BookingID: bookingID,
		Customer:  customer,
		Amount:    amount,
		Date:      date,
	}, nil
}

// SetAmount replaces the amount after re-running the constructor checks.
func (p *Payment) SetAmount(amount decimal.Decimal) error {
	if err := validateAmount(amount); err != nil {
		return err
	}
	p.Amount = amount
	return nil
}

// SetDate replaces the payment date after re-running the constructor checks.
func (p *Payment) SetDate(date time.Time) error {
	if err := validatePaymentDate(date); err != nil {
		return err
	}
	p.Date = date
	return nil
}

func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return NewValidationError("payment amount must be positive")
	}
	return nil
}

func validatePaymentDate(date time.Time) error {
	if date.IsZero() {
		return NewValidationError("payment date is required")
	}
	if date.After(time.Now()) {
		return NewValidationError("payment date cannot be in the future")
	}
	return nil
}
