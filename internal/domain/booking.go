package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusApproved  BookingStatus = "APPROVED"
	BookingStatusRejected  BookingStatus = "REJECTED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
)

// Booking ties a customer, a vehicle and a date range to a status.
// The total cost is a price snapshot taken at request time; later price
// changes on the vehicle never alter an existing booking's cost.
type Booking struct {
	ID              string          `json:"id"` // assigned by the repository on create: B0, B1, ...
	Customer        *User           `json:"customer"`
	Vehicle         *Vehicle        `json:"vehicle"`
	RentalDate      time.Time       `json:"rental_date"`
	ReturnDate      time.Time       `json:"return_date"`
	TotalCost       decimal.Decimal `json:"total_cost"`
	IsPaid          bool            `json:"is_paid"`
	Status          BookingStatus   `json:"status"`
	RejectionReason string          `json:"rejection_reason,omitempty"`
	CreatedOn       time.Time       `json:"created_on"`
}

// NewBooking builds a pending booking request. The date invariant
// (return >= rental) is enforced here and never revisited.
func NewBooking(customer *User, vehicle *Vehicle, rentalDate, returnDate time.Time) (*Booking, error) {
	if customer == nil {
		return nil, NewValidationError("customer cannot be nil")
	}
	if vehicle == nil {
		return nil, NewValidationError("vehicle cannot be nil")
	}
	if rentalDate.IsZero() || returnDate.IsZero() {
		return nil, NewValidationError("rental and return dates are required")
	}
	if returnDate.Before(rentalDate) {
		return nil, NewValidationError("return date cannot be before rental date")
	}

	return &Booking{
		Customer:   customer,
		Vehicle:    vehicle,
		RentalDate: rentalDate,
		ReturnDate: returnDate,
		TotalCost:  vehicle.RentalPrice(DaysBetween(rentalDate, returnDate)),
		IsPaid:     false,
		Status:     BookingStatusPending,
		CreatedOn:  time.Now(),
	}, nil
}

// Days returns the billed rental duration.
func (b *Booking) Days() int {
	return DaysBetween(b.RentalDate, b.ReturnDate)
}

// CanApprove checks the actor and state preconditions for approval without
// applying the transition. Authorization and state failures outrank any
// later validation, so callers run this before building the payment.
func (b *Booking) CanApprove(actor *User) error {
	if err := RequireRole(actor, RoleAdmin); err != nil {
		return err
	}
	if b.Status != BookingStatusPending {
		return NewStateError("booking is not pending, current status: %s", b.Status)
	}
	return nil
}

// Approve moves a pending booking to APPROVED, marks it paid and takes one
// unit out of the vehicle's stock. The status transition and the decrement
// happen together or not at all. Availability is re-checked here because
// other approvals may have drained the stock since the request was made.
func (b *Booking) Approve(actor *User) error {
	if err := b.CanApprove(actor); err != nil {
		return err
	}
	if !b.Vehicle.RentOne() {
		return NewStateError("vehicle %s is no longer available", b.Vehicle.ID)
	}
	b.Status = BookingStatusApproved
	b.IsPaid = true
	return nil
}

// Reject moves a pending booking to REJECTED. The reason is a display-only
// annotation. No unit was reserved at request time, so stock is untouched.
func (b *Booking) Reject(actor *User, reason string) error {
	if err := RequireRole(actor, RoleAdmin); err != nil {
		return err
	}
	if b.Status != BookingStatusPending {
		return NewStateError("booking is not pending, current status: %s", b.Status)
	}
	b.Status = BookingStatusRejected
	b.RejectionReason = reason
	return nil
}

// Complete records the vehicle-returned event: the booking becomes
// COMPLETED and the unit goes back into stock, as one operation.
func (b *Booking) Complete(actor *User) error {
	if err := RequireRole(actor, RoleAdmin); err != nil {
		return err
	}
	if b.Status != BookingStatusApproved {
		return NewStateError("booking is not approved, current status: %s", b.Status)
	}
	b.Vehicle.ReturnOne()
	b.Status = BookingStatusCompleted
	return nil
}

// DaysBetween counts whole days from the rental date up to, but not
// including, the return date. Same-day rental and return is zero days.
func DaysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
