package http

import (
	"vehiclerental-backend/internal/domain"
	"vehiclerental-backend/internal/utils"
)

// Money values cross the wire as fixed two-decimal strings; dates as
// yyyy-mm-dd.

type userResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type vehicleResponse struct {
	ID          string `json:"id"`
	Brand       string `json:"brand"`
	Model       string `json:"model"`
	Year        int    `json:"year"`
	PricePerDay string `json:"price_per_day"`
	Quantity    int    `json:"quantity"`
	Available   bool   `json:"available"`
	Category    string `json:"category"`
	Subtype     string `json:"subtype"`
	Description string `json:"description"`
}

type bookingResponse struct {
	ID              string          `json:"id"`
	Customer        userResponse    `json:"customer"`
	Vehicle         vehicleResponse `json:"vehicle"`
	RentalDate      string          `json:"rental_date"`
	ReturnDate      string          `json:"return_date"`
	Days            int             `json:"days"`
	TotalCost       string          `json:"total_cost"`
	IsPaid          bool            `json:"is_paid"`
	Status          string          `json:"status"`
	RejectionReason string          `json:"rejection_reason,omitempty"`
}

type paymentResponse struct {
	ID            string `json:"id"`
	BookingID     string `json:"booking_id"`
	CustomerEmail string `json:"customer_email"`
	Amount        string `json:"amount"`
	Date          string `json:"date"`
}

type notificationResponse struct {
	ID         string            `json:"id"`
	Title      string            `json:"title"`
	Message    string            `json:"message"`
	Attributes map[string]string `json:"attributes,omitempty"`
	Read       bool              `json:"read"`
	CreatedOn  string            `json:"created_on"`
}

func mapUser(u *domain.User) userResponse {
	return userResponse{
		Name:  u.Name,
		Email: u.Email,
		Role:  string(u.Role),
	}
}

func mapVehicle(v *domain.Vehicle) vehicleResponse {
	return vehicleResponse{
		ID:          v.ID,
		Brand:       v.Brand,
		Model:       v.Model,
		Year:        v.Year,
		PricePerDay: v.PricePerDay.StringFixed(2),
		Quantity:    v.Quantity,
		Available:   v.Available(),
		Category:    string(v.Category),
		Subtype:     v.Subtype,
		Description: v.Description(),
	}
}

func mapBooking(b *domain.Booking) bookingResponse {
	return bookingResponse{
		ID:              b.ID,
		Customer:        mapUser(b.Customer),
		Vehicle:         mapVehicle(b.Vehicle),
		RentalDate:      utils.FormatDate(b.RentalDate),
		ReturnDate:      utils.FormatDate(b.ReturnDate),
		Days:            b.Days(),
		TotalCost:       b.TotalCost.StringFixed(2),
		IsPaid:          b.IsPaid,
		Status:          string(b.Status),
		RejectionReason: b.RejectionReason,
	}
}

func mapBookings(bookings []domain.Booking) []bookingResponse {
	out := make([]bookingResponse, len(bookings))
	for i := range bookings {
		out[i] = mapBooking(&bookings[i])
	}
	return out
}

func mapPayment(p *domain.Payment) paymentResponse {
	return paymentResponse{
		ID:            p.ID,
		BookingID:     p.BookingID,
		CustomerEmail: p.Customer.Email,
		Amount:        p.Amount.StringFixed(2),
		Date:          utils.FormatDate(p.Date),
	}
}

func mapPayments(payments []domain.Payment) []paymentResponse {
	out := make([]paymentResponse, len(payments))
	for i := range payments {
		out[i] = mapPayment(&payments[i])
	}
	return out
}

func mapNotification(n *domain.Notification) notificationResponse {
	return notificationResponse{
		ID:         n.ID,
		Title:      n.Title,
		Message:    n.Message,
		Attributes: n.Attributes,
		Read:       n.Read,
		CreatedOn:  n.CreatedOn.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

func mapNotifications(notes []domain.Notification) []notificationResponse {
	out := make([]notificationResponse, len(notes))
	for i := range notes {
		out[i] = mapNotification(&notes[i])
	}
	return out
}
