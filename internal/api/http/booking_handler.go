package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"vehiclerental-backend/internal/service"
	"vehiclerental-backend/internal/utils"
)

type BookingHandler struct {
	rentalSvc service.RentalService
}

func NewBookingHandler(rentalSvc service.RentalService) *BookingHandler {
	return &BookingHandler{rentalSvc: rentalSvc}
}

type requestBookingRequest struct {
	VehicleID  string `json:"vehicle_id"`
	RentalDate string `json:"rental_date"`
	ReturnDate string `json:"return_date"`
}

type rejectBookingRequest struct {
	Reason string `json:"reason"`
}

func (h *BookingHandler) RequestBooking(w http.ResponseWriter, r *http.Request) {
	actorEmail, err := ActorEmailFromContext(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	var req requestBookingRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	rentalDate, err := utils.ParseDate(req.RentalDate)
	if err != nil {
		respondError(w, invalidDate("rental_date", err))
		return
	}
	returnDate, err := utils.ParseDate(req.ReturnDate)
	if err != nil {
		respondError(w, invalidDate("return_date", err))
		return
	}

	booking, err := h.rentalSvc.RequestBooking(r.Context(), actorEmail, req.VehicleID, rentalDate, returnDate)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, mapBooking(booking))
}

func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	actorEmail, err := ActorEmailFromContext(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	booking, err := h.rentalSvc.GetBooking(r.Context(), actorEmail, mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, mapBooking(booking))
}

// ListBookings returns all bookings for admins and the caller's own
// bookings for customers.
func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	actorEmail, err := ActorEmailFromContext(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	bookings, err := h.rentalSvc.ListBookings(r.Context(), actorEmail)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, mapBookings(bookings))
}

func (h *BookingHandler) ApproveBooking(w http.ResponseWriter, r *http.Request) {
	actorEmail, err := ActorEmailFromContext(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	payment, err := h.rentalSvc.ApproveBooking(r.Context(), actorEmail, mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, mapPayment(payment))
}

func (h *BookingHandler) RejectBooking(w http.ResponseWriter, r *http.Request) {
	actorEmail, err := ActorEmailFromContext(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	var req rejectBookingRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	bookingID := mux.Vars(r)["id"]
	if err := h.rentalSvc.RejectBooking(r.Context(), actorEmail, bookingID, req.Reason); err != nil {
		respondError(w, err)
		return
	}

	booking, err := h.rentalSvc.GetBooking(r.Context(), actorEmail, bookingID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, mapBooking(booking))
}

func (h *BookingHandler) CompleteBooking(w http.ResponseWriter, r *http.Request) {
	actorEmail, err := ActorEmailFromContext(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	bookingID := mux.Vars(r)["id"]
	if err := h.rentalSvc.CompleteBooking(r.Context(), actorEmail, bookingID); err != nil {
		respondError(w, err)
		return
	}

	booking, err := h.rentalSvc.GetBooking(r.Context(), actorEmail, bookingID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, mapBooking(booking))
}
