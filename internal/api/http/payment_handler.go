package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"vehiclerental-backend/internal/service"
)

type PaymentHandler struct {
	paymentSvc service.PaymentService
}

func NewPaymentHandler(paymentSvc service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentSvc: paymentSvc}
}

// ListPayments returns all payments for admins and the caller's own
// payments for customers.
func (h *PaymentHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	actorEmail, err := ActorEmailFromContext(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	payments, err := h.paymentSvc.ListPayments(r.Context(), actorEmail)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, mapPayments(payments))
}

func (h *PaymentHandler) GetPayment(w http.ResponseWriter, r *http.Request) {
	actorEmail, err := ActorEmailFromContext(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	payment, err := h.paymentSvc.GetPayment(r.Context(), actorEmail, mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, mapPayment(payment))
}
