package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"vehiclerental-backend/internal/service"
)

type NotificationHandler struct {
	noteSvc service.NotificationService
}

func NewNotificationHandler(noteSvc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{noteSvc: noteSvc}
}

// GetNotifications returns the caller's notifications, newest first.
// Clients poll this endpoint; there is no push channel.
func (h *NotificationHandler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	actorEmail, err := ActorEmailFromContext(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	notes, err := h.noteSvc.GetNotifications(r.Context(), actorEmail)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, mapNotifications(notes))
}

func (h *NotificationHandler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	actorEmail, err := ActorEmailFromContext(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.noteSvc.MarkAsRead(r.Context(), actorEmail, mux.Vars(r)["id"]); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
