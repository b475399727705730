package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"vehiclerental-backend/internal/domain"
	"vehiclerental-backend/internal/logger"
	"vehiclerental-backend/internal/security"
	"vehiclerental-backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

// respondError maps domain errors onto HTTP status codes. Unrecognized
// errors become a 500 without leaking internals to the client.
func respondError(w http.ResponseWriter, err error) {
	var (
		validationErr *domain.ValidationError
		authErr       *domain.AuthorizationError
		stateErr      *domain.StateError
	)

	switch {
	case errors.As(err, &validationErr):
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: validationErr.Error()})
	case errors.As(err, &authErr):
		respondJSON(w, http.StatusForbidden, errorResponse{Error: authErr.Error()})
	case errors.As(err, &stateErr):
		respondJSON(w, http.StatusConflict, errorResponse{Error: stateErr.Error()})
	case errors.Is(err, domain.ErrNotFound):
		respondJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
	case errors.Is(err, service.ErrInvalidCredentials):
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: service.ErrInvalidCredentials.Error()})
	case errors.Is(err, security.ErrInvalidToken),
		errors.Is(err, security.ErrExpiredToken),
		errors.Is(err, security.ErrWrongTokenType),
		errors.Is(err, ErrNoActor):
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
	default:
		logger.Error("Unhandled error in request", "error", err)
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func invalidDate(field string, err error) error {
	return domain.NewValidationError("invalid %s: %v", field, err)
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.NewValidationError("invalid request body: %v", err)
	}
	return nil
}
