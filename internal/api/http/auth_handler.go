package http

import (
	"net/http"

	"vehiclerental-backend/internal/domain"
	"vehiclerental-backend/internal/service"
)

type AuthHandler struct {
	authSvc service.AuthService
}

func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	// Self-signup is always a customer account; admins are seeded or
	// promoted out of band.
	role := domain.RoleCustomer
	if req.Role != "" && req.Role != string(domain.RoleCustomer) {
		respondError(w, domain.NewValidationError("self-registration only supports the %s role", domain.RoleCustomer))
		return
	}

	user, err := h.authSvc.Register(r.Context(), req.Name, req.Email, req.Password, role)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, mapUser(user))
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	access, refresh, err := h.authSvc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tokenPairResponse{AccessToken: access, RefreshToken: refresh})
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	// The middleware already validated the refresh token; pass the raw
	// token through the service so rotation stays in one place.
	token, ok := extractToken(r)
	if !ok {
		respondError(w, ErrNoActor)
		return
	}

	access, refresh, err := h.authSvc.RefreshToken(r.Context(), token)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tokenPairResponse{AccessToken: access, RefreshToken: refresh})
}
