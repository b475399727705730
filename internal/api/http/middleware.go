package http

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"vehiclerental-backend/internal/config"
	"vehiclerental-backend/internal/security"
)

type AuthMiddleware struct {
	tokenManager security.TokenManager
}

func NewAuthMiddleware(tm security.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokenManager: tm}
}

// Handler returns a mux middleware that authenticates requests according
// to the per-route security level.
func (m *AuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		level := config.GetSecurityLevel(routeKey(r))

		// Public endpoint - skip auth
		if level == config.SecurityPublic {
			next.ServeHTTP(w, r)
			return
		}

		token, ok := extractToken(r)
		if !ok {
			respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "authorization token is not provided"})
			return
		}

		claims, err := m.tokenManager.ValidateToken(token)
		if err != nil {
			respondError(w, err)
			return
		}

		if err := checkSecurityLevel(level, claims); err != nil {
			respondError(w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
	})
}

// routeKey builds the security config lookup key from the matched route
func routeKey(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return r.Method + " " + r.URL.Path
	}
	template, err := route.GetPathTemplate()
	if err != nil {
		return r.Method + " " + r.URL.Path
	}
	return r.Method + " " + template
}

func extractToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	// Remove Bearer prefix if present
	if len(authHeader) > 7 && strings.EqualFold(authHeader[0:7], "Bearer ") {
		return authHeader[7:], true
	}
	return authHeader, true
}

func checkSecurityLevel(level config.SecurityLevel, claims *security.UserClaims) error {
	switch level {
	case config.SecurityAccess:
		if claims.Type != security.TokenTypeAccess {
			return security.ErrWrongTokenType
		}
	case config.SecurityRefresh:
		if claims.Type != security.TokenTypeRefresh {
			return security.ErrWrongTokenType
		}
	}
	return nil
}
