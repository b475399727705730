package http

import (
	"context"
	"errors"

	"vehiclerental-backend/internal/security"
)

type contextKey string

const claimsContextKey contextKey = "user-claims"

// ErrNoActor is returned when a handler needs an authenticated caller but
// the request reached it without claims in context.
var ErrNoActor = errors.New("no authenticated user in request context")

// WithClaims returns a context carrying the validated token claims
func WithClaims(ctx context.Context, claims *security.UserClaims) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}

// ClaimsFromContext extracts the validated token claims set by the auth
// middleware.
func ClaimsFromContext(ctx context.Context) (*security.UserClaims, error) {
	claims, ok := ctx.Value(claimsContextKey).(*security.UserClaims)
	if !ok || claims == nil {
		return nil, ErrNoActor
	}
	return claims, nil
}

// ActorEmailFromContext returns the email of the authenticated caller
func ActorEmailFromContext(ctx context.Context) (string, error) {
	claims, err := ClaimsFromContext(ctx)
	if err != nil {
		return "", err
	}
	return claims.Email, nil
}
