// config/security_config.go
package config

type SecurityLevel int

const (
	SecurityPublic  SecurityLevel = iota // No authentication
	SecurityRefresh                      // Refresh token required
	SecurityAccess                       // Access token required
)

// EndpointSecurityConfig maps routes to their required security level.
// Keys are "<METHOD> <path template>" as registered on the router.
var EndpointSecurityConfig = map[string]SecurityLevel{
	// Auth - Public
	"POST /api/v1/auth/register": SecurityPublic,
	"POST /api/v1/auth/login":    SecurityPublic,

	// Auth - Refresh Protected
	"POST /api/v1/auth/refresh": SecurityRefresh,

	// Catalog - browsing is public, management needs an access token
	"GET /api/v1/vehicles":                SecurityPublic,
	"GET /api/v1/vehicles/{id}":           SecurityPublic,
	"POST /api/v1/vehicles":               SecurityAccess,
	"POST /api/v1/vehicles/{id}/quantity": SecurityAccess,

	// Bookings - Access Protected
	"POST /api/v1/bookings":               SecurityAccess,
	"GET /api/v1/bookings":                SecurityAccess,
	"GET /api/v1/bookings/{id}":           SecurityAccess,
	"POST /api/v1/bookings/{id}/approve":  SecurityAccess,
	"POST /api/v1/bookings/{id}/reject":   SecurityAccess,
	"POST /api/v1/bookings/{id}/complete": SecurityAccess,

	// Payments - Access Protected
	"GET /api/v1/payments":      SecurityAccess,
	"GET /api/v1/payments/{id}": SecurityAccess,

	// Notifications - Access Protected
	"GET /api/v1/notifications":            SecurityAccess,
	"POST /api/v1/notifications/{id}/read": SecurityAccess,
}

// GetSecurityLevel returns the security level for a given route
func GetSecurityLevel(route string) SecurityLevel {
	if level, exists := EndpointSecurityConfig[route]; exists {
		return level
	}
	// Default to highest security for unknown endpoints
	return SecurityAccess
}
