package domain

import "time"

// Notification is an in-app message a user polls for. Booking decisions
// (approved, rejected) produce one for the requesting customer.
type Notification struct {
	ID         string            `json:"id"`
	UserEmail  string            `json:"user_email"`
	Title      string            `json:"title"`
	Message    string            `json:"message"`
	Attributes map[string]string `json:"attributes,omitempty"`
	Read       bool              `json:"read"`
	CreatedOn  time.Time         `json:"created_on"`
}
