package domain

import (
	"strings"
	"time"
)

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleCustomer Role = "CUSTOMER"
)

type User struct {
	Name         string    `json:"name"`
	Email        string    `json:"email"` // unique key, compared case-insensitively
	Role         Role      `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedOn    time.Time `json:"created_on"`
}

// HasRole checks if the user holds the given role.
func (u *User) HasRole(role Role) bool {
	return u != nil && u.Role == role
}

// EmailMatches compares emails case-insensitively.
func (u *User) EmailMatches(email string) bool {
	return u != nil && strings.EqualFold(u.Email, email)
}

// RequireRole is the capability test consulted before every privileged
// mutation. It is a pure predicate with no side effects.
func RequireRole(actor *User, role Role) error {
	if actor == nil || actor.Role != role {
		return NewAuthorizationError("only %s may perform this action", role)
	}
	return nil
}
