// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can log in and own todos.
// The password hash is carried for verification only and is never serialized.
type User struct {
	ID           uuid.UUID `json:"id"`         // Generated at creation, immutable.
	Email        string    `json:"email"`      // Login identifier, unique across all users (case-sensitive as stored).
	Username     string    `json:"username"`   // Display name.
	PasswordHash string    `json:"-"`          // bcrypt hash of the password.
	IsActive     bool      `json:"is_active"`  // Defaults to true on registration.
	CreatedAt    time.Time `json:"created_at"` // Timestamp of when this account was created.
	UpdatedAt    time.Time `json:"updated_at"` // Timestamp of the last modification to this account.
}
