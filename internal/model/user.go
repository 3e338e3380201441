// Package model defines the data structures used throughout the application.
package model

import "time"

// User represents a registered account.
//
// Identity is username/password: signup stores a bcrypt hash of the
// password, login verifies against it and issues a JWT.
//
// WHY PasswordHash HAS json:"-"?
// The hash must never appear in an API response. The "-" tag tells
// encoding/json to skip the field entirely — safer than remembering to
// strip it in every handler.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"` // unique — enforced at write time
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
