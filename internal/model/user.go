// Package model defines the data structures used throughout the application.
package model

import "time"

// User represents a registered account.
//
// PasswordHash carries the bcrypt hash of the user's password. The `json:"-"`
// tag is the single sanitization point for the whole API: no matter which
// handler encodes a User, the hash never appears in a response body. Handlers
// and services never blank the field by hand.
//
// Email is stored trimmed and lower-cased (the service normalizes it) and is
// backed by a UNIQUE index, so two accounts can never share an address even
// under concurrent sign-ups.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
