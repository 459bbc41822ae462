// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as User and Chat, along with
// their validation rules and domain-specific errors.
package entity

import "time"

// User represents a registered account in the system.
// The email address is the unique identity key; PasswordHash holds the
// bcrypt hash of the password (the plaintext is never stored).
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
