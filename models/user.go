package models

import "time"

// User represents an account entity used for authentication and note
// ownership. Credential-related fields must never leave trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Username is the unique login identifier chosen at registration.
	Username string `json:"username"`

	// Password carries the plain-text password on inbound register/login
	// requests only. It is never persisted and never serialized back.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash stored in the database.
	// Excluded from JSON serialization.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
