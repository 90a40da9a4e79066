// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered user in the system.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Name is the display name shown on profiles, posts and comments.
	Name string `gorm:"size:255;not null"`

	// Email is the user's email address used for authentication.
	// It is stored lower-cased and must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash of the user's password.
	// This should never store plaintext passwords.
	Password string `gorm:"size:255;not null"`

	// Avatar is the gravatar URL derived from the email at registration.
	Avatar string `gorm:"size:512"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
