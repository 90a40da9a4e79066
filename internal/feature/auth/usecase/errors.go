// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user with an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned when the email is unknown or the password does not match.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrWeakPassword is returned when a password is shorter than minPasswordLength.
	ErrWeakPassword = errors.New("password too short")

	// ErrPasswordTooLong is returned when a password exceeds the 72 bytes bcrypt accepts.
	ErrPasswordTooLong = errors.New("password too long")
)
