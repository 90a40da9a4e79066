// Package usecase implements the business logic for profiles.
package usecase

import "errors"

var (
	// ErrProfileNotFound is returned when the user has no profile.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrUserNotFound is returned when the authenticated user no longer exists.
	ErrUserNotFound = errors.New("user not found")

	// ErrExperienceNotFound is returned when no experience entry has the requested id.
	ErrExperienceNotFound = errors.New("experience not found")

	// ErrEducationNotFound is returned when no education entry has the requested id.
	ErrEducationNotFound = errors.New("education not found")

	// ErrGitHubUserNotFound is returned when GitHub answers anything but 200 for a user.
	ErrGitHubUserNotFound = errors.New("github user not found")
)
