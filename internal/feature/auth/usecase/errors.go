// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by username or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameTaken is returned when registering with a username that
	// already exists.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrPasswordMismatch is returned when the password confirmation does not
	// match the password at registration.
	ErrPasswordMismatch = errors.New("passwords must match")

	// ErrInvalidCredentials is returned for any failed login, without
	// revealing whether the username exists.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrSessionNotFound is returned when a session cannot be found by ID.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionRevoked is returned when attempting to use a revoked session.
	ErrSessionRevoked = errors.New("session has been revoked")

	// ErrSessionExpired is returned when attempting to use an expired session.
	ErrSessionExpired = errors.New("session has expired")
)
