// Package user provides use cases for registration, role management, and
// per-user bookmark/favorite lists.
package user

import "errors"

// Sentinel errors for user use case operations.
var (
	// ErrUserNotFound indicates that no user matched the given email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateUser indicates a registration attempt with an email that
	// is already taken.
	ErrDuplicateUser = errors.New("user already exists")

	// ErrInvalidUserID indicates a malformed store identifier.
	ErrInvalidUserID = errors.New("invalid user ID")

	// ErrInvalidAction indicates an unrecognized action discriminator on a
	// multi-purpose mutation endpoint.
	ErrInvalidAction = errors.New("invalid action")
)
