// Package domain defines domain-level errors for the users feature.
package domain

import "errors"

// Domain errors for user account operations.
// These errors represent business logic failures and should be handled appropriately by upper layers.
var (
	// ErrUserNotFound indicates that no user was found with the given criteria.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists indicates that another user already owns the given email.
	// Returned on registration and on email-changing profile updates.
	ErrEmailAlreadyExists = errors.New("email already registered")

	// ErrNotOwner indicates that the authenticated user is not the owner of the
	// targeted profile. Distinct from an authentication failure: the requester
	// is known but not entitled.
	ErrNotOwner = errors.New("not the owner of this profile")
)
