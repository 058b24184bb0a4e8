// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrInvalidCredentials is returned during login when email or password is
	// invalid. Deliberately generic: it never reveals which of the two was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrPasswordTooShort is returned during registration when the password is
	// below the minimum length.
	ErrPasswordTooShort = errors.New("password must be at least 6 characters long")
)
