// Package entity defines the domain entities for the users feature.
package entity

import "time"

// User represents a registered account and its profile.
// It contains authentication credentials and the profile fields a user
// manages about themselves.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// FullName is the user's display name.
	FullName string `gorm:"size:100;not null"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:120;not null"`

	// Password is the hashed password for the user.
	// This should never store plaintext passwords.
	Password string `gorm:"size:255;not null"`

	// PhoneNumber is optional contact information, visible to the owner only.
	PhoneNumber string `gorm:"size:20"`

	// DateOfBirth holds the calendar date only; the time component is zero.
	DateOfBirth time.Time `gorm:"not null"`

	// Gender is free-form (e.g. Male, Female, Other).
	Gender string `gorm:"size:10;not null"`

	// Interests is a JSON-encoded list of strings. The transport layer
	// handles (de)serialization.
	Interests string `gorm:"type:text"`

	// Bio is a free-form self description.
	Bio string `gorm:"type:text"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
