// Package dto defines data transfer objects for the users feature's HTTP transport layer.
package dto

import (
	"encoding/json"
	"time"

	"github.com/Shuvro-Biswas/profile-app/internal/feature/users/domain/entity"
)

// dateLayout is the wire format for date_of_birth.
const dateLayout = "2006-01-02"

// UserResponse is the owner view of a profile: every field except the
// password hash, which is never serialized.
type UserResponse struct {
	ID          uint     `json:"id"`
	FullName    string   `json:"full_name"`
	Email       string   `json:"email"`
	PhoneNumber string   `json:"phone_number"`
	DateOfBirth string   `json:"date_of_birth"`
	Gender      string   `json:"gender"`
	Interests   []string `json:"interests"`
	Bio         string   `json:"bio"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

// PublicUserResponse is the redacted projection returned to anonymous or
// non-owner requesters. It is a strict subset of the owner view.
type PublicUserResponse struct {
	ID        uint     `json:"id"`
	FullName  string   `json:"full_name"`
	Email     string   `json:"email"`
	Gender    string   `json:"gender"`
	Interests []string `json:"interests"`
	Bio       string   `json:"bio"`
}

// NewUserResponse builds the owner view of a user.
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		FullName:    u.FullName,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		DateOfBirth: u.DateOfBirth.Format(dateLayout),
		Gender:      u.Gender,
		Interests:   DecodeInterests(u.Interests),
		Bio:         u.Bio,
		CreatedAt:   u.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   u.UpdatedAt.Format(time.RFC3339),
	}
}

// NewPublicUserResponse builds the public view of a user.
func NewPublicUserResponse(u *entity.User) PublicUserResponse {
	return PublicUserResponse{
		ID:        u.ID,
		FullName:  u.FullName,
		Email:     u.Email,
		Gender:    u.Gender,
		Interests: DecodeInterests(u.Interests),
		Bio:       u.Bio,
	}
}

// EncodeInterests serializes an interest list to its stored form.
func EncodeInterests(interests []string) string {
	if interests == nil {
		interests = []string{}
	}
	b, err := json.Marshal(interests)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// DecodeInterests parses the stored interest string back into a list.
// Malformed or empty values decode to an empty list.
func DecodeInterests(stored string) []string {
	if stored == "" {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal([]byte(stored), &out); err != nil || out == nil {
		return []string{}
	}
	return out
}
