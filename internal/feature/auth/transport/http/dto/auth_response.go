package dto

import usersdto "github.com/Shuvro-Biswas/profile-app/internal/feature/users/transport/http/dto"

// AuthResponse is returned by /register and /login: a session token plus
// the owner view of the account.
type AuthResponse struct {
	Message string                `json:"message"`
	Token   string                `json:"token"`
	User    usersdto.UserResponse `json:"user"`
}

// VerifyResponse is returned by /verify for a valid token.
type VerifyResponse struct {
	Message string                `json:"message"`
	User    usersdto.UserResponse `json:"user"`
}
