// Package jwtauth issues and verifies the stateless session tokens.
//
// A token is a compact HS256-signed assertion binding the user id, email and
// an absolute expiry. Possession of a structurally valid, unexpired,
// correctly signed token is the sole proof of identity; there is no
// server-side revocation.
package jwtauth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken is returned for malformed, tampered or wrongly signed tokens.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired is returned when the token's expiry is in the past.
	// Callers surface it to clients as the same generic authentication failure.
	ErrTokenExpired = errors.New("token has expired")
)

// Claims is the verified payload of a session token.
type Claims struct {
	UserID uint
	Email  string
}

// TokenService generates and verifies HS256 session tokens with a
// process-wide secret. The secret is read-only after startup, so a single
// instance is safe for concurrent use.
type TokenService struct {
	secret     []byte
	expiration time.Duration
}

// NewTokenService creates a TokenService with the provided secret and token lifetime.
func NewTokenService(secret string, expiration time.Duration) *TokenService {
	return &TokenService{
		secret:     []byte(secret),
		expiration: expiration,
	}
}

// GenerateToken creates a signed session token with standard claims.
func (s *TokenService) GenerateToken(userID uint, email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   userID,
		"exp":   now.Add(s.expiration).Unix(),
		"iat":   now.Unix(),
		"email": email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken checks signature, structure and expiry of a token string and
// returns its claims. The signing algorithm is pinned to HMAC.
func (s *TokenService) VerifyToken(tokenStr string) (*Claims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, ok := claims["sub"].(float64) // JWT numbers are decoded as float64
	if !ok {
		return nil, ErrInvalidToken
	}
	email, _ := claims["email"].(string)

	return &Claims{UserID: uint(sub), Email: email}, nil
}
