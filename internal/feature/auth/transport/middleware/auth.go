// Package middleware provides the authentication gates for protected routes.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	jwtauth "github.com/Shuvro-Biswas/profile-app/internal/platform/jwt"

	"github.com/Shuvro-Biswas/profile-app/internal/feature/users/domain/entity"
)

// ContextUserKey is the Gin context key the resolved user is stored under.
const ContextUserKey = "currentUser"

// TokenVerifier verifies a session token and returns its claims.
// Following Go convention, the interface is defined by the consumer
// (middleware), not the provider (platform/jwt).
type TokenVerifier interface {
	VerifyToken(token string) (*jwtauth.Claims, error)
}

// UserFinder resolves a user id from the token payload against the store.
type UserFinder interface {
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// AuthRequired returns a Gin middleware that restricts access to
// authenticated users. It parses the Bearer token, verifies signature and
// expiry, re-resolves the user from the store (a deleted account fails even
// with a structurally valid token) and binds the user to the request context.
func AuthRequired(verifier TokenVerifier, users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := resolveUser(c, verifier, users)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}
		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// AuthOptional returns a Gin middleware that resolves the caller's identity
// when a valid token is present but lets the request through anonymously on
// any failure. Handlers use CurrentUser to distinguish owner from public.
func AuthOptional(verifier TokenVerifier, users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, ok := resolveUser(c, verifier, users); ok {
			c.Set(ContextUserKey, user)
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user bound to the context, if any.
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	v, ok := c.Get(ContextUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*entity.User)
	return user, ok
}

// resolveUser extracts the token from the Authorization header, verifies it
// and resolves the subject against the store. Any parse failure is an
// authentication failure, never a crash.
func resolveUser(c *gin.Context, verifier TokenVerifier, users UserFinder) (*entity.User, bool) {
	// Expected format: "Bearer <token>". The token is the second
	// whitespace-separated segment.
	fields := strings.Fields(c.GetHeader("Authorization"))
	if len(fields) < 2 {
		return nil, false
	}

	claims, err := verifier.VerifyToken(fields[1])
	if err != nil {
		return nil, false
	}

	// Tokens are not revoked on account deletion, so the subject may no
	// longer exist. Re-resolving here turns that into an auth failure.
	user, err := users.FindByID(c.Request.Context(), claims.UserID)
	if err != nil {
		return nil, false
	}
	return user, true
}
