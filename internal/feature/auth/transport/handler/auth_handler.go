// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Shuvro-Biswas/profile-app/internal/feature/auth/transport/http/dto"
	"github.com/Shuvro-Biswas/profile-app/internal/feature/auth/transport/middleware"
	"github.com/Shuvro-Biswas/profile-app/internal/feature/auth/usecase"
	"github.com/Shuvro-Biswas/profile-app/internal/feature/users/domain"
	"github.com/Shuvro-Biswas/profile-app/internal/feature/users/domain/entity"
	usersdto "github.com/Shuvro-Biswas/profile-app/internal/feature/users/transport/http/dto"
)

// AuthUsecase defines the usecase for credential operations.
// Following Go convention, the interface is defined by the consumer (handler),
// not the provider (usecase).
type AuthUsecase interface {
	// Register creates a new account and issues a session token for it.
	Register(ctx context.Context, in usecase.RegisterInput) (*entity.User, string, error)
	// Login authenticates a user and issues a session token on success.
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
}

// AuthHandler handles the HTTP requests for registration, login and token
// verification. It depends on the AuthUsecase interface and deals with JSON
// requests/responses.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register handles the user registration endpoint.
// - Binds and validates the request JSON (400 on validation failure)
// - 409 when the email is already registered
// - 201 with a session token and the owner view on success
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// The binding tag already guarantees the format parses.
	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format, use YYYY-MM-DD"})
		return
	}

	user, token, err := h.auth.Register(c.Request.Context(), usecase.RegisterInput{
		FullName:    req.FullName,
		Email:       req.Email,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
		DateOfBirth: dob,
		Gender:      req.Gender,
		Interests:   usersdto.EncodeInterests(req.Interests),
		Bio:         req.Bio,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailAlreadyExists):
			slog.Warn("register failed: duplicate email", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
		case errors.Is(err, usecase.ErrPasswordTooShort):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			slog.Error("register failed", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		}
		return
	}

	slog.Info("user registered", "email", user.Email, "user_id", user.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.AuthResponse{
		Message: "User registered successfully",
		Token:   token,
		User:    usersdto.NewUserResponse(user),
	})
}

// Login handles the user login endpoint.
// - Binds and validates the request JSON (400 on validation failure)
// - 401 with a generic message on bad credentials
// - 200 with a fresh session token and the owner view on success
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			// Never reveal whether the email or the password was wrong.
			slog.Warn("login failed", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}
		slog.Error("login failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	slog.Info("user login successful", "email", user.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.AuthResponse{
		Message: "Login successful",
		Token:   token,
		User:    usersdto.NewUserResponse(user),
	})
}

// Verify handles the token verification endpoint. The AuthRequired
// middleware has already verified the token and resolved the account, so
// the handler only reports the bound identity.
func (h *AuthHandler) Verify(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
		return
	}
	c.JSON(http.StatusOK, dto.VerifyResponse{
		Message: "Token is valid",
		User:    usersdto.NewUserResponse(user),
	})
}
