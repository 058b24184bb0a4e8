// Package handler provides the HTTP handlers for the users feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Shuvro-Biswas/profile-app/internal/feature/auth/transport/middleware"
	"github.com/Shuvro-Biswas/profile-app/internal/feature/users/domain"
	"github.com/Shuvro-Biswas/profile-app/internal/feature/users/domain/entity"
	"github.com/Shuvro-Biswas/profile-app/internal/feature/users/transport/http/dto"
	"github.com/Shuvro-Biswas/profile-app/internal/feature/users/usecase"
)

// UserUsecase defines the usecase for profile operations.
// Following Go convention, the interface is defined by the consumer (handler),
// not the provider (usecase).
type UserUsecase interface {
	// Get retrieves a single user by ID.
	Get(ctx context.Context, id uint) (*entity.User, error)
	// List returns a page of users filtered by an optional search string.
	List(ctx context.Context, search string, page, perPage int) (*usecase.UserPage, error)
	// Update applies an owner-only partial profile update.
	Update(ctx context.Context, actorID, targetID uint, in usecase.UpdateInput) (*entity.User, error)
	// Delete removes a profile, owner-only.
	Delete(ctx context.Context, actorID, targetID uint) error
}

// UserHandler handles the HTTP requests for the public directory and the
// owner-gated profile mutations.
type UserHandler struct {
	users UserUsecase
}

// NewUserHandler creates a new UserHandler instance.
func NewUserHandler(users UserUsecase) *UserHandler {
	return &UserHandler{users: users}
}

// List handles GET /users: the public directory with search and pagination.
// Always returns public views regardless of authentication.
func (h *UserHandler) List(c *gin.Context) {
	search := c.Query("search")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "10"))

	result, err := h.users.List(c.Request.Context(), search, page, perPage)
	if err != nil {
		slog.Error("user listing failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list users"})
		return
	}

	views := make([]dto.PublicUserResponse, 0, len(result.Users))
	for i := range result.Users {
		views = append(views, dto.NewPublicUserResponse(&result.Users[i]))
	}
	c.JSON(http.StatusOK, dto.UserListResponse{
		Users:       views,
		Total:       result.Total,
		Pages:       result.Pages,
		CurrentPage: result.Page,
		PerPage:     result.PerPage,
	})
}

// Get handles GET /users/:id. Behind the AuthOptional middleware: the owner
// of the profile receives the full view, everyone else the public view.
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	user, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		slog.Error("user lookup failed", "error", err, "user_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch user"})
		return
	}

	if current, ok := middleware.CurrentUser(c); ok && current.ID == user.ID {
		c.JSON(http.StatusOK, dto.NewUserResponse(user))
		return
	}
	c.JSON(http.StatusOK, dto.NewPublicUserResponse(user))
}

// Profile handles GET /profile: the owner view of the authenticated caller.
func (h *UserHandler) Profile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// Update handles PUT /users/:id, an owner-only partial profile update.
// - 400 on validation failure
// - 403 when the caller is not the owner
// - 409 when an email change collides with another account
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	current, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
		return
	}

	var req dto.UpdateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("profile update validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	in := usecase.UpdateInput{
		FullName:    req.FullName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Gender:      req.Gender,
		Bio:         req.Bio,
	}
	if req.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format, use YYYY-MM-DD"})
			return
		}
		in.DateOfBirth = &dob
	}
	if req.Interests != nil {
		encoded := dto.EncodeInterests(*req.Interests)
		in.Interests = &encoded
	}

	user, err := h.users.Update(c.Request.Context(), current.ID, id, in)
	if err != nil {
		h.writeMutationError(c, err, "update", id)
		return
	}

	slog.Info("profile updated", "user_id", user.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// Delete handles DELETE /users/:id, owner-only.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	current, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
		return
	}

	if err := h.users.Delete(c.Request.Context(), current.ID, id); err != nil {
		h.writeMutationError(c, err, "delete", id)
		return
	}

	slog.Info("profile deleted", "user_id", id, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

// writeMutationError maps mutation failures onto the response taxonomy.
func (h *UserHandler) writeMutationError(c *gin.Context, err error, op string, id uint) {
	switch {
	case errors.Is(err, domain.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to " + op + " this profile"})
	case errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "email already taken"})
	default:
		slog.Error("profile mutation failed", "op", op, "error", err, "user_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to " + op + " profile"})
	}
}

// pathID parses the :id path parameter, writing a 400 on failure.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return 0, false
	}
	return uint(id), true
}
