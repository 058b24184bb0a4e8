// Package usecase implements the business logic for the users feature.
package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Shuvro-Biswas/profile-app/internal/feature/users/domain"
	"github.com/Shuvro-Biswas/profile-app/internal/feature/users/domain/entity"
)

const (
	defaultPerPage = 10
	maxPerPage     = 100
)

// UserRepository abstracts the persistence layer for user profiles.
// Following Go convention, the interface is defined by the consumer (usecase),
// not the provider (adapters).
type UserRepository interface {
	// FindByID retrieves a user by ID, or domain.ErrUserNotFound.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// FindByEmail retrieves a user by email, or domain.ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Search returns one page of users matching query plus the total match count.
	Search(ctx context.Context, query string, offset, limit int) ([]entity.User, int64, error)

	// Update persists all fields of the user as a single atomic write.
	Update(ctx context.Context, u *entity.User) error

	// Delete removes the user row, or returns domain.ErrUserNotFound.
	Delete(ctx context.Context, id uint) error
}

// UpdateInput carries a partial profile update. Nil fields are left untouched.
// Interests is the already-serialized storage form; the transport layer owns
// the list encoding.
type UpdateInput struct {
	FullName    *string
	Email       *string
	PhoneNumber *string
	DateOfBirth *time.Time
	Gender      *string
	Interests   *string
	Bio         *string
}

// UserPage is one page of a user directory listing.
type UserPage struct {
	Users   []entity.User
	Total   int64
	Pages   int
	Page    int
	PerPage int
}

// userUsecase implements profile read and mutation logic.
type userUsecase struct {
	users UserRepository
}

// NewUserUsecase creates a new userUsecase instance.
func NewUserUsecase(users UserRepository) *userUsecase {
	return &userUsecase{users: users}
}

// Get retrieves a single user by ID.
func (u *userUsecase) Get(ctx context.Context, id uint) (*entity.User, error) {
	return u.users.FindByID(ctx, id)
}

// List returns a page of users filtered by an optional search string matched
// against full name and email. Page and perPage are clamped to sane bounds.
func (u *userUsecase) List(ctx context.Context, search string, page, perPage int) (*UserPage, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	users, total, err := u.users.Search(ctx, search, (page-1)*perPage, perPage)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}

	pages := int((total + int64(perPage) - 1) / int64(perPage))
	return &UserPage{
		Users:   users,
		Total:   total,
		Pages:   pages,
		Page:    page,
		PerPage: perPage,
	}, nil
}

// Update applies a partial profile update. Only the owner may mutate a
// profile: actorID must equal targetID or domain.ErrNotOwner is returned
// before any row is touched. An email change re-checks uniqueness against
// other accounts.
func (u *userUsecase) Update(ctx context.Context, actorID, targetID uint, in UpdateInput) (*entity.User, error) {
	if actorID != targetID {
		return nil, domain.ErrNotOwner
	}

	user, err := u.users.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if in.Email != nil && *in.Email != user.Email {
		existing, err := u.users.FindByEmail(ctx, *in.Email)
		if err == nil && existing.ID != targetID {
			return nil, domain.ErrEmailAlreadyExists
		}
		user.Email = *in.Email
	}
	if in.FullName != nil {
		user.FullName = *in.FullName
	}
	if in.PhoneNumber != nil {
		user.PhoneNumber = *in.PhoneNumber
	}
	if in.DateOfBirth != nil {
		user.DateOfBirth = *in.DateOfBirth
	}
	if in.Gender != nil {
		user.Gender = *in.Gender
	}
	if in.Interests != nil {
		user.Interests = *in.Interests
	}
	if in.Bio != nil {
		user.Bio = *in.Bio
	}

	if err := u.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes a profile. Only the owner may delete it; previously issued
// tokens stay structurally valid until expiry but fail authentication once
// the row is gone.
func (u *userUsecase) Delete(ctx context.Context, actorID, targetID uint) error {
	if actorID != targetID {
		return domain.ErrNotOwner
	}
	return u.users.Delete(ctx, targetID)
}
