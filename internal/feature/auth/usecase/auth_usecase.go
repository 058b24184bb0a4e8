package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Shuvro-Biswas/profile-app/internal/feature/users/domain"
	"github.com/Shuvro-Biswas/profile-app/internal/feature/users/domain/entity"
)

const (
	// minPasswordLength defines the minimum password length for registration.
	minPasswordLength = 6
)

// UserRepository abstracts the persistence layer for the auth feature.
// Following Go convention, the interface is defined by the consumer (usecase),
// not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. If a user with the same email already
	// exists, domain.ErrEmailAlreadyExists is returned and nothing is stored.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user by email, or domain.ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

// TokenGenerator issues signed session tokens.
// Following Go convention, the interface is defined by the consumer (usecase),
// not the provider (platform/jwt).
type TokenGenerator interface {
	// GenerateToken creates a signed session token for the given user.
	GenerateToken(userID uint, email string) (string, error)
}

// RegisterInput carries a validated registration request. DateOfBirth holds
// the calendar date only; Interests is already serialized to its storage form.
type RegisterInput struct {
	FullName    string
	Email       string
	Password    string
	PhoneNumber string
	DateOfBirth time.Time
	Gender      string
	Interests   string
	Bio         string
}

// authUsecase implements the credential handling and token issuance logic.
type authUsecase struct {
	users  UserRepository
	tokens TokenGenerator
}

// NewAuthUsecase creates a new authUsecase instance.
func NewAuthUsecase(users UserRepository, tokens TokenGenerator) *authUsecase {
	return &authUsecase{users: users, tokens: tokens}
}

// validatePassword checks that the password meets the security requirements.
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

// Register creates a new account with a hashed password and issues a session
// token for it. The email is pre-checked for uniqueness; the database unique
// index backs the check, so a concurrent duplicate still fails atomically
// inside Create.
func (u *authUsecase) Register(ctx context.Context, in RegisterInput) (*entity.User, string, error) {
	if err := validatePassword(in.Password); err != nil {
		return nil, "", err
	}

	if _, err := u.users.FindByEmail(ctx, in.Email); err == nil {
		return nil, "", domain.ErrEmailAlreadyExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, "", fmt.Errorf("failed to check email: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		FullName:    in.FullName,
		Email:       in.Email,
		Password:    string(hashed),
		PhoneNumber: in.PhoneNumber,
		DateOfBirth: in.DateOfBirth,
		Gender:      in.Gender,
		Interests:   in.Interests,
		Bio:         in.Bio,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := u.tokens.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	return user, token, nil
}

// Login authenticates a user and returns a session token on success.
// To mitigate timing attacks, a bcrypt comparison runs even when the email
// is unknown.
func (u *authUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	user, err := u.users.FindByEmail(ctx, email)

	// Dummy hash so bcrypt.CompareHashAndPassword is always executed.
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = user.Password
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	// Same generic error for unknown email and wrong password.
	if err != nil || compareErr != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, tokenErr := u.tokens.GenerateToken(user.ID, user.Email)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", tokenErr)
	}
	return user, token, nil
}
