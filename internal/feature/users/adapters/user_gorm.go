// Package adapters provides the repository implementations for the users feature.
package adapters

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	authusecase "github.com/Shuvro-Biswas/profile-app/internal/feature/auth/usecase"
	"github.com/Shuvro-Biswas/profile-app/internal/feature/users/domain"
	"github.com/Shuvro-Biswas/profile-app/internal/feature/users/domain/entity"
	"github.com/Shuvro-Biswas/profile-app/internal/feature/users/usecase"
)

// pgUniqueViolation is the PostgreSQL error code for a unique constraint violation.
const pgUniqueViolation = "23505"

// userGorm is the GORM-backed implementation of the user repositories
// consumed by the auth and users usecases.
type userGorm struct {
	db *gorm.DB
}

// Compile-time checks that userGorm satisfies its consumers' interfaces.
var (
	_ usecase.UserRepository     = (*userGorm)(nil)
	_ authusecase.UserRepository = (*userGorm)(nil)
)

// NewUserGorm creates a new userGorm instance for the given gorm.DB connection.
func NewUserGorm(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

// Create persists a new user row.
// If another user already owns the same email, domain.ErrEmailAlreadyExists is returned.
func (r *userGorm) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		return mapUniqueViolation(err)
	}
	return nil
}

// FindByEmail retrieves a user by email address.
// Returns domain.ErrUserNotFound if no such user exists.
func (r *userGorm) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByID retrieves a user by ID.
// Returns domain.ErrUserNotFound if no such user exists.
func (r *userGorm) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Search returns a page of users whose full name or email contains query,
// together with the total number of matches. An empty query matches everyone.
func (r *userGorm) Search(ctx context.Context, query string, offset, limit int) ([]entity.User, int64, error) {
	tx := r.db.WithContext(ctx).Model(&entity.User{})
	if query != "" {
		like := "%" + query + "%"
		tx = tx.Where("full_name LIKE ? OR email LIKE ?", like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []entity.User
	if err := tx.Order("id").Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// Update persists all fields of the given user row as a single statement.
// UpdatedAt is refreshed by GORM. Email uniqueness violations map to
// domain.ErrEmailAlreadyExists.
func (r *userGorm) Update(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Save(u).Error; err != nil {
		return mapUniqueViolation(err)
	}
	return nil
}

// Delete removes the user row with the given ID.
// Returns domain.ErrUserNotFound if no row was deleted.
func (r *userGorm) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.User{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// mapUniqueViolation translates a PostgreSQL unique constraint error on the
// email index into the domain sentinel. Other errors pass through unchanged.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return domain.ErrEmailAlreadyExists
	}
	return err
}
