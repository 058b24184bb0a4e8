package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Shuvro-Biswas/profile-app/internal/feature/users/domain"
	"github.com/Shuvro-Biswas/profile-app/internal/feature/users/domain/entity"
)

// mockUserRepository is a mock implementation of the UserRepository interface.
type mockUserRepository struct {
	FindByIDFunc    func(ctx context.Context, id uint) (*entity.User, error)
	FindByEmailFunc func(ctx context.Context, email string) (*entity.User, error)
	SearchFunc      func(ctx context.Context, query string, offset, limit int) ([]entity.User, int64, error)
	UpdateFunc      func(ctx context.Context, u *entity.User) error
	DeleteFunc      func(ctx context.Context, id uint) error
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrUserNotFound
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, domain.ErrUserNotFound
}

func (m *mockUserRepository) Search(ctx context.Context, query string, offset, limit int) ([]entity.User, int64, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query, offset, limit)
	}
	return nil, 0, nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *entity.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func storedUser() *entity.User {
	return &entity.User{
		ID:          1,
		FullName:    "Test User",
		Email:       "test@example.com",
		Password:    "hashed",
		DateOfBirth: time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC),
		Gender:      "Other",
		Bio:         "old bio",
	}
}

func strPtr(s string) *string { return &s }

func TestUserUsecase_List(t *testing.T) {
	t.Run("passes clamped paging to the repository and computes pages", func(t *testing.T) {
		var gotOffset, gotLimit int
		repo := &mockUserRepository{
			SearchFunc: func(ctx context.Context, query string, offset, limit int) ([]entity.User, int64, error) {
				gotOffset, gotLimit = offset, limit
				return []entity.User{*storedUser()}, 25, nil
			},
		}
		uc := NewUserUsecase(repo)

		page, err := uc.List(context.Background(), "", 3, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if gotOffset != 20 || gotLimit != 10 {
			t.Errorf("expected offset=20 limit=10, got offset=%d limit=%d", gotOffset, gotLimit)
		}
		if page.Pages != 3 {
			t.Errorf("expected 3 pages for 25 matches at 10 per page, got %d", page.Pages)
		}
		if page.Total != 25 || page.Page != 3 || page.PerPage != 10 {
			t.Errorf("unexpected page metadata: %+v", page)
		}
	})

	t.Run("defaults apply for out-of-range paging", func(t *testing.T) {
		var gotOffset, gotLimit int
		repo := &mockUserRepository{
			SearchFunc: func(ctx context.Context, query string, offset, limit int) ([]entity.User, int64, error) {
				gotOffset, gotLimit = offset, limit
				return nil, 0, nil
			},
		}
		uc := NewUserUsecase(repo)

		if _, err := uc.List(context.Background(), "", 0, -5); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotOffset != 0 || gotLimit != 10 {
			t.Errorf("expected offset=0 limit=10, got offset=%d limit=%d", gotOffset, gotLimit)
		}

		if _, err := uc.List(context.Background(), "", 1, 5000); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotLimit != 100 {
			t.Errorf("expected per_page capped at 100, got %d", gotLimit)
		}
	})
}

func TestUserUsecase_Update(t *testing.T) {
	t.Run("non-owner is rejected before any lookup", func(t *testing.T) {
		looked := false
		repo := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) {
				looked = true
				return storedUser(), nil
			},
		}
		uc := NewUserUsecase(repo)

		_, err := uc.Update(context.Background(), 2, 1, UpdateInput{Bio: strPtr("x")})

		if !errors.Is(err, domain.ErrNotOwner) {
			t.Errorf("expected ErrNotOwner, got: %v", err)
		}
		if looked {
			t.Error("repository should not be consulted for a non-owner")
		}
	})

	t.Run("owner updates only the provided fields", func(t *testing.T) {
		var saved *entity.User
		repo := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) {
				return storedUser(), nil
			},
			UpdateFunc: func(ctx context.Context, u *entity.User) error {
				saved = u
				return nil
			},
		}
		uc := NewUserUsecase(repo)

		updated, err := uc.Update(context.Background(), 1, 1, UpdateInput{
			Bio:         strPtr("new bio"),
			PhoneNumber: strPtr("+1-555-0100"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if saved == nil {
			t.Fatal("expected the repository update to be called")
		}
		if updated.Bio != "new bio" || updated.PhoneNumber != "+1-555-0100" {
			t.Errorf("provided fields were not applied: %+v", updated)
		}
		if updated.FullName != "Test User" || updated.Email != "test@example.com" {
			t.Errorf("absent fields must stay untouched: %+v", updated)
		}
	})

	t.Run("email change to one owned by another account conflicts", func(t *testing.T) {
		repo := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) {
				return storedUser(), nil
			},
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return &entity.User{ID: 99, Email: email}, nil
			},
		}
		uc := NewUserUsecase(repo)

		_, err := uc.Update(context.Background(), 1, 1, UpdateInput{Email: strPtr("taken@example.com")})

		if !errors.Is(err, domain.ErrEmailAlreadyExists) {
			t.Errorf("expected ErrEmailAlreadyExists, got: %v", err)
		}
	})

	t.Run("email change to an unused address succeeds", func(t *testing.T) {
		repo := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) {
				return storedUser(), nil
			},
		}
		uc := NewUserUsecase(repo)

		updated, err := uc.Update(context.Background(), 1, 1, UpdateInput{Email: strPtr("fresh@example.com")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Email != "fresh@example.com" {
			t.Errorf("expected email to change, got %q", updated.Email)
		}
	})

	t.Run("missing target user", func(t *testing.T) {
		uc := NewUserUsecase(&mockUserRepository{})

		_, err := uc.Update(context.Background(), 5, 5, UpdateInput{Bio: strPtr("x")})

		if !errors.Is(err, domain.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got: %v", err)
		}
	})
}

func TestUserUsecase_Delete(t *testing.T) {
	t.Run("non-owner is rejected", func(t *testing.T) {
		deleted := false
		repo := &mockUserRepository{
			DeleteFunc: func(ctx context.Context, id uint) error {
				deleted = true
				return nil
			},
		}
		uc := NewUserUsecase(repo)

		err := uc.Delete(context.Background(), 2, 1)

		if !errors.Is(err, domain.ErrNotOwner) {
			t.Errorf("expected ErrNotOwner, got: %v", err)
		}
		if deleted {
			t.Error("repository delete should not run for a non-owner")
		}
	})

	t.Run("owner deletes their own profile", func(t *testing.T) {
		var deletedID uint
		repo := &mockUserRepository{
			DeleteFunc: func(ctx context.Context, id uint) error {
				deletedID = id
				return nil
			},
		}
		uc := NewUserUsecase(repo)

		if err := uc.Delete(context.Background(), 1, 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if deletedID != 1 {
			t.Errorf("expected delete of user 1, got %d", deletedID)
		}
	})
}
