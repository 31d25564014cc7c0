package repository

import (
	"context"

	"github.com/webcraft-academy/elearn-api/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// Create inserts the user; returns ErrDuplicate when the email is taken.
	// The uniqueness check and insert are a single statement.
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
	UpdateRole(ctx context.Context, id, role string) (*entity.User, error)
	UpdatePassword(ctx context.Context, email, hash string) error
}
