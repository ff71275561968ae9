package repository

import (
	"context"

	"github.com/westernstar/blog/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
//
// Create must decide the admin flag atomically: the first row inserted
// into an empty users table becomes the administrator.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Count(ctx context.Context) (int64, error)
}
