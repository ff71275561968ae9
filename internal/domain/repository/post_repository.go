package repository

import (
	"context"

	"github.com/westernstar/blog/internal/domain/entity"
)

// PostRepository defines the interface for post-related database operations.
type PostRepository interface {
	Create(ctx context.Context, p *entity.Post) error
	GetByID(ctx context.Context, id int64) (*entity.Post, error)
	List(ctx context.Context) ([]*entity.Post, error)
	Update(ctx context.Context, p *entity.Post) error
	// Delete removes the post and, by cascade, every comment that
	// references it.
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}
