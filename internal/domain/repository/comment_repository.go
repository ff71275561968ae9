package repository

import (
	"context"

	"github.com/westernstar/blog/internal/domain/entity"
)

// CommentRepository defines the interface for comment-related database operations.
type CommentRepository interface {
	Create(ctx context.Context, c *entity.Comment) error
	ListByPost(ctx context.Context, postID int64) ([]*entity.Comment, error)
	Count(ctx context.Context) (int64, error)
}
