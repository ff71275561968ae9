package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/westernstar/blog/internal/domain/entity"
	"github.com/westernstar/blog/internal/domain/repository"
)

type CommentRepository struct {
	pool *pgxpool.Pool
}

func NewCommentRepository(pool *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{pool: pool}
}

func (r *CommentRepository) Create(ctx context.Context, c *entity.Comment) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO comments (post_id, author_id, text)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, c.PostID, c.AuthorID, c.Text)
	return row.Scan(&c.ID, &c.CreatedAt)
}

func (r *CommentRepository) ListByPost(ctx context.Context, postID int64) ([]*entity.Comment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT c.id, c.post_id, c.author_id, c.text, c.created_at,
		       u.id, u.email, u.name, u.is_admin, u.created_at
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.post_id = $1
		ORDER BY c.id
	`, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []*entity.Comment
	for rows.Next() {
		c := &entity.Comment{Author: &entity.User{}}
		if err := rows.Scan(
			&c.ID, &c.PostID, &c.AuthorID, &c.Text, &c.CreatedAt,
			&c.Author.ID, &c.Author.Email, &c.Author.Name, &c.Author.IsAdmin, &c.Author.CreatedAt,
		); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (r *CommentRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM comments`).Scan(&n)
	return n, err
}

var _ repository.CommentRepository = (*CommentRepository)(nil)
