package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/westernstar/blog/internal/domain/entity"
	"github.com/westernstar/blog/internal/domain/repository"
)

type PostRepository struct {
	pool *pgxpool.Pool
}

func NewPostRepository(pool *pgxpool.Pool) *PostRepository {
	return &PostRepository{pool: pool}
}

func (r *PostRepository) Create(ctx context.Context, p *entity.Post) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO posts (author_id, title, subtitle, body, img_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, p.AuthorID, p.Title, p.Subtitle, p.Body, p.ImgURL)

	if err := row.Scan(&p.ID, &p.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *PostRepository) GetByID(ctx context.Context, id int64) (*entity.Post, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT p.id, p.author_id, p.title, p.subtitle, p.body, p.img_url, p.created_at,
		       u.id, u.email, u.name, u.is_admin, u.created_at
		FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.id = $1
	`, id)
	return scanPost(row)
}

func (r *PostRepository) List(ctx context.Context) ([]*entity.Post, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT p.id, p.author_id, p.title, p.subtitle, p.body, p.img_url, p.created_at,
		       u.id, u.email, u.name, u.is_admin, u.created_at
		FROM posts p
		JOIN users u ON u.id = p.author_id
		ORDER BY p.id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*entity.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (r *PostRepository) Update(ctx context.Context, p *entity.Post) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE posts
		SET author_id = $1, title = $2, subtitle = $3, body = $4, img_url = $5
		WHERE id = $6
	`, p.AuthorID, p.Title, p.Subtitle, p.Body, p.ImgURL, p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes the post and its comments in one transaction. The
// schema's ON DELETE CASCADE covers the comments; the explicit delete
// keeps the policy visible and makes the unit atomic regardless of
// schema drift.
func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM comments WHERE post_id = $1`, id); err != nil {
		return err
	}
	res, err := tx.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return tx.Commit(ctx)
}

func (r *PostRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM posts`).Scan(&n)
	return n, err
}

func scanPost(row pgx.Row) (*entity.Post, error) {
	p := &entity.Post{Author: &entity.User{}}
	if err := row.Scan(
		&p.ID, &p.AuthorID, &p.Title, &p.Subtitle, &p.Body, &p.ImgURL, &p.CreatedAt,
		&p.Author.ID, &p.Author.Email, &p.Author.Name, &p.Author.IsAdmin, &p.Author.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

var _ repository.PostRepository = (*PostRepository)(nil)
