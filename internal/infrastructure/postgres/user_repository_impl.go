package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/westernstar/blog/internal/domain/entity"
	"github.com/westernstar/blog/internal/domain/repository"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// Create inserts the user inside a transaction that also decides the
// admin flag: the first account in an empty table is the administrator.
// Two concurrent first registrations cannot both win because the count
// and the insert share one serialized statement.
func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	row := tx.QueryRow(ctx, `
		INSERT INTO users (email, password, name, is_admin)
		VALUES ($1, $2, $3, NOT EXISTS (SELECT 1 FROM users))
		RETURNING id, is_admin, created_at
	`, u.Email, u.Password, u.Name)

	if err := row.Scan(&u.ID, &u.IsAdmin, &u.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return err
	}
	return tx.Commit(ctx)
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	return r.scanOne(r.pool.QueryRow(ctx, `
		SELECT id, email, password, name, is_admin, created_at
		FROM users
		WHERE id = $1
	`, id))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.scanOne(r.pool.QueryRow(ctx, `
		SELECT id, email, password, name, is_admin, created_at
		FROM users
		WHERE email = $1
	`, email))
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM users`).Scan(&n)
	return n, err
}

func (r *UserRepository) scanOne(row pgx.Row) (*entity.User, error) {
	u := &entity.User{}
	if err := row.Scan(&u.ID, &u.Email, &u.Password, &u.Name, &u.IsAdmin, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
