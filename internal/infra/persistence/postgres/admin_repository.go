package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domadmin "example.com/iskina-storefront/internal/domain/admin"
)

type AdminRepository struct {
	pool *pgxpool.Pool
}

func NewAdminRepository(pool *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{pool: pool}
}

func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*domadmin.User, error) {
	var u domadmin.User
	err := r.pool.QueryRow(ctx, `
        SELECT id, name, email, password_hash
        FROM admin_users
        WHERE email = $1
    `, email).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domadmin.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *AdminRepository) GetByID(ctx context.Context, id int64) (*domadmin.User, error) {
	var u domadmin.User
	err := r.pool.QueryRow(ctx, `
        SELECT id, name, email, password_hash
        FROM admin_users
        WHERE id = $1
    `, id).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domadmin.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
