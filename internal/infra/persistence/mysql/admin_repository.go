package mysql

import (
	"context"
	"database/sql"

	domadmin "example.com/iskina-storefront/internal/domain/admin"
)

type AdminRepository struct {
	db *sql.DB
}

func NewAdminRepository(db *sql.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*domadmin.User, error) {
	var u domadmin.User
	err := r.db.QueryRowContext(ctx, `
        SELECT id, name, email, password_hash
        FROM admin_users
        WHERE email = ?
    `, email).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash)
	if err == sql.ErrNoRows {
		return nil, domadmin.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *AdminRepository) GetByID(ctx context.Context, id int64) (*domadmin.User, error) {
	var u domadmin.User
	err := r.db.QueryRowContext(ctx, `
        SELECT id, name, email, password_hash
        FROM admin_users
        WHERE id = ?
    `, id).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash)
	if err == sql.ErrNoRows {
		return nil, domadmin.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
