package admin

import (
	"context"
	"errors"
)

// User is a store administrator account for the admin API.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
}

var (
	ErrUserNotFound      = errors.New("admin user not found")
	ErrInvalidCredential = errors.New("invalid credential")
	ErrUnauthorized      = errors.New("unauthorized")
)

type Repository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
}
