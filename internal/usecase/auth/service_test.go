package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	domadmin "example.com/iskina-storefront/internal/domain/admin"
)

type mockAdminRepository struct {
	users map[string]*domadmin.User
}

func (m *mockAdminRepository) GetByEmail(ctx context.Context, email string) (*domadmin.User, error) {
	if u, ok := m.users[email]; ok {
		return u, nil
	}
	return nil, domadmin.ErrUserNotFound
}

func (m *mockAdminRepository) GetByID(ctx context.Context, id int64) (*domadmin.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domadmin.ErrUserNotFound
}

type mockComparer struct {
	valid string
}

func (m *mockComparer) Compare(hash string, password string) error {
	if password == m.valid {
		return nil
	}
	return errors.New("mismatch")
}

type mockTokens struct{}

func (m *mockTokens) GenerateToken(u *domadmin.User) (string, error) {
	return "token-" + u.Email, nil
}

func (m *mockTokens) ParseToken(token string) (*Claims, error) {
	return nil, errors.New("not implemented")
}

func newAuthService() *Service {
	repo := &mockAdminRepository{
		users: map[string]*domadmin.User{
			"admin@store.test": {ID: 1, Name: "Admin", Email: "admin@store.test", PasswordHash: "hash"},
		},
	}
	return NewService(repo, &mockComparer{valid: "secret"}, &mockTokens{})
}

func TestLogin_Success(t *testing.T) {
	svc := newAuthService()

	res, err := svc.Login(context.Background(), LoginInput{Email: " Admin@Store.Test ", Password: "secret"})
	require.NoError(t, err)
	require.Equal(t, "token-admin@store.test", res.Token)
	require.Equal(t, int64(1), res.User.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newAuthService()

	_, err := svc.Login(context.Background(), LoginInput{Email: "admin@store.test", Password: "nope"})
	require.ErrorIs(t, err, domadmin.ErrUnauthorized)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := newAuthService()

	_, err := svc.Login(context.Background(), LoginInput{Email: "ghost@store.test", Password: "secret"})
	require.ErrorIs(t, err, domadmin.ErrUnauthorized)
}

func TestLogin_EmptyCredential(t *testing.T) {
	svc := newAuthService()

	_, err := svc.Login(context.Background(), LoginInput{})
	require.ErrorIs(t, err, domadmin.ErrInvalidCredential)
}
