package auth

import (
	"context"
	"strings"

	domadmin "example.com/iskina-storefront/internal/domain/admin"
)

type PasswordComparer interface {
	Compare(hash string, password string) error
}

type Claims struct {
	UserID int64
	Email  string
	Name   string
}

type TokenService interface {
	GenerateToken(u *domadmin.User) (string, error)
	ParseToken(token string) (*Claims, error)
}

type Service struct {
	adminRepo domadmin.Repository
	checker   PasswordComparer
	tokens    TokenService
}

func NewService(
	adminRepo domadmin.Repository,
	checker PasswordComparer,
	tokens TokenService,
) *Service {
	return &Service{
		adminRepo: adminRepo,
		checker:   checker,
		tokens:    tokens,
	}
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	Token string
	User  *domadmin.User
}

func (s *Service) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" || in.Password == "" {
		return nil, domadmin.ErrInvalidCredential
	}

	u, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, domadmin.ErrUnauthorized
	}

	if err := s.checker.Compare(u.PasswordHash, in.Password); err != nil {
		return nil, domadmin.ErrUnauthorized
	}

	token, err := s.tokens.GenerateToken(u)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token: token,
		User:  u,
	}, nil
}
