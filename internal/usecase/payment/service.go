package payment

import (
	"context"
	"strings"

	"github.com/google/uuid"

	dom "example.com/iskina-storefront/internal/domain/payment"
)

type Service struct {
	repo dom.Repository
}

func NewService(repo dom.Repository) *Service {
	return &Service{repo: repo}
}

// List returns methods in provider order; the first element is the default
// the checkout flow offers to customers who have not chosen yet.
func (s *Service) List(ctx context.Context) ([]*dom.Method, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*dom.Method, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, m *dom.Method) (*dom.Method, error) {
	if strings.TrimSpace(m.Name) == "" {
		return nil, dom.ErrInvalidMethod
	}
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return s.repo.Create(ctx, m)
}

func (s *Service) Update(ctx context.Context, m *dom.Method) (*dom.Method, error) {
	existed, err := s.repo.GetByID(ctx, m.ID)
	if err != nil {
		return nil, err
	}
	if m.Name == "" {
		m.Name = existed.Name
	}
	return s.repo.Update(ctx, m)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
