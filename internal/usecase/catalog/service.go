package catalog

import (
	"context"
	"strings"

	"github.com/google/uuid"

	dom "example.com/iskina-storefront/internal/domain/catalog"
)

type Service struct {
	repo dom.Repository
}

func NewService(repo dom.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListMenu(ctx context.Context, categoryID string) ([]*dom.MenuItem, error) {
	return s.repo.ListItems(ctx, dom.ListFilter{CategoryID: categoryID})
}

func (s *Service) GetItem(ctx context.Context, id string) (*dom.MenuItem, error) {
	return s.repo.GetItem(ctx, id)
}

func (s *Service) ListCategories(ctx context.Context) ([]*dom.Category, error) {
	return s.repo.ListCategories(ctx)
}

func validateItem(item *dom.MenuItem) error {
	if strings.TrimSpace(item.Name) == "" {
		return dom.ErrInvalidName
	}
	if item.BasePrice < 0 {
		return dom.ErrInvalidPrice
	}
	// A variation or add-on must never drive a unit price negative.
	for _, v := range item.Variations {
		if item.BasePrice+v.PriceDelta < 0 {
			return dom.ErrInvalidPrice
		}
	}
	for _, a := range item.AddOns {
		if a.PriceDelta < 0 {
			return dom.ErrInvalidPrice
		}
	}
	return nil
}

func (s *Service) CreateItem(ctx context.Context, item *dom.MenuItem) (*dom.MenuItem, error) {
	if err := validateItem(item); err != nil {
		return nil, err
	}
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	for i := range item.Variations {
		if item.Variations[i].ID == "" {
			item.Variations[i].ID = uuid.New().String()
		}
	}
	for i := range item.AddOns {
		if item.AddOns[i].ID == "" {
			item.AddOns[i].ID = uuid.New().String()
		}
	}
	return s.repo.CreateItem(ctx, item)
}

func (s *Service) UpdateItem(ctx context.Context, item *dom.MenuItem) (*dom.MenuItem, error) {
	if err := validateItem(item); err != nil {
		return nil, err
	}
	if _, err := s.repo.GetItem(ctx, item.ID); err != nil {
		return nil, err
	}
	for i := range item.Variations {
		if item.Variations[i].ID == "" {
			item.Variations[i].ID = uuid.New().String()
		}
	}
	for i := range item.AddOns {
		if item.AddOns[i].ID == "" {
			item.AddOns[i].ID = uuid.New().String()
		}
	}
	return s.repo.UpdateItem(ctx, item)
}

func (s *Service) DeleteItem(ctx context.Context, id string) error {
	return s.repo.DeleteItem(ctx, id)
}

func (s *Service) CreateCategory(ctx context.Context, c *dom.Category) (*dom.Category, error) {
	if strings.TrimSpace(c.Name) == "" {
		return nil, dom.ErrInvalidName
	}
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return s.repo.CreateCategory(ctx, c)
}

func (s *Service) UpdateCategory(ctx context.Context, c *dom.Category) (*dom.Category, error) {
	if strings.TrimSpace(c.Name) == "" {
		return nil, dom.ErrInvalidName
	}
	return s.repo.UpdateCategory(ctx, c)
}

func (s *Service) DeleteCategory(ctx context.Context, id string) error {
	return s.repo.DeleteCategory(ctx, id)
}
