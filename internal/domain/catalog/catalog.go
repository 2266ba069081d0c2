package catalog

import "context"

type Variation struct {
	ID         string
	Name       string
	PriceDelta int64
}

type AddOn struct {
	ID         string
	Name       string
	PriceDelta int64
}

type MenuItem struct {
	ID          string
	Name        string
	Description string
	BasePrice   int64
	CategoryID  string
	ImageURL    string
	Available   bool
	Variations  []Variation
	AddOns      []AddOn
}

// Variation looks up one of the item's configured variations.
func (m *MenuItem) Variation(id string) (*Variation, bool) {
	for i := range m.Variations {
		if m.Variations[i].ID == id {
			return &m.Variations[i], true
		}
	}
	return nil, false
}

// AddOn looks up one of the item's configured add-ons.
func (m *MenuItem) AddOn(id string) (*AddOn, bool) {
	for i := range m.AddOns {
		if m.AddOns[i].ID == id {
			return &m.AddOns[i], true
		}
	}
	return nil, false
}

type Category struct {
	ID        string
	Name      string
	SortOrder int
}

type ListFilter struct {
	CategoryID string
}

type Repository interface {
	ListItems(ctx context.Context, filter ListFilter) ([]*MenuItem, error)
	GetItem(ctx context.Context, id string) (*MenuItem, error)
	CreateItem(ctx context.Context, item *MenuItem) (*MenuItem, error)
	UpdateItem(ctx context.Context, item *MenuItem) (*MenuItem, error)
	DeleteItem(ctx context.Context, id string) error

	ListCategories(ctx context.Context) ([]*Category, error)
	CreateCategory(ctx context.Context, c *Category) (*Category, error)
	UpdateCategory(ctx context.Context, c *Category) (*Category, error)
	DeleteCategory(ctx context.Context, id string) error
}
