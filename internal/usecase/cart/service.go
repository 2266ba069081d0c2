package cart

import (
	"context"

	domcart "example.com/iskina-storefront/internal/domain/cart"
	domcatalog "example.com/iskina-storefront/internal/domain/catalog"
	ucsession "example.com/iskina-storefront/internal/usecase/session"
)

type SessionStore interface {
	Get(id string) (*ucsession.Session, error)
}

type CatalogRepository interface {
	GetItem(ctx context.Context, id string) (*domcatalog.MenuItem, error)
}

type Service struct {
	sessions SessionStore
	catalog  CatalogRepository
}

func NewService(sessions SessionStore, catalog CatalogRepository) *Service {
	return &Service{sessions: sessions, catalog: catalog}
}

type AddOnInput struct {
	ID       string
	Quantity int64
}

type AddInput struct {
	ItemID      string
	VariationID string
	AddOns      []AddOnInput
	Quantity    int64
}

// Add resolves the selection against the catalog and puts it in the session
// cart. Names and prices come from the catalog record, never from the
// caller. A quantity below 1 defaults to 1.
func (s *Service) Add(ctx context.Context, sessionID string, in AddInput) (*domcart.Ledger, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	item, err := s.catalog.GetItem(ctx, in.ItemID)
	if err != nil {
		return nil, err
	}
	if !item.Available {
		return nil, domcatalog.ErrItemUnavailable
	}

	sel := domcart.Selection{
		ItemID:    item.ID,
		Name:      item.Name,
		BasePrice: item.BasePrice,
	}

	if in.VariationID != "" {
		v, ok := item.Variation(in.VariationID)
		if !ok {
			return nil, domcatalog.ErrVariationNotFound
		}
		sel.Variation = &domcart.Variation{ID: v.ID, Name: v.Name, PriceDelta: v.PriceDelta}
	}

	for _, a := range in.AddOns {
		conf, ok := item.AddOn(a.ID)
		if !ok {
			return nil, domcatalog.ErrAddOnNotFound
		}
		qty := a.Quantity
		if qty < 1 {
			qty = 1
		}
		sel.AddOns = append(sel.AddOns, domcart.AddOn{
			ID:         conf.ID,
			Name:       conf.Name,
			PriceDelta: conf.PriceDelta,
			Quantity:   qty,
		})
	}

	sess.Cart.Add(sel, in.Quantity)
	return sess.Cart, nil
}

func (s *Service) Get(ctx context.Context, sessionID string) (*domcart.Ledger, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return sess.Cart, nil
}

func (s *Service) UpdateQuantity(ctx context.Context, sessionID, lineKey string, quantity int64) (*domcart.Ledger, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	sess.Cart.UpdateQuantity(lineKey, quantity)
	return sess.Cart, nil
}

func (s *Service) Remove(ctx context.Context, sessionID, lineKey string) (*domcart.Ledger, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	sess.Cart.Remove(lineKey)
	return sess.Cart, nil
}

func (s *Service) Clear(ctx context.Context, sessionID string) error {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return err
	}
	sess.Cart.Clear()
	return nil
}
