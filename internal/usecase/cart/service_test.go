package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	domcatalog "example.com/iskina-storefront/internal/domain/catalog"
	ucsession "example.com/iskina-storefront/internal/usecase/session"
)

type mockCatalogRepository struct {
	items map[string]*domcatalog.MenuItem
}

func newMockCatalogRepository() *mockCatalogRepository {
	return &mockCatalogRepository{
		items: map[string]*domcatalog.MenuItem{
			"siomai": {
				ID:        "siomai",
				Name:      "Siomai",
				BasePrice: 30,
				Available: true,
				Variations: []domcatalog.Variation{
					{ID: "regular", Name: "Regular", PriceDelta: 0},
					{ID: "large", Name: "Large", PriceDelta: 10},
				},
				AddOns: []domcatalog.AddOn{
					{ID: "sauce", Name: "Extra Sauce", PriceDelta: 5},
				},
			},
			"soldout": {
				ID:        "soldout",
				Name:      "Sold Out Item",
				BasePrice: 50,
				Available: false,
			},
		},
	}
}

func (m *mockCatalogRepository) GetItem(ctx context.Context, id string) (*domcatalog.MenuItem, error) {
	if item, ok := m.items[id]; ok {
		cloned := *item
		return &cloned, nil
	}
	return nil, domcatalog.ErrItemNotFound
}

func newTestService(t *testing.T) (*Service, string) {
	t.Helper()
	store := ucsession.NewStore()
	sess, err := store.Create("101")
	require.NoError(t, err)
	return NewService(store, newMockCatalogRepository()), sess.ID
}

func TestAdd_PricesComeFromCatalog(t *testing.T) {
	svc, sessionID := newTestService(t)

	ledger, err := svc.Add(context.Background(), sessionID, AddInput{
		ItemID:      "siomai",
		VariationID: "large",
		AddOns:      []AddOnInput{{ID: "sauce", Quantity: 2}},
		Quantity:    2,
	})
	require.NoError(t, err)

	lines := ledger.Lines()
	require.Len(t, lines, 1)
	require.Equal(t, "Siomai", lines[0].Name)
	require.Equal(t, int64(50), lines[0].UnitTotal()) // 30 + 10 + 5*2
	require.Equal(t, int64(100), lines[0].Total())
}

func TestAdd_SameSelectionTwiceMerges(t *testing.T) {
	svc, sessionID := newTestService(t)
	in := AddInput{ItemID: "siomai", VariationID: "large", Quantity: 1}

	_, err := svc.Add(context.Background(), sessionID, in)
	require.NoError(t, err)
	in.Quantity = 2
	ledger, err := svc.Add(context.Background(), sessionID, in)
	require.NoError(t, err)

	require.Len(t, ledger.Lines(), 1)
	require.Equal(t, int64(3), ledger.TotalItems())
}

func TestAdd_UnknownItem(t *testing.T) {
	svc, sessionID := newTestService(t)

	_, err := svc.Add(context.Background(), sessionID, AddInput{ItemID: "nope"})
	require.ErrorIs(t, err, domcatalog.ErrItemNotFound)
}

func TestAdd_UnavailableItem(t *testing.T) {
	svc, sessionID := newTestService(t)

	_, err := svc.Add(context.Background(), sessionID, AddInput{ItemID: "soldout"})
	require.ErrorIs(t, err, domcatalog.ErrItemUnavailable)
}

func TestAdd_UnknownVariationOrAddOn(t *testing.T) {
	svc, sessionID := newTestService(t)

	_, err := svc.Add(context.Background(), sessionID, AddInput{ItemID: "siomai", VariationID: "mega"})
	require.ErrorIs(t, err, domcatalog.ErrVariationNotFound)

	_, err = svc.Add(context.Background(), sessionID, AddInput{
		ItemID: "siomai",
		AddOns: []AddOnInput{{ID: "cheese"}},
	})
	require.ErrorIs(t, err, domcatalog.ErrAddOnNotFound)
}

func TestAdd_UnknownSession(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Add(context.Background(), "missing", AddInput{ItemID: "siomai"})
	require.ErrorIs(t, err, ucsession.ErrSessionNotFound)
}

func TestUpdateQuantityToZeroEmptiesCart(t *testing.T) {
	svc, sessionID := newTestService(t)

	ledger, err := svc.Add(context.Background(), sessionID, AddInput{ItemID: "siomai", Quantity: 2})
	require.NoError(t, err)
	key := ledger.Lines()[0].Key()

	ledger, err = svc.UpdateQuantity(context.Background(), sessionID, key, 0)
	require.NoError(t, err)
	require.Empty(t, ledger.Lines())
	require.Equal(t, int64(0), ledger.TotalItems())
}

func TestClear(t *testing.T) {
	svc, sessionID := newTestService(t)

	_, err := svc.Add(context.Background(), sessionID, AddInput{ItemID: "siomai"})
	require.NoError(t, err)
	require.NoError(t, svc.Clear(context.Background(), sessionID))

	ledger, err := svc.Get(context.Background(), sessionID)
	require.NoError(t, err)
	require.Empty(t, ledger.Lines())
}
