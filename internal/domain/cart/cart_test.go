package cart

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func siomaiSelection() Selection {
	return Selection{
		ItemID:    "siomai",
		Name:      "Siomai",
		BasePrice: 30,
		Variation: &Variation{ID: "large", Name: "Large", PriceDelta: 10},
		AddOns: []AddOn{
			{ID: "sauce", Name: "Extra Sauce", PriceDelta: 5, Quantity: 2},
		},
	}
}

func TestAdd_SameSelectionMergesIntoOneLine(t *testing.T) {
	c := NewLedger()

	c.Add(siomaiSelection(), 1)
	c.Add(siomaiSelection(), 2)

	lines := c.Lines()
	require.Len(t, lines, 1)
	require.Equal(t, int64(3), lines[0].Quantity)
	require.Equal(t, int64(3), c.TotalItems())
}

func TestAdd_AddOnOrderDoesNotAffectIdentity(t *testing.T) {
	first := Selection{
		ItemID:    "kwek",
		Name:      "Kwek-Kwek",
		BasePrice: 25,
		AddOns: []AddOn{
			{ID: "chili", PriceDelta: 3, Quantity: 1},
			{ID: "vinegar", PriceDelta: 2, Quantity: 1},
		},
	}
	second := first
	second.AddOns = []AddOn{
		{ID: "vinegar", PriceDelta: 2, Quantity: 1},
		{ID: "chili", PriceDelta: 3, Quantity: 1},
	}

	c := NewLedger()
	c.Add(first, 1)
	c.Add(second, 1)

	require.Len(t, c.Lines(), 1)
}

func TestAdd_DifferentVariationFormsSeparateLine(t *testing.T) {
	regular := siomaiSelection()
	regular.Variation = &Variation{ID: "regular", Name: "Regular", PriceDelta: 0}

	c := NewLedger()
	c.Add(siomaiSelection(), 1)
	c.Add(regular, 1)

	require.Len(t, c.Lines(), 2)
}

func TestAdd_QuantityBelowOneDefaultsToOne(t *testing.T) {
	c := NewLedger()
	c.Add(siomaiSelection(), 0)

	require.Equal(t, int64(1), c.TotalItems())
}

func TestUnitTotal_IncludesVariationAndAddOnQuantities(t *testing.T) {
	sel := Selection{
		ItemID:    "meal",
		BasePrice: 100,
		Variation: &Variation{ID: "big", PriceDelta: 20},
		AddOns: []AddOn{
			{ID: "a", PriceDelta: 10, Quantity: 1},
			{ID: "b", PriceDelta: 5, Quantity: 2},
		},
	}

	require.Equal(t, int64(140), sel.UnitTotal())

	c := NewLedger()
	c.Add(sel, 3)
	require.Equal(t, int64(420), c.TotalPrice())
}

func TestUpdateQuantity_ZeroRemovesLine(t *testing.T) {
	c := NewLedger()
	sel := siomaiSelection()
	c.Add(sel, 2)

	c.UpdateQuantity(sel.Key(), 0)

	require.Empty(t, c.Lines())
	require.Equal(t, int64(0), c.TotalItems())
	require.Equal(t, int64(0), c.TotalPrice())
}

func TestUpdateQuantity_SetsQuantity(t *testing.T) {
	c := NewLedger()
	sel := siomaiSelection()
	c.Add(sel, 1)

	c.UpdateQuantity(sel.Key(), 5)

	require.Equal(t, int64(5), c.TotalItems())
}

func TestRemove_UnknownKeyIsNoOp(t *testing.T) {
	c := NewLedger()
	c.Add(siomaiSelection(), 1)

	c.Remove("missing|key|")

	require.Len(t, c.Lines(), 1)
}

func TestClear_EmptiesCart(t *testing.T) {
	c := NewLedger()
	c.Add(siomaiSelection(), 2)

	c.Clear()

	require.Empty(t, c.Lines())
	require.Equal(t, int64(0), c.TotalPrice())
}

func TestLines_PreservesInsertionOrder(t *testing.T) {
	c := NewLedger()
	first := siomaiSelection()
	second := Selection{ItemID: "fishball", Name: "Fishball", BasePrice: 15}

	c.Add(first, 1)
	c.Add(second, 1)

	lines := c.Lines()
	require.Equal(t, "Siomai", lines[0].Name)
	require.Equal(t, "Fishball", lines[1].Name)
}
