package cart

import (
	"sort"
	"strconv"
	"strings"
)

type Variation struct {
	ID         string
	Name       string
	PriceDelta int64
}

type AddOn struct {
	ID         string
	Name       string
	PriceDelta int64
	Quantity   int64
}

// Selection is one fully configured menu item: the item itself plus the
// variation and add-ons the customer picked. Two selections with the same
// Key belong to the same cart line.
type Selection struct {
	ItemID    string
	Name      string
	BasePrice int64
	Variation *Variation
	AddOns    []AddOn
}

// Key identifies a line for merge and update purposes: item id, variation id
// and the add-on set sorted by id then quantity.
func (s Selection) Key() string {
	var b strings.Builder
	b.WriteString(s.ItemID)
	b.WriteByte('|')
	if s.Variation != nil {
		b.WriteString(s.Variation.ID)
	}
	b.WriteByte('|')

	addOns := make([]AddOn, len(s.AddOns))
	copy(addOns, s.AddOns)
	sort.Slice(addOns, func(i, j int) bool {
		if addOns[i].ID != addOns[j].ID {
			return addOns[i].ID < addOns[j].ID
		}
		return addOns[i].Quantity < addOns[j].Quantity
	})
	for i, a := range addOns {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(a.ID)
		b.WriteByte(':')
		b.WriteString(strconv.FormatInt(a.Quantity, 10))
	}
	return b.String()
}

// UnitTotal is the price of a single unit of this selection.
func (s Selection) UnitTotal() int64 {
	total := s.BasePrice
	if s.Variation != nil {
		total += s.Variation.PriceDelta
	}
	for _, a := range s.AddOns {
		total += a.PriceDelta * a.Quantity
	}
	if total < 0 {
		return 0
	}
	return total
}

type Line struct {
	Selection
	Quantity int64
}

func (l Line) Total() int64 {
	return l.UnitTotal() * l.Quantity
}

// Ledger holds the lines of one customer's cart in insertion order.
// It is owned by a single session; callers serialize access.
type Ledger struct {
	lines []Line
}

func NewLedger() *Ledger {
	return &Ledger{}
}

// Add merges the selection into an existing line with the same key, or
// appends a new line. A quantity below 1 is treated as 1.
func (c *Ledger) Add(sel Selection, quantity int64) {
	if quantity < 1 {
		quantity = 1
	}
	key := sel.Key()
	for i := range c.lines {
		if c.lines[i].Key() == key {
			c.lines[i].Quantity += quantity
			return
		}
	}
	c.lines = append(c.lines, Line{Selection: sel, Quantity: quantity})
}

// UpdateQuantity sets the quantity of the line with the given key.
// A quantity of zero or less removes the line.
func (c *Ledger) UpdateQuantity(key string, quantity int64) {
	if quantity <= 0 {
		c.Remove(key)
		return
	}
	for i := range c.lines {
		if c.lines[i].Key() == key {
			c.lines[i].Quantity = quantity
			return
		}
	}
}

// Remove deletes the line with the given key; unknown keys are a no-op.
func (c *Ledger) Remove(key string) {
	for i := range c.lines {
		if c.lines[i].Key() == key {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

func (c *Ledger) Clear() {
	c.lines = nil
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Ledger) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Ledger) TotalItems() int64 {
	var n int64
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

func (c *Ledger) TotalPrice() int64 {
	var total int64
	for _, l := range c.lines {
		total += l.Total()
	}
	return total
}
