package store

import (
	"fmt"

	"github.com/passaudit/passaudit/pkg/defaults"
)

// CartItem is one product entry inside a cart.
type CartItem struct {
	Product  *Product `json:"product"`
	Quantity int      `json:"quantity"`
}

// Subtotal returns price times quantity for this entry.
func (it *CartItem) Subtotal() float64 {
	return it.Product.Price * float64(it.Quantity)
}

// String renders the item the way the cart view displays it.
func (it *CartItem) String() string {
	return fmt.Sprintf("%s x%d - %s%.2f", it.Product.Name, it.Quantity, defaults.CurrencySymbol, it.Subtotal())
}

// Cart collects items for one customer session. Stock is reserved
// eagerly: Add decrements product stock, Remove restores it.
type Cart struct {
	items []*CartItem
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

func (c *Cart) find(name string) *CartItem {
	for _, it := range c.items {
		if it.Product.matchName(name) {
			return it
		}
	}
	return nil
}

// Add reserves quantity units of p. Quantities for a product already in
// the cart are merged.
func (c *Cart) Add(p *Product, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if p.Stock < quantity {
		return fmt.Errorf("%w: %d requested, %d in stock", ErrInsufficientStock, quantity, p.Stock)
	}

	p.Stock -= quantity
	if existing := c.find(p.Name); existing != nil {
		existing.Quantity += quantity
		return nil
	}
	c.items = append(c.items, &CartItem{Product: p, Quantity: quantity})
	return nil
}

// Remove drops the named product from the cart entirely and restores
// its stock.
func (c *Cart) Remove(name string) error {
	for i, it := range c.items {
		if it.Product.matchName(name) {
			it.Product.Stock += it.Quantity
			c.items = append(c.items[:i], c.items[i+1:]...)
			return nil
		}
	}
	return ErrNotInCart
}

// Items returns the cart entries in insertion order.
func (c *Cart) Items() []*CartItem {
	out := make([]*CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Total sums the subtotals of every entry.
func (c *Cart) Total() float64 {
	var total float64
	for _, it := range c.items {
		total += it.Subtotal()
	}
	return total
}

// IsEmpty reports whether the cart has no entries.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Clear drops every entry without restoring stock. Used after checkout,
// when the reserved stock has been sold.
func (c *Cart) Clear() {
	c.items = nil
}
