package store

import (
	"fmt"
	"strings"

	"github.com/passaudit/passaudit/pkg/defaults"
)

// Product is one inventory entry. Stock is live: adding a product to a
// cart decrements it immediately, removing it from the cart restores it.
type Product struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	Category string  `json:"category"`
}

// NewProduct validates and constructs a product. The name is trimmed and
// an empty category falls back to the default.
func NewProduct(name string, price float64, stock int, category string) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if price < 0 {
		return nil, ErrNegativePrice
	}
	if stock < 0 {
		return nil, ErrNegativeStock
	}
	if category == "" {
		category = defaults.DefaultCategory
	}
	return &Product{Name: name, Price: price, Stock: stock, Category: category}, nil
}

// String renders the product the way listings display it.
func (p *Product) String() string {
	return fmt.Sprintf("%s - %s%.2f (Stock: %d)", p.Name, defaults.CurrencySymbol, p.Price, p.Stock)
}

// matchName reports whether p's name matches the given name after
// trimming and case folding. All product lookups go through this.
func (p *Product) matchName(name string) bool {
	return strings.EqualFold(p.Name, strings.TrimSpace(name))
}
