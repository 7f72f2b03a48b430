package store

import (
	"fmt"
	"os"

	"github.com/passaudit/passaudit/pkg/jsonutil"
)

// Inventory holds the product catalog. Not safe for concurrent use; the
// store command is a single interactive session.
type Inventory struct {
	products []*Product
}

// inventoryFile is the on-disk shape of a saved inventory.
type inventoryFile struct {
	Products []*Product `json:"products"`
}

// NewInventory returns an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{}
}

// Add inserts a product or merges into an existing one with the same
// name: the price and category are replaced (category only when
// non-empty) and the stock is added on top.
func (inv *Inventory) Add(name string, price float64, stock int, category string) (*Product, error) {
	if existing := inv.Find(name); existing != nil {
		if price < 0 {
			return nil, ErrNegativePrice
		}
		if stock < 0 {
			return nil, ErrNegativeStock
		}
		existing.Price = price
		existing.Stock += stock
		if category != "" {
			existing.Category = category
		}
		return existing, nil
	}

	p, err := NewProduct(name, price, stock, category)
	if err != nil {
		return nil, err
	}
	inv.products = append(inv.products, p)
	return p, nil
}

// Find returns the product matching name (trimmed, case-insensitive),
// or nil.
func (inv *Inventory) Find(name string) *Product {
	for _, p := range inv.products {
		if p.matchName(name) {
			return p
		}
	}
	return nil
}

// Products returns the catalog in insertion order. The slice is a copy;
// the products are shared.
func (inv *Inventory) Products() []*Product {
	out := make([]*Product, len(inv.products))
	copy(out, inv.products)
	return out
}

// ByCategory groups the catalog by category, preserving first-seen
// category order and insertion order within each category.
func (inv *Inventory) ByCategory() ([]string, map[string][]*Product) {
	var order []string
	groups := make(map[string][]*Product)
	for _, p := range inv.products {
		if _, seen := groups[p.Category]; !seen {
			order = append(order, p.Category)
		}
		groups[p.Category] = append(groups[p.Category], p)
	}
	return order, groups
}

// Len returns the number of distinct products.
func (inv *Inventory) Len() int {
	return len(inv.products)
}

// Save writes the inventory to path as JSON.
func (inv *Inventory) Save(path string) error {
	if err := jsonutil.WriteFile(path, inventoryFile{Products: inv.products}); err != nil {
		return fmt.Errorf("save inventory: %w", err)
	}
	return nil
}

// LoadInventory reads an inventory from path. A missing file yields an
// empty inventory; a corrupt file is an error.
func LoadInventory(path string) (*Inventory, error) {
	var file inventoryFile
	if err := jsonutil.ReadFile(path, &file); err != nil {
		if os.IsNotExist(err) {
			return NewInventory(), nil
		}
		return nil, fmt.Errorf("load inventory: %w", err)
	}
	return &Inventory{products: file.Products}, nil
}
