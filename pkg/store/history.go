package store

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/passaudit/passaudit/pkg/jsonutil"
)

// PurchaseItem is one line of a recorded order. It snapshots the price
// at purchase time so later price changes do not rewrite history.
type PurchaseItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Order is one completed checkout.
type Order struct {
	ID       string         `json:"id"`
	PlacedAt time.Time      `json:"placed_at"`
	Items    []PurchaseItem `json:"items"`
	Total    float64        `json:"total"`
}

// History stores per-user purchase records and persists them to a JSON
// file after every change.
type History struct {
	path  string
	Users map[string][]Order `json:"users"`
}

// historyFile is the on-disk shape of the history database.
type historyFile struct {
	Users map[string][]Order `json:"users"`
}

// LoadHistory opens the history database at path. Missing or corrupt
// files yield an empty database rather than an error; history is not
// worth refusing to trade over.
func LoadHistory(path string) *History {
	h := &History{path: path, Users: make(map[string][]Order)}
	var file historyFile
	if err := jsonutil.ReadFile(path, &file); err == nil && file.Users != nil {
		h.Users = file.Users
	}
	return h
}

// Record appends an order for username from the given cart items and
// saves the database. The order gets a fresh ID and timestamp.
func (h *History) Record(username string, items []*CartItem, total float64) (Order, error) {
	order := Order{
		ID:       uuid.NewString(),
		PlacedAt: time.Now().UTC(),
		Total:    total,
	}
	for _, it := range items {
		order.Items = append(order.Items, PurchaseItem{
			Name:     it.Product.Name,
			Quantity: it.Quantity,
			Price:    it.Product.Price,
		})
	}

	h.Users[username] = append(h.Users[username], order)
	if err := h.save(); err != nil {
		return Order{}, err
	}
	return order, nil
}

// Orders returns the recorded orders for username, oldest first.
func (h *History) Orders(username string) []Order {
	return h.Users[username]
}

func (h *History) save() error {
	if err := jsonutil.WriteFile(h.path, historyFile{Users: h.Users}); err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	return nil
}

// Reset discards all records and removes the backing file.
func (h *History) Reset() error {
	h.Users = make(map[string][]Order)
	if err := os.Remove(h.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reset history: %w", err)
	}
	return nil
}
