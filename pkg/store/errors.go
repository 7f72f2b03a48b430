package store

import "errors"

// Sentinel errors for store operations.
// Callers should use errors.Is() to check for these.
var (
	// ErrEmptyName indicates a product with a blank name.
	ErrEmptyName = errors.New("store: product name is empty")

	// ErrNegativePrice indicates a product priced below zero.
	ErrNegativePrice = errors.New("store: price cannot be negative")

	// ErrNegativeStock indicates a product with negative stock.
	ErrNegativeStock = errors.New("store: stock cannot be negative")

	// ErrInvalidQuantity indicates a non-positive cart quantity.
	ErrInvalidQuantity = errors.New("store: quantity must be positive")

	// ErrInsufficientStock indicates the requested quantity exceeds stock.
	ErrInsufficientStock = errors.New("store: not enough stock available")

	// ErrNotInCart indicates the named product has no cart entry.
	ErrNotInCart = errors.New("store: item not in cart")
)
