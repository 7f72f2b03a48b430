// Package store implements the inventory and shopping-cart model behind
// the store subcommand: products with stock, a cart that reserves stock
// as items are added, and per-user purchase history. Inventory and
// history persist as JSON files.
package store
