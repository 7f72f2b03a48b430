package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureInventory(t *testing.T) *Inventory {
	t.Helper()
	inv := NewInventory()
	for _, p := range []struct {
		name  string
		price float64
		stock int
	}{
		{"Coffee", 4.5, 10},
		{"Bread", 2.25, 2},
	} {
		_, err := inv.Add(p.name, p.price, p.stock, "")
		require.NoError(t, err)
	}
	return inv
}

func TestCartAddReservesStock(t *testing.T) {
	inv := fixtureInventory(t)
	cart := NewCart()

	require.NoError(t, cart.Add(inv.Find("Coffee"), 3))

	assert.Equal(t, 7, inv.Find("Coffee").Stock, "stock is reserved immediately")
	require.Len(t, cart.Items(), 1)
	assert.Equal(t, 3, cart.Items()[0].Quantity)
}

func TestCartAddMergesQuantities(t *testing.T) {
	inv := fixtureInventory(t)
	cart := NewCart()

	require.NoError(t, cart.Add(inv.Find("Coffee"), 2))
	require.NoError(t, cart.Add(inv.Find("Coffee"), 3))

	require.Len(t, cart.Items(), 1)
	assert.Equal(t, 5, cart.Items()[0].Quantity)
	assert.Equal(t, 5, inv.Find("Coffee").Stock)
}

func TestCartAddRejectsBadQuantity(t *testing.T) {
	inv := fixtureInventory(t)
	cart := NewCart()

	assert.ErrorIs(t, cart.Add(inv.Find("Coffee"), 0), ErrInvalidQuantity)
	assert.ErrorIs(t, cart.Add(inv.Find("Coffee"), -2), ErrInvalidQuantity)
	assert.ErrorIs(t, cart.Add(inv.Find("Bread"), 3), ErrInsufficientStock)
	assert.Equal(t, 2, inv.Find("Bread").Stock, "failed add must not touch stock")
}

func TestCartRemoveRestoresStock(t *testing.T) {
	inv := fixtureInventory(t)
	cart := NewCart()
	require.NoError(t, cart.Add(inv.Find("Coffee"), 4))

	require.NoError(t, cart.Remove("coffee"))

	assert.Equal(t, 10, inv.Find("Coffee").Stock)
	assert.True(t, cart.IsEmpty())
	assert.ErrorIs(t, cart.Remove("Coffee"), ErrNotInCart)
}

func TestCartTotal(t *testing.T) {
	inv := fixtureInventory(t)
	cart := NewCart()
	require.NoError(t, cart.Add(inv.Find("Coffee"), 2)) // 9.00
	require.NoError(t, cart.Add(inv.Find("Bread"), 1))  // 2.25

	assert.InDelta(t, 11.25, cart.Total(), 0.0001)
}

// TestCartClearKeepsStockSold verifies Clear (post-checkout) does not
// restore stock: the reserved units were sold.
func TestCartClearKeepsStockSold(t *testing.T) {
	inv := fixtureInventory(t)
	cart := NewCart()
	require.NoError(t, cart.Add(inv.Find("Coffee"), 4))

	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.Equal(t, 6, inv.Find("Coffee").Stock)
}

func TestCartItemString(t *testing.T) {
	inv := fixtureInventory(t)
	cart := NewCart()
	require.NoError(t, cart.Add(inv.Find("Coffee"), 2))

	assert.Equal(t, "Coffee x2 - $9.00", cart.Items()[0].String())
}
