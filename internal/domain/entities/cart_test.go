package entities

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCartAdd(t *testing.T) {
	t.Run("merges lines with the same product id", func(t *testing.T) {
		cart := Cart{UserID: "u1"}
		cart.Add(CartItem{ProductID: "p1", Name: "Filtro de óleo", UnitPrice: price("10.00"), Quantity: 2})
		cart.Add(CartItem{ProductID: "p1", Name: "Filtro de óleo", UnitPrice: price("10.00"), Quantity: 3})

		require.Len(t, cart.Items, 1)
		assert.Equal(t, 5, cart.Items[0].Quantity)
	})

	t.Run("incoming product data wins on merge", func(t *testing.T) {
		cart := Cart{UserID: "u1"}
		cart.Add(CartItem{ProductID: "p1", Name: "Old name", UnitPrice: price("10.00"), Quantity: 1})
		cart.Add(CartItem{ProductID: "p1", Name: "New name", UnitPrice: price("12.50"), Quantity: 1})

		require.Len(t, cart.Items, 1)
		assert.Equal(t, "New name", cart.Items[0].Name)
		assert.True(t, cart.Items[0].UnitPrice.Equal(price("12.50")))
		assert.Equal(t, 2, cart.Items[0].Quantity)
	})

	t.Run("clamps quantity below one", func(t *testing.T) {
		cart := Cart{UserID: "u1"}
		cart.Add(CartItem{ProductID: "p1", Name: "Item", UnitPrice: price("1.00"), Quantity: 0})
		cart.Add(CartItem{ProductID: "p2", Name: "Item", UnitPrice: price("1.00"), Quantity: -3})

		require.Len(t, cart.Items, 2)
		assert.Equal(t, 1, cart.Items[0].Quantity)
		assert.Equal(t, 1, cart.Items[1].Quantity)
	})
}

func TestCartUpdateQuantity(t *testing.T) {
	t.Run("zero removes the line", func(t *testing.T) {
		cart := Cart{UserID: "u1"}
		cart.Add(CartItem{ProductID: "p1", Name: "Item", UnitPrice: price("5.00"), Quantity: 2})

		assert.True(t, cart.UpdateQuantity("p1", 0))
		assert.True(t, cart.IsEmpty())
	})

	t.Run("sets absolute quantity", func(t *testing.T) {
		cart := Cart{UserID: "u1"}
		cart.Add(CartItem{ProductID: "p1", Name: "Item", UnitPrice: price("5.00"), Quantity: 2})

		assert.True(t, cart.UpdateQuantity("p1", 7))
		assert.Equal(t, 7, cart.Items[0].Quantity)
	})

	t.Run("unknown product returns false", func(t *testing.T) {
		cart := Cart{UserID: "u1"}
		assert.False(t, cart.UpdateQuantity("missing", 1))
	})
}

func TestCartTotal(t *testing.T) {
	cart := Cart{UserID: "u1"}
	cart.Add(CartItem{ProductID: "p1", Name: "A", UnitPrice: price("0.10"), Quantity: 3})
	cart.Add(CartItem{ProductID: "p2", Name: "B", UnitPrice: price("19.90"), Quantity: 1})

	// 0.10*3 + 19.90 must be exactly 20.20, no float drift.
	assert.True(t, cart.Total().Equal(price("20.20")), "got %s", cart.Total())
	assert.Equal(t, 4, cart.ItemCount())
}

func TestCartSnapshot(t *testing.T) {
	cart := Cart{UserID: "u1"}
	cart.Add(CartItem{ProductID: "p1", Name: "A", UnitPrice: price("10.00"), Quantity: 2})

	snapshot := cart.Snapshot()
	require.Len(t, snapshot, 1)
	assert.Equal(t, "p1", snapshot[0].ProductID)
	assert.Equal(t, 2, snapshot[0].Quantity)

	// Later cart mutations must not touch the snapshot.
	cart.UpdateQuantity("p1", 9)
	assert.Equal(t, 2, snapshot[0].Quantity)
}

func TestCartRemoveAndClear(t *testing.T) {
	cart := Cart{UserID: "u1"}
	cart.Add(CartItem{ProductID: "p1", Name: "A", UnitPrice: price("1.00"), Quantity: 1})
	cart.Add(CartItem{ProductID: "p2", Name: "B", UnitPrice: price("2.00"), Quantity: 1})

	assert.True(t, cart.Remove("p1"))
	assert.False(t, cart.Remove("p1"))
	require.Len(t, cart.Items, 1)

	cart.Clear()
	assert.True(t, cart.IsEmpty())
}
