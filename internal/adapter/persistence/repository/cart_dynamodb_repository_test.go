package repository

import (
	"testing"
	"time"

	"cianorte_vendas/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartRecordRoundTrip(t *testing.T) {
	unit, _ := decimal.NewFromString("10.99")
	now := time.Date(2025, 6, 1, 12, 0, 0, 123456789, time.UTC)

	cart := entities.Cart{
		UserID: "u1",
		Items: []entities.CartItem{
			{ProductID: "p1", Name: "Filtro de ar", UnitPrice: unit, Quantity: 3, ImageURL: "http://img/p1.png"},
		},
		CreatedAt: now,
		UpdatedAt: now.Add(time.Minute),
	}

	got, err := fromCartRecord(toCartRecord(cart))
	require.NoError(t, err)

	assert.Equal(t, cart.UserID, got.UserID)
	require.Len(t, got.Items, 1)
	assert.True(t, got.Items[0].UnitPrice.Equal(unit), "price must survive exactly, got %s", got.Items[0].UnitPrice)
	assert.Equal(t, 3, got.Items[0].Quantity)
	assert.True(t, got.CreatedAt.Equal(cart.CreatedAt))
	assert.True(t, got.UpdatedAt.Equal(cart.UpdatedAt))
}

func TestFromCartRecordRejectsBadPrice(t *testing.T) {
	rec := cartItemRecord{
		UserID: "u1",
		Items:  []cartLineItem{{ProductID: "p1", Name: "A", UnitPrice: "not-a-number", Quantity: 1}},
	}
	_, err := fromCartRecord(rec)
	require.Error(t, err)
}
