package repository

import (
	"context"
	"testing"

	"cianorte_vendas/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutSessionMemoryRepository_AcquireBusy(t *testing.T) {
	ctx := context.Background()

	t.Run("missing session does not acquire", func(t *testing.T) {
		repo := NewCheckoutSessionMemoryRepository()

		s, acquired, err := repo.AcquireBusy(ctx, "u1")
		require.NoError(t, err)
		assert.False(t, acquired)
		assert.Empty(t, s.ID)
	})

	t.Run("second acquire fails until released", func(t *testing.T) {
		repo := NewCheckoutSessionMemoryRepository()
		_, err := repo.Save(ctx, entities.CheckoutSession{ID: "sess-1", UserID: "u1", Step: entities.CheckoutStepReview})
		require.NoError(t, err)

		_, acquired, err := repo.AcquireBusy(ctx, "u1")
		require.NoError(t, err)
		require.True(t, acquired)

		s, acquired, err := repo.AcquireBusy(ctx, "u1")
		require.NoError(t, err)
		assert.False(t, acquired)
		assert.True(t, s.Busy)

		require.NoError(t, repo.ReleaseBusy(ctx, "u1"))

		_, acquired, err = repo.AcquireBusy(ctx, "u1")
		require.NoError(t, err)
		assert.True(t, acquired)
	})

	t.Run("release is a no-op for missing sessions", func(t *testing.T) {
		repo := NewCheckoutSessionMemoryRepository()
		assert.NoError(t, repo.ReleaseBusy(ctx, "u1"))
	})
}

func TestCheckoutSessionMemoryRepository_CopySemantics(t *testing.T) {
	ctx := context.Background()
	repo := NewCheckoutSessionMemoryRepository()

	order := entities.Order{ID: "ord-1", Items: []entities.OrderItem{{ProductID: "p1", Quantity: 1}}}
	_, err := repo.Save(ctx, entities.CheckoutSession{ID: "sess-1", UserID: "u1", Step: entities.CheckoutStepPaymentMethod, Order: &order})
	require.NoError(t, err)

	got, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, got.Order)
	got.Order.ID = "tampered"
	got.Order.Items[0].Quantity = 99

	again, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "ord-1", again.Order.ID)
	assert.Equal(t, 1, again.Order.Items[0].Quantity)
}

func TestCheckoutSessionMemoryRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewCheckoutSessionMemoryRepository()

	_, err := repo.Save(ctx, entities.CheckoutSession{ID: "sess-1", UserID: "u1"})
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, "u1"))

	s, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, s.ID)
}
