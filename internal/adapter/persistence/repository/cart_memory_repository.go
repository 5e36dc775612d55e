package repository

import (
	"context"
	"sync"

	"cianorte_vendas/internal/domain/entities"
	"cianorte_vendas/internal/usecase/interfaces"
)

// CartMemoryRepository is the in-process cart store used for development and
// tests. Carts are copied on the way in and out so callers never share
// slices with the store.

type CartMemoryRepository struct {
	mu    sync.RWMutex
	carts map[string]entities.Cart
}

var _ interfaces.ICartRepository = (*CartMemoryRepository)(nil)

func NewCartMemoryRepository() *CartMemoryRepository {
	return &CartMemoryRepository{carts: make(map[string]entities.Cart)}
}

func (r *CartMemoryRepository) Get(_ context.Context, userID string) (entities.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cart, ok := r.carts[userID]
	if !ok {
		return entities.Cart{}, nil
	}
	return copyCart(cart), nil
}

func (r *CartMemoryRepository) Save(_ context.Context, cart entities.Cart) (entities.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.carts[cart.UserID] = copyCart(cart)
	return cart, nil
}

func (r *CartMemoryRepository) Delete(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, userID)
	return nil
}

func copyCart(cart entities.Cart) entities.Cart {
	out := cart
	out.Items = make([]entities.CartItem, len(cart.Items))
	copy(out.Items, cart.Items)
	return out
}
