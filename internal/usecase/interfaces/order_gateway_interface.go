package interfaces

import (
	"context"

	"cianorte_vendas/internal/domain/entities"
)

// IOrderGateway abstracts the external Order API. CreateOrder submits a cart
// snapshot on behalf of the bearer credential and returns the order with the
// server-issued id and authoritative total.
//
// Callers must never invoke it with an empty item list; the checkout state
// machine guards that.

type IOrderGateway interface {
	CreateOrder(ctx context.Context, token string, items []entities.OrderItem) (entities.Order, error)
}
