package interfaces

import (
	"context"

	"cianorte_vendas/internal/domain/entities"
)

// ICartRepository abstracts cart persistence. Implementations return a
// zero-value cart (no error) when the user has none yet.
//
// Cart lifetime = user session. The DynamoDB implementation keeps the cart
// across an authentication round-trip so the user never reassembles it.

type ICartRepository interface {
	Get(ctx context.Context, userID string) (entities.Cart, error)
	Save(ctx context.Context, cart entities.Cart) (entities.Cart, error)
	Delete(ctx context.Context, userID string) error
}
