package interfaces

import (
	"context"

	"cianorte_vendas/internal/domain/entities"
)

// ICheckoutSessionRepository stores the ephemeral checkout session of each
// user. Get returns a zero-value session (no error) when none exists.
//
// AcquireBusy atomically claims the session's busy flag: it returns the
// session and true when the claim succeeded, the current session and false
// when another transition is already in flight. ReleaseBusy clears the flag
// and is a no-op for missing sessions.

type ICheckoutSessionRepository interface {
	Get(ctx context.Context, userID string) (entities.CheckoutSession, error)
	Save(ctx context.Context, session entities.CheckoutSession) (entities.CheckoutSession, error)
	Delete(ctx context.Context, userID string) error
	AcquireBusy(ctx context.Context, userID string) (entities.CheckoutSession, bool, error)
	ReleaseBusy(ctx context.Context, userID string) error
}
