package interfaces

import (
	"context"
	"errors"

	"cianorte_vendas/internal/domain/entities"
)

// ErrUnauthenticated marks a credential the auth collaborator did not accept.
var ErrUnauthenticated = errors.New("unauthenticated")

// IAuthGateway resolves the user behind an opaque bearer credential. An
// invalid or expired credential surfaces as an error; the HTTP layer turns
// that into a sign-in redirect hint.

type IAuthGateway interface {
	GetUser(ctx context.Context, token string) (entities.User, error)
}
