package usecase

import (
	"context"
	"strings"

	"cianorte_vendas/internal/domain/entities"
	"cianorte_vendas/internal/usecase/interfaces"
)

const (
	defaultPageSize = 10
	maxPageSize     = 50
)

// ICatalogUseCase passes product browsing through to the catalog
// collaborator, normalizing pagination.

type ICatalogUseCase interface {
	ListProducts(ctx context.Context, page, pageSize int, category string) (entities.ProductPage, error)
	ListCategories(ctx context.Context) ([]string, error)
}

type CatalogUseCase struct {
	gateway interfaces.ICatalogGateway
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(gateway interfaces.ICatalogGateway) *CatalogUseCase {
	return &CatalogUseCase{gateway: gateway}
}

func (u *CatalogUseCase) ListProducts(ctx context.Context, page, pageSize int, category string) (entities.ProductPage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return u.gateway.ListProducts(ctx, page, pageSize, strings.TrimSpace(category))
}

func (u *CatalogUseCase) ListCategories(ctx context.Context) ([]string, error) {
	return u.gateway.ListCategories(ctx)
}
