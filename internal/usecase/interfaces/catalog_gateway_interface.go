package interfaces

import (
	"context"

	"cianorte_vendas/internal/domain/entities"
)

// ICatalogGateway abstracts the product catalog collaborator.

type ICatalogGateway interface {
	ListProducts(ctx context.Context, page, pageSize int, category string) (entities.ProductPage, error)
	ListCategories(ctx context.Context) ([]string, error)
}
