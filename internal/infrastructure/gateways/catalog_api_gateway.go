package gateways

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"cianorte_vendas/internal/domain/entities"
	"cianorte_vendas/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
)

// CatalogAPIGateway reads products and categories from the catalog
// collaborator. Pagination parameters mirror the catalog contract
// (page/per_page/category).

type CatalogAPIGateway struct {
	client *resty.Client
}

var _ interfaces.ICatalogGateway = (*CatalogAPIGateway)(nil)

func NewCatalogAPIGateway(baseURL string, timeout time.Duration) *CatalogAPIGateway {
	return &CatalogAPIGateway{
		client: resty.New().SetBaseURL(baseURL).SetTimeout(timeout),
	}
}

type catalogProduct struct {
	ID            int             `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	ImageURL      string          `json:"image_url"`
	Category      string          `json:"category"`
	StockQuantity int             `json:"stock_quantity"`
}

type productListResponse struct {
	Products    []catalogProduct `json:"products"`
	Total       int              `json:"total"`
	Pages       int              `json:"pages"`
	CurrentPage int              `json:"current_page"`
}

func (g *CatalogAPIGateway) ListProducts(ctx context.Context, page, pageSize int, category string) (entities.ProductPage, error) {
	req := g.client.R().
		SetContext(ctx).
		SetQueryParam("page", strconv.Itoa(page)).
		SetQueryParam("per_page", strconv.Itoa(pageSize))
	if category != "" {
		req.SetQueryParam("category", category)
	}

	var out productListResponse
	resp, err := req.SetResult(&out).Get("/products")
	if err != nil {
		log.Printf("[catalog][gateway] list products failed err=%v", err)
		return entities.ProductPage{}, err
	}
	if resp.IsError() {
		return entities.ProductPage{}, fmt.Errorf("catalog api returned status %d", resp.StatusCode())
	}

	result := entities.ProductPage{
		Items:      make([]entities.Product, 0, len(out.Products)),
		Page:       out.CurrentPage,
		TotalPages: out.Pages,
		Total:      out.Total,
	}
	for _, p := range out.Products {
		result.Items = append(result.Items, entities.Product{
			ID:          strconv.Itoa(p.ID),
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			ImageURL:    p.ImageURL,
			Category:    p.Category,
			Stock:       p.StockQuantity,
		})
	}
	return result, nil
}

func (g *CatalogAPIGateway) ListCategories(ctx context.Context) ([]string, error) {
	var out []string
	resp, err := g.client.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/categories")
	if err != nil {
		log.Printf("[catalog][gateway] list categories failed err=%v", err)
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("catalog api returned status %d", resp.StatusCode())
	}
	return out, nil
}
