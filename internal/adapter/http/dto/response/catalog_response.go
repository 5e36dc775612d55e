package response

import (
	"cianorte_vendas/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url,omitempty"`
	Category    string          `json:"category,omitempty"`
	Stock       int             `json:"stock_quantity"`
}

type ProductPageResponse struct {
	Items      []ProductResponse `json:"items"`
	Page       int               `json:"page"`
	TotalPages int               `json:"total_pages"`
	Total      int               `json:"total"`
}

func FromProductPage(page entities.ProductPage) ProductPageResponse {
	items := make([]ProductResponse, 0, len(page.Items))
	for _, p := range page.Items {
		items = append(items, ProductResponse{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			ImageURL:    p.ImageURL,
			Category:    p.Category,
			Stock:       p.Stock,
		})
	}
	return ProductPageResponse{
		Items:      items,
		Page:       page.Page,
		TotalPages: page.TotalPages,
		Total:      page.Total,
	}
}
