package entities

import "github.com/shopspring/decimal"

// Product is a catalog entry as returned by the catalog collaborator. The
// storefront only displays these; it never owns or mutates catalog data.

type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url,omitempty"`
	Category    string          `json:"category,omitempty"`
	Stock       int             `json:"stock_quantity"`
}

// ProductPage is one page of catalog results.

type ProductPage struct {
	Items      []Product `json:"items"`
	Page       int       `json:"page"`
	TotalPages int       `json:"total_pages"`
	Total      int       `json:"total"`
}
