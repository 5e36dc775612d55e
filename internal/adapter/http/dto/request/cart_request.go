package request

import "github.com/shopspring/decimal"

// AddCartItemRequest carries the product data the storefront client already
// has on screen. The service trusts it for cart display; order totals are
// recomputed server-side by the Order API at checkout.

type AddCartItemRequest struct {
	ProductID string          `json:"product_id" binding:"required"`
	Name      string          `json:"name" binding:"required"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	ImageURL  string          `json:"image_url"`
}

// UpdateCartItemRequest sets the absolute quantity of a cart line. Zero
// removes the line, so the field is a pointer to tell "0" from "absent".

type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}
