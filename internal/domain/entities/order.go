package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem is an immutable copy of a cart line at order-creation time.

type OrderItem struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// Order is created by the Order API from a cart snapshot. The server-issued
// id and total are authoritative; this service never recomputes them.

type Order struct {
	ID        string          `json:"id"`
	Items     []OrderItem     `json:"items"`
	Total     decimal.Decimal `json:"total"`
	Status    string          `json:"status,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}
