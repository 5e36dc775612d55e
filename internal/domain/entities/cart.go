package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is one product-quantity line in a shopping cart.
//
// Monetary representation:
//   - UnitPrice is a decimal so totals never accumulate floating-point drift.
//     The value is advisory until an order exists; the Order API total is the
//     source of truth after order creation.

type CartItem struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	ImageURL  string          `json:"image_url,omitempty"`
}

func (i CartItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart holds the line items of one user. All mutations are synchronous and
// in-memory; persistence is the repository's job.
//
// Storage model (DynamoDB):
//   - PK: user_id

type Cart struct {
	UserID    string     `json:"user_id"`
	Items     []CartItem `json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Add merges the item into an existing line with the same product id, or
// appends a new line. Quantities below 1 are clamped to 1. When merging, the
// incoming name/price/image win so the cart reflects the latest catalog data
// the client saw.
func (c *Cart) Add(item CartItem) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	for idx := range c.Items {
		if c.Items[idx].ProductID == item.ProductID {
			item.Quantity += c.Items[idx].Quantity
			c.Items[idx] = item
			return
		}
	}
	c.Items = append(c.Items, item)
}

// UpdateQuantity sets the quantity of a line. A quantity of zero or less
// removes the line, equivalent to Remove. Returns false when no line matches.
func (c *Cart) UpdateQuantity(productID string, quantity int) bool {
	if quantity <= 0 {
		return c.Remove(productID)
	}
	for idx := range c.Items {
		if c.Items[idx].ProductID == productID {
			c.Items[idx].Quantity = quantity
			return true
		}
	}
	return false
}

func (c *Cart) Remove(productID string) bool {
	for idx := range c.Items {
		if c.Items[idx].ProductID == productID {
			c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
			return true
		}
	}
	return false
}

func (c *Cart) Clear() {
	c.Items = nil
}

// Total is sum(unit_price * quantity) over all lines, exact at currency
// precision.
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// ItemCount is the sum of quantities, used for UI badges.
func (c Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Snapshot copies the current lines into order items. Orders keep these
// copies; later cart mutations never touch an existing order.
func (c Cart) Snapshot() []OrderItem {
	items := make([]OrderItem, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return items
}
