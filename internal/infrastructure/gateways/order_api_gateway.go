package gateways

import (
	"context"
	"fmt"
	"log"
	"time"

	"cianorte_vendas/internal/domain/entities"
	"cianorte_vendas/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
)

// OrderAPIGateway talks to the external Order API. The client timeout is
// bounded so an in-flight checkout transition always resolves instead of
// holding the session busy forever.

type OrderAPIGateway struct {
	client *resty.Client
}

var _ interfaces.IOrderGateway = (*OrderAPIGateway)(nil)

func NewOrderAPIGateway(baseURL string, timeout time.Duration) *OrderAPIGateway {
	return &OrderAPIGateway{
		client: resty.New().SetBaseURL(baseURL).SetTimeout(timeout),
	}
}

type orderItemPayload struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type createOrderPayload struct {
	Items []orderItemPayload `json:"items"`
}

type orderItemResponse struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type orderResponse struct {
	ID        string              `json:"id"`
	Total     decimal.Decimal     `json:"total"`
	Status    string              `json:"status"`
	Items     []orderItemResponse `json:"items"`
	CreatedAt time.Time           `json:"created_at"`
}

func (g *OrderAPIGateway) CreateOrder(ctx context.Context, token string, items []entities.OrderItem) (entities.Order, error) {
	payload := createOrderPayload{Items: make([]orderItemPayload, 0, len(items))}
	for _, it := range items {
		payload.Items = append(payload.Items, orderItemPayload{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	var out orderResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetBody(payload).
		SetResult(&out).
		Post("/orders")
	if err != nil {
		log.Printf("[order][gateway] create failed err=%v", err)
		return entities.Order{}, err
	}
	if resp.IsError() {
		log.Printf("[order][gateway] create rejected status=%d body=%s", resp.StatusCode(), resp.String())
		return entities.Order{}, fmt.Errorf("order api returned status %d", resp.StatusCode())
	}
	log.Printf("[order][gateway] create success order_id=%s total=%s", out.ID, out.Total)

	order := entities.Order{
		ID:        out.ID,
		Total:     out.Total,
		Status:    out.Status,
		CreatedAt: out.CreatedAt,
	}
	for _, it := range out.Items {
		order.Items = append(order.Items, entities.OrderItem{ProductID: it.ProductID, Quantity: it.Quantity, UnitPrice: it.UnitPrice})
	}
	// Some deployments answer with ids only; fall back to the submitted
	// snapshot so the session can still render the summary.
	if len(order.Items) == 0 {
		order.Items = items
	}
	return order, nil
}
