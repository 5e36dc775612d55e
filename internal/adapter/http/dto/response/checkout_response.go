package response

import (
	"time"

	"cianorte_vendas/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type OrderItemResponse struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type OrderResponse struct {
	ID        string              `json:"id"`
	Items     []OrderItemResponse `json:"items"`
	Total     decimal.Decimal     `json:"total"`
	Status    string              `json:"status,omitempty"`
	CreatedAt time.Time           `json:"created_at"`
}

type PaymentResponse struct {
	ID           string          `json:"id"`
	OrderID      string          `json:"order_id"`
	Method       string          `json:"method"`
	Status       string          `json:"status"`
	Amount       decimal.Decimal `json:"amount"`
	QRCode       string          `json:"qr_code,omitempty"`
	QRCodeBase64 string          `json:"qr_code_base64,omitempty"`
	TicketURL    string          `json:"ticket_url,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

type CheckoutSessionResponse struct {
	ID             string           `json:"id"`
	Step           string           `json:"step"`
	SelectedMethod string           `json:"selected_method,omitempty"`
	Order          *OrderResponse   `json:"order,omitempty"`
	Payment        *PaymentResponse `json:"payment,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// PaymentStatusResponse pairs a verification result with the session state
// the client should render next. After approval the session is gone and the
// session field is omitted.

type PaymentStatusResponse struct {
	Status  string                   `json:"status"`
	Session *CheckoutSessionResponse `json:"session,omitempty"`
}

func FromOrder(o entities.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return OrderResponse{
		ID:        o.ID,
		Items:     items,
		Total:     o.Total,
		Status:    o.Status,
		CreatedAt: o.CreatedAt,
	}
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:           p.ID,
		OrderID:      p.OrderID,
		Method:       string(p.Method),
		Status:       string(p.Status),
		Amount:       p.Amount,
		QRCode:       p.QRCode,
		QRCodeBase64: p.QRCodeBase64,
		TicketURL:    p.TicketURL,
		CreatedAt:    p.CreatedAt,
	}
}

func FromCheckoutSession(s entities.CheckoutSession) CheckoutSessionResponse {
	out := CheckoutSessionResponse{
		ID:             s.ID,
		Step:           string(s.Step),
		SelectedMethod: string(s.SelectedMethod),
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
	if s.Order != nil {
		order := FromOrder(*s.Order)
		out.Order = &order
	}
	if s.Payment != nil {
		payment := FromPayment(*s.Payment)
		out.Payment = &payment
	}
	return out
}

func FromPaymentStatus(status entities.PaymentStatus, s entities.CheckoutSession) PaymentStatusResponse {
	out := PaymentStatusResponse{Status: string(status)}
	if s.ID != "" && status != entities.PaymentStatusApproved {
		session := FromCheckoutSession(s)
		out.Session = &session
	}
	return out
}
