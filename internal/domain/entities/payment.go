package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentMethodPix        PaymentMethod = "pix"
	PaymentMethodCreditCard PaymentMethod = "credit_card"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentMethodPix || m == PaymentMethodCreditCard
}

// PaymentStatus is server-authoritative. The provider status set is open;
// anything other than approved/rejected counts as pending.

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusRejected PaymentStatus = "rejected"
)

func (s PaymentStatus) Terminal() bool {
	return s == PaymentStatusApproved || s == PaymentStatusRejected
}

// NormalizePaymentStatus maps a raw provider status onto the closed set this
// service reasons about.
func NormalizePaymentStatus(raw string) PaymentStatus {
	switch PaymentStatus(raw) {
	case PaymentStatusApproved:
		return PaymentStatusApproved
	case PaymentStatusRejected:
		return PaymentStatusRejected
	default:
		return PaymentStatusPending
	}
}

// Payment is the record returned by the payment provider for one order.
//
// PIX payloads:
//   - QRCode is the copy-paste payment string, QRCodeBase64 a rendered QR
//     image. Either may be absent independently; the UI degrades to showing
//     whichever exists.

type Payment struct {
	ID        string          `json:"id"`
	OrderID   string          `json:"order_id"`
	Method    PaymentMethod   `json:"method"`
	Status    PaymentStatus   `json:"status"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`

	QRCode       string `json:"qr_code,omitempty"`
	QRCodeBase64 string `json:"qr_code_base64,omitempty"`
	TicketURL    string `json:"ticket_url,omitempty"`
}

// PaymentMethodOption is one provider-advertised way to pay, shown on the
// payment method step. The storefront only offers pix and credit cards; the
// provider's wider list is filtered down before it reaches the client.

type PaymentMethodOption struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"payment_type_id"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

// CardData is the tokenized credit-card payload the storefront forwards to
// the provider untouched. PIX payments carry none of this.

type CardData struct {
	Token           string `json:"token"`
	Installments    int    `json:"installments"`
	PaymentMethodID string `json:"payment_method_id"`
	IssuerID        string `json:"issuer_id"`
}
