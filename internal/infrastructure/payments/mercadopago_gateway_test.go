package payments

import (
	"context"
	"errors"
	"testing"

	"cianorte_vendas/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestNewMercadoPagoGateway(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("MERCADOPAGO_MOCK", "")

		if _, err := NewMercadoPagoGateway(""); !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
			t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
		}
	})

	t.Run("mock mode needs no token", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "true")

		g, err := NewMercadoPagoGateway("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !g.mockMode {
			t.Fatalf("expected mock mode")
		}
	})
}

func TestMercadoPagoGateway_MockMode(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
	g, err := NewMercadoPagoGateway("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	total, _ := decimal.NewFromString("20.00")
	order := entities.Order{ID: "ord-1", Total: total}

	t.Run("pix create returns a pending payment with QR payload", func(t *testing.T) {
		p, err := g.CreatePayment(context.Background(), order, entities.PaymentMethodPix, entities.User{Email: "x@test.com"}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Status != entities.PaymentStatusPending {
			t.Fatalf("expected pending, got %s", p.Status)
		}
		if p.QRCode == "" || p.QRCodeBase64 == "" {
			t.Fatalf("expected pix payload, got %+v", p)
		}
		if !p.Amount.Equal(total) {
			t.Fatalf("expected amount %s, got %s", total, p.Amount)
		}
	})

	t.Run("credit card create carries no pix payload", func(t *testing.T) {
		card := &entities.CardData{Token: "tok", Installments: 1}
		p, err := g.CreatePayment(context.Background(), order, entities.PaymentMethodCreditCard, entities.User{}, card)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.QRCode != "" || p.QRCodeBase64 != "" {
			t.Fatalf("expected no pix payload, got %+v", p)
		}
	})

	t.Run("status check approves", func(t *testing.T) {
		status, err := g.GetPaymentStatus(context.Background(), "123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if status != entities.PaymentStatusApproved {
			t.Fatalf("expected approved, got %s", status)
		}
	})

	t.Run("payment methods list only pix and credit cards", func(t *testing.T) {
		methods, err := g.ListPaymentMethods(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(methods) == 0 {
			t.Fatalf("expected offered methods")
		}
		for _, m := range methods {
			if m.ID != "pix" && m.Type != "credit_card" {
				t.Fatalf("unexpected method offered: %+v", m)
			}
		}
	})
}

func TestMercadoPagoGateway_ListPaymentMethodsUnconfigured(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")

	var g *MercadoPagoGateway
	if _, err := g.ListPaymentMethods(context.Background()); !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
	}
}

func TestSplitName(t *testing.T) {
	cases := []struct {
		in          string
		first, last string
	}{
		{"Maria da Silva", "Maria", "da Silva"},
		{"João", "João", ""},
		{"  ", "Cliente", ""},
	}
	for _, c := range cases {
		first, last := splitName(c.in)
		if first != c.first || last != c.last {
			t.Fatalf("splitName(%q) = (%q, %q), want (%q, %q)", c.in, first, last, c.first, c.last)
		}
	}
}

func TestDigitsOnly(t *testing.T) {
	if got := digitsOnly("123.456.789-09"); got != "12345678909" {
		t.Fatalf("expected 12345678909, got %s", got)
	}
	if got := digitsOnly("abc"); got != "" {
		t.Fatalf("expected empty, got %s", got)
	}
}
