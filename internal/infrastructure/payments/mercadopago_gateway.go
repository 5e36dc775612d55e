package payments

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"cianorte_vendas/internal/domain/entities"
	"cianorte_vendas/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/paymentmethod"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway implements IPaymentGateway on the Mercado Pago SDK.
//
// PIX payments come back with a copy-paste code and a base64 QR image in
// point_of_interaction.transaction_data; either may be missing and the
// storefront degrades to whichever exists. Credit-card payments only need the
// provider payment id for later status pulls.

type MercadoPagoGateway struct {
	client   payment.Client
	methods  paymentmethod.Client
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg), methods: paymentmethod.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, order entities.Order, method entities.PaymentMethod, payer entities.User, card *entities.CardData) (entities.Payment, error) {
	if g != nil && g.mockMode {
		return g.mockCreate(order, method), nil
	}
	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return entities.Payment{}, ErrMercadoPagoGatewayNotConfigured
	}

	req := payment.Request{
		TransactionAmount: order.Total.InexactFloat64(),
		Description:       fmt.Sprintf("Pedido #%s - Cianorte Vendas", order.ID),
		ExternalReference: order.ID,
		PaymentMethodID:   string(method),
		Payer:             buildPayer(payer),
	}

	if method == entities.PaymentMethodCreditCard && card != nil {
		req.Token = card.Token
		req.Installments = card.Installments
		if req.Installments < 1 {
			req.Installments = 1
		}
		if card.PaymentMethodID != "" {
			req.PaymentMethodID = card.PaymentMethodID
		}
		req.IssuerID = card.IssuerID
	}

	log.Printf("[payment][gateway] create start order_id=%s method=%s amount=%.2f", order.ID, method, req.TransactionAmount)
	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed order_id=%s err=%v", order.ID, err)
		return entities.Payment{}, err
	}
	log.Printf("[payment][gateway] create success order_id=%s provider_payment_id=%d provider_status=%s", order.ID, resp.ID, resp.Status)

	p := entities.Payment{
		ID:        strconv.Itoa(resp.ID),
		OrderID:   order.ID,
		Method:    method,
		Status:    entities.NormalizePaymentStatus(resp.Status),
		Amount:    order.Total,
		CreatedAt: time.Now().UTC(),
	}
	if method == entities.PaymentMethodPix {
		p.QRCode = resp.PointOfInteraction.TransactionData.QRCode
		p.QRCodeBase64 = resp.PointOfInteraction.TransactionData.QRCodeBase64
		p.TicketURL = resp.PointOfInteraction.TransactionData.TicketURL
	}
	return p, nil
}

func (g *MercadoPagoGateway) GetPaymentStatus(ctx context.Context, paymentID string) (entities.PaymentStatus, error) {
	if g != nil && g.mockMode {
		log.Printf("[payment][gateway] mock status check payment_id=%s", paymentID)
		return entities.PaymentStatusApproved, nil
	}
	if g == nil || g.client == nil {
		return "", ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(paymentID)
	if err != nil {
		return "", fmt.Errorf("invalid provider payment id %q: %w", paymentID, err)
	}

	resp, err := g.client.Get(ctx, id)
	if err != nil {
		log.Printf("[payment][gateway] sdk get failed payment_id=%s err=%v", paymentID, err)
		return "", err
	}
	log.Printf("[payment][gateway] status payment_id=%s provider_status=%s", paymentID, resp.Status)
	return entities.NormalizePaymentStatus(resp.Status), nil
}

// ListPaymentMethods pulls the provider's advertised methods and keeps only
// pix and credit cards, the two the storefront offers.
func (g *MercadoPagoGateway) ListPaymentMethods(ctx context.Context) ([]entities.PaymentMethodOption, error) {
	if g != nil && g.mockMode {
		return mockPaymentMethods(), nil
	}
	if g == nil || g.methods == nil {
		return nil, ErrMercadoPagoGatewayNotConfigured
	}

	resp, err := g.methods.List(ctx)
	if err != nil {
		log.Printf("[payment][gateway] sdk list methods failed err=%v", err)
		return nil, err
	}

	options := make([]entities.PaymentMethodOption, 0, len(resp))
	for _, m := range resp {
		if m.ID != string(entities.PaymentMethodPix) && m.PaymentTypeID != string(entities.PaymentMethodCreditCard) {
			continue
		}
		options = append(options, entities.PaymentMethodOption{
			ID:        m.ID,
			Name:      m.Name,
			Type:      m.PaymentTypeID,
			Thumbnail: m.Thumbnail,
		})
	}
	log.Printf("[payment][gateway] list methods provider=%d offered=%d", len(resp), len(options))
	return options, nil
}

func buildPayer(u entities.User) *payment.PayerRequest {
	first, last := splitName(u.Name)
	p := &payment.PayerRequest{
		Email:     u.Email,
		FirstName: first,
		LastName:  last,
	}
	if cpf := digitsOnly(u.CPF); cpf != "" {
		p.Identification = &payment.IdentificationRequest{Type: "CPF", Number: cpf}
	}
	return p
}

func splitName(name string) (string, string) {
	parts := strings.Fields(strings.TrimSpace(name))
	if len(parts) == 0 {
		return "Cliente", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// mockCreate fabricates a pending payment so the checkout flow can be
// exercised without provider credentials. Status checks in mock mode always
// approve.
func (g *MercadoPagoGateway) mockCreate(order entities.Order, method entities.PaymentMethod) entities.Payment {
	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	p := entities.Payment{
		ID:        id,
		OrderID:   order.ID,
		Method:    method,
		Status:    entities.PaymentStatusPending,
		Amount:    order.Total,
		CreatedAt: time.Now().UTC(),
	}
	if method == entities.PaymentMethodPix {
		p.QRCode = fmt.Sprintf("00020126MOCKPIX%s5204000053039865802BR", id)
		p.QRCodeBase64 = base64.StdEncoding.EncodeToString([]byte("mock-qr-" + id))
	}
	log.Printf("[payment][gateway] mock create order_id=%s payment_id=%s method=%s", order.ID, id, method)
	return p
}

func mockPaymentMethods() []entities.PaymentMethodOption {
	return []entities.PaymentMethodOption{
		{ID: "pix", Name: "PIX", Type: "bank_transfer"},
		{ID: "visa", Name: "Visa", Type: "credit_card"},
		{ID: "master", Name: "Mastercard", Type: "credit_card"},
	}
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
