package interfaces

import (
	"context"

	"cianorte_vendas/internal/domain/entities"
)

// IPaymentGateway abstracts the payment provider (Mercado Pago in
// production).
//
// CreatePayment initiates a payment for an existing order. card is only read
// for credit_card payments. GetPaymentStatus is a single-shot pull; statuses
// outside approved/rejected are reported as pending. ListPaymentMethods
// returns the methods the provider currently offers, already filtered to the
// ones the storefront supports.

type IPaymentGateway interface {
	CreatePayment(ctx context.Context, order entities.Order, method entities.PaymentMethod, payer entities.User, card *entities.CardData) (entities.Payment, error)
	GetPaymentStatus(ctx context.Context, paymentID string) (entities.PaymentStatus, error)
	ListPaymentMethods(ctx context.Context) ([]entities.PaymentMethodOption, error)
}
