package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePaymentStatus(t *testing.T) {
	cases := map[string]PaymentStatus{
		"approved":     PaymentStatusApproved,
		"rejected":     PaymentStatusRejected,
		"pending":      PaymentStatusPending,
		"in_process":   PaymentStatusPending,
		"authorized":   PaymentStatusPending,
		"cancelled":    PaymentStatusPending,
		"charged_back": PaymentStatusPending,
		"":             PaymentStatusPending,
	}
	for raw, want := range cases {
		assert.Equal(t, want, NormalizePaymentStatus(raw), "raw=%q", raw)
	}
}

func TestPaymentStatusTerminal(t *testing.T) {
	assert.True(t, PaymentStatusApproved.Terminal())
	assert.True(t, PaymentStatusRejected.Terminal())
	assert.False(t, PaymentStatusPending.Terminal())
}

func TestPaymentMethodValid(t *testing.T) {
	assert.True(t, PaymentMethodPix.Valid())
	assert.True(t, PaymentMethodCreditCard.Valid())
	assert.False(t, PaymentMethod("boleto").Valid())
	assert.False(t, PaymentMethod("").Valid())
}
