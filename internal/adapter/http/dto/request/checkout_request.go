package request

type SelectPaymentMethodRequest struct {
	Method string `json:"method" binding:"required"`
}

// CardDataRequest is the tokenized card payload produced by the payment
// provider's client-side SDK. It is forwarded untouched; raw card numbers
// never reach this service.

type CardDataRequest struct {
	Token           string `json:"token" binding:"required"`
	Installments    int    `json:"installments"`
	PaymentMethodID string `json:"payment_method_id"`
	IssuerID        string `json:"issuer_id"`
}

// ConfirmPaymentRequest initiates the payment for the session's order.
// CardData is required for credit_card and ignored for pix.

type ConfirmPaymentRequest struct {
	CardData *CardDataRequest `json:"card_data"`
}
