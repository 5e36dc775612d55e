package entities

import "time"

// CheckoutStep is the observable step of a checkout session. A closed
// enumeration instead of the 1/2/3 counter the storefront UI renders, so
// illegal steps are unrepresentable.

type CheckoutStep string

const (
	CheckoutStepReview        CheckoutStep = "review"
	CheckoutStepPaymentMethod CheckoutStep = "payment_method"
	CheckoutStepConfirmation  CheckoutStep = "confirmation"
)

// CheckoutSession is the ephemeral state of one checkout attempt. It lives in
// a process-scoped store, references at most one order and one payment, and
// is discarded on approval or cancellation.
//
// Busy gates every transition that calls a collaborator; while set, no other
// transition may start, which prevents duplicate order/payment creation from
// rapid repeated requests.
//
// PaymentInitiated stays set once the provider accepted a payment, even when
// a rejection sends the session back to payment method selection. Initiation
// clears the cart, so the emptied-cart exit only applies before it.

type CheckoutSession struct {
	ID               string        `json:"id"`
	UserID           string        `json:"user_id"`
	Step             CheckoutStep  `json:"step"`
	SelectedMethod   PaymentMethod `json:"selected_method,omitempty"`
	Order            *Order        `json:"order,omitempty"`
	Payment          *Payment      `json:"payment,omitempty"`
	PaymentInitiated bool          `json:"payment_initiated"`
	Busy             bool          `json:"busy"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}
