package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"cianorte_vendas/internal/domain/entities"
	"cianorte_vendas/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEmptyCart                   = errors.New("cart is empty")
	ErrCheckoutBusy                = errors.New("another checkout operation is in flight")
	ErrCheckoutExited              = errors.New("cart emptied, checkout closed")
	ErrSessionNotFound             = errors.New("checkout session not found")
	ErrInvalidStep                 = errors.New("operation not allowed at current step")
	ErrNoPaymentMethod             = errors.New("no payment method selected")
	ErrInvalidPaymentMethod        = errors.New("invalid payment method")
	ErrNoPaymentToVerify           = errors.New("no payment to verify")
	ErrOrderCreationFailed         = errors.New("order creation failed")
	ErrPaymentInitiationFailed     = errors.New("payment initiation failed")
	ErrPaymentStatusCheckFailed    = errors.New("payment status check failed")
	ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")
)

// ICheckoutUseCase is the checkout state machine:
//
//	review -> payment_method -> confirmation
//
// confirmation exits on approval or loops back to payment_method on
// rejection, keeping the order so the user retries with another method
// without creating a duplicate order.

type ICheckoutUseCase interface {
	Begin(ctx context.Context, userID string) (entities.CheckoutSession, error)
	Get(ctx context.Context, userID string) (entities.CheckoutSession, error)
	ConfirmReview(ctx context.Context, userID, token string) (entities.CheckoutSession, error)
	SelectPaymentMethod(ctx context.Context, userID string, method entities.PaymentMethod) (entities.CheckoutSession, error)
	ConfirmPayment(ctx context.Context, userID string, payer entities.User, card *entities.CardData) (entities.CheckoutSession, error)
	ListPaymentMethods(ctx context.Context) ([]entities.PaymentMethodOption, error)
	CheckPaymentStatus(ctx context.Context, userID string) (entities.PaymentStatus, entities.CheckoutSession, error)
	VerifyPayment(ctx context.Context, userID string) (entities.PaymentStatus, entities.CheckoutSession, error)
	Cancel(ctx context.Context, userID string) error
}

// CheckoutConfig tunes optional behavior. PollInterval > 0 makes
// VerifyPayment poll automatically until a terminal status or context
// cancellation; 0 keeps it a single-shot check.
type CheckoutConfig struct {
	PollInterval time.Duration
}

type CheckoutUseCase struct {
	sessions interfaces.ICheckoutSessionRepository
	carts    interfaces.ICartRepository
	orders   interfaces.IOrderGateway
	payments interfaces.IPaymentGateway
	cfg      CheckoutConfig
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(
	sessions interfaces.ICheckoutSessionRepository,
	carts interfaces.ICartRepository,
	orders interfaces.IOrderGateway,
	payments interfaces.IPaymentGateway,
	cfg CheckoutConfig,
) *CheckoutUseCase {
	return &CheckoutUseCase{sessions: sessions, carts: carts, orders: orders, payments: payments, cfg: cfg}
}

// Begin starts a fresh checkout session at the review step. Entry guard: the
// cart must be non-empty. An existing idle session is discarded, matching the
// storefront always opening checkout at the review step.
func (u *CheckoutUseCase) Begin(ctx context.Context, userID string) (entities.CheckoutSession, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.CheckoutSession{}, ErrInvalidUserID
	}

	cart, err := u.carts.Get(ctx, userID)
	if err != nil {
		return entities.CheckoutSession{}, err
	}
	if cart.IsEmpty() {
		log.Printf("[checkout][usecase] begin rejected user_id=%s reason=empty_cart", userID)
		return entities.CheckoutSession{}, ErrEmptyCart
	}

	if existing, err := u.sessions.Get(ctx, userID); err != nil {
		return entities.CheckoutSession{}, err
	} else if existing.ID != "" && existing.Busy {
		return entities.CheckoutSession{}, ErrCheckoutBusy
	} else if existing.ID != "" {
		log.Printf("[checkout][usecase] begin discards previous session user_id=%s session_id=%s step=%s", userID, existing.ID, existing.Step)
	}

	now := time.Now().UTC()
	s := entities.CheckoutSession{
		ID:        uuid.NewString(),
		UserID:    userID,
		Step:      entities.CheckoutStepReview,
		CreatedAt: now,
		UpdatedAt: now,
	}
	log.Printf("[checkout][usecase] begin user_id=%s session_id=%s items=%d total=%s", userID, s.ID, cart.ItemCount(), cart.Total())
	return u.sessions.Save(ctx, s)
}

func (u *CheckoutUseCase) Get(ctx context.Context, userID string) (entities.CheckoutSession, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.CheckoutSession{}, ErrInvalidUserID
	}
	s, err := u.sessions.Get(ctx, userID)
	if err != nil {
		return entities.CheckoutSession{}, err
	}
	if s.ID == "" {
		return entities.CheckoutSession{}, ErrSessionNotFound
	}
	return s, nil
}

// ConfirmReview snapshots the cart into a new order via the Order API and
// advances to payment method selection. On failure the session stays at
// review; a retry is an explicit re-submit, never automatic.
func (u *CheckoutUseCase) ConfirmReview(ctx context.Context, userID, token string) (entities.CheckoutSession, error) {
	s, err := u.acquire(ctx, userID)
	if err != nil {
		return s, err
	}
	defer u.release(ctx, userID)

	if s.Step != entities.CheckoutStepReview {
		return s, ErrInvalidStep
	}

	cart, err := u.carts.Get(ctx, userID)
	if err != nil {
		return s, err
	}
	if cart.IsEmpty() {
		return u.forceExit(ctx, s)
	}

	order, err := u.orders.CreateOrder(ctx, token, cart.Snapshot())
	if err != nil {
		log.Printf("[checkout][usecase] order creation failed user_id=%s session_id=%s err=%v", userID, s.ID, err)
		return s, fmt.Errorf("%w: %v", ErrOrderCreationFailed, err)
	}
	log.Printf("[checkout][usecase] order created user_id=%s session_id=%s order_id=%s total=%s", userID, s.ID, order.ID, order.Total)

	s.Order = &order
	s.Step = entities.CheckoutStepPaymentMethod
	return u.settle(ctx, s)
}

// SelectPaymentMethod records the user's choice. No collaborator call, but
// rejected while a transition is in flight, and the cart is re-read: emptied
// externally before any payment was initiated, checkout closes. After a
// rejected payment the cart is empty by design, so the re-check is skipped.
func (u *CheckoutUseCase) SelectPaymentMethod(ctx context.Context, userID string, method entities.PaymentMethod) (entities.CheckoutSession, error) {
	if !method.Valid() {
		return entities.CheckoutSession{}, ErrInvalidPaymentMethod
	}

	s, err := u.Get(ctx, userID)
	if err != nil {
		return entities.CheckoutSession{}, err
	}
	if s.Busy {
		return s, ErrCheckoutBusy
	}
	if s.Step != entities.CheckoutStepPaymentMethod {
		return s, ErrInvalidStep
	}

	if !s.PaymentInitiated {
		cart, err := u.carts.Get(ctx, userID)
		if err != nil {
			return s, err
		}
		if cart.IsEmpty() {
			return u.forceExit(ctx, s)
		}
	}

	s.SelectedMethod = method
	s.UpdatedAt = time.Now().UTC()
	log.Printf("[checkout][usecase] method selected user_id=%s session_id=%s method=%s", userID, s.ID, method)
	return u.sessions.Save(ctx, s)
}

// ConfirmPayment initiates a payment for the session's order with the
// selected method and advances to confirmation. The cart is cleared only
// after the provider accepted the payment: the order is durable server-side
// at that point, so the cart's job is done regardless of settlement. On
// failure cart and order are untouched and the session stays at
// payment_method, permitting retry with another method.
func (u *CheckoutUseCase) ConfirmPayment(ctx context.Context, userID string, payer entities.User, card *entities.CardData) (entities.CheckoutSession, error) {
	s, err := u.acquire(ctx, userID)
	if err != nil {
		return s, err
	}
	defer u.release(ctx, userID)

	if s.Step != entities.CheckoutStepPaymentMethod || s.Order == nil {
		return s, ErrInvalidStep
	}
	if s.SelectedMethod == "" {
		return s, ErrNoPaymentMethod
	}
	if u.payments == nil {
		log.Printf("[checkout][usecase] payment gateway not configured user_id=%s session_id=%s", userID, s.ID)
		return s, fmt.Errorf("%w: %w", ErrPaymentInitiationFailed, ErrPaymentGatewayNotConfigured)
	}

	if !s.PaymentInitiated {
		cart, err := u.carts.Get(ctx, userID)
		if err != nil {
			return s, err
		}
		if cart.IsEmpty() {
			return u.forceExit(ctx, s)
		}
	}

	payment, err := u.payments.CreatePayment(ctx, *s.Order, s.SelectedMethod, payer, card)
	if err != nil {
		log.Printf("[checkout][usecase] payment initiation failed user_id=%s session_id=%s order_id=%s method=%s err=%v", userID, s.ID, s.Order.ID, s.SelectedMethod, err)
		return s, fmt.Errorf("%w: %v", ErrPaymentInitiationFailed, err)
	}
	log.Printf("[checkout][usecase] payment created user_id=%s session_id=%s order_id=%s payment_id=%s method=%s status=%s", userID, s.ID, s.Order.ID, payment.ID, payment.Method, payment.Status)

	if err := u.carts.Delete(ctx, userID); err != nil {
		// Payment exists; the cart clear is best-effort and retried nowhere.
		log.Printf("[checkout][usecase] cart clear failed user_id=%s err=%v", userID, err)
	}

	s.Payment = &payment
	s.PaymentInitiated = true
	s.Step = entities.CheckoutStepConfirmation
	return u.settle(ctx, s)
}

// ListPaymentMethods proxies the provider's offered methods for the payment
// method step. No session involved.
func (u *CheckoutUseCase) ListPaymentMethods(ctx context.Context) ([]entities.PaymentMethodOption, error) {
	if u.payments == nil {
		log.Printf("[checkout][usecase] payment gateway not configured")
		return nil, ErrPaymentGatewayNotConfigured
	}
	return u.payments.ListPaymentMethods(ctx)
}

// CheckPaymentStatus is the single-shot "verify payment" pull. approved ends
// the session; rejected returns to payment_method keeping the same order;
// anything else is still pending. A transport failure is non-fatal: the last
// known status stands and the user may retry.
func (u *CheckoutUseCase) CheckPaymentStatus(ctx context.Context, userID string) (entities.PaymentStatus, entities.CheckoutSession, error) {
	s, err := u.acquire(ctx, userID)
	if err != nil {
		return "", s, err
	}
	defer u.release(ctx, userID)

	if s.Step != entities.CheckoutStepConfirmation || s.Payment == nil {
		return "", s, ErrNoPaymentToVerify
	}
	if u.payments == nil {
		log.Printf("[checkout][usecase] payment gateway not configured user_id=%s session_id=%s", userID, s.ID)
		return s.Payment.Status, s, fmt.Errorf("%w: %w", ErrPaymentStatusCheckFailed, ErrPaymentGatewayNotConfigured)
	}

	status, err := u.payments.GetPaymentStatus(ctx, s.Payment.ID)
	if err != nil {
		log.Printf("[checkout][usecase] status check failed user_id=%s payment_id=%s err=%v", userID, s.Payment.ID, err)
		return s.Payment.Status, s, fmt.Errorf("%w: %v", ErrPaymentStatusCheckFailed, err)
	}
	log.Printf("[checkout][usecase] status check user_id=%s payment_id=%s status=%s", userID, s.Payment.ID, status)

	switch status {
	case entities.PaymentStatusApproved:
		s.Payment.Status = status
		if err := u.sessions.Delete(ctx, userID); err != nil {
			return status, s, err
		}
		return status, s, nil
	case entities.PaymentStatusRejected:
		s.Payment = nil
		s.Step = entities.CheckoutStepPaymentMethod
		s, err = u.settle(ctx, s)
		return status, s, err
	default:
		s, err = u.settle(ctx, s)
		return entities.PaymentStatusPending, s, err
	}
}

// VerifyPayment runs the configured polling variant: single-shot when
// PollInterval is zero, otherwise it re-checks on the interval until a
// terminal status or the context is cancelled. Transport failures do not end
// the loop. Nothing is mutated after cancellation; a late provider response
// is simply dropped.
func (u *CheckoutUseCase) VerifyPayment(ctx context.Context, userID string) (entities.PaymentStatus, entities.CheckoutSession, error) {
	if u.cfg.PollInterval <= 0 {
		return u.CheckPaymentStatus(ctx, userID)
	}

	for {
		status, s, err := u.CheckPaymentStatus(ctx, userID)
		if err != nil && !errors.Is(err, ErrPaymentStatusCheckFailed) {
			return status, s, err
		}
		// A missing gateway is not transient; give up instead of re-polling.
		if errors.Is(err, ErrPaymentGatewayNotConfigured) {
			return status, s, err
		}
		if status.Terminal() {
			return status, s, nil
		}
		select {
		case <-ctx.Done():
			return status, s, ctx.Err()
		case <-time.After(u.cfg.PollInterval):
		}
	}
}

// Cancel abandons the checkout session. Orders or payments already created
// stay server-side; no compensating cancellation is issued.
func (u *CheckoutUseCase) Cancel(ctx context.Context, userID string) error {
	s, err := u.Get(ctx, userID)
	if err != nil {
		return err
	}
	if s.Busy {
		return ErrCheckoutBusy
	}
	if s.Order != nil {
		log.Printf("[checkout][usecase] cancel leaves order dangling user_id=%s session_id=%s order_id=%s", userID, s.ID, s.Order.ID)
	}
	return u.sessions.Delete(ctx, userID)
}

// acquire claims the busy flag, keeping transitions mutually exclusive.
func (u *CheckoutUseCase) acquire(ctx context.Context, userID string) (entities.CheckoutSession, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.CheckoutSession{}, ErrInvalidUserID
	}
	s, acquired, err := u.sessions.AcquireBusy(ctx, userID)
	if err != nil {
		return entities.CheckoutSession{}, err
	}
	if s.ID == "" {
		return entities.CheckoutSession{}, ErrSessionNotFound
	}
	if !acquired {
		return s, ErrCheckoutBusy
	}
	return s, nil
}

func (u *CheckoutUseCase) release(ctx context.Context, userID string) {
	if err := u.sessions.ReleaseBusy(ctx, userID); err != nil {
		log.Printf("[checkout][usecase] busy release failed user_id=%s err=%v", userID, err)
	}
}

// settle persists the session with the busy flag down.
func (u *CheckoutUseCase) settle(ctx context.Context, s entities.CheckoutSession) (entities.CheckoutSession, error) {
	s.Busy = false
	s.UpdatedAt = time.Now().UTC()
	return u.sessions.Save(ctx, s)
}

// forceExit closes checkout because the cart emptied under it. Not an error
// state for the user; the HTTP layer signals the exit so the client returns
// to the cart view.
func (u *CheckoutUseCase) forceExit(ctx context.Context, s entities.CheckoutSession) (entities.CheckoutSession, error) {
	log.Printf("[checkout][usecase] forced exit user_id=%s session_id=%s step=%s", s.UserID, s.ID, s.Step)
	if err := u.sessions.Delete(ctx, s.UserID); err != nil {
		return s, err
	}
	return entities.CheckoutSession{}, ErrCheckoutExited
}
