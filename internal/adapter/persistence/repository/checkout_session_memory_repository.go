package repository

import (
	"context"
	"sync"

	"cianorte_vendas/internal/domain/entities"
	"cianorte_vendas/internal/usecase/interfaces"
)

// CheckoutSessionMemoryRepository keeps checkout sessions in process memory,
// matching their ephemeral lifetime: one checkout attempt, discarded on
// completion or cancellation.
//
// AcquireBusy is the atomic check-and-set behind the state machine's busy
// gate; the single mutex makes two concurrent transitions impossible.

type CheckoutSessionMemoryRepository struct {
	mu       sync.Mutex
	sessions map[string]entities.CheckoutSession
}

var _ interfaces.ICheckoutSessionRepository = (*CheckoutSessionMemoryRepository)(nil)

func NewCheckoutSessionMemoryRepository() *CheckoutSessionMemoryRepository {
	return &CheckoutSessionMemoryRepository{sessions: make(map[string]entities.CheckoutSession)}
}

func (r *CheckoutSessionMemoryRepository) Get(_ context.Context, userID string) (entities.CheckoutSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return copySession(r.sessions[userID]), nil
}

func (r *CheckoutSessionMemoryRepository) Save(_ context.Context, session entities.CheckoutSession) (entities.CheckoutSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.UserID] = copySession(session)
	return session, nil
}

func (r *CheckoutSessionMemoryRepository) Delete(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, userID)
	return nil
}

func (r *CheckoutSessionMemoryRepository) AcquireBusy(_ context.Context, userID string) (entities.CheckoutSession, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[userID]
	if !ok {
		return entities.CheckoutSession{}, false, nil
	}
	if s.Busy {
		return copySession(s), false, nil
	}
	s.Busy = true
	r.sessions[userID] = s
	return copySession(s), true, nil
}

func (r *CheckoutSessionMemoryRepository) ReleaseBusy(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[userID]
	if !ok {
		return nil
	}
	s.Busy = false
	r.sessions[userID] = s
	return nil
}

func copySession(s entities.CheckoutSession) entities.CheckoutSession {
	out := s
	if s.Order != nil {
		order := *s.Order
		order.Items = make([]entities.OrderItem, len(s.Order.Items))
		copy(order.Items, s.Order.Items)
		out.Order = &order
	}
	if s.Payment != nil {
		payment := *s.Payment
		out.Payment = &payment
	}
	return out
}
