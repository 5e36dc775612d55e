package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"cianorte_vendas/internal/domain/entities"
	"cianorte_vendas/internal/usecase/interfaces"
)

var (
	ErrInvalidUserID    = errors.New("invalid user id")
	ErrInvalidProductID = errors.New("invalid product id")
	ErrInvalidItemName  = errors.New("invalid item name")
	ErrInvalidUnitPrice = errors.New("invalid unit price")
	ErrCartItemNotFound = errors.New("cart item not found")
)

// ICartUseCase exposes the cart operations consumed by the HTTP layer.
//
// All operations are synchronous state manipulation on the user's cart; the
// only I/O is the repository round-trip.

type ICartUseCase interface {
	Get(ctx context.Context, userID string) (entities.Cart, error)
	AddItem(ctx context.Context, userID string, item entities.CartItem) (entities.Cart, error)
	UpdateItemQuantity(ctx context.Context, userID, productID string, quantity int) (entities.Cart, error)
	RemoveItem(ctx context.Context, userID, productID string) (entities.Cart, error)
	Clear(ctx context.Context, userID string) error
}

type CartUseCase struct {
	repo interfaces.ICartRepository
}

var _ ICartUseCase = (*CartUseCase)(nil)

func NewCartUseCase(repo interfaces.ICartRepository) *CartUseCase {
	return &CartUseCase{repo: repo}
}

func (u *CartUseCase) Get(ctx context.Context, userID string) (entities.Cart, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Cart{}, ErrInvalidUserID
	}

	cart, err := u.repo.Get(ctx, userID)
	if err != nil {
		return entities.Cart{}, err
	}
	if cart.UserID == "" {
		cart.UserID = userID
	}
	return cart, nil
}

func (u *CartUseCase) AddItem(ctx context.Context, userID string, item entities.CartItem) (entities.Cart, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Cart{}, ErrInvalidUserID
	}
	item.ProductID = strings.TrimSpace(item.ProductID)
	if item.ProductID == "" {
		return entities.Cart{}, ErrInvalidProductID
	}
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" {
		return entities.Cart{}, ErrInvalidItemName
	}
	if item.UnitPrice.IsNegative() {
		return entities.Cart{}, ErrInvalidUnitPrice
	}

	cart, err := u.Get(ctx, userID)
	if err != nil {
		return entities.Cart{}, err
	}

	now := time.Now().UTC()
	if cart.CreatedAt.IsZero() {
		cart.CreatedAt = now
	}
	cart.Add(item)
	cart.UpdatedAt = now

	log.Printf("[cart][usecase] add user_id=%s product_id=%s qty=%d lines=%d", userID, item.ProductID, item.Quantity, len(cart.Items))
	return u.repo.Save(ctx, cart)
}

func (u *CartUseCase) UpdateItemQuantity(ctx context.Context, userID, productID string, quantity int) (entities.Cart, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Cart{}, ErrInvalidUserID
	}
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return entities.Cart{}, ErrInvalidProductID
	}

	cart, err := u.Get(ctx, userID)
	if err != nil {
		return entities.Cart{}, err
	}
	if !cart.UpdateQuantity(productID, quantity) {
		return entities.Cart{}, ErrCartItemNotFound
	}
	cart.UpdatedAt = time.Now().UTC()

	log.Printf("[cart][usecase] update user_id=%s product_id=%s qty=%d lines=%d", userID, productID, quantity, len(cart.Items))
	return u.repo.Save(ctx, cart)
}

func (u *CartUseCase) RemoveItem(ctx context.Context, userID, productID string) (entities.Cart, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Cart{}, ErrInvalidUserID
	}
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return entities.Cart{}, ErrInvalidProductID
	}

	cart, err := u.Get(ctx, userID)
	if err != nil {
		return entities.Cart{}, err
	}
	if !cart.Remove(productID) {
		return entities.Cart{}, ErrCartItemNotFound
	}
	cart.UpdatedAt = time.Now().UTC()

	log.Printf("[cart][usecase] remove user_id=%s product_id=%s lines=%d", userID, productID, len(cart.Items))
	return u.repo.Save(ctx, cart)
}

func (u *CartUseCase) Clear(ctx context.Context, userID string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ErrInvalidUserID
	}
	log.Printf("[cart][usecase] clear user_id=%s", userID)
	return u.repo.Delete(ctx, userID)
}
