package handlers

import (
	"errors"
	"log"
	"net/http"

	request "cianorte_vendas/internal/adapter/http/dto/request"
	response "cianorte_vendas/internal/adapter/http/dto/response"
	"cianorte_vendas/internal/adapter/http/middleware"
	"cianorte_vendas/internal/domain/entities"
	"cianorte_vendas/internal/usecase"
	"cianorte_vendas/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCartPayload = pkg.NewDomainErrorSimple("INVALID_CART_INPUT", "Invalid cart payload", http.StatusBadRequest)

// CartHandler handles HTTP requests for the shopping cart.

type CartHandler struct {
	usecase usecase.ICartUseCase
}

func NewCartHandler(uc usecase.ICartUseCase) *CartHandler {
	return &CartHandler{usecase: uc}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)

	cart, err := h.usecase.Get(c.Request.Context(), userID)
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCart(cart))
}

func (h *CartHandler) AddItem(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)

	var payload request.AddCartItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}

	cart, err := h.usecase.AddItem(c.Request.Context(), userID, entities.CartItem{
		ProductID: payload.ProductID,
		Name:      payload.Name,
		UnitPrice: payload.UnitPrice,
		Quantity:  payload.Quantity,
		ImageURL:  payload.ImageURL,
	})
	if err != nil {
		log.Printf("[cart][handler] add failed user_id=%s product_id=%s err=%v", userID, payload.ProductID, err)
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCart(cart))
}

func (h *CartHandler) UpdateItem(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)
	productID := c.Param("product_id")

	var payload request.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Quantity == nil {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}

	cart, err := h.usecase.UpdateItemQuantity(c.Request.Context(), userID, productID, *payload.Quantity)
	if err != nil {
		log.Printf("[cart][handler] update failed user_id=%s product_id=%s err=%v", userID, productID, err)
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCart(cart))
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)
	productID := c.Param("product_id")

	cart, err := h.usecase.RemoveItem(c.Request.Context(), userID, productID)
	if err != nil {
		log.Printf("[cart][handler] remove failed user_id=%s product_id=%s err=%v", userID, productID, err)
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCart(cart))
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)

	if err := h.usecase.Clear(c.Request.Context(), userID); err != nil {
		log.Printf("[cart][handler] clear failed user_id=%s err=%v", userID, err)
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapCartError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID),
		errors.Is(err, usecase.ErrInvalidProductID),
		errors.Is(err, usecase.ErrInvalidItemName),
		errors.Is(err, usecase.ErrInvalidUnitPrice):
		return pkg.NewDomainErrorSimple("INVALID_CART_INPUT", "Invalid cart payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCartItemNotFound):
		return pkg.NewDomainErrorSimple("CART_ITEM_NOT_FOUND", "Item not in cart", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
