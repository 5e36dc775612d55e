package handlers

import (
	"errors"
	"io"
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

// CheckoutHandler drives the checkout state machine over HTTP. Each route is
// one transition; the session in the response tells the client which step to
// render.

type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

func (h *CheckoutHandler) Begin(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)
	log.Printf("[checkout][handler] begin user_id=%s", userID)

	s, err := h.usecase.Begin(c.Request.Context(), userID)
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCheckoutSession(s))
}

func (h *CheckoutHandler) GetSession(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)

	s, err := h.usecase.Get(c.Request.Context(), userID)
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCheckoutSession(s))
}

// ConfirmReview submits the reviewed cart, creating the order.
func (h *CheckoutHandler) ConfirmReview(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)
	token := c.GetString(middleware.ContextTokenKey)
	log.Printf("[checkout][handler] confirm review user_id=%s", userID)

	s, err := h.usecase.ConfirmReview(c.Request.Context(), userID, token)
	if err != nil {
		log.Printf("[checkout][handler] confirm review failed user_id=%s err=%v", userID, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCheckoutSession(s))
}

func (h *CheckoutHandler) SelectPaymentMethod(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)

	var payload request.SelectPaymentMethodRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	s, err := h.usecase.SelectPaymentMethod(c.Request.Context(), userID, entities.PaymentMethod(payload.Method))
	if err != nil {
		log.Printf("[checkout][handler] select method failed user_id=%s method=%s err=%v", userID, payload.Method, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCheckoutSession(s))
}

// ConfirmPayment initiates the payment with the selected method. The payer
// comes from the authenticated user; card data only travels for credit_card.
func (h *CheckoutHandler) ConfirmPayment(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)
	payer, _ := c.MustGet(middleware.ContextUserKey).(entities.User)
	log.Printf("[checkout][handler] confirm payment user_id=%s", userID)

	// An absent body is fine for pix.
	var payload request.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var card *entities.CardData
	if payload.CardData != nil {
		card = &entities.CardData{
			Token:           payload.CardData.Token,
			Installments:    payload.CardData.Installments,
			PaymentMethodID: payload.CardData.PaymentMethodID,
			IssuerID:        payload.CardData.IssuerID,
		}
	}

	s, err := h.usecase.ConfirmPayment(c.Request.Context(), userID, payer, card)
	if err != nil {
		log.Printf("[checkout][handler] confirm payment failed user_id=%s err=%v", userID, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCheckoutSession(s))
}

// ListPaymentMethods proxies the provider's offered payment methods. Public:
// the storefront renders them before the user is deep into checkout.
func (h *CheckoutHandler) ListPaymentMethods(c *gin.Context) {
	methods, err := h.usecase.ListPaymentMethods(c.Request.Context())
	if err != nil {
		log.Printf("[checkout][handler] list payment methods failed err=%v", err)
		appErr := pkg.NewDomainError("PAYMENT_METHODS_UNAVAILABLE", "Payment provider unavailable", err, http.StatusBadGateway)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, methods)
}

// VerifyPayment pulls the payment status once (or polls, when configured)
// and applies the resulting transition.
func (h *CheckoutHandler) VerifyPayment(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)

	status, s, err := h.usecase.VerifyPayment(c.Request.Context(), userID)
	if err != nil {
		log.Printf("[checkout][handler] verify failed user_id=%s err=%v", userID, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] verify user_id=%s status=%s", userID, status)

	c.JSON(http.StatusOK, response.FromPaymentStatus(status, s))
}

func (h *CheckoutHandler) Cancel(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)
	log.Printf("[checkout][handler] cancel user_id=%s", userID)

	if err := h.usecase.Cancel(c.Request.Context(), userID); err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptyCart):
		return pkg.NewDomainErrorSimple("EMPTY_CART", "Cart is empty", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrCheckoutExited):
		return pkg.NewDomainErrorSimple("CHECKOUT_EXITED", "Cart emptied, checkout closed", http.StatusConflict)
	case errors.Is(err, usecase.ErrCheckoutBusy):
		return pkg.NewDomainErrorSimple("CHECKOUT_BUSY", "Another checkout operation is in progress", http.StatusConflict)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("CHECKOUT_NOT_FOUND", "No active checkout session", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidStep):
		return pkg.NewDomainErrorSimple("INVALID_STEP", "Operation not allowed at current step", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoPaymentToVerify):
		return pkg.NewDomainErrorSimple("NO_PAYMENT", "No payment to verify", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoPaymentMethod),
		errors.Is(err, usecase.ErrInvalidPaymentMethod),
		errors.Is(err, usecase.ErrInvalidUserID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderCreationFailed):
		return pkg.NewDomainErrorSimple("ORDER_CREATION_FAILED", "Order service unavailable", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentInitiationFailed):
		return pkg.NewDomainErrorSimple("PAYMENT_INITIATION_FAILED", "Payment provider unavailable", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentStatusCheckFailed):
		return pkg.NewDomainErrorSimple("PAYMENT_STATUS_CHECK_FAILED", "Payment provider unavailable", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
