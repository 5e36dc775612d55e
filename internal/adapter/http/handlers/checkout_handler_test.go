package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cianorte_vendas/internal/adapter/http/handlers/mocks"
	"cianorte_vendas/internal/domain/entities"
	"cianorte_vendas/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func checkoutRouter(h *CheckoutHandler) *gin.Engine {
	r := gin.New()
	auth := fakeAuth(testUser())
	r.POST("/v1/checkout", auth, h.Begin)
	r.GET("/v1/checkout", auth, h.GetSession)
	r.POST("/v1/checkout/review/confirm", auth, h.ConfirmReview)
	r.PUT("/v1/checkout/payment-method", auth, h.SelectPaymentMethod)
	r.POST("/v1/checkout/payment", auth, h.ConfirmPayment)
	r.GET("/v1/payment-methods", h.ListPaymentMethods)
	r.POST("/v1/checkout/payment/verify", auth, h.VerifyPayment)
	r.DELETE("/v1/checkout", auth, h.Cancel)
	return r
}

func TestCheckoutHandler_Begin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty cart maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := checkoutRouter(NewCheckoutHandler(uc))

		uc.EXPECT().Begin(gomock.Any(), "u1").Return(entities.CheckoutSession{}, usecase.ErrEmptyCart)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if body["code"] != "EMPTY_CART" {
			t.Fatalf("expected EMPTY_CART, got %v", body["code"])
		}
	})

	t.Run("success returns 201 at review", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := checkoutRouter(NewCheckoutHandler(uc))

		uc.EXPECT().Begin(gomock.Any(), "u1").Return(entities.CheckoutSession{ID: "sess-1", UserID: "u1", Step: entities.CheckoutStepReview}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if body["step"] != "review" {
			t.Fatalf("expected review step, got %v", body["step"])
		}
	})
}

func TestCheckoutHandler_ConfirmReview(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("forwards the bearer token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := checkoutRouter(NewCheckoutHandler(uc))

		order := entities.Order{ID: "ord-1"}
		uc.EXPECT().ConfirmReview(gomock.Any(), "u1", "test-token").Return(entities.CheckoutSession{
			ID: "sess-1", UserID: "u1", Step: entities.CheckoutStepPaymentMethod, Order: &order,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout/review/confirm", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("checkout exited maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := checkoutRouter(NewCheckoutHandler(uc))

		uc.EXPECT().ConfirmReview(gomock.Any(), "u1", "test-token").Return(entities.CheckoutSession{}, usecase.ErrCheckoutExited)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout/review/confirm", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if body["code"] != "CHECKOUT_EXITED" {
			t.Fatalf("expected CHECKOUT_EXITED, got %v", body["code"])
		}
	})

	t.Run("order api failure maps to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := checkoutRouter(NewCheckoutHandler(uc))

		uc.EXPECT().ConfirmReview(gomock.Any(), "u1", "test-token").Return(entities.CheckoutSession{}, usecase.ErrOrderCreationFailed)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout/review/confirm", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}

func TestCheckoutHandler_SelectPaymentMethod(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid method maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := checkoutRouter(NewCheckoutHandler(uc))

		uc.EXPECT().SelectPaymentMethod(gomock.Any(), "u1", entities.PaymentMethod("boleto")).Return(entities.CheckoutSession{}, usecase.ErrInvalidPaymentMethod)

		req := httptest.NewRequest(http.MethodPut, "/v1/checkout/payment-method", bytes.NewBufferString(`{"method":"boleto"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := checkoutRouter(NewCheckoutHandler(uc))

		uc.EXPECT().SelectPaymentMethod(gomock.Any(), "u1", entities.PaymentMethodPix).Return(entities.CheckoutSession{
			ID: "sess-1", Step: entities.CheckoutStepPaymentMethod, SelectedMethod: entities.PaymentMethodPix,
		}, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/checkout/payment-method", bytes.NewBufferString(`{"method":"pix"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestCheckoutHandler_ConfirmPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("pix without body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := checkoutRouter(NewCheckoutHandler(uc))

		uc.EXPECT().ConfirmPayment(gomock.Any(), "u1", testUser(), nil).Return(entities.CheckoutSession{
			ID:   "sess-1",
			Step: entities.CheckoutStepConfirmation,
			Payment: &entities.Payment{
				ID: "pay-1", Method: entities.PaymentMethodPix, Status: entities.PaymentStatusPending, QRCode: "pix-string",
			},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout/payment", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		payment, ok := body["payment"].(map[string]any)
		if !ok || payment["qr_code"] != "pix-string" {
			t.Fatalf("expected pix payload in response, got %v", body["payment"])
		}
	})

	t.Run("card data is forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := checkoutRouter(NewCheckoutHandler(uc))

		card := &entities.CardData{Token: "tok-1", Installments: 3, PaymentMethodID: "visa", IssuerID: "25"}
		uc.EXPECT().ConfirmPayment(gomock.Any(), "u1", testUser(), card).Return(entities.CheckoutSession{
			ID: "sess-1", Step: entities.CheckoutStepConfirmation,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout/payment", bytes.NewBufferString(`{"card_data":{"token":"tok-1","installments":3,"payment_method_id":"visa","issuer_id":"25"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("provider failure maps to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := checkoutRouter(NewCheckoutHandler(uc))

		uc.EXPECT().ConfirmPayment(gomock.Any(), "u1", testUser(), nil).Return(entities.CheckoutSession{}, usecase.ErrPaymentInitiationFailed)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout/payment", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}

func TestCheckoutHandler_ListPaymentMethods(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns the offered methods", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := checkoutRouter(NewCheckoutHandler(uc))

		uc.EXPECT().ListPaymentMethods(gomock.Any()).Return([]entities.PaymentMethodOption{
			{ID: "pix", Name: "PIX", Type: "bank_transfer"},
			{ID: "visa", Name: "Visa", Type: "credit_card", Thumbnail: "http://img/visa.png"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payment-methods", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if len(body) != 2 || body[0]["id"] != "pix" || body[1]["payment_type_id"] != "credit_card" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("provider failure maps to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := checkoutRouter(NewCheckoutHandler(uc))

		uc.EXPECT().ListPaymentMethods(gomock.Any()).Return(nil, usecase.ErrPaymentGatewayNotConfigured)

		req := httptest.NewRequest(http.MethodGet, "/v1/payment-methods", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if body["code"] != "PAYMENT_METHODS_UNAVAILABLE" {
			t.Fatalf("expected PAYMENT_METHODS_UNAVAILABLE, got %v", body["code"])
		}
	})
}

func TestCheckoutHandler_VerifyPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("approved omits the session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := checkoutRouter(NewCheckoutHandler(uc))

		uc.EXPECT().VerifyPayment(gomock.Any(), "u1").Return(entities.PaymentStatusApproved, entities.CheckoutSession{ID: "sess-1"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout/payment/verify", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if body["status"] != "approved" {
			t.Fatalf("expected approved, got %v", body["status"])
		}
		if _, ok := body["session"]; ok {
			t.Fatalf("expected session omitted after approval, got %v", body["session"])
		}
	})

	t.Run("rejected keeps the session for retry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := checkoutRouter(NewCheckoutHandler(uc))

		uc.EXPECT().VerifyPayment(gomock.Any(), "u1").Return(entities.PaymentStatusRejected, entities.CheckoutSession{
			ID: "sess-1", Step: entities.CheckoutStepPaymentMethod,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout/payment/verify", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		session, ok := body["session"].(map[string]any)
		if !ok || session["step"] != "payment_method" {
			t.Fatalf("expected session back at payment_method, got %v", body["session"])
		}
	})

	t.Run("no payment maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := checkoutRouter(NewCheckoutHandler(uc))

		uc.EXPECT().VerifyPayment(gomock.Any(), "u1").Return(entities.PaymentStatus(""), entities.CheckoutSession{}, usecase.ErrNoPaymentToVerify)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout/payment/verify", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestCheckoutHandler_Cancel(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := checkoutRouter(NewCheckoutHandler(uc))

		uc.EXPECT().Cancel(gomock.Any(), "u1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/checkout", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("no session maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := checkoutRouter(NewCheckoutHandler(uc))

		uc.EXPECT().Cancel(gomock.Any(), "u1").Return(usecase.ErrSessionNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/v1/checkout", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
