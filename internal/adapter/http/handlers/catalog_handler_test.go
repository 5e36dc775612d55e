package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"cianorte_vendas/internal/adapter/http/handlers/mocks"
	"cianorte_vendas/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestCatalogHandler_ListProducts(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("passes pagination and category through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.GET("/v1/products", h.ListProducts)

		price, _ := decimal.NewFromString("149.90")
		uc.EXPECT().ListProducts(gomock.Any(), 2, 5, "pecas").Return(entities.ProductPage{
			Items:      []entities.Product{{ID: "p1", Name: "Amortecedor", Price: price, Category: "pecas"}},
			Page:       2,
			TotalPages: 3,
			Total:      11,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/products?page=2&per_page=5&category=pecas", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if body["total"] != float64(11) {
			t.Fatalf("expected total 11, got %v", body["total"])
		}
	})

	t.Run("collaborator failure maps to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.GET("/v1/products", h.ListProducts)

		uc.EXPECT().ListProducts(gomock.Any(), 1, 10, "").Return(entities.ProductPage{}, errors.New("catalog down"))

		req := httptest.NewRequest(http.MethodGet, "/v1/products", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}

func TestCatalogHandler_ListCategories(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICatalogUseCase(ctrl)
	h := NewCatalogHandler(uc)

	r := gin.New()
	r.GET("/v1/categories", h.ListCategories)

	uc.EXPECT().ListCategories(gomock.Any()).Return([]string{"pecas", "acessorios"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/categories", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var categories []string
	if err := json.Unmarshal(w.Body.Bytes(), &categories); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if len(categories) != 2 || categories[0] != "pecas" {
		t.Fatalf("unexpected categories: %v", categories)
	}
}
