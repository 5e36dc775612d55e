package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"cianorte_vendas/internal/domain/entities"
	"cianorte_vendas/internal/usecase/interfaces"
	mock_interfaces "cianorte_vendas/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(auth interfaces.IAuthGateway) *gin.Engine {
		r := gin.New()
		r.GET("/protected", RequireAuth(auth), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"user_id": c.GetString(ContextUserIDKey)})
		})
		return r
	}

	t.Run("missing header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		auth := mock_interfaces.NewMockIAuthGateway(ctrl)
		r := newRouter(auth)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("rejected credential", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		auth := mock_interfaces.NewMockIAuthGateway(ctrl)
		r := newRouter(auth)

		auth.EXPECT().GetUser(gomock.Any(), "bad").Return(entities.User{}, interfaces.ErrUnauthenticated)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer bad")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("auth collaborator outage maps to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		auth := mock_interfaces.NewMockIAuthGateway(ctrl)
		r := newRouter(auth)

		auth.EXPECT().GetUser(gomock.Any(), "tok").Return(entities.User{}, errors.New("timeout"))

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer tok")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("valid credential populates the context", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		auth := mock_interfaces.NewMockIAuthGateway(ctrl)
		r := newRouter(auth)

		auth.EXPECT().GetUser(gomock.Any(), "tok").Return(entities.User{ID: "u1"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer tok")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := w.Body.String(); got != `{"user_id":"u1"}` {
			t.Fatalf("unexpected body: %s", got)
		}
	})
}
