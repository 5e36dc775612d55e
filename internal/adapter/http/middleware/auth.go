package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"cianorte_vendas/internal/usecase/interfaces"
	"cianorte_vendas/pkg"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserKey   = "user"
	ContextUserIDKey = "user_id"
	ContextTokenKey  = "token"
)

// RequireAuth resolves the bearer credential through the auth collaborator
// and stores the user on the gin context. A missing or rejected credential
// answers 401 with a sign-in hint so the client can redirect and come back
// to the same cart.
func RequireAuth(auth interfaces.IAuthGateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			abortUnauthenticated(c)
			return
		}

		user, err := auth.GetUser(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, interfaces.ErrUnauthenticated) {
				abortUnauthenticated(c)
				return
			}
			log.Printf("[auth][middleware] user lookup failed err=%v", err)
			appErr := pkg.NewDomainError("AUTH_UNAVAILABLE", "Authentication service unavailable", err, http.StatusBadGateway)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		c.Set(ContextUserKey, user)
		c.Set(ContextUserIDKey, user.ID)
		c.Set(ContextTokenKey, token)
		c.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}

func abortUnauthenticated(c *gin.Context) {
	appErr := pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Sign in to continue", http.StatusUnauthorized)
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
