package gateways

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"cianorte_vendas/internal/domain/entities"
	"cianorte_vendas/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
)

// AuthAPIGateway resolves bearer credentials against the auth collaborator.

type AuthAPIGateway struct {
	client *resty.Client
}

var _ interfaces.IAuthGateway = (*AuthAPIGateway)(nil)

func NewAuthAPIGateway(baseURL string, timeout time.Duration) *AuthAPIGateway {
	return &AuthAPIGateway{
		client: resty.New().SetBaseURL(baseURL).SetTimeout(timeout),
	}
}

type userResponse struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	CPF     string `json:"cpf"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

func (g *AuthAPIGateway) GetUser(ctx context.Context, token string) (entities.User, error) {
	if token == "" {
		return entities.User{}, interfaces.ErrUnauthenticated
	}

	var out userResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(&out).
		Get("/me")
	if err != nil {
		log.Printf("[auth][gateway] get user failed err=%v", err)
		return entities.User{}, err
	}
	if resp.StatusCode() == http.StatusUnauthorized || resp.StatusCode() == http.StatusForbidden {
		return entities.User{}, interfaces.ErrUnauthenticated
	}
	if resp.IsError() {
		return entities.User{}, fmt.Errorf("auth api returned status %d", resp.StatusCode())
	}

	return entities.User{
		ID:      strconv.Itoa(out.ID),
		Name:    out.Name,
		Email:   out.Email,
		CPF:     out.CPF,
		Address: out.Address,
		Phone:   out.Phone,
	}, nil
}
