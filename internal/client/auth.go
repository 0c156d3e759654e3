package client

import (
	"context"
	"net/http"

	"github.com/ocopmarket/order-gateway/internal/domain"
)

type loginWire struct {
	Token        string `json:"token"`
	UserID       int64  `json:"userId"`
	Role         string `json:"role"`
	EnterpriseID int64  `json:"enterpriseId"`
	ShipperID    int64  `json:"shipperId"`
}

func (c *BackendClient) Login(ctx context.Context, email, password string) (*domain.LoginResult, error) {
	body := map[string]string{"email": email, "password": password}

	var wire loginWire
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", body, &wire); err != nil {
		return nil, err
	}

	role, err := domain.ParseRole(wire.Role)
	if err != nil {
		return nil, err
	}

	return &domain.LoginResult{
		Token:        wire.Token,
		UserID:       wire.UserID,
		Role:         role,
		EnterpriseID: wire.EnterpriseID,
		ShipperID:    wire.ShipperID,
	}, nil
}
