package remote

import (
	"context"
	"net/http"

	"tau/internal/domain/user"
)

func (c *Client) SignUp(ctx context.Context, req user.Credentials) (user.Response, error) {
	var resp user.Response
	err := c.call(ctx, http.MethodPost, "/api/usuarios", req, &resp)
	return resp, err
}

func (c *Client) Login(ctx context.Context, req user.Credentials) (user.Response, error) {
	var resp user.Response
	err := c.call(ctx, http.MethodPost, "/api/usuarios/login", req, &resp)
	return resp, err
}
