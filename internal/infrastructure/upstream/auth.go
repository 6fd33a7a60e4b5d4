package upstream

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jobzen/dashboard/internal/core/domain"
	"github.com/jobzen/dashboard/internal/core/ports"
)

// Login exchanges credentials for tokens. A 401 is reported as
// domain.ErrInvalidCredentials.
func (c *Client) Login(ctx context.Context, in ports.LoginInput) (*domain.AuthResult, error) {
	var res domain.AuthResult
	err := c.do(ctx, request{method: http.MethodPost, path: "/auth/login", route: "/auth/login", body: in}, &res)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
			apiErr.kind = domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if res.AccessToken == "" {
		return nil, fmt.Errorf("login: %w: empty access token", domain.ErrUpstream)
	}
	return &res, nil
}

// Register creates an account and returns its first tokens.
func (c *Client) Register(ctx context.Context, in ports.RegisterInput) (*domain.AuthResult, error) {
	var res domain.AuthResult
	if err := c.do(ctx, request{method: http.MethodPost, path: "/auth/register", route: "/auth/register", body: in}, &res); err != nil {
		return nil, err
	}
	if res.AccessToken == "" {
		return nil, fmt.Errorf("register: %w: empty access token", domain.ErrUpstream)
	}
	return &res, nil
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type refreshResponse struct {
	AccessToken string `json:"access_token"`
}

// Refresh trades a refresh token for a new access token. It never goes
// through the refresh-and-retry path itself.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (string, error) {
	var res refreshResponse
	r := request{method: http.MethodPost, path: "/auth/refresh", route: "/auth/refresh", body: refreshRequest{RefreshToken: refreshToken}}
	if err := c.do(ctx, r, &res); err != nil {
		return "", err
	}
	if res.AccessToken == "" {
		return "", fmt.Errorf("refresh: %w: empty access token", domain.ErrUpstream)
	}
	return res.AccessToken, nil
}

// ForgotPassword asks the API to mail a reset link.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.do(ctx, request{method: http.MethodPost, path: "/auth/forgot-password", route: "/auth/forgot-password", body: body}, nil)
}

// ResetPassword sets a new password using the token from the reset link.
func (c *Client) ResetPassword(ctx context.Context, token, password string) error {
	body := map[string]string{"token": token, "password": password}
	return c.do(ctx, request{method: http.MethodPost, path: "/auth/reset-password", route: "/auth/reset-password", body: body}, nil)
}

// Logout revokes the session on the API side.
func (c *Client) Logout(ctx context.Context, ts ports.TokenSource) error {
	return c.doAuth(ctx, ts, request{method: http.MethodPost, path: "/auth/logout", route: "/auth/logout"}, nil)
}
