package upstream

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jobzen/dashboard/internal/core/domain"
	"github.com/jobzen/dashboard/internal/core/ports"
)

// Me fetches the signed-in user's profile.
func (c *Client) Me(ctx context.Context, ts ports.TokenSource) (*domain.User, error) {
	var u domain.User
	if err := c.doAuth(ctx, ts, request{method: http.MethodGet, path: "/users/me", route: "/users/me"}, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateProfile patches the editable profile fields.
func (c *Client) UpdateProfile(ctx context.Context, ts ports.TokenSource, in domain.ProfileUpdate) (*domain.User, error) {
	var u domain.User
	r := request{method: http.MethodPatch, path: "/users/profile", route: "/users/profile", body: in}
	if err := c.doAuth(ctx, ts, r, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

type completeProfileRequest struct {
	Role domain.Role `json:"role"`
}

// CompleteProfile assigns a role to a user who signed up through OAuth.
func (c *Client) CompleteProfile(ctx context.Context, ts ports.TokenSource, role domain.Role) (*domain.User, error) {
	var u domain.User
	r := request{method: http.MethodPatch, path: "/users/complete-profile", route: "/users/complete-profile", body: completeProfileRequest{Role: role}}
	if err := c.doAuth(ctx, ts, r, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// ListManagedUsers lists accounts created by the caller, optionally filtered
// by role.
func (c *Client) ListManagedUsers(ctx context.Context, ts ports.TokenSource, role domain.Role) ([]domain.User, error) {
	var query url.Values
	if role != "" {
		query = url.Values{"role": []string{string(role)}}
	}

	var users []domain.User
	r := request{method: http.MethodGet, path: "/users/managed", route: "/users/managed", query: query}
	if err := c.doAuth(ctx, ts, r, &users); err != nil {
		return nil, err
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

// CreateManagedUser adds a client or worker account.
func (c *Client) CreateManagedUser(ctx context.Context, ts ports.TokenSource, in domain.CreateManagedUser) (*domain.User, error) {
	var u domain.User
	r := request{method: http.MethodPost, path: "/users/managed", route: "/users/managed", body: in}
	if err := c.doAuth(ctx, ts, r, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// DeleteManagedUser removes a managed account.
func (c *Client) DeleteManagedUser(ctx context.Context, ts ports.TokenSource, id string) error {
	r := request{method: http.MethodDelete, path: "/users/managed/" + url.PathEscape(id), route: "/users/managed/:id"}
	return c.doAuth(ctx, ts, r, nil)
}
