package client

import (
	"context"
	"net/http"

	"github.com/heartmarshall/viovio/internal/wire"
)

// SignUp registers an account.
func (c *Client) SignUp(ctx context.Context, email, password string) (*wire.AuthResponse, error) {
	var out wire.AuthResponse
	if _, err := c.do(ctx, http.MethodPost, "/auth/signup", "", wire.CredentialsRequest{Email: email, Password: password}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SignIn logs in with email and password.
func (c *Client) SignIn(ctx context.Context, email, password string) (*wire.AuthResponse, error) {
	var out wire.AuthResponse
	if _, err := c.do(ctx, http.MethodPost, "/auth/login", "", wire.CredentialsRequest{Email: email, Password: password}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Confirm exchanges an email confirmation token for a session.
func (c *Client) Confirm(ctx context.Context, token string) (*wire.AuthResponse, error) {
	var out wire.AuthResponse
	if _, err := c.do(ctx, http.MethodPost, "/auth/confirm", "", wire.TokenRequest{Token: token}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Refresh rotates a refresh token.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*wire.AuthResponse, error) {
	var out wire.AuthResponse
	if _, err := c.do(ctx, http.MethodPost, "/auth/refresh", "", wire.RefreshRequest{RefreshToken: refreshToken}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout revokes every refresh token of the account.
func (c *Client) Logout(ctx context.Context, accessToken string) error {
	_, err := c.do(ctx, http.MethodPost, "/auth/logout", accessToken, nil, nil)
	return err
}

// CurrentUser returns the account behind accessToken.
func (c *Client) CurrentUser(ctx context.Context, accessToken string) (*wire.User, error) {
	var out wire.User
	if _, err := c.do(ctx, http.MethodGet, "/auth/user", accessToken, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateDisplayName sets the display name of the account.
func (c *Client) UpdateDisplayName(ctx context.Context, accessToken, name string) (*wire.User, error) {
	var out wire.User
	if _, err := c.do(ctx, http.MethodPatch, "/auth/user", accessToken, wire.UpdateUserRequest{DisplayName: name}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
