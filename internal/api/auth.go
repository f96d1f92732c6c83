package api

import (
	"context"
	"fmt"
	"net/http"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login authenticates against the backend and installs the returned bearer
// token on the client. The raw token is also returned so the session layer
// can parse its claims.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var out loginResponse
	err := c.do(ctx, http.MethodPost, "/api/login", JSON(credentials{Email: email, Password: password}), &out)
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	if out.Token == "" {
		return "", fmt.Errorf("login: %w", ErrUnauthorized)
	}
	c.SetToken(out.Token)
	return out.Token, nil
}

// Logout drops the session token. The backend keeps no server-side session
// state for the console, so no call is made.
func (c *Client) Logout() {
	c.ClearToken()
}
