package api

import (
	"context"
	"net/http"

	"github.com/espacio-evento/espacio-ui/internal/domain/model"
	"github.com/espacio-evento/espacio-ui/internal/ports"
)

// AuthClient covers /auth endpoints.
type AuthClient struct {
	c *Client
}

var _ ports.AuthAPI = (*AuthClient)(nil)

// authPayload tolerates both response shapes the backend has used: a
// nested "user" object, or the user fields flattened next to the token.
type authPayload struct {
	Token string         `json:"token"`
	User  *model.Usuario `json:"user"`
	model.Usuario
}

func (p authPayload) result() ports.AuthResult {
	user := p.Usuario
	if p.User != nil {
		user = *p.User
	}
	return ports.AuthResult{Token: p.Token, User: user}
}

// Login exchanges credentials for a bearer token and user profile.
func (a *AuthClient) Login(ctx context.Context, creds ports.Credentials) (ports.AuthResult, error) {
	var payload authPayload
	err := a.c.do(ctx, callParams{
		method: http.MethodPost,
		path:   "/auth/login",
		body:   creds,
		out:    &payload,
	})
	if err != nil {
		return ports.AuthResult{}, err
	}
	return payload.result(), nil
}

// Register creates a new user account and returns a fresh session token.
func (a *AuthClient) Register(ctx context.Context, in ports.RegisterInput) (ports.AuthResult, error) {
	var payload authPayload
	err := a.c.do(ctx, callParams{
		method: http.MethodPost,
		path:   "/auth/register",
		body:   in,
		out:    &payload,
	})
	if err != nil {
		return ports.AuthResult{}, err
	}
	return payload.result(), nil
}

// CheckStatus revalidates a token against the backend.
func (a *AuthClient) CheckStatus(ctx context.Context, token string) (ports.AuthResult, error) {
	var payload authPayload
	err := a.c.do(ctx, callParams{
		method: http.MethodGet,
		path:   "/auth/check-status",
		token:  token,
		out:    &payload,
	})
	if err != nil {
		return ports.AuthResult{}, err
	}
	return payload.result(), nil
}
