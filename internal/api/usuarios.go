package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/espacio-evento/espacio-ui/internal/domain/model"
	"github.com/espacio-evento/espacio-ui/internal/ports"
)

// UsuariosClient covers the read-only /usuarios endpoints.
type UsuariosClient struct {
	c *Client
}

var _ ports.UsuariosAPI = (*UsuariosClient)(nil)

func (u *UsuariosClient) List(ctx context.Context, token string) ([]model.Usuario, error) {
	var out []model.Usuario
	err := u.c.do(ctx, callParams{method: http.MethodGet, path: "/usuarios", token: token, out: &out})
	return out, err
}

func (u *UsuariosClient) Get(ctx context.Context, id int, token string) (model.Usuario, error) {
	var out model.Usuario
	err := u.c.do(ctx, callParams{
		method: http.MethodGet,
		path:   fmt.Sprintf("/usuarios/%d", id),
		token:  token,
		out:    &out,
	})
	return out, err
}
