package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/espacio-evento/espacio-ui/internal/domain/model"
	"github.com/espacio-evento/espacio-ui/internal/ports"
)

// SalasClient covers /salas endpoints.
type SalasClient struct {
	c *Client
}

var _ ports.SalasAPI = (*SalasClient)(nil)

func (s *SalasClient) List(ctx context.Context, token string) ([]model.Sala, error) {
	var out []model.Sala
	err := s.c.do(ctx, callParams{method: http.MethodGet, path: "/salas", token: token, out: &out})
	return out, err
}

func (s *SalasClient) Get(ctx context.Context, id int, token string) (model.Sala, error) {
	var out model.Sala
	err := s.c.do(ctx, callParams{
		method: http.MethodGet,
		path:   fmt.Sprintf("/salas/%d", id),
		token:  token,
		out:    &out,
	})
	return out, err
}

func (s *SalasClient) Create(ctx context.Context, sala model.Sala, token string) (model.Sala, error) {
	var out model.Sala
	err := s.c.do(ctx, callParams{
		method: http.MethodPost,
		path:   "/salas",
		token:  token,
		body:   sala,
		out:    &out,
	})
	return out, err
}

// Update uses PATCH; the backend applies partial room updates.
func (s *SalasClient) Update(ctx context.Context, id int, sala model.Sala, token string) (model.Sala, error) {
	var out model.Sala
	err := s.c.do(ctx, callParams{
		method: http.MethodPatch,
		path:   fmt.Sprintf("/salas/%d", id),
		token:  token,
		body:   sala,
		out:    &out,
	})
	return out, err
}

func (s *SalasClient) Delete(ctx context.Context, id int, token string) error {
	return s.c.do(ctx, callParams{
		method: http.MethodDelete,
		path:   fmt.Sprintf("/salas/%d", id),
		token:  token,
	})
}
