package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/espacio-evento/espacio-ui/internal/domain/model"
	"github.com/espacio-evento/espacio-ui/internal/ports"
)

// EventosClient covers /eventos endpoints.
type EventosClient struct {
	c *Client
}

var _ ports.EventosAPI = (*EventosClient)(nil)

func (e *EventosClient) List(ctx context.Context, token string) ([]model.Evento, error) {
	var out []model.Evento
	err := e.c.do(ctx, callParams{method: http.MethodGet, path: "/eventos", token: token, out: &out})
	return out, err
}

func (e *EventosClient) Get(ctx context.Context, id int, token string) (model.Evento, error) {
	var out model.Evento
	err := e.c.do(ctx, callParams{
		method: http.MethodGet,
		path:   fmt.Sprintf("/eventos/%d", id),
		token:  token,
		out:    &out,
	})
	return out, err
}

func (e *EventosClient) Create(ctx context.Context, ev model.Evento, token string) (model.Evento, error) {
	var out model.Evento
	err := e.c.do(ctx, callParams{
		method: http.MethodPost,
		path:   "/eventos",
		token:  token,
		body:   ev,
		out:    &out,
	})
	return out, err
}

func (e *EventosClient) Update(ctx context.Context, id int, ev model.Evento, token string) (model.Evento, error) {
	var out model.Evento
	err := e.c.do(ctx, callParams{
		method: http.MethodPut,
		path:   fmt.Sprintf("/eventos/%d", id),
		token:  token,
		body:   ev,
		out:    &out,
	})
	return out, err
}

func (e *EventosClient) Delete(ctx context.Context, id int, token string) error {
	return e.c.do(ctx, callParams{
		method: http.MethodDelete,
		path:   fmt.Sprintf("/eventos/%d", id),
		token:  token,
	})
}
