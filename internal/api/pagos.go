package api

import (
	"context"
	"net/http"

	"github.com/espacio-evento/espacio-ui/internal/ports"
)

// PagosClient covers the Mercado Pago preference endpoint.
type PagosClient struct {
	c *Client
}

var _ ports.PagosAPI = (*PagosClient)(nil)

// CreatePreference requests a checkout handle for a registration.
func (p *PagosClient) CreatePreference(ctx context.Context, idInscripcion int, token string) (ports.Preferencia, error) {
	var out ports.Preferencia
	err := p.c.do(ctx, callParams{
		method: http.MethodPost,
		path:   "/pagos/mercadopago/create-preference",
		token:  token,
		body:   map[string]int{"id_inscripcion": idInscripcion},
		out:    &out,
	})
	return out, err
}
