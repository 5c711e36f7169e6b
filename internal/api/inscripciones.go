package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/espacio-evento/espacio-ui/internal/domain/model"
	"github.com/espacio-evento/espacio-ui/internal/ports"
)

// InscripcionesClient covers /inscripciones endpoints.
type InscripcionesClient struct {
	c *Client
}

var _ ports.InscripcionesAPI = (*InscripcionesClient)(nil)

func (i *InscripcionesClient) List(ctx context.Context, token string) ([]model.Inscripcion, error) {
	var out []model.Inscripcion
	err := i.c.do(ctx, callParams{method: http.MethodGet, path: "/inscripciones", token: token, out: &out})
	return out, err
}

func (i *InscripcionesClient) Create(ctx context.Context, in ports.NuevaInscripcion, token string) (model.Inscripcion, error) {
	var out model.Inscripcion
	err := i.c.do(ctx, callParams{
		method: http.MethodPost,
		path:   "/inscripciones",
		token:  token,
		body:   in,
		out:    &out,
	})
	return out, err
}

func (i *InscripcionesClient) ListByUsuario(ctx context.Context, idUsuario int, token string) ([]model.Inscripcion, error) {
	var out []model.Inscripcion
	err := i.c.do(ctx, callParams{
		method: http.MethodGet,
		path:   fmt.Sprintf("/inscripciones/usuario/%d", idUsuario),
		token:  token,
		out:    &out,
	})
	return out, err
}

func (i *InscripcionesClient) ListByEvento(ctx context.Context, idEvento int, token string) ([]model.Inscripcion, error) {
	var out []model.Inscripcion
	err := i.c.do(ctx, callParams{
		method: http.MethodGet,
		path:   fmt.Sprintf("/inscripciones/evento/%d", idEvento),
		token:  token,
		out:    &out,
	})
	return out, err
}

// Delete removes a registration by its own identifier, not by the
// (evento, usuario) pair.
func (i *InscripcionesClient) Delete(ctx context.Context, id int, token string) error {
	return i.c.do(ctx, callParams{
		method: http.MethodDelete,
		path:   fmt.Sprintf("/inscripciones/%d", id),
		token:  token,
	})
}

func (i *InscripcionesClient) UpdateEstadoPago(ctx context.Context, id int, estado model.EstadoPago, token string) (model.Inscripcion, error) {
	var out model.Inscripcion
	err := i.c.do(ctx, callParams{
		method: http.MethodPatch,
		path:   fmt.Sprintf("/inscripciones/%d/pago", id),
		token:  token,
		body:   map[string]model.EstadoPago{"estado_pago": estado},
		out:    &out,
	})
	return out, err
}
