package service

import (
	"context"
	"sort"
	"strings"

	domainauth "github.com/espacio-evento/espacio-ui/internal/domain/auth"
	"github.com/espacio-evento/espacio-ui/internal/domain/model"
	apperrors "github.com/espacio-evento/espacio-ui/internal/errors"
	"github.com/espacio-evento/espacio-ui/internal/ports"
)

// SalaServiceOptions groups dependencies for SalaService.
type SalaServiceOptions struct {
	Salas ports.SalasAPI
}

// SalaService forwards room CRUD to the backend. Mutations require the
// administrator role; listings support local filtering and sorting.
type SalaService struct {
	salas ports.SalasAPI
}

// NewSalaService constructs a new SalaService.
func NewSalaService(opts SalaServiceOptions) *SalaService {
	return &SalaService{salas: opts.Salas}
}

// SalaFilter narrows and orders a room listing.
type SalaFilter struct {
	// Q matches against name and location, case-insensitively.
	Q string
	// Estado keeps only rooms in the given state when non-empty.
	Estado model.EstadoSala
	// Sort is one of "nombre", "capacidad", "precio". Empty keeps the
	// backend order.
	Sort string
	// Desc reverses the sort order.
	Desc bool
}

// List fetches rooms and applies the filter locally.
func (s *SalaService) List(ctx context.Context, sess *domainauth.Session, filter SalaFilter) ([]model.Sala, error) {
	if sess == nil {
		return nil, apperrors.Unauthorized("sesión no iniciada")
	}

	salas, err := s.salas.List(ctx, sess.Token)
	if err != nil {
		return nil, err
	}
	return FilterSalas(salas, filter), nil
}

// Get fetches a single room.
func (s *SalaService) Get(ctx context.Context, sess *domainauth.Session, id int) (model.Sala, error) {
	if sess == nil {
		return model.Sala{}, apperrors.Unauthorized("sesión no iniciada")
	}
	return s.salas.Get(ctx, id, sess.Token)
}

// Create adds a room. Administrators only.
func (s *SalaService) Create(ctx context.Context, sess *domainauth.Session, sala model.Sala) (model.Sala, error) {
	if err := requireAdmin(sess); err != nil {
		return model.Sala{}, err
	}
	if sala.Capacidad <= 0 {
		return model.Sala{}, apperrors.Validation("la capacidad debe ser mayor a cero")
	}
	if sala.Estado == "" {
		sala.Estado = model.SalaDisponible
	}
	return s.salas.Create(ctx, sala, sess.Token)
}

// Update modifies a room. Administrators only.
func (s *SalaService) Update(ctx context.Context, sess *domainauth.Session, id int, sala model.Sala) (model.Sala, error) {
	if err := requireAdmin(sess); err != nil {
		return model.Sala{}, err
	}
	return s.salas.Update(ctx, id, sala, sess.Token)
}

// Delete removes a room. Administrators only.
func (s *SalaService) Delete(ctx context.Context, sess *domainauth.Session, id int) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}
	return s.salas.Delete(ctx, id, sess.Token)
}

func requireAdmin(sess *domainauth.Session) error {
	if sess == nil {
		return apperrors.Unauthorized("sesión no iniciada")
	}
	if !sess.Roles().IsAdmin() {
		return apperrors.Forbidden("requiere rol administrador")
	}
	return nil
}

// FilterSalas applies a SalaFilter to a listing without mutating the
// input slice.
func FilterSalas(salas []model.Sala, filter SalaFilter) []model.Sala {
	out := make([]model.Sala, 0, len(salas))
	q := strings.ToLower(strings.TrimSpace(filter.Q))
	for _, sala := range salas {
		if filter.Estado != "" && sala.Estado != filter.Estado {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(sala.Nombre), q) &&
			!strings.Contains(strings.ToLower(sala.Ubicacion), q) {
			continue
		}
		out = append(out, sala)
	}

	less := salaLess(filter.Sort)
	if less != nil {
		sort.SliceStable(out, func(i, j int) bool {
			if filter.Desc {
				return less(out[j], out[i])
			}
			return less(out[i], out[j])
		})
	}
	return out
}

func salaLess(field string) func(a, b model.Sala) bool {
	switch field {
	case "nombre":
		return func(a, b model.Sala) bool {
			return strings.ToLower(a.Nombre) < strings.ToLower(b.Nombre)
		}
	case "capacidad":
		return func(a, b model.Sala) bool { return a.Capacidad < b.Capacidad }
	case "precio":
		return func(a, b model.Sala) bool { return a.PrecioArriendo < b.PrecioArriendo }
	}
	return nil
}
