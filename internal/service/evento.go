package service

import (
	"context"

	domainauth "github.com/espacio-evento/espacio-ui/internal/domain/auth"
	"github.com/espacio-evento/espacio-ui/internal/domain/model"
	apperrors "github.com/espacio-evento/espacio-ui/internal/errors"
	"github.com/espacio-evento/espacio-ui/internal/ports"
)

// EventoServiceOptions groups dependencies for EventoService.
type EventoServiceOptions struct {
	Eventos       ports.EventosAPI
	Inscripciones ports.InscripcionesAPI
}

// EventoService forwards event CRUD to the backend with local role and
// ownership guards, and partitions listings by the caller's relationship
// to each event. The backend remains authoritative for every rule the
// guards pre-check.
type EventoService struct {
	eventos       ports.EventosAPI
	inscripciones ports.InscripcionesAPI
}

// NewEventoService constructs a new EventoService.
func NewEventoService(opts EventoServiceOptions) *EventoService {
	return &EventoService{
		eventos:       opts.Eventos,
		inscripciones: opts.Inscripciones,
	}
}

// EventTabs partitions the event list for the caller: all events, the
// ones they organize, and the ones they are registered for.
type EventTabs struct {
	Todos     []model.Evento
	Mios      []model.Evento
	Inscritos []model.Evento
}

// List fetches all events visible to the session.
func (s *EventoService) List(ctx context.Context, sess *domainauth.Session) ([]model.Evento, error) {
	if sess == nil {
		return nil, apperrors.Unauthorized("sesión no iniciada")
	}
	return s.eventos.List(ctx, sess.Token)
}

// ListTabs fetches events plus the caller's inscriptions and partitions
// the result. The "Mios" tab is only populated for organizers, and
// "Inscritos" only for attendees, mirroring the tabs each role sees.
func (s *EventoService) ListTabs(ctx context.Context, sess *domainauth.Session) (EventTabs, error) {
	eventos, err := s.List(ctx, sess)
	if err != nil {
		return EventTabs{}, err
	}

	tabs := EventTabs{Todos: eventos}
	roles := sess.Roles()

	if roles.CanOrganize() {
		for _, ev := range eventos {
			if ev.OrganizadoPor(sess.User.IDUsuario) {
				tabs.Mios = append(tabs.Mios, ev)
			}
		}
	}

	if roles.CanAttend() {
		mias, inscErr := s.inscripciones.ListByUsuario(ctx, sess.User.IDUsuario, sess.Token)
		if inscErr != nil {
			return EventTabs{}, inscErr
		}
		registered := make(map[int]struct{}, len(mias))
		for _, insc := range mias {
			registered[insc.IDEvento] = struct{}{}
		}
		for _, ev := range eventos {
			if _, ok := registered[ev.IDEvento]; ok {
				tabs.Inscritos = append(tabs.Inscritos, ev)
			}
		}
	}

	return tabs, nil
}

// Get fetches a single event.
func (s *EventoService) Get(ctx context.Context, sess *domainauth.Session, id int) (model.Evento, error) {
	if sess == nil {
		return model.Evento{}, apperrors.Unauthorized("sesión no iniciada")
	}
	return s.eventos.Get(ctx, id, sess.Token)
}

// Create registers a new event. Requires the organizer capability; the
// organizer is always the caller unless an administrator names another.
func (s *EventoService) Create(ctx context.Context, sess *domainauth.Session, ev model.Evento) (model.Evento, error) {
	if sess == nil {
		return model.Evento{}, apperrors.Unauthorized("sesión no iniciada")
	}
	roles := sess.Roles()
	if !roles.CanOrganize() {
		return model.Evento{}, apperrors.Forbidden("solo organizadores pueden crear eventos")
	}
	if ev.IDOrganizador == 0 || !roles.IsAdmin() {
		ev.IDOrganizador = sess.User.IDUsuario
	}
	if ev.CuposTotales <= 0 {
		return model.Evento{}, apperrors.Validation("los cupos totales deben ser mayores a cero")
	}
	if ev.PrecioEntrada < 0 {
		return model.Evento{}, apperrors.Validation("el precio de entrada no puede ser negativo")
	}
	return s.eventos.Create(ctx, ev, sess.Token)
}

// Update modifies an event. Only its organizer or an administrator may.
func (s *EventoService) Update(ctx context.Context, sess *domainauth.Session, id int, ev model.Evento) (model.Evento, error) {
	current, err := s.Get(ctx, sess, id)
	if err != nil {
		return model.Evento{}, err
	}
	if !s.puedeAdministrar(sess, current) {
		return model.Evento{}, apperrors.Forbidden("solo el organizador o un administrador puede modificar el evento")
	}
	return s.eventos.Update(ctx, id, ev, sess.Token)
}

// Delete removes an event. Only its organizer or an administrator may.
func (s *EventoService) Delete(ctx context.Context, sess *domainauth.Session, id int) error {
	current, err := s.Get(ctx, sess, id)
	if err != nil {
		return err
	}
	if !s.puedeAdministrar(sess, current) {
		return apperrors.Forbidden("solo el organizador o un administrador puede eliminar el evento")
	}
	return s.eventos.Delete(ctx, id, sess.Token)
}

// PuedeAdministrar reports whether the session may edit or delete the
// event: its organizer, or any administrator.
func (s *EventoService) PuedeAdministrar(sess *domainauth.Session, ev model.Evento) bool {
	return s.puedeAdministrar(sess, ev)
}

func (s *EventoService) puedeAdministrar(sess *domainauth.Session, ev model.Evento) bool {
	if sess == nil {
		return false
	}
	return ev.OrganizadoPor(sess.User.IDUsuario) || sess.Roles().IsAdmin()
}
