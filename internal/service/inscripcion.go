package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	domainauth "github.com/espacio-evento/espacio-ui/internal/domain/auth"
	"github.com/espacio-evento/espacio-ui/internal/domain/model"
	apperrors "github.com/espacio-evento/espacio-ui/internal/errors"
	"github.com/espacio-evento/espacio-ui/internal/ports"
)

// EstadoInscripcion is the derived registration state of a user for one
// event. It drives which actions the UI offers.
type EstadoInscripcion string

const (
	NoInscrito    EstadoInscripcion = "no_inscrito"
	PendientePago EstadoInscripcion = "pendiente_pago"
	Pagada        EstadoInscripcion = "pagada"
)

// InscripcionServiceOptions groups dependencies for InscripcionService.
type InscripcionServiceOptions struct {
	Eventos       ports.EventosAPI
	Inscripciones ports.InscripcionesAPI
	Pagos         ports.PagosAPI
}

// InscripcionService drives the registration and payment workflow for a
// (user, event) pair:
//
//	NoInscrito -> PendientePago -> Pagada
//	NoInscrito -> Pagada              (free events)
//	PendientePago | Pagada -> NoInscrito  (cancellation)
//
// Guards are evaluated locally before any network call; the backend
// remains authoritative for capacity and uniqueness. While an operation
// for a pair is in flight, further operations on the same pair are
// rejected, which replaces disabling the triggering controls.
type InscripcionService struct {
	eventos       ports.EventosAPI
	inscripciones ports.InscripcionesAPI
	pagos         ports.PagosAPI

	mu       sync.Mutex
	inflight map[string]struct{}
}

// NewInscripcionService constructs a new InscripcionService.
func NewInscripcionService(opts InscripcionServiceOptions) *InscripcionService {
	return &InscripcionService{
		eventos:       opts.Eventos,
		inscripciones: opts.Inscripciones,
		pagos:         opts.Pagos,
		inflight:      make(map[string]struct{}),
	}
}

// ErrOperacionEnCurso rejects a second concurrent operation on the same
// (user, event) pair.
var ErrOperacionEnCurso = apperrors.Conflict("hay una operación en curso para este evento")

func inflightKey(idUsuario, idEvento int) string {
	return fmt.Sprintf("%d:%d", idUsuario, idEvento)
}

func (s *InscripcionService) acquire(idUsuario, idEvento int) error {
	key := inflightKey(idUsuario, idEvento)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inflight[key]; busy {
		return ErrOperacionEnCurso
	}
	s.inflight[key] = struct{}{}
	return nil
}

func (s *InscripcionService) release(idUsuario, idEvento int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, inflightKey(idUsuario, idEvento))
}

// Mia returns the caller's inscription for an event, or nil when not
// registered. The backend guarantees at most one per pair, so a linear
// scan of the event's inscriptions suffices.
func (s *InscripcionService) Mia(ctx context.Context, sess *domainauth.Session, idEvento int) (*model.Inscripcion, error) {
	if sess == nil {
		return nil, apperrors.Unauthorized("sesión no iniciada")
	}
	inscritos, err := s.inscripciones.ListByEvento(ctx, idEvento, sess.Token)
	if err != nil {
		return nil, err
	}
	return model.BuscarInscripcion(inscritos, sess.User.IDUsuario), nil
}

// Estado derives the registration state for the caller and event.
func (s *InscripcionService) Estado(insc *model.Inscripcion) EstadoInscripcion {
	switch {
	case insc == nil:
		return NoInscrito
	case insc.Pagada():
		return Pagada
	default:
		return PendientePago
	}
}

// Inscribir registers the caller for an event. Local guards: attendee
// capability, not the event's organizer, event active, slots remaining,
// not already registered. Initial payment state follows the entry price.
// Available slots are decremented server-side; callers re-fetch the
// event afterwards rather than computing locally.
func (s *InscripcionService) Inscribir(ctx context.Context, sess *domainauth.Session, idEvento int) (model.Inscripcion, error) {
	if sess == nil {
		return model.Inscripcion{}, apperrors.Unauthorized("sesión no iniciada")
	}
	if err := s.acquire(sess.User.IDUsuario, idEvento); err != nil {
		return model.Inscripcion{}, err
	}
	defer s.release(sess.User.IDUsuario, idEvento)

	if !sess.Roles().CanAttend() {
		return model.Inscripcion{}, apperrors.Forbidden("requiere rol asistente para inscribirse")
	}

	evento, err := s.eventos.Get(ctx, idEvento, sess.Token)
	if err != nil {
		return model.Inscripcion{}, err
	}
	if evento.OrganizadoPor(sess.User.IDUsuario) {
		return model.Inscripcion{}, apperrors.Validation("el organizador no puede inscribirse a su propio evento")
	}
	if !evento.Activo() {
		return model.Inscripcion{}, apperrors.Validation("el evento no está activo")
	}
	if evento.CuposAgotados() {
		return model.Inscripcion{}, apperrors.Validation("no quedan cupos disponibles")
	}

	inscritos, err := s.inscripciones.ListByEvento(ctx, idEvento, sess.Token)
	if err != nil {
		return model.Inscripcion{}, err
	}
	if model.BuscarInscripcion(inscritos, sess.User.IDUsuario) != nil {
		return model.Inscripcion{}, apperrors.Validation("ya estás inscrito en este evento")
	}

	return s.inscripciones.Create(ctx, ports.NuevaInscripcion{
		IDEvento:   idEvento,
		IDUsuario:  sess.User.IDUsuario,
		EstadoPago: model.EstadoPagoInicial(evento.PrecioEntrada),
	}, sess.Token)
}

// Cancelar removes the caller's inscription for an event, regardless of
// payment state. The delete is keyed by the inscription's own ID. The
// HTTP layer requires an explicit confirmation step before calling this.
func (s *InscripcionService) Cancelar(ctx context.Context, sess *domainauth.Session, idEvento int) error {
	if sess == nil {
		return apperrors.Unauthorized("sesión no iniciada")
	}
	if err := s.acquire(sess.User.IDUsuario, idEvento); err != nil {
		return err
	}
	defer s.release(sess.User.IDUsuario, idEvento)

	mia, err := s.Mia(ctx, sess, idEvento)
	if err != nil {
		return err
	}
	if mia == nil {
		return apperrors.Validation("no estás inscrito en este evento")
	}

	return s.inscripciones.Delete(ctx, mia.IDInscripcion, sess.Token)
}

// Pago is the outcome of starting a payment: where to send the payer,
// and for which inscription.
type Pago struct {
	CheckoutURL   string
	IDInscripcion int
}

// IniciarPago requests a checkout handle for the caller's pending
// inscription. Rejected when the event is free or the inscription is
// already paid. A preference without a redirect link is an error; the
// caller must not open anything.
func (s *InscripcionService) IniciarPago(ctx context.Context, sess *domainauth.Session, idEvento int) (Pago, error) {
	if sess == nil {
		return Pago{}, apperrors.Unauthorized("sesión no iniciada")
	}
	if err := s.acquire(sess.User.IDUsuario, idEvento); err != nil {
		return Pago{}, err
	}
	defer s.release(sess.User.IDUsuario, idEvento)

	evento, err := s.eventos.Get(ctx, idEvento, sess.Token)
	if err != nil {
		return Pago{}, err
	}
	if evento.Gratuito() {
		return Pago{}, apperrors.Validation("el evento es gratuito, no requiere pago")
	}

	mia, err := s.Mia(ctx, sess, idEvento)
	if err != nil {
		return Pago{}, err
	}
	if mia == nil {
		return Pago{}, apperrors.Validation("no estás inscrito en este evento")
	}
	if mia.Pagada() {
		return Pago{}, apperrors.Validation("la inscripción ya está pagada")
	}

	pref, err := s.pagos.CreatePreference(ctx, mia.IDInscripcion, sess.Token)
	if err != nil {
		return Pago{}, err
	}
	url := pref.CheckoutURL()
	if url == "" {
		return Pago{}, apperrors.Validation("no se recibió el link de pago")
	}

	return Pago{CheckoutURL: url, IDInscripcion: mia.IDInscripcion}, nil
}

// ConfirmarPago polls the backend's registration state until it reports
// the inscription paid or the context expires. This replaces assuming
// success after a fixed delay: the backend is the authority on whether
// the external payment actually completed.
func (s *InscripcionService) ConfirmarPago(ctx context.Context, sess *domainauth.Session, idInscripcion int, interval time.Duration) (model.Inscripcion, error) {
	if sess == nil {
		return model.Inscripcion{}, apperrors.Unauthorized("sesión no iniciada")
	}
	if interval <= 0 {
		interval = time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		insc, err := s.buscarPorID(ctx, sess, idInscripcion)
		if err != nil {
			return model.Inscripcion{}, err
		}
		if insc.Pagada() {
			return insc, nil
		}

		select {
		case <-ctx.Done():
			return insc, apperrors.Wrap(ctx.Err(), apperrors.ErrCodeValidation, "el pago aún no ha sido confirmado")
		case <-ticker.C:
		}
	}
}

// MarcarPagada issues the explicit payment-state update the backend
// exposes. Only a pending inscription can transition; paid never reverts.
func (s *InscripcionService) MarcarPagada(ctx context.Context, sess *domainauth.Session, idInscripcion int) (model.Inscripcion, error) {
	if sess == nil {
		return model.Inscripcion{}, apperrors.Unauthorized("sesión no iniciada")
	}

	insc, err := s.buscarPorID(ctx, sess, idInscripcion)
	if err != nil {
		return model.Inscripcion{}, err
	}
	if insc.Pagada() {
		return model.Inscripcion{}, apperrors.Validation("la inscripción ya está pagada")
	}

	return s.inscripciones.UpdateEstadoPago(ctx, idInscripcion, model.PagoPagado, sess.Token)
}

// ListByUsuario returns the caller's inscriptions.
func (s *InscripcionService) ListByUsuario(ctx context.Context, sess *domainauth.Session) ([]model.Inscripcion, error) {
	if sess == nil {
		return nil, apperrors.Unauthorized("sesión no iniciada")
	}
	return s.inscripciones.ListByUsuario(ctx, sess.User.IDUsuario, sess.Token)
}

// ListByEvento returns all inscriptions of an event. Administrators and
// the event's organizer use this for attendance views.
func (s *InscripcionService) ListByEvento(ctx context.Context, sess *domainauth.Session, idEvento int) ([]model.Inscripcion, error) {
	if sess == nil {
		return nil, apperrors.Unauthorized("sesión no iniciada")
	}
	return s.inscripciones.ListByEvento(ctx, idEvento, sess.Token)
}

// List returns every inscription. Administrators only.
func (s *InscripcionService) List(ctx context.Context, sess *domainauth.Session) ([]model.Inscripcion, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	return s.inscripciones.List(ctx, sess.Token)
}

func (s *InscripcionService) buscarPorID(ctx context.Context, sess *domainauth.Session, idInscripcion int) (model.Inscripcion, error) {
	mias, err := s.inscripciones.ListByUsuario(ctx, sess.User.IDUsuario, sess.Token)
	if err != nil {
		return model.Inscripcion{}, err
	}
	for _, insc := range mias {
		if insc.IDInscripcion == idInscripcion {
			return insc, nil
		}
	}
	return model.Inscripcion{}, apperrors.NotFound("inscripción no encontrada")
}
