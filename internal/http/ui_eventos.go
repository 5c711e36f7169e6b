package httpx

import (
	"log/slog"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/espacio-evento/espacio-ui/internal/domain/model"
	"github.com/espacio-evento/espacio-ui/internal/service"
)

// EventoHandlers provides HTTP handlers for event pages and the
// registration/payment actions hanging off them.
type EventoHandlers struct {
	Renderer      *TemplateRenderer
	Eventos       *service.EventoService
	Salas         *service.SalaService
	Inscripciones *service.InscripcionService
	Watcher       *service.PaymentWatcher
	Logger        *slog.Logger
}

func (h *EventoHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// List renders the event listing with its per-role tabs.
// GET /eventos?tab=todos|mios|inscritos.
func (h *EventoHandlers) List(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())

	tabs, err := h.Eventos.ListTabs(r.Context(), sess)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	tab := r.URL.Query().Get("tab")
	switch tab {
	case "mios", "inscritos":
	default:
		tab = "todos"
	}

	roles := sess.Roles()
	data := NewTemplateData(r, PageMeta{Title: "Eventos", CurrentPage: PageEventos}).
		With("Tabs", tabs).
		With("Tab", tab).
		With("ShowMios", roles.CanOrganize()).
		With("ShowInscritos", roles.CanAttend()).
		WithFlash(r.URL.Query().Get("flash")).
		Build()
	h.Renderer.Render(w, http.StatusOK, "eventos", data)
}

// Detail renders a single event with the viewer's registration state.
// GET /eventos/{id}.
func (h *EventoHandlers) Detail(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	h.renderDetail(w, r, id, "", r.URL.Query().Get("flash"), http.StatusOK)
}

// renderDetail fetches everything the detail page needs. The event comes
// first since the room lookup depends on it; the room and the event's
// inscriptions are then fetched concurrently. A missing room is not
// fatal, the page renders without it.
func (h *EventoHandlers) renderDetail(w http.ResponseWriter, r *http.Request, id int, errMsg, flash string, status int) {
	ctx := r.Context()
	sess := SessionFromContext(ctx)

	evento, err := h.Eventos.Get(ctx, sess, id)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	var (
		sala      *model.Sala
		inscritos []model.Inscripcion
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s, salaErr := h.Salas.Get(gctx, sess, evento.IDSala)
		if salaErr != nil {
			h.logger().Warn("sala del evento no disponible",
				slog.Int("evento", id),
				slog.Int("sala", evento.IDSala),
				slog.Any("error", salaErr))
			return nil
		}
		sala = &s
		return nil
	})
	g.Go(func() error {
		var inscErr error
		inscritos, inscErr = h.Inscripciones.ListByEvento(gctx, sess, id)
		return inscErr
	})
	if err := g.Wait(); err != nil {
		h.renderError(w, r, err)
		return
	}

	mia := model.BuscarInscripcion(inscritos, sess.User.IDUsuario)
	estado := h.Inscripciones.Estado(mia)
	roles := sess.Roles()

	data := NewTemplateData(r, PageMeta{Title: evento.NombreEvento, CurrentPage: PageEventos}).
		With("Evento", evento).
		With("Sala", sala).
		With("Inscritos", len(inscritos)).
		With("Mia", mia).
		With("Estado", string(estado)).
		With("PuedeInscribirse", roles.CanAttend() &&
			estado == service.NoInscrito &&
			evento.Activo() &&
			!evento.CuposAgotados() &&
			!evento.OrganizadoPor(sess.User.IDUsuario)).
		With("PuedePagar", estado == service.PendientePago && !evento.Gratuito()).
		With("PuedeCancelar", estado != service.NoInscrito).
		With("PuedeAdministrar", h.Eventos.PuedeAdministrar(sess, evento)).
		WithError(errMsg).
		WithFlash(flash).
		Build()
	h.Renderer.Render(w, status, "evento_detail", data)
}

// NewForm renders the event creation form.
// GET /eventos/nuevo.
func (h *EventoHandlers) NewForm(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, model.Evento{}, "", http.StatusOK)
}

// Create handles the event creation form submission.
// POST /eventos/nuevo.
func (h *EventoHandlers) Create(w http.ResponseWriter, r *http.Request) {
	ev, err := eventoFromForm(r)
	if err != nil {
		h.renderForm(w, r, ev, err.Error(), http.StatusBadRequest)
		return
	}

	sess := SessionFromContext(r.Context())
	created, err := h.Eventos.Create(r.Context(), sess, ev)
	if err != nil {
		h.renderForm(w, r, ev, err.Error(), statusFromError(err))
		return
	}
	redirectFlash(w, r, "/eventos/"+strconv.Itoa(created.IDEvento), "Evento creado")
}

// EditForm renders the event edit form pre-filled with current values.
// GET /eventos/{id}/editar.
func (h *EventoHandlers) EditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	sess := SessionFromContext(r.Context())
	ev, err := h.Eventos.Get(r.Context(), sess, id)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	h.renderForm(w, r, ev, "", http.StatusOK)
}

// Update handles the event edit form submission.
// POST /eventos/{id}/editar.
func (h *EventoHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	ev, err := eventoFromForm(r)
	if err != nil {
		ev.IDEvento = id
		h.renderForm(w, r, ev, err.Error(), http.StatusBadRequest)
		return
	}
	ev.IDEvento = id

	sess := SessionFromContext(r.Context())
	if _, err := h.Eventos.Update(r.Context(), sess, id, ev); err != nil {
		h.renderForm(w, r, ev, err.Error(), statusFromError(err))
		return
	}
	redirectFlash(w, r, "/eventos/"+strconv.Itoa(id), "Evento actualizado")
}

// Delete removes an event.
// POST /eventos/{id}/eliminar.
func (h *EventoHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	sess := SessionFromContext(r.Context())
	if err := h.Eventos.Delete(r.Context(), sess, id); err != nil {
		h.renderDetail(w, r, id, err.Error(), "", statusFromError(err))
		return
	}
	redirectFlash(w, r, "/eventos", "Evento eliminado")
}

// Inscribir registers the viewer for the event.
// POST /eventos/{id}/inscribir.
func (h *EventoHandlers) Inscribir(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	sess := SessionFromContext(r.Context())
	insc, err := h.Inscripciones.Inscribir(r.Context(), sess, id)
	if err != nil {
		h.renderDetail(w, r, id, err.Error(), "", statusFromError(err))
		return
	}

	flash := "Inscripción confirmada"
	if !insc.Pagada() {
		flash = "Inscripción registrada, pago pendiente"
	}
	redirectFlash(w, r, "/eventos/"+strconv.Itoa(id), flash)
}

// CancelarConfirm renders the cancellation confirmation page.
// GET /eventos/{id}/cancelar.
func (h *EventoHandlers) CancelarConfirm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	sess := SessionFromContext(r.Context())
	evento, err := h.Eventos.Get(r.Context(), sess, id)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	data := NewTemplateData(r, PageMeta{Title: "Cancelar inscripción", CurrentPage: PageEventos}).
		With("Evento", evento).
		Build()
	h.Renderer.Render(w, http.StatusOK, "cancelar", data)
}

// Cancelar removes the viewer's inscription after confirmation.
// POST /eventos/{id}/cancelar.
func (h *EventoHandlers) Cancelar(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	sess := SessionFromContext(r.Context())
	if err := h.Inscripciones.Cancelar(r.Context(), sess, id); err != nil {
		h.renderDetail(w, r, id, err.Error(), "", statusFromError(err))
		return
	}
	redirectFlash(w, r, "/eventos/"+strconv.Itoa(id), "Inscripción cancelada")
}

// Pagar starts the checkout for the viewer's pending inscription and
// renders the page that opens the external checkout. The inscription is
// handed to the watcher, which confirms the payment against the backend
// instead of assuming success after a delay.
// POST /eventos/{id}/pagar.
func (h *EventoHandlers) Pagar(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	sess := SessionFromContext(r.Context())
	pago, err := h.Inscripciones.IniciarPago(r.Context(), sess, id)
	if err != nil {
		h.renderDetail(w, r, id, err.Error(), "", statusFromError(err))
		return
	}

	if h.Watcher != nil {
		h.Watcher.Watch(sess.ID, pago.IDInscripcion)
	}

	evento, err := h.Eventos.Get(r.Context(), sess, id)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	data := NewTemplateData(r, PageMeta{Title: "Pago", CurrentPage: PageEventos}).
		With("Evento", evento).
		With("CheckoutURL", pago.CheckoutURL).
		With("IDInscripcion", pago.IDInscripcion).
		Build()
	h.Renderer.Render(w, http.StatusOK, "pago", data)
}

func (h *EventoHandlers) renderForm(w http.ResponseWriter, r *http.Request, ev model.Evento, errMsg string, status int) {
	sess := SessionFromContext(r.Context())

	salas, err := h.Salas.List(r.Context(), sess, service.SalaFilter{Estado: model.SalaDisponible, Sort: "nombre"})
	if err != nil {
		h.logger().Warn("listado de salas no disponible", slog.Any("error", err))
	}

	title := "Nuevo evento"
	if ev.IDEvento != 0 {
		title = "Editar evento"
	}
	data := NewTemplateData(r, PageMeta{Title: title, CurrentPage: PageEventos}).
		With("Evento", ev).
		With("Salas", salas).
		With("Editing", ev.IDEvento != 0).
		WithError(errMsg).
		Build()
	h.Renderer.Render(w, status, "evento_form", data)
}

func (h *EventoHandlers) renderError(w http.ResponseWriter, r *http.Request, err error) {
	renderErrorPage(h.Renderer, w, r, err)
}

// eventoFromForm builds an event from the creation/edit form. Numeric
// fields that fail to parse report a single user-facing message instead
// of the strconv error.
func eventoFromForm(r *http.Request) (model.Evento, error) {
	if err := r.ParseForm(); err != nil {
		return model.Evento{}, errFormulario
	}

	ev := model.Evento{
		NombreEvento: r.PostFormValue("nombre_evento"),
		Descripcion:  r.PostFormValue("descripcion"),
		Fecha:        r.PostFormValue("fecha"),
		HoraInicio:   r.PostFormValue("hora_inicio"),
		HoraFin:      r.PostFormValue("hora_fin"),
		TipoEvento:   model.TipoEvento(r.PostFormValue("tipo_evento")),
		Estado:       model.EstadoEvento(r.PostFormValue("estado")),
	}
	if ev.Estado == "" {
		ev.Estado = model.EventoActivo
	}

	var err error
	if ev.IDSala, err = strconv.Atoi(r.PostFormValue("id_sala")); err != nil {
		return ev, errFormNumero("sala")
	}
	if ev.CuposTotales, err = strconv.Atoi(r.PostFormValue("cupos_totales")); err != nil {
		return ev, errFormNumero("cupos totales")
	}
	if ev.PrecioEntrada, err = strconv.ParseFloat(r.PostFormValue("precio_entrada"), 64); err != nil {
		return ev, errFormNumero("precio de entrada")
	}
	if raw := r.PostFormValue("id_organizador"); raw != "" {
		if ev.IDOrganizador, err = strconv.Atoi(raw); err != nil {
			return ev, errFormNumero("organizador")
		}
	}
	return ev, nil
}
