package httpx

import (
	"net/http"
	"strconv"

	"github.com/espacio-evento/espacio-ui/internal/domain/model"
	"github.com/espacio-evento/espacio-ui/internal/service"
)

// InscripcionHandlers provides HTTP handlers for inscription listings:
// the viewer's own, and the platform-wide admin view.
type InscripcionHandlers struct {
	Renderer      *TemplateRenderer
	Inscripciones *service.InscripcionService
	Eventos       *service.EventoService
}

// Mias renders the viewer's inscriptions with the events they belong to.
// GET /inscripciones.
func (h *InscripcionHandlers) Mias(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())

	inscripciones, err := h.Inscripciones.ListByUsuario(r.Context(), sess)
	if err != nil {
		renderErrorPage(h.Renderer, w, r, err)
		return
	}

	eventos, err := h.Eventos.List(r.Context(), sess)
	if err != nil {
		renderErrorPage(h.Renderer, w, r, err)
		return
	}
	porID := make(map[int]model.Evento, len(eventos))
	for _, ev := range eventos {
		porID[ev.IDEvento] = ev
	}

	type fila struct {
		Inscripcion model.Inscripcion
		Evento      model.Evento
	}
	filas := make([]fila, 0, len(inscripciones))
	for _, insc := range inscripciones {
		filas = append(filas, fila{Inscripcion: insc, Evento: porID[insc.IDEvento]})
	}

	data := NewTemplateData(r, PageMeta{Title: "Mis inscripciones", CurrentPage: PageInscripciones}).
		With("Filas", filas).
		WithFlash(r.URL.Query().Get("flash")).
		Build()
	h.Renderer.Render(w, http.StatusOK, "inscripciones", data)
}

// Todas renders every inscription on the platform, optionally narrowed
// to one event. Admin-only route.
// GET /admin/inscripciones?evento=<id>.
func (h *InscripcionHandlers) Todas(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())

	var (
		inscripciones []model.Inscripcion
		err           error
	)
	idEvento, _ := strconv.Atoi(r.URL.Query().Get("evento"))
	if idEvento > 0 {
		inscripciones, err = h.Inscripciones.ListByEvento(r.Context(), sess, idEvento)
	} else {
		inscripciones, err = h.Inscripciones.List(r.Context(), sess)
	}
	if err != nil {
		renderErrorPage(h.Renderer, w, r, err)
		return
	}

	data := NewTemplateData(r, PageMeta{Title: "Inscripciones", CurrentPage: PageInscripciones}).
		With("Inscripciones", inscripciones).
		With("FiltroEvento", idEvento).
		Build()
	h.Renderer.Render(w, http.StatusOK, "inscripciones_admin", data)
}
