package httpx

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/espacio-evento/espacio-ui/internal/domain/model"
	"github.com/espacio-evento/espacio-ui/internal/service"
)

// SalaHandlers provides HTTP handlers for the room catalogue. Listing is
// open to any authenticated user; mutations are admin-only, enforced
// again by the service layer.
type SalaHandlers struct {
	Renderer *TemplateRenderer
	Salas    *service.SalaService
	Logger   *slog.Logger
}

// List renders the room listing with filter and sort controls.
// GET /salas?q=&estado=&sort=&desc=.
func (h *SalaHandlers) List(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	filter := salaFilterFromQuery(r)

	salas, err := h.Salas.List(r.Context(), sess, filter)
	if err != nil {
		renderErrorPage(h.Renderer, w, r, err)
		return
	}

	data := NewTemplateData(r, PageMeta{Title: "Salas", CurrentPage: PageSalas}).
		With("Salas", salas).
		With("Filter", filter).
		WithFlash(r.URL.Query().Get("flash")).
		Build()
	h.Renderer.Render(w, http.StatusOK, "salas", data)
}

// NewForm renders the room creation form.
// GET /salas/nueva.
func (h *SalaHandlers) NewForm(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, model.Sala{}, "", http.StatusOK)
}

// Create handles the room creation form submission.
// POST /salas/nueva.
func (h *SalaHandlers) Create(w http.ResponseWriter, r *http.Request) {
	sala, err := salaFromForm(r)
	if err != nil {
		h.renderForm(w, r, sala, err.Error(), http.StatusBadRequest)
		return
	}

	sess := SessionFromContext(r.Context())
	if _, err := h.Salas.Create(r.Context(), sess, sala); err != nil {
		h.renderForm(w, r, sala, err.Error(), statusFromError(err))
		return
	}
	redirectFlash(w, r, "/salas", "Sala creada")
}

// EditForm renders the room edit form.
// GET /salas/{id}/editar.
func (h *SalaHandlers) EditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	sess := SessionFromContext(r.Context())
	sala, err := h.Salas.Get(r.Context(), sess, id)
	if err != nil {
		renderErrorPage(h.Renderer, w, r, err)
		return
	}
	h.renderForm(w, r, sala, "", http.StatusOK)
}

// Update handles the room edit form submission.
// POST /salas/{id}/editar.
func (h *SalaHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	sala, err := salaFromForm(r)
	if err != nil {
		sala.IDSala = id
		h.renderForm(w, r, sala, err.Error(), http.StatusBadRequest)
		return
	}
	sala.IDSala = id

	sess := SessionFromContext(r.Context())
	if _, err := h.Salas.Update(r.Context(), sess, id, sala); err != nil {
		h.renderForm(w, r, sala, err.Error(), statusFromError(err))
		return
	}
	redirectFlash(w, r, "/salas", "Sala actualizada")
}

// Delete removes a room.
// POST /salas/{id}/eliminar.
func (h *SalaHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	sess := SessionFromContext(r.Context())
	if err := h.Salas.Delete(r.Context(), sess, id); err != nil {
		renderErrorPage(h.Renderer, w, r, err)
		return
	}
	redirectFlash(w, r, "/salas", "Sala eliminada")
}

func (h *SalaHandlers) renderForm(w http.ResponseWriter, r *http.Request, sala model.Sala, errMsg string, status int) {
	title := "Nueva sala"
	if sala.IDSala != 0 {
		title = "Editar sala"
	}
	data := NewTemplateData(r, PageMeta{Title: title, CurrentPage: PageSalas}).
		With("Sala", sala).
		With("Editing", sala.IDSala != 0).
		WithError(errMsg).
		Build()
	h.Renderer.Render(w, status, "sala_form", data)
}

func salaFilterFromQuery(r *http.Request) service.SalaFilter {
	q := r.URL.Query()
	filter := service.SalaFilter{
		Q:    q.Get("q"),
		Desc: q.Get("desc") == "1",
	}
	switch estado := model.EstadoSala(q.Get("estado")); estado {
	case model.SalaDisponible, model.SalaArrendada, model.SalaInactiva:
		filter.Estado = estado
	}
	switch sort := q.Get("sort"); sort {
	case "nombre", "capacidad", "precio":
		filter.Sort = sort
	}
	return filter
}

func salaFromForm(r *http.Request) (model.Sala, error) {
	if err := r.ParseForm(); err != nil {
		return model.Sala{}, errFormulario
	}

	sala := model.Sala{
		Nombre:    r.PostFormValue("nombre"),
		Ubicacion: r.PostFormValue("ubicacion"),
		Estado:    model.EstadoSala(r.PostFormValue("estado")),
	}

	var err error
	if sala.Capacidad, err = strconv.Atoi(r.PostFormValue("capacidad")); err != nil {
		return sala, errFormNumero("capacidad")
	}
	if sala.PrecioArriendo, err = strconv.ParseFloat(r.PostFormValue("precio_arriendo"), 64); err != nil {
		return sala, errFormNumero("precio de arriendo")
	}
	return sala, nil
}
