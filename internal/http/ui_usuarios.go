package httpx

import (
	"net/http"

	"github.com/espacio-evento/espacio-ui/internal/service"
)

// UsuarioHandlers provides the admin-only user directory.
type UsuarioHandlers struct {
	Renderer *TemplateRenderer
	Usuarios *service.UsuarioService
}

// List renders the user directory.
// GET /usuarios.
func (h *UsuarioHandlers) List(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())

	usuarios, err := h.Usuarios.List(r.Context(), sess)
	if err != nil {
		renderErrorPage(h.Renderer, w, r, err)
		return
	}

	data := NewTemplateData(r, PageMeta{Title: "Usuarios", CurrentPage: PageUsuarios}).
		With("Usuarios", usuarios).
		Build()
	h.Renderer.Render(w, http.StatusOK, "usuarios", data)
}
