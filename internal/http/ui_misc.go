package httpx

import (
	"encoding/json"
	"net/http"
)

// MiscHandlers covers the root redirect, the profile page, and the
// health endpoint.
type MiscHandlers struct {
	Renderer *TemplateRenderer
	Auth     AuthService
}

// Home sends the visitor to the events page when logged in, to the
// login page otherwise.
// GET /.
func (h *MiscHandlers) Home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if SessionFromContext(r.Context()) != nil {
		http.Redirect(w, r, "/eventos", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// Perfil renders the viewer's profile.
// GET /perfil.
func (h *MiscHandlers) Perfil(w http.ResponseWriter, r *http.Request) {
	data := NewTemplateData(r, PageMeta{Title: "Mi perfil", CurrentPage: PagePerfil}).
		WithFlash(r.URL.Query().Get("flash")).
		Build()
	h.Renderer.Render(w, http.StatusOK, "perfil", data)
}

// PerfilRefrescar revalidates the session token against the backend and
// refreshes the stored profile, picking up role changes without a
// re-login.
// POST /perfil/refrescar.
func (h *MiscHandlers) PerfilRefrescar(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	if _, err := h.Auth.Refresh(r.Context(), sess); err != nil {
		renderErrorPage(h.Renderer, w, r, err)
		return
	}
	redirectFlash(w, r, "/perfil", "Perfil actualizado")
}

// Healthz reports process liveness.
// GET /healthz.
func (h *MiscHandlers) Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
