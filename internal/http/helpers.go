package httpx

import (
	"net/http"
	"net/url"
	"strconv"

	apperrors "github.com/espacio-evento/espacio-ui/internal/errors"
)

var errFormulario = apperrors.Validation("formulario inválido")

func errFormNumero(campo string) error {
	return apperrors.Validationf("el campo %s debe ser numérico", campo)
}

// pathID extracts the {id} path segment as an int, writing a 404 when it
// is missing or not a number.
func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		http.NotFound(w, r)
		return 0, false
	}
	return id, true
}

// redirectFlash redirects to path with a flash message in the query.
func redirectFlash(w http.ResponseWriter, r *http.Request, path, msg string) {
	http.Redirect(w, r, path+"?flash="+url.QueryEscape(msg), http.StatusSeeOther)
}

// renderErrorPage renders the standalone error page for a failure that
// leaves nothing else to show.
func renderErrorPage(tr *TemplateRenderer, w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	data := NewTemplateData(r, PageMeta{Title: "Error"}).
		With("Status", status).
		WithError(err.Error()).
		Build()
	tr.Render(w, status, "error", data)
}
