package httpx

import (
	"net/http"
)

// Page identifiers used for navigation highlighting.
const (
	PageEventos       = "eventos"
	PageSalas         = "salas"
	PageInscripciones = "inscripciones"
	PageUsuarios      = "usuarios"
	PagePerfil        = "perfil"
	PageLogin         = "login"
)

// PageMeta describes a page for the layout template.
type PageMeta struct {
	Title       string
	CurrentPage string
}

// TemplateDataBuilder provides a fluent API for building template data maps.
type TemplateDataBuilder struct {
	data map[string]any
}

// NewTemplateData creates a builder seeded with the layout's base data:
// page metadata plus the viewer's identity and capabilities.
func NewTemplateData(r *http.Request, meta PageMeta) *TemplateDataBuilder {
	data := map[string]any{
		"Title":       meta.Title,
		"CurrentPage": meta.CurrentPage,
	}

	if sess := SessionFromContext(r.Context()); sess != nil {
		roles := sess.Roles()
		data["Authenticated"] = true
		data["User"] = sess.User
		data["IsAdmin"] = roles.IsAdmin()
		data["CanOrganize"] = roles.CanOrganize()
		data["CanAttend"] = roles.CanAttend()
	} else {
		data["Authenticated"] = false
	}

	return &TemplateDataBuilder{data: data}
}

// With adds a key/value pair.
func (b *TemplateDataBuilder) With(key string, value any) *TemplateDataBuilder {
	b.data[key] = value
	return b
}

// WithError adds a user-visible error message.
func (b *TemplateDataBuilder) WithError(msg string) *TemplateDataBuilder {
	if msg != "" {
		b.data["Error"] = msg
	}
	return b
}

// WithFlash adds a user-visible success message.
func (b *TemplateDataBuilder) WithFlash(msg string) *TemplateDataBuilder {
	if msg != "" {
		b.data["Flash"] = msg
	}
	return b
}

// Build returns the accumulated data map.
func (b *TemplateDataBuilder) Build() map[string]any {
	return b.data
}
