package httpx

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// TemplateRenderer renders HTML templates for UI responses.
type TemplateRenderer struct {
	t      *template.Template
	logger *slog.Logger
}

// TemplateRendererConfig holds configuration for creating a TemplateRenderer.
type TemplateRendererConfig struct {
	// TemplateFS overrides the embedded templates (tests). Optional.
	TemplateFS fs.FS
	// Logger for template errors. Optional.
	Logger *slog.Logger
}

// NewTemplateRenderer constructs a renderer by parsing templates from
// the embedded filesystem (or the override in cfg).
func NewTemplateRenderer(cfg TemplateRendererConfig) (*TemplateRenderer, error) {
	fsys := cfg.TemplateFS
	if fsys == nil {
		sub, err := fs.Sub(templateFS, "templates")
		if err != nil {
			return nil, fmt.Errorf("embedded templates: %w", err)
		}
		fsys = sub
	}

	funcs := template.FuncMap{
		"precio": func(v float64) string {
			if v == 0 {
				return "Gratis"
			}
			return fmt.Sprintf("$%.0f", v)
		},
	}

	t, err := template.New("root").Funcs(funcs).ParseFS(fsys, "*.tmpl")
	if err != nil {
		if cfg.Logger != nil {
			cfg.Logger.Error("template parsing failed", slog.Any("error", err))
		}
		return nil, err
	}

	return &TemplateRenderer{t: t, logger: cfg.Logger}, nil
}

// Render writes the named template to the response. The template is
// rendered to a buffer first so a failure can still produce a clean 500
// instead of a half-written page.
func (tr *TemplateRenderer) Render(w http.ResponseWriter, status int, name string, data any) {
	if tr == nil || tr.t == nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tr.t.ExecuteTemplate(&buf, name, data); err != nil {
		if tr.logger != nil {
			tr.logger.Error("template render failed",
				slog.String("template", name),
				slog.Any("error", err))
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil && tr.logger != nil {
		tr.logger.Warn("write response failed", slog.Any("error", err))
	}
}
