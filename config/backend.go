package config

import (
	"strings"
	"time"
)

// BackendConfig describes the remote Espacio Evento API.
type BackendConfig struct {
	// URL is the backend root, e.g. "http://localhost:3000/api".
	URL string `env:"BACKEND_URL" envDefault:"http://localhost:3000/api"`

	// Timeout bounds each backend round trip.
	Timeout time.Duration `env:"BACKEND_TIMEOUT" envDefault:"15s"`
}

// Sanitize applies guardrails to backend configuration values.
func (b *BackendConfig) Sanitize() {
	b.URL = strings.TrimRight(strings.TrimSpace(b.URL), "/")
	if b.Timeout <= 0 {
		b.Timeout = 15 * time.Second
	}
}
