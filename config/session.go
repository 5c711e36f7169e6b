package config

import "time"

// SessionConfig controls session lifetime.
type SessionConfig struct {
	// TTL is how long a session stays valid after login.
	TTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`
}

// Sanitize applies guardrails to session configuration values.
func (s *SessionConfig) Sanitize() {
	if s.TTL <= 0 {
		s.TTL = 24 * time.Hour
	}
}
