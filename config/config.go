package config

// AppConfig is the main application configuration struct.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library.
type AppConfig struct {
	// IsDev controls development mode behavior (in-memory sessions,
	// template reloading). Set DEV=true for development mode.
	IsDev bool `env:"DEV" envDefault:"false"`

	// Backend connection configuration
	Backend BackendConfig

	// Redis session store configuration
	Redis RedisConfig `envPrefix:"REDIS_"`

	// HTTP server configuration
	HTTP HTTPConfig

	// Session configuration
	Session SessionConfig

	// Payment watcher configuration
	PaymentWatch PaymentWatchConfig
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment
// variables.
func (c *AppConfig) Sanitize() {
	c.Backend.Sanitize()
	c.HTTP.Sanitize()
	c.Session.Sanitize()
	c.PaymentWatch.Sanitize()
}
