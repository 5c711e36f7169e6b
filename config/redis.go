package config

// RedisConfig contains Redis connection configuration for the session
// store. When Addr is empty the application falls back to the in-memory
// store, which only suits development.
type RedisConfig struct {
	Addr     string `env:"ADDR" envDefault:""`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB" envDefault:"0"`
}

// Enabled reports whether a Redis address is configured.
func (r RedisConfig) Enabled() bool { return r.Addr != "" }
