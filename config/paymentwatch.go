package config

import "time"

// PaymentWatchConfig controls the background payment confirmation
// watcher.
type PaymentWatchConfig struct {
	// Enabled toggles the watcher service.
	Enabled bool `env:"PAYMENT_WATCH_ENABLED" envDefault:"true"`

	// Interval between sweeps over pending payments.
	Interval time.Duration `env:"PAYMENT_WATCH_INTERVAL" envDefault:"15s"`

	// MaxAge drops a payment that never confirmed.
	MaxAge time.Duration `env:"PAYMENT_WATCH_MAX_AGE" envDefault:"30m"`
}

// Sanitize applies guardrails to payment watcher configuration values.
func (p *PaymentWatchConfig) Sanitize() {
	if p.Interval <= 0 {
		p.Interval = 15 * time.Second
	}
	if p.MaxAge <= 0 {
		p.MaxAge = 30 * time.Minute
	}
}
