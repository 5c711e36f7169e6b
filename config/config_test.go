package config

import (
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
)

func TestAppConfig_Defaults(t *testing.T) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()

	if cfg.IsDev {
		t.Error("expected dev mode off by default")
	}
	if cfg.Backend.URL != "http://localhost:3000/api" {
		t.Errorf("unexpected backend URL default: %q", cfg.Backend.URL)
	}
	if cfg.Backend.Timeout != 15*time.Second {
		t.Errorf("unexpected backend timeout default: %v", cfg.Backend.Timeout)
	}
	if cfg.HTTP.Addr != ":8080" {
		t.Errorf("unexpected HTTP addr default: %q", cfg.HTTP.Addr)
	}
	if !cfg.HTTP.CookieSecure {
		t.Error("expected secure cookies by default")
	}
	if cfg.Redis.Enabled() {
		t.Error("expected Redis disabled without an address")
	}
	if cfg.Session.TTL != 24*time.Hour {
		t.Errorf("unexpected session TTL default: %v", cfg.Session.TTL)
	}
	if !cfg.PaymentWatch.Enabled {
		t.Error("expected payment watcher enabled by default")
	}
}

func TestAppConfig_ParseEnv(t *testing.T) {
	t.Setenv("DEV", "true")
	t.Setenv("BACKEND_URL", "https://api.eventos.example.com/api")
	t.Setenv("BACKEND_TIMEOUT", "5s")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("APP_COOKIE_SECURE", "false")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_PASSWORD", "secret")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("PAYMENT_WATCH_INTERVAL", "30s")

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()

	if !cfg.IsDev {
		t.Error("expected dev mode on")
	}
	if cfg.Backend.URL != "https://api.eventos.example.com/api" {
		t.Errorf("unexpected backend URL: %q", cfg.Backend.URL)
	}
	if cfg.Backend.Timeout != 5*time.Second {
		t.Errorf("unexpected backend timeout: %v", cfg.Backend.Timeout)
	}
	if cfg.HTTP.Addr != ":9090" {
		t.Errorf("unexpected HTTP addr: %q", cfg.HTTP.Addr)
	}
	if cfg.HTTP.CookieSecure {
		t.Error("expected insecure cookies")
	}
	if !cfg.Redis.Enabled() {
		t.Error("expected Redis enabled")
	}
	if cfg.Redis.Password != "secret" || cfg.Redis.DB != 3 {
		t.Errorf("unexpected Redis config: %+v", cfg.Redis)
	}
	if cfg.Session.TTL != 2*time.Hour {
		t.Errorf("unexpected session TTL: %v", cfg.Session.TTL)
	}
	if cfg.PaymentWatch.Interval != 30*time.Second {
		t.Errorf("unexpected watch interval: %v", cfg.PaymentWatch.Interval)
	}
}

func TestBackendConfig_Sanitize(t *testing.T) {
	cfg := BackendConfig{URL: "  http://localhost:3000/api/  ", Timeout: -1}

	cfg.Sanitize()

	if cfg.URL != "http://localhost:3000/api" {
		t.Errorf("expected trimmed URL without trailing slash, got %q", cfg.URL)
	}
	if cfg.Timeout != 15*time.Second {
		t.Errorf("expected timeout to fall back to default, got %v", cfg.Timeout)
	}
}

func TestHTTPConfig_Sanitize(t *testing.T) {
	cfg := HTTPConfig{Addr: ""}

	cfg.Sanitize()

	if cfg.Addr != ":8080" {
		t.Errorf("expected addr to fall back to default, got %q", cfg.Addr)
	}
}

func TestSessionConfig_Sanitize(t *testing.T) {
	cfg := SessionConfig{TTL: 0}

	cfg.Sanitize()

	if cfg.TTL != 24*time.Hour {
		t.Errorf("expected TTL to fall back to default, got %v", cfg.TTL)
	}
}

func TestPaymentWatchConfig_Sanitize(t *testing.T) {
	cfg := PaymentWatchConfig{Enabled: true, Interval: 0, MaxAge: -time.Minute}

	cfg.Sanitize()

	if cfg.Interval != 15*time.Second {
		t.Errorf("expected interval to fall back to default, got %v", cfg.Interval)
	}
	if cfg.MaxAge != 30*time.Minute {
		t.Errorf("expected max age to fall back to default, got %v", cfg.MaxAge)
	}
}
