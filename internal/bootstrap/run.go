package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/espacio-evento/espacio-ui/config"
	httpx "github.com/espacio-evento/espacio-ui/internal/http"
)

// RunConfig groups everything needed to run the application.
type RunConfig struct {
	Config   *config.AppConfig
	Services ServiceContainer
	Logger   *slog.Logger
}

// RunWithShutdown starts the HTTP server and the payment watcher, then
// blocks until a shutdown signal arrives or a service fails.
func RunWithShutdown(cfg *RunConfig) error {
	if cfg == nil || cfg.Config == nil {
		return errors.New("run config is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	renderer, err := httpx.NewTemplateRenderer(httpx.TemplateRendererConfig{Logger: logger})
	if err != nil {
		return err
	}

	serviceCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 2)

	server := StartHTTPServer(&HTTPServerConfig{
		Config:   cfg.Config,
		Services: cfg.Services,
		Renderer: renderer,
		Logger:   logger,
		ErrCh:    errCh,
	})

	watcherDone := make(chan struct{})
	if cfg.Services.Watcher != nil {
		go func() {
			defer close(watcherDone)
			if runErr := cfg.Services.Watcher.Run(serviceCtx); runErr != nil {
				errCh <- runErr
			}
		}()
	} else {
		close(watcherDone)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	var runErr error
	select {
	case <-quit:
		logger.Info("shutting down services...")
	case runErr = <-errCh:
		logger.Error("service error", "error", runErr)
	}
	cancel()

	if shutdownErr := ShutdownHTTPServer(context.Background(), server, logger); shutdownErr != nil {
		logger.Error("graceful stop failed", "error", shutdownErr)
		if runErr == nil {
			runErr = shutdownErr
		}
	}
	<-watcherDone

	return runErr
}
