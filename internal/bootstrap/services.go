package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/espacio-evento/espacio-ui/config"
	"github.com/espacio-evento/espacio-ui/internal/api"
	"github.com/espacio-evento/espacio-ui/internal/ports"
	"github.com/espacio-evento/espacio-ui/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Auth          *service.AuthService
	Eventos       *service.EventoService
	Salas         *service.SalaService
	Usuarios      *service.UsuarioService
	Inscripciones *service.InscripcionService
	Watcher       *service.PaymentWatcher
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config   *config.AppConfig
	Sessions ports.SessionStore
	Logger   *slog.Logger
}

// NewServices wires the backend API client and the domain services.
func NewServices(deps *ServiceDeps) (ServiceContainer, error) {
	if deps == nil || deps.Config == nil {
		return ServiceContainer{}, fmt.Errorf("service deps are required")
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	client, err := api.NewClient(api.Config{
		BaseURL: deps.Config.Backend.URL,
		Timeout: deps.Config.Backend.Timeout,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("build api client: %w", err)
	}

	authSvc := service.NewAuthService(service.AuthServiceOptions{
		API:        client.Auth(),
		Sessions:   deps.Sessions,
		SessionTTL: deps.Config.Session.TTL,
	})

	eventoSvc := service.NewEventoService(service.EventoServiceOptions{
		Eventos:       client.Eventos(),
		Inscripciones: client.Inscripciones(),
	})

	salaSvc := service.NewSalaService(service.SalaServiceOptions{
		Salas: client.Salas(),
	})

	usuarioSvc := service.NewUsuarioService(service.UsuarioServiceOptions{
		Usuarios: client.Usuarios(),
	})

	inscripcionSvc := service.NewInscripcionService(service.InscripcionServiceOptions{
		Eventos:       client.Eventos(),
		Inscripciones: client.Inscripciones(),
		Pagos:         client.Pagos(),
	})

	var watcher *service.PaymentWatcher
	if deps.Config.PaymentWatch.Enabled {
		watcher = service.NewPaymentWatcher(service.PaymentWatcherOptions{
			Inscripciones: client.Inscripciones(),
			Sessions:      deps.Sessions,
			Interval:      deps.Config.PaymentWatch.Interval,
			MaxAge:        deps.Config.PaymentWatch.MaxAge,
			Logger:        logger,
		})
	}

	return ServiceContainer{
		Auth:          authSvc,
		Eventos:       eventoSvc,
		Salas:         salaSvc,
		Usuarios:      usuarioSvc,
		Inscripciones: inscripcionSvc,
		Watcher:       watcher,
	}, nil
}
