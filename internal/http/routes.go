package httpx

import (
	"log/slog"
	"net/http"

	domainauth "github.com/espacio-evento/espacio-ui/internal/domain/auth"
	"github.com/espacio-evento/espacio-ui/internal/service"
)

// RouterServices groups everything the router needs.
type RouterServices struct {
	Renderer      *TemplateRenderer
	Auth          AuthService
	Eventos       *service.EventoService
	Salas         *service.SalaService
	Usuarios      *service.UsuarioService
	Inscripciones *service.InscripcionService
	Watcher       *service.PaymentWatcher
	CookieDomain  string
	CookieSecure  bool
	Logger        *slog.Logger
}

// NewRouter builds the full route table. Every page behind /eventos,
// /salas, /inscripciones, /usuarios and /perfil requires a session;
// /usuarios and /admin additionally require the administrator role.
func NewRouter(svcs RouterServices) http.Handler {
	logger := svcs.Logger
	if logger == nil {
		logger = slog.Default()
	}

	authH := &AuthHandlers{
		Svc:          svcs.Auth,
		Renderer:     svcs.Renderer,
		CookieDomain: svcs.CookieDomain,
		CookieSecure: svcs.CookieSecure,
		Logger:       logger,
	}
	eventoH := &EventoHandlers{
		Renderer:      svcs.Renderer,
		Eventos:       svcs.Eventos,
		Salas:         svcs.Salas,
		Inscripciones: svcs.Inscripciones,
		Watcher:       svcs.Watcher,
		Logger:        logger,
	}
	salaH := &SalaHandlers{Renderer: svcs.Renderer, Salas: svcs.Salas, Logger: logger}
	inscH := &InscripcionHandlers{Renderer: svcs.Renderer, Inscripciones: svcs.Inscripciones, Eventos: svcs.Eventos}
	usuarioH := &UsuarioHandlers{Renderer: svcs.Renderer, Usuarios: svcs.Usuarios}
	miscH := &MiscHandlers{Renderer: svcs.Renderer, Auth: svcs.Auth}

	auth := RequireAuth(svcs.Auth)
	admin := RequireRole(svcs.Auth, domainauth.RoleAdministrador)
	optional := OptionalAuth(svcs.Auth)

	mux := http.NewServeMux()

	mux.Handle("GET /{$}", optional(http.HandlerFunc(miscH.Home)))
	mux.HandleFunc("GET /healthz", miscH.Healthz)

	mux.HandleFunc("GET /login", authH.LoginForm)
	mux.HandleFunc("POST /login", authH.Login)
	mux.HandleFunc("GET /register", authH.RegisterForm)
	mux.HandleFunc("POST /register", authH.Register)
	mux.HandleFunc("POST /logout", authH.Logout)

	mux.Handle("GET /eventos", auth(http.HandlerFunc(eventoH.List)))
	mux.Handle("GET /eventos/nuevo", auth(http.HandlerFunc(eventoH.NewForm)))
	mux.Handle("POST /eventos/nuevo", auth(http.HandlerFunc(eventoH.Create)))
	mux.Handle("GET /eventos/{id}", auth(http.HandlerFunc(eventoH.Detail)))
	mux.Handle("GET /eventos/{id}/editar", auth(http.HandlerFunc(eventoH.EditForm)))
	mux.Handle("POST /eventos/{id}/editar", auth(http.HandlerFunc(eventoH.Update)))
	mux.Handle("POST /eventos/{id}/eliminar", auth(http.HandlerFunc(eventoH.Delete)))
	mux.Handle("POST /eventos/{id}/inscribir", auth(http.HandlerFunc(eventoH.Inscribir)))
	mux.Handle("GET /eventos/{id}/cancelar", auth(http.HandlerFunc(eventoH.CancelarConfirm)))
	mux.Handle("POST /eventos/{id}/cancelar", auth(http.HandlerFunc(eventoH.Cancelar)))
	mux.Handle("POST /eventos/{id}/pagar", auth(http.HandlerFunc(eventoH.Pagar)))

	mux.Handle("GET /salas", auth(http.HandlerFunc(salaH.List)))
	mux.Handle("GET /salas/nueva", admin(http.HandlerFunc(salaH.NewForm)))
	mux.Handle("POST /salas/nueva", admin(http.HandlerFunc(salaH.Create)))
	mux.Handle("GET /salas/{id}/editar", admin(http.HandlerFunc(salaH.EditForm)))
	mux.Handle("POST /salas/{id}/editar", admin(http.HandlerFunc(salaH.Update)))
	mux.Handle("POST /salas/{id}/eliminar", admin(http.HandlerFunc(salaH.Delete)))

	mux.Handle("GET /inscripciones", auth(http.HandlerFunc(inscH.Mias)))
	mux.Handle("GET /admin/inscripciones", admin(http.HandlerFunc(inscH.Todas)))

	mux.Handle("GET /usuarios", admin(http.HandlerFunc(usuarioH.List)))

	mux.Handle("GET /perfil", auth(http.HandlerFunc(miscH.Perfil)))
	mux.Handle("POST /perfil/refrescar", auth(http.HandlerFunc(miscH.PerfilRefrescar)))

	return mux
}
