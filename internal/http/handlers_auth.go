package httpx

import (
	"context"
	"log/slog"
	"net/http"

	domainauth "github.com/espacio-evento/espacio-ui/internal/domain/auth"
	"github.com/espacio-evento/espacio-ui/internal/ports"
)

// AuthService defines the session operations the HTTP layer needs.
// Implemented by service.AuthService.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*domainauth.Session, error)
	Register(ctx context.Context, in ports.RegisterInput) (*domainauth.Session, error)
	GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error)
	Refresh(ctx context.Context, sess *domainauth.Session) (*domainauth.Session, error)
	Logout(ctx context.Context, sessionID string) error
}

// AuthHandlers provides HTTP handlers for login, registration, and logout.
type AuthHandlers struct {
	Svc          AuthService
	Renderer     *TemplateRenderer
	CookieDomain string
	CookieSecure bool
	Logger       *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// LoginForm renders the login page.
// GET /login?redirect_uri=<optional>.
func (h *AuthHandlers) LoginForm(w http.ResponseWriter, r *http.Request) {
	if h.alreadyAuthenticated(r) {
		http.Redirect(w, r, "/eventos", http.StatusSeeOther)
		return
	}
	data := NewTemplateData(r, PageMeta{Title: "Iniciar sesión", CurrentPage: PageLogin}).
		With("RedirectURI", r.URL.Query().Get("redirect_uri")).
		Build()
	h.Renderer.Render(w, http.StatusOK, "login", data)
}

// Login handles the login form submission.
// POST /login.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderLoginError(w, r, http.StatusBadRequest, "formulario inválido")
		return
	}

	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	sess, err := h.Svc.Login(r.Context(), email, password)
	if err != nil {
		// The backend's message is shown verbatim; a failed attempt
		// leaves any previous session cookie untouched.
		h.renderLoginError(w, r, statusFromError(err), err.Error())
		return
	}

	h.setSessionCookie(w, sess)
	h.logger().Info("login", slog.Int("user", sess.User.IDUsuario))
	http.Redirect(w, r, safeRedirectPath(r.PostFormValue("redirect_uri")), http.StatusSeeOther)
}

// RegisterForm renders the signup page.
// GET /register.
func (h *AuthHandlers) RegisterForm(w http.ResponseWriter, r *http.Request) {
	if h.alreadyAuthenticated(r) {
		http.Redirect(w, r, "/eventos", http.StatusSeeOther)
		return
	}
	data := NewTemplateData(r, PageMeta{Title: "Crear cuenta", CurrentPage: PageLogin}).
		With("Correo", "").
		With("Nombre", "").
		With("Apellido", "").
		Build()
	h.Renderer.Render(w, http.StatusOK, "register", data)
}

// Register handles the signup form submission.
// POST /register.
func (h *AuthHandlers) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderRegisterError(w, r, http.StatusBadRequest, "formulario inválido")
		return
	}

	in := ports.RegisterInput{
		Correo:   r.PostFormValue("correo"),
		Password: r.PostFormValue("password"),
		Nombre:   r.PostFormValue("nombre"),
		Apellido: r.PostFormValue("apellido"),
		Roles:    r.PostForm["roles"],
	}

	sess, err := h.Svc.Register(r.Context(), in)
	if err != nil {
		h.renderRegisterError(w, r, statusFromError(err), err.Error())
		return
	}

	h.setSessionCookie(w, sess)
	h.logger().Info("register", slog.Int("user", sess.User.IDUsuario))
	http.Redirect(w, r, "/eventos", http.StatusSeeOther)
}

// Logout clears the session unconditionally.
// POST /logout.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		if logoutErr := h.Svc.Logout(r.Context(), cookie.Value); logoutErr != nil {
			// Logout never fails from the user's point of view; the cookie
			// is cleared regardless and the record expires on its own.
			h.logger().Warn("logout cleanup failed", slog.Any("error", logoutErr))
		}
	}
	h.clearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *AuthHandlers) alreadyAuthenticated(r *http.Request) bool {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return false
	}
	sess, err := h.Svc.GetSession(r.Context(), cookie.Value)
	return err == nil && sess != nil
}

func (h *AuthHandlers) setSessionCookie(w http.ResponseWriter, sess *domainauth.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    sess.ID,
		Path:     "/",
		Domain:   h.CookieDomain,
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		Secure:   h.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandlers) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		Domain:   h.CookieDomain,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandlers) renderLoginError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	data := NewTemplateData(r, PageMeta{Title: "Iniciar sesión", CurrentPage: PageLogin}).
		With("RedirectURI", r.PostFormValue("redirect_uri")).
		WithError(msg).
		Build()
	h.Renderer.Render(w, status, "login", data)
}

func (h *AuthHandlers) renderRegisterError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	data := NewTemplateData(r, PageMeta{Title: "Crear cuenta", CurrentPage: PageLogin}).
		With("Correo", r.PostFormValue("correo")).
		With("Nombre", r.PostFormValue("nombre")).
		With("Apellido", r.PostFormValue("apellido")).
		WithError(msg).
		Build()
	h.Renderer.Render(w, status, "register", data)
}
