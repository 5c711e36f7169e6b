package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/espacio-evento/espacio-ui/internal/domain/auth"
	apperrors "github.com/espacio-evento/espacio-ui/internal/errors"
	"github.com/espacio-evento/espacio-ui/internal/ports"
)

func newAuthHandlers(t *testing.T, svc AuthService) *AuthHandlers {
	t.Helper()
	return &AuthHandlers{
		Svc:      svc,
		Renderer: testRenderer(t),
		Logger:   testLogger(),
	}
}

func postForm(target string, form url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == SessionCookieName {
			return c
		}
	}
	return nil
}

func TestLoginForm_RendersPage(t *testing.T) {
	h := newAuthHandlers(t, authStub(nil))

	rec := httptest.NewRecorder()
	h.LoginForm(rec, httptest.NewRequest(http.MethodGet, "/login?redirect_uri=%2Fsalas", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `name="email"`)
	assert.Contains(t, rec.Body.String(), `value="/salas"`)
}

func TestLoginForm_AuthenticatedGoesToEventos(t *testing.T) {
	h := newAuthHandlers(t, authStub(sessionFor("asistente")))

	rec := httptest.NewRecorder()
	h.LoginForm(rec, withSessionCookie(httptest.NewRequest(http.MethodGet, "/login", nil)))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/eventos", rec.Header().Get("Location"))
}

func TestLogin_SetsCookieAndRedirects(t *testing.T) {
	sess := sessionFor("asistente")
	svc := &stubAuthService{
		LoginFunc: func(_ context.Context, email, password string) (*domainauth.Session, error) {
			assert.Equal(t, "ana@example.com", email)
			assert.Equal(t, "secreto", password)
			return sess, nil
		},
	}
	h := newAuthHandlers(t, svc)

	rec := httptest.NewRecorder()
	h.Login(rec, postForm("/login", url.Values{
		"email":        {"ana@example.com"},
		"password":     {"secreto"},
		"redirect_uri": {"/salas"},
	}))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/salas", rec.Header().Get("Location"))

	cookie := sessionCookie(t, rec)
	require.NotNil(t, cookie)
	assert.Equal(t, sess.ID, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.WithinDuration(t, sess.ExpiresAt, cookie.Expires, time.Second)
}

func TestLogin_OffsiteRedirectIgnored(t *testing.T) {
	svc := &stubAuthService{
		LoginFunc: func(context.Context, string, string) (*domainauth.Session, error) {
			return sessionFor("asistente"), nil
		},
	}
	h := newAuthHandlers(t, svc)

	rec := httptest.NewRecorder()
	h.Login(rec, postForm("/login", url.Values{
		"email":        {"ana@example.com"},
		"password":     {"secreto"},
		"redirect_uri": {"https://evil.example/"},
	}))

	assert.Equal(t, "/eventos", rec.Header().Get("Location"))
}

func TestLogin_BackendErrorShownVerbatim(t *testing.T) {
	svc := &stubAuthService{
		LoginFunc: func(context.Context, string, string) (*domainauth.Session, error) {
			return nil, apperrors.Remote(401, "Credenciales inválidas")
		},
	}
	h := newAuthHandlers(t, svc)

	rec := httptest.NewRecorder()
	h.Login(rec, postForm("/login", url.Values{
		"email":    {"ana@example.com"},
		"password": {"mala"},
	}))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Credenciales inválidas")
	assert.Nil(t, sessionCookie(t, rec), "failed login leaves cookies untouched")
}

func TestRegister_SetsCookie(t *testing.T) {
	svc := &stubAuthService{
		RegisterFunc: func(_ context.Context, in ports.RegisterInput) (*domainauth.Session, error) {
			assert.Equal(t, "ana@example.com", in.Correo)
			assert.Equal(t, []string{"asistente", "organizador"}, in.Roles)
			return sessionFor("asistente", "organizador"), nil
		},
	}
	h := newAuthHandlers(t, svc)

	rec := httptest.NewRecorder()
	h.Register(rec, postForm("/register", url.Values{
		"nombre":   {"Ana"},
		"apellido": {"Soto"},
		"correo":   {"ana@example.com"},
		"password": {"secreto"},
		"roles":    {"asistente", "organizador"},
	}))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/eventos", rec.Header().Get("Location"))
	require.NotNil(t, sessionCookie(t, rec))
}

func TestRegister_ErrorKeepsFormValues(t *testing.T) {
	svc := &stubAuthService{
		RegisterFunc: func(context.Context, ports.RegisterInput) (*domainauth.Session, error) {
			return nil, apperrors.Remote(409, "Correo ya registrado")
		},
	}
	h := newAuthHandlers(t, svc)

	rec := httptest.NewRecorder()
	h.Register(rec, postForm("/register", url.Values{
		"nombre": {"Ana"},
		"correo": {"ana@example.com"},
	}))

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "Correo ya registrado")
	assert.Contains(t, rec.Body.String(), `value="ana@example.com"`)
}

func TestLogout_ClearsCookie(t *testing.T) {
	var deleted string
	svc := &stubAuthService{
		LogoutFunc: func(_ context.Context, sessionID string) error {
			deleted = sessionID
			return nil
		},
	}
	h := newAuthHandlers(t, svc)

	rec := httptest.NewRecorder()
	h.Logout(rec, withSessionCookie(httptest.NewRequest(http.MethodPost, "/logout", nil)))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	assert.Equal(t, "sess-1", deleted)

	cookie := sessionCookie(t, rec)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestLogout_StoreFailureStillClears(t *testing.T) {
	svc := &stubAuthService{
		LogoutFunc: func(context.Context, string) error {
			return apperrors.Internal("redis caído")
		},
	}
	h := newAuthHandlers(t, svc)

	rec := httptest.NewRecorder()
	h.Logout(rec, withSessionCookie(httptest.NewRequest(http.MethodPost, "/logout", nil)))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.NotNil(t, sessionCookie(t, rec))
}
