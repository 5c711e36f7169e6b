package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	redisstore "github.com/espacio-evento/espacio-ui/internal/adapters/redis"
	domainauth "github.com/espacio-evento/espacio-ui/internal/domain/auth"
	apperrors "github.com/espacio-evento/espacio-ui/internal/errors"
	"github.com/espacio-evento/espacio-ui/internal/ports"
)

const defaultSessionTTL = 24 * time.Hour

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	API      ports.AuthAPI
	Sessions ports.SessionStore
	// SessionTTL bounds session lifetime. Zero means the default.
	SessionTTL time.Duration
	// Now overrides the clock (tests). Optional.
	Now func() time.Time
}

// AuthService orchestrates login, registration, logout and session
// rehydration against the backend auth endpoints.
type AuthService struct {
	api      ports.AuthAPI
	sessions ports.SessionStore
	ttl      time.Duration
	now      func() time.Time
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	ttl := opts.SessionTTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &AuthService{
		api:      opts.API,
		sessions: opts.Sessions,
		ttl:      ttl,
		now:      now,
	}
}

// Login authenticates against the backend and persists a fresh session.
// The session is written only after the backend accepted the
// credentials, so a failed login leaves any prior session untouched.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domainauth.Session, error) {
	if email == "" || password == "" {
		return nil, apperrors.Validation("correo y contraseña son obligatorios")
	}

	result, err := s.api.Login(ctx, ports.Credentials{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	return s.persistSession(ctx, result)
}

// Register creates a backend account and persists a session for the new
// user, with the same atomicity contract as Login.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domainauth.Session, error) {
	if in.Correo == "" || in.Password == "" {
		return nil, apperrors.Validation("correo y contraseña son obligatorios")
	}
	if in.Nombre == "" {
		return nil, apperrors.Validation("el nombre es obligatorio")
	}

	result, err := s.api.Register(ctx, in)
	if err != nil {
		return nil, err
	}

	return s.persistSession(ctx, result)
}

func (s *AuthService) persistSession(ctx context.Context, result ports.AuthResult) (*domainauth.Session, error) {
	if result.Token == "" || result.User.IDUsuario == 0 {
		return nil, apperrors.Internal("respuesta de autenticación incompleta")
	}

	now := s.now()
	sess := domainauth.Session{
		ID:        uuid.New().String(),
		Token:     result.Token,
		User:      result.User,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return &sess, nil
}

// GetSession rehydrates a session by ID. A missing, expired, or corrupt
// record yields (nil, nil): rehydration is a logged-out state, never a
// failure surfaced to the user.
func (s *AuthService) GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if sessionID == "" {
		return nil, nil
	}

	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, redisstore.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	if !sess.Valid() {
		// A half-written record violates the token/user invariant; clear it.
		if deleteErr := s.sessions.Delete(ctx, sessionID); deleteErr != nil {
			return nil, fmt.Errorf("delete invalid session: %w", deleteErr)
		}
		return nil, nil
	}

	return &sess, nil
}

// Refresh revalidates the session token against the backend and updates
// the stored user profile, picking up role changes.
func (s *AuthService) Refresh(ctx context.Context, sess *domainauth.Session) (*domainauth.Session, error) {
	if sess == nil {
		return nil, apperrors.Unauthorized("sesión no iniciada")
	}

	result, err := s.api.CheckStatus(ctx, sess.Token)
	if err != nil {
		return nil, err
	}

	updated := *sess
	if result.Token != "" {
		updated.Token = result.Token
	}
	if result.User.IDUsuario != 0 {
		updated.User = result.User
	}
	if saveErr := s.sessions.Save(ctx, updated); saveErr != nil {
		return nil, fmt.Errorf("save session: %w", saveErr)
	}
	return &updated, nil
}

// Logout removes a session. It never fails on an absent session.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil // Nothing to log out
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// HasRole reports whether the session user holds the role. A nil
// session holds no roles; this never errors.
func (s *AuthService) HasRole(sess *domainauth.Session, role domainauth.Role) bool {
	if sess == nil {
		return false
	}
	return sess.HasRole(role)
}
