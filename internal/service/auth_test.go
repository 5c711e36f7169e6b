package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/espacio-evento/espacio-ui/internal/adapters/memory"
	domainauth "github.com/espacio-evento/espacio-ui/internal/domain/auth"
	"github.com/espacio-evento/espacio-ui/internal/domain/model"
	apperrors "github.com/espacio-evento/espacio-ui/internal/errors"
	backendmocks "github.com/espacio-evento/espacio-ui/internal/mocks/backend"
	"github.com/espacio-evento/espacio-ui/internal/ports"
)

func TestAuthService_Login_Success(t *testing.T) {
	api := backendmocks.NewMockAuthAPI()
	sessions := memory.NewSessionStore()
	svc := NewAuthService(AuthServiceOptions{API: api, Sessions: sessions})

	sess, err := svc.Login(context.Background(), "ana@example.com", "secreto")

	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, "tok-1", sess.Token)
	assert.Equal(t, 1, sess.User.IDUsuario)
	assert.True(t, sess.ExpiresAt.After(sess.CreatedAt))
	assert.Equal(t, 1, sessions.Len())
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	called := false
	api := backendmocks.NewMockAuthAPI()
	api.LoginFunc = func(context.Context, ports.Credentials) (ports.AuthResult, error) {
		called = true
		return ports.AuthResult{}, nil
	}
	svc := NewAuthService(AuthServiceOptions{API: api, Sessions: memory.NewSessionStore()})

	_, err := svc.Login(context.Background(), "", "secreto")

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.False(t, called, "backend must not be called on empty credentials")
}

func TestAuthService_Login_BackendRejects(t *testing.T) {
	api := backendmocks.NewMockAuthAPI()
	api.LoginFunc = func(context.Context, ports.Credentials) (ports.AuthResult, error) {
		return ports.AuthResult{}, apperrors.Remote(401, "Credenciales inválidas")
	}
	sessions := memory.NewSessionStore()
	svc := NewAuthService(AuthServiceOptions{API: api, Sessions: sessions})

	sess, err := svc.Login(context.Background(), "ana@example.com", "mala")

	require.Error(t, err)
	assert.Nil(t, sess)
	assert.Equal(t, "Credenciales inválidas", err.Error())
	assert.Equal(t, 0, sessions.Len(), "failed login must not persist a session")
}

func TestAuthService_Login_SaveFails(t *testing.T) {
	sessions := &mockSessionStore{
		saveFunc: func(context.Context, domainauth.Session) error {
			return errors.New("redis down")
		},
	}
	svc := NewAuthService(AuthServiceOptions{API: backendmocks.NewMockAuthAPI(), Sessions: sessions})

	sess, err := svc.Login(context.Background(), "ana@example.com", "secreto")

	require.Error(t, err)
	assert.Nil(t, sess)
	assert.Contains(t, err.Error(), "save session")
}

func TestAuthService_Login_IncompleteBackendResponse(t *testing.T) {
	api := backendmocks.NewMockAuthAPI()
	api.LoginFunc = func(context.Context, ports.Credentials) (ports.AuthResult, error) {
		return ports.AuthResult{Token: "tok-1"}, nil // no user
	}
	svc := NewAuthService(AuthServiceOptions{API: api, Sessions: memory.NewSessionStore()})

	_, err := svc.Login(context.Background(), "ana@example.com", "secreto")

	require.Error(t, err)
	assert.True(t, apperrors.IsInternal(err))
}

func TestAuthService_Register_Success(t *testing.T) {
	sessions := memory.NewSessionStore()
	svc := NewAuthService(AuthServiceOptions{API: backendmocks.NewMockAuthAPI(), Sessions: sessions})

	sess, err := svc.Register(context.Background(), ports.RegisterInput{
		Correo:   "ana@example.com",
		Password: "secreto",
		Nombre:   "Ana",
		Roles:    []string{"asistente"},
	})

	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, 1, sessions.Len())
}

func TestAuthService_Register_MissingNombre(t *testing.T) {
	svc := NewAuthService(AuthServiceOptions{API: backendmocks.NewMockAuthAPI(), Sessions: memory.NewSessionStore()})

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Correo:   "ana@example.com",
		Password: "secreto",
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestAuthService_GetSession_EmptyID(t *testing.T) {
	svc := NewAuthService(AuthServiceOptions{API: backendmocks.NewMockAuthAPI(), Sessions: memory.NewSessionStore()})

	sess, err := svc.GetSession(context.Background(), "")

	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestAuthService_GetSession_Missing(t *testing.T) {
	svc := NewAuthService(AuthServiceOptions{API: backendmocks.NewMockAuthAPI(), Sessions: memory.NewSessionStore()})

	sess, err := svc.GetSession(context.Background(), "no-such-session")

	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestAuthService_GetSession_RoundTrip(t *testing.T) {
	sessions := memory.NewSessionStore()
	svc := NewAuthService(AuthServiceOptions{API: backendmocks.NewMockAuthAPI(), Sessions: sessions})

	created, err := svc.Login(context.Background(), "ana@example.com", "secreto")
	require.NoError(t, err)

	got, err := svc.GetSession(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.Token, got.Token)
	assert.Equal(t, created.User.IDUsuario, got.User.IDUsuario)
}

func TestAuthService_GetSession_InvalidRecordDeleted(t *testing.T) {
	deleted := false
	sessions := &mockSessionStore{
		getFunc: func(context.Context, string) (domainauth.Session, error) {
			return domainauth.Session{ID: "sess-1", Token: "tok-1"}, nil // no user: invalid
		},
		deleteFunc: func(context.Context, string) error {
			deleted = true
			return nil
		},
	}
	svc := NewAuthService(AuthServiceOptions{API: backendmocks.NewMockAuthAPI(), Sessions: sessions})

	sess, err := svc.GetSession(context.Background(), "sess-1")

	require.NoError(t, err)
	assert.Nil(t, sess)
	assert.True(t, deleted, "invalid record must be cleared")
}

func TestAuthService_Refresh_UpdatesRoles(t *testing.T) {
	api := backendmocks.NewMockAuthAPI()
	api.CheckStatusFunc = func(_ context.Context, token string) (ports.AuthResult, error) {
		return ports.AuthResult{
			Token: token,
			User: model.Usuario{
				IDUsuario: 1,
				Nombre:    "Ana",
				Roles:     []string{"asistente", "organizador"},
			},
		}, nil
	}
	sessions := memory.NewSessionStore()
	svc := NewAuthService(AuthServiceOptions{API: api, Sessions: sessions})

	sess, err := svc.Login(context.Background(), "ana@example.com", "secreto")
	require.NoError(t, err)
	assert.False(t, sess.Roles().CanOrganize())

	updated, err := svc.Refresh(context.Background(), sess)
	require.NoError(t, err)
	assert.True(t, updated.Roles().CanOrganize())

	stored, err := svc.GetSession(context.Background(), sess.ID)
	require.NoError(t, err)
	assert.True(t, stored.Roles().CanOrganize(), "refreshed roles must be persisted")
}

func TestAuthService_Refresh_NilSession(t *testing.T) {
	svc := NewAuthService(AuthServiceOptions{API: backendmocks.NewMockAuthAPI(), Sessions: memory.NewSessionStore()})

	_, err := svc.Refresh(context.Background(), nil)

	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestAuthService_Logout(t *testing.T) {
	sessions := memory.NewSessionStore()
	svc := NewAuthService(AuthServiceOptions{API: backendmocks.NewMockAuthAPI(), Sessions: sessions})

	sess, err := svc.Login(context.Background(), "ana@example.com", "secreto")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), sess.ID))
	assert.Equal(t, 0, sessions.Len())

	// Empty ID is a no-op.
	require.NoError(t, svc.Logout(context.Background(), ""))
}

func TestAuthService_HasRole(t *testing.T) {
	svc := NewAuthService(AuthServiceOptions{API: backendmocks.NewMockAuthAPI(), Sessions: memory.NewSessionStore()})

	assert.False(t, svc.HasRole(nil, domainauth.RoleAsistente))
	assert.True(t, svc.HasRole(testSession(1, "asistente"), domainauth.RoleAsistente))
	assert.False(t, svc.HasRole(testSession(1, "asistente"), domainauth.RoleAdministrador))
	// Legacy English spellings normalize to canonical roles.
	assert.True(t, svc.HasRole(testSession(1, "admin"), domainauth.RoleAdministrador))
}
