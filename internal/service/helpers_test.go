package service

import (
	"context"
	"fmt"
	"time"

	domainauth "github.com/espacio-evento/espacio-ui/internal/domain/auth"
	"github.com/espacio-evento/espacio-ui/internal/domain/model"
)

// testSession builds a valid session for the given user and roles.
func testSession(idUsuario int, roles ...string) *domainauth.Session {
	now := time.Now()
	return &domainauth.Session{
		ID:        fmt.Sprintf("sess-%d", idUsuario),
		Token:     "tok-1",
		User:      model.Usuario{IDUsuario: idUsuario, Nombre: "Ana", Apellido: "Soto", Roles: roles},
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}
}

// mockSessionStore is a func-field test double for session store errors.
type mockSessionStore struct {
	saveFunc   func(context.Context, domainauth.Session) error
	getFunc    func(context.Context, string) (domainauth.Session, error)
	deleteFunc func(context.Context, string) error
}

func (m *mockSessionStore) Save(ctx context.Context, sess domainauth.Session) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, sess)
	}
	return nil
}

func (m *mockSessionStore) Get(ctx context.Context, id string) (domainauth.Session, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return domainauth.Session{}, nil
}

func (m *mockSessionStore) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}
