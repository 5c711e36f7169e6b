package service

import (
	"context"

	domainauth "github.com/espacio-evento/espacio-ui/internal/domain/auth"
	"github.com/espacio-evento/espacio-ui/internal/domain/model"
	"github.com/espacio-evento/espacio-ui/internal/ports"
)

// UsuarioServiceOptions groups dependencies for UsuarioService.
type UsuarioServiceOptions struct {
	Usuarios ports.UsuariosAPI
}

// UsuarioService exposes the read-only user directory to administrators.
type UsuarioService struct {
	usuarios ports.UsuariosAPI
}

// NewUsuarioService constructs a new UsuarioService.
func NewUsuarioService(opts UsuarioServiceOptions) *UsuarioService {
	return &UsuarioService{usuarios: opts.Usuarios}
}

// List returns all users. Administrators only.
func (s *UsuarioService) List(ctx context.Context, sess *domainauth.Session) ([]model.Usuario, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	return s.usuarios.List(ctx, sess.Token)
}

// Get returns a single user. Administrators only.
func (s *UsuarioService) Get(ctx context.Context, sess *domainauth.Session, id int) (model.Usuario, error) {
	if err := requireAdmin(sess); err != nil {
		return model.Usuario{}, err
	}
	return s.usuarios.Get(ctx, id, sess.Token)
}
