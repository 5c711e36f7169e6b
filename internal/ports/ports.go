package ports

// Package ports defines interfaces (hexagonal ports) for the backend API
// and session persistence. Implementations live in internal/api and
// internal/adapters; orchestration in internal/service.

import (
	"context"

	domainauth "github.com/espacio-evento/espacio-ui/internal/domain/auth"
	"github.com/espacio-evento/espacio-ui/internal/domain/model"
)

// Credentials carries a login request.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterInput carries a signup request. Roles are optional; the
// backend assigns "asistente" when empty.
type RegisterInput struct {
	Correo   string   `json:"correo"`
	Password string   `json:"password"`
	Nombre   string   `json:"nombre"`
	Apellido string   `json:"apellido"`
	Roles    []string `json:"roles,omitempty"`
}

// AuthResult is the backend's response to login/register: a bearer token
// plus the authenticated user.
type AuthResult struct {
	Token string
	User  model.Usuario
}

// AuthAPI covers the unauthenticated backend auth endpoints.
type AuthAPI interface {
	Login(ctx context.Context, creds Credentials) (AuthResult, error)
	Register(ctx context.Context, in RegisterInput) (AuthResult, error)
	// CheckStatus revalidates a token and returns a refreshed token/user.
	CheckStatus(ctx context.Context, token string) (AuthResult, error)
}

// EventosAPI covers event CRUD. Every call takes the caller's bearer
// token explicitly; the client layer holds no session state.
type EventosAPI interface {
	List(ctx context.Context, token string) ([]model.Evento, error)
	Get(ctx context.Context, id int, token string) (model.Evento, error)
	Create(ctx context.Context, ev model.Evento, token string) (model.Evento, error)
	Update(ctx context.Context, id int, ev model.Evento, token string) (model.Evento, error)
	Delete(ctx context.Context, id int, token string) error
}

// SalasAPI covers room CRUD.
type SalasAPI interface {
	List(ctx context.Context, token string) ([]model.Sala, error)
	Get(ctx context.Context, id int, token string) (model.Sala, error)
	Create(ctx context.Context, sala model.Sala, token string) (model.Sala, error)
	Update(ctx context.Context, id int, sala model.Sala, token string) (model.Sala, error)
	Delete(ctx context.Context, id int, token string) error
}

// NuevaInscripcion is the create-registration payload.
type NuevaInscripcion struct {
	IDEvento   int              `json:"id_evento"`
	IDUsuario  int              `json:"id_usuario"`
	EstadoPago model.EstadoPago `json:"estado_pago,omitempty"`
	Asistencia bool             `json:"asistencia,omitempty"`
}

// InscripcionesAPI covers registration operations.
type InscripcionesAPI interface {
	List(ctx context.Context, token string) ([]model.Inscripcion, error)
	Create(ctx context.Context, in NuevaInscripcion, token string) (model.Inscripcion, error)
	ListByUsuario(ctx context.Context, idUsuario int, token string) ([]model.Inscripcion, error)
	ListByEvento(ctx context.Context, idEvento int, token string) ([]model.Inscripcion, error)
	Delete(ctx context.Context, id int, token string) error
	UpdateEstadoPago(ctx context.Context, id int, estado model.EstadoPago, token string) (model.Inscripcion, error)
}

// UsuariosAPI covers the read-only user directory.
type UsuariosAPI interface {
	List(ctx context.Context, token string) ([]model.Usuario, error)
	Get(ctx context.Context, id int, token string) (model.Usuario, error)
}

// Preferencia is a checkout handle issued by the payment provider.
// InitPoint is the live redirect URL; SandboxInitPoint the test one.
type Preferencia struct {
	ID               string `json:"id,omitempty"`
	InitPoint        string `json:"init_point,omitempty"`
	SandboxInitPoint string `json:"sandbox_init_point,omitempty"`
}

// CheckoutURL returns the redirect URL to send the payer to, preferring
// the sandbox link when both are present (matches backend behavior), or
// "" when the preference carries no link at all.
func (p Preferencia) CheckoutURL() string {
	if p.SandboxInitPoint != "" {
		return p.SandboxInitPoint
	}
	return p.InitPoint
}

// PagosAPI covers the payment-preference endpoint.
type PagosAPI interface {
	CreatePreference(ctx context.Context, idInscripcion int, token string) (Preferencia, error)
}

// SessionStore persists and retrieves user sessions.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Get(ctx context.Context, id string) (domainauth.Session, error)
	Delete(ctx context.Context, id string) error
}
