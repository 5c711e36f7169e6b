package backend

// Package backend contains simple hand-written test doubles for the
// backend API ports. These are lightweight and suitable for unit tests
// without codegen.

import (
	"context"

	"github.com/espacio-evento/espacio-ui/internal/domain/model"
	apperrors "github.com/espacio-evento/espacio-ui/internal/errors"
	"github.com/espacio-evento/espacio-ui/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.AuthAPI          = (*MockAuthAPI)(nil)
	_ ports.EventosAPI       = (*MockEventosAPI)(nil)
	_ ports.SalasAPI         = (*MockSalasAPI)(nil)
	_ ports.InscripcionesAPI = (*MockInscripcionesAPI)(nil)
	_ ports.UsuariosAPI      = (*MockUsuariosAPI)(nil)
	_ ports.PagosAPI         = (*MockPagosAPI)(nil)
)

// MockAuthAPI simulates the backend auth endpoints. Unset funcs fall
// back to returning DefaultResult.
type MockAuthAPI struct {
	LoginFunc       func(ctx context.Context, creds ports.Credentials) (ports.AuthResult, error)
	RegisterFunc    func(ctx context.Context, in ports.RegisterInput) (ports.AuthResult, error)
	CheckStatusFunc func(ctx context.Context, token string) (ports.AuthResult, error)

	DefaultResult ports.AuthResult
}

// NewMockAuthAPI creates a MockAuthAPI with a sensible default user.
func NewMockAuthAPI() *MockAuthAPI {
	return &MockAuthAPI{
		DefaultResult: ports.AuthResult{
			Token: "tok-1",
			User: model.Usuario{
				IDUsuario: 1,
				Nombre:    "Ana",
				Apellido:  "Soto",
				Correo:    "ana@example.com",
				Roles:     []string{"asistente"},
			},
		},
	}
}

func (m *MockAuthAPI) Login(ctx context.Context, creds ports.Credentials) (ports.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, creds)
	}
	return m.DefaultResult, nil
}

func (m *MockAuthAPI) Register(ctx context.Context, in ports.RegisterInput) (ports.AuthResult, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, in)
	}
	return m.DefaultResult, nil
}

func (m *MockAuthAPI) CheckStatus(ctx context.Context, token string) (ports.AuthResult, error) {
	if m.CheckStatusFunc != nil {
		return m.CheckStatusFunc(ctx, token)
	}
	return m.DefaultResult, nil
}

// MockEventosAPI simulates /eventos backed by an in-memory slice.
type MockEventosAPI struct {
	ListFunc   func(ctx context.Context, token string) ([]model.Evento, error)
	GetFunc    func(ctx context.Context, id int, token string) (model.Evento, error)
	CreateFunc func(ctx context.Context, ev model.Evento, token string) (model.Evento, error)
	UpdateFunc func(ctx context.Context, id int, ev model.Evento, token string) (model.Evento, error)
	DeleteFunc func(ctx context.Context, id int, token string) error

	Eventos []model.Evento
	nextID  int
}

func (m *MockEventosAPI) List(ctx context.Context, token string) ([]model.Evento, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, token)
	}
	return m.Eventos, nil
}

func (m *MockEventosAPI) Get(ctx context.Context, id int, token string) (model.Evento, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id, token)
	}
	for _, ev := range m.Eventos {
		if ev.IDEvento == id {
			return ev, nil
		}
	}
	return model.Evento{}, apperrors.Remote(404, "Evento no encontrado")
}

func (m *MockEventosAPI) Create(ctx context.Context, ev model.Evento, token string) (model.Evento, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, ev, token)
	}
	m.nextID++
	ev.IDEvento = m.nextID
	m.Eventos = append(m.Eventos, ev)
	return ev, nil
}

func (m *MockEventosAPI) Update(ctx context.Context, id int, ev model.Evento, token string) (model.Evento, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, ev, token)
	}
	for i := range m.Eventos {
		if m.Eventos[i].IDEvento == id {
			ev.IDEvento = id
			m.Eventos[i] = ev
			return ev, nil
		}
	}
	return model.Evento{}, apperrors.Remote(404, "Evento no encontrado")
}

func (m *MockEventosAPI) Delete(ctx context.Context, id int, token string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id, token)
	}
	for i := range m.Eventos {
		if m.Eventos[i].IDEvento == id {
			m.Eventos = append(m.Eventos[:i], m.Eventos[i+1:]...)
			return nil
		}
	}
	return apperrors.Remote(404, "Evento no encontrado")
}

// MockSalasAPI simulates /salas backed by an in-memory slice.
type MockSalasAPI struct {
	ListFunc   func(ctx context.Context, token string) ([]model.Sala, error)
	GetFunc    func(ctx context.Context, id int, token string) (model.Sala, error)
	CreateFunc func(ctx context.Context, sala model.Sala, token string) (model.Sala, error)
	UpdateFunc func(ctx context.Context, id int, sala model.Sala, token string) (model.Sala, error)
	DeleteFunc func(ctx context.Context, id int, token string) error

	Salas  []model.Sala
	nextID int
}

func (m *MockSalasAPI) List(ctx context.Context, token string) ([]model.Sala, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, token)
	}
	return m.Salas, nil
}

func (m *MockSalasAPI) Get(ctx context.Context, id int, token string) (model.Sala, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id, token)
	}
	for _, sala := range m.Salas {
		if sala.IDSala == id {
			return sala, nil
		}
	}
	return model.Sala{}, apperrors.Remote(404, "Sala no encontrada")
}

func (m *MockSalasAPI) Create(ctx context.Context, sala model.Sala, token string) (model.Sala, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, sala, token)
	}
	m.nextID++
	sala.IDSala = m.nextID
	m.Salas = append(m.Salas, sala)
	return sala, nil
}

func (m *MockSalasAPI) Update(ctx context.Context, id int, sala model.Sala, token string) (model.Sala, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, sala, token)
	}
	for i := range m.Salas {
		if m.Salas[i].IDSala == id {
			sala.IDSala = id
			m.Salas[i] = sala
			return sala, nil
		}
	}
	return model.Sala{}, apperrors.Remote(404, "Sala no encontrada")
}

func (m *MockSalasAPI) Delete(ctx context.Context, id int, token string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id, token)
	}
	for i := range m.Salas {
		if m.Salas[i].IDSala == id {
			m.Salas = append(m.Salas[:i], m.Salas[i+1:]...)
			return nil
		}
	}
	return apperrors.Remote(404, "Sala no encontrada")
}

// MockInscripcionesAPI simulates /inscripciones backed by an in-memory
// slice. Create enforces the one-per-(evento,usuario) rule the real
// backend guarantees.
type MockInscripcionesAPI struct {
	ListFunc             func(ctx context.Context, token string) ([]model.Inscripcion, error)
	CreateFunc           func(ctx context.Context, in ports.NuevaInscripcion, token string) (model.Inscripcion, error)
	ListByUsuarioFunc    func(ctx context.Context, idUsuario int, token string) ([]model.Inscripcion, error)
	ListByEventoFunc     func(ctx context.Context, idEvento int, token string) ([]model.Inscripcion, error)
	DeleteFunc           func(ctx context.Context, id int, token string) error
	UpdateEstadoPagoFunc func(ctx context.Context, id int, estado model.EstadoPago, token string) (model.Inscripcion, error)

	Inscripciones []model.Inscripcion
	nextID        int
}

func (m *MockInscripcionesAPI) List(ctx context.Context, token string) ([]model.Inscripcion, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, token)
	}
	return m.Inscripciones, nil
}

func (m *MockInscripcionesAPI) Create(ctx context.Context, in ports.NuevaInscripcion, token string) (model.Inscripcion, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, in, token)
	}
	for _, insc := range m.Inscripciones {
		if insc.IDEvento == in.IDEvento && insc.IDUsuario == in.IDUsuario {
			return model.Inscripcion{}, apperrors.Remote(409, "Ya estás inscrito en este evento")
		}
	}
	m.nextID++
	estado := in.EstadoPago
	if estado == "" {
		estado = model.PagoPendiente
	}
	insc := model.Inscripcion{
		IDInscripcion: m.nextID,
		IDEvento:      in.IDEvento,
		IDUsuario:     in.IDUsuario,
		EstadoPago:    estado,
		Asistencia:    in.Asistencia,
	}
	m.Inscripciones = append(m.Inscripciones, insc)
	return insc, nil
}

func (m *MockInscripcionesAPI) ListByUsuario(ctx context.Context, idUsuario int, token string) ([]model.Inscripcion, error) {
	if m.ListByUsuarioFunc != nil {
		return m.ListByUsuarioFunc(ctx, idUsuario, token)
	}
	var out []model.Inscripcion
	for _, insc := range m.Inscripciones {
		if insc.IDUsuario == idUsuario {
			out = append(out, insc)
		}
	}
	return out, nil
}

func (m *MockInscripcionesAPI) ListByEvento(ctx context.Context, idEvento int, token string) ([]model.Inscripcion, error) {
	if m.ListByEventoFunc != nil {
		return m.ListByEventoFunc(ctx, idEvento, token)
	}
	var out []model.Inscripcion
	for _, insc := range m.Inscripciones {
		if insc.IDEvento == idEvento {
			out = append(out, insc)
		}
	}
	return out, nil
}

func (m *MockInscripcionesAPI) Delete(ctx context.Context, id int, token string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id, token)
	}
	for i := range m.Inscripciones {
		if m.Inscripciones[i].IDInscripcion == id {
			m.Inscripciones = append(m.Inscripciones[:i], m.Inscripciones[i+1:]...)
			return nil
		}
	}
	return apperrors.Remote(404, "Inscripción no encontrada")
}

func (m *MockInscripcionesAPI) UpdateEstadoPago(ctx context.Context, id int, estado model.EstadoPago, token string) (model.Inscripcion, error) {
	if m.UpdateEstadoPagoFunc != nil {
		return m.UpdateEstadoPagoFunc(ctx, id, estado, token)
	}
	for i := range m.Inscripciones {
		if m.Inscripciones[i].IDInscripcion == id {
			m.Inscripciones[i].EstadoPago = estado
			return m.Inscripciones[i], nil
		}
	}
	return model.Inscripcion{}, apperrors.Remote(404, "Inscripción no encontrada")
}

// MockUsuariosAPI simulates the read-only user directory.
type MockUsuariosAPI struct {
	ListFunc func(ctx context.Context, token string) ([]model.Usuario, error)
	GetFunc  func(ctx context.Context, id int, token string) (model.Usuario, error)

	Usuarios []model.Usuario
}

func (m *MockUsuariosAPI) List(ctx context.Context, token string) ([]model.Usuario, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, token)
	}
	return m.Usuarios, nil
}

func (m *MockUsuariosAPI) Get(ctx context.Context, id int, token string) (model.Usuario, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id, token)
	}
	for _, u := range m.Usuarios {
		if u.IDUsuario == id {
			return u, nil
		}
	}
	return model.Usuario{}, apperrors.Remote(404, "Usuario no encontrado")
}

// MockPagosAPI simulates the payment-preference endpoint.
type MockPagosAPI struct {
	CreatePreferenceFunc func(ctx context.Context, idInscripcion int, token string) (ports.Preferencia, error)

	Preference ports.Preferencia
}

// NewMockPagosAPI returns a mock that issues a sandbox checkout link.
func NewMockPagosAPI() *MockPagosAPI {
	return &MockPagosAPI{
		Preference: ports.Preferencia{
			ID:               "pref-1",
			SandboxInitPoint: "https://sandbox.mercadopago.test/checkout/pref-1",
		},
	}
}

func (m *MockPagosAPI) CreatePreference(ctx context.Context, idInscripcion int, token string) (ports.Preferencia, error) {
	if m.CreatePreferenceFunc != nil {
		return m.CreatePreferenceFunc(ctx, idInscripcion, token)
	}
	return m.Preference, nil
}
