package model

// Package model contains the Espacio Evento domain entities as served by
// the backend API. Field tags mirror the backend's wire names, so these
// structs marshal directly to and from API payloads.

// EstadoEvento is the lifecycle state of an event.
type EstadoEvento string

const (
	EventoActivo     EstadoEvento = "activo"
	EventoFinalizado EstadoEvento = "finalizado"
	EventoCancelado  EstadoEvento = "cancelado"
)

// TipoEvento distinguishes public from private events.
type TipoEvento string

const (
	EventoPublico TipoEvento = "público"
	EventoPrivado TipoEvento = "privado"
)

// EstadoPago is the payment state of a registration.
type EstadoPago string

const (
	PagoPendiente EstadoPago = "pendiente"
	PagoPagado    EstadoPago = "pagado"
)

// EstadoSala is the availability state of a rentable room.
type EstadoSala string

const (
	SalaDisponible EstadoSala = "disponible"
	SalaArrendada  EstadoSala = "arrendada"
	SalaInactiva   EstadoSala = "inactiva"
)

// Usuario is a platform user as returned by /usuarios.
type Usuario struct {
	IDUsuario     int      `json:"id_usuario"`
	Nombre        string   `json:"nombre"`
	Apellido      string   `json:"apellido"`
	Correo        string   `json:"correo"`
	Roles         []string `json:"roles"`
	FechaRegistro string   `json:"fecha_registro,omitempty"`
}

// NombreCompleto returns the display name for a user.
func (u Usuario) NombreCompleto() string {
	if u.Nombre == "" {
		return u.Apellido
	}
	if u.Apellido == "" {
		return u.Nombre
	}
	return u.Nombre + " " + u.Apellido
}

// Evento is an event hosted in a room.
type Evento struct {
	IDEvento         int          `json:"id_evento"`
	IDOrganizador    int          `json:"id_organizador"`
	IDSala           int          `json:"id_sala"`
	NombreEvento     string       `json:"nombre_evento"`
	Descripcion      string       `json:"descripcion,omitempty"`
	Fecha            string       `json:"fecha"`
	HoraInicio       string       `json:"hora_inicio"`
	HoraFin          string       `json:"hora_fin"`
	CuposTotales     int          `json:"cupos_totales"`
	CuposDisponibles int          `json:"cupos_disponibles"`
	PrecioEntrada    float64      `json:"precio_entrada"`
	TipoEvento       TipoEvento   `json:"tipo_evento"`
	Estado           EstadoEvento `json:"estado"`
}

// Activo reports whether the event accepts registrations.
func (e Evento) Activo() bool { return e.Estado == EventoActivo }

// CuposAgotados reports whether no slots remain.
func (e Evento) CuposAgotados() bool { return e.CuposDisponibles <= 0 }

// Gratuito reports whether the event has no entry fee.
func (e Evento) Gratuito() bool { return e.PrecioEntrada == 0 }

// OrganizadoPor reports whether the given user organizes the event.
func (e Evento) OrganizadoPor(idUsuario int) bool { return e.IDOrganizador == idUsuario }

// CuposValidos checks the capacity invariant 0 <= disponibles <= totales.
func (e Evento) CuposValidos() bool {
	return e.CuposDisponibles >= 0 && e.CuposDisponibles <= e.CuposTotales
}

// Sala is a rentable room.
type Sala struct {
	IDSala         int        `json:"id_sala"`
	Nombre         string     `json:"nombre"`
	Ubicacion      string     `json:"ubicacion"`
	Capacidad      int        `json:"capacidad"`
	PrecioArriendo float64    `json:"precio_arriendo"`
	Estado         EstadoSala `json:"estado"`
}

// Inscripcion binds one user to one event. The backend guarantees at
// most one inscription per (evento, usuario) pair.
type Inscripcion struct {
	IDInscripcion    int        `json:"id_inscripcion"`
	IDUsuario        int        `json:"id_usuario"`
	IDEvento         int        `json:"id_evento"`
	FechaInscripcion string     `json:"fecha_inscripcion,omitempty"`
	EstadoPago       EstadoPago `json:"estado_pago"`
	Asistencia       bool       `json:"asistencia"`
}

// Pagada reports whether the inscription has been paid.
func (i Inscripcion) Pagada() bool { return i.EstadoPago == PagoPagado }

// EstadoPagoInicial returns the payment state a new inscription starts
// in for the given entry price: free events are born paid.
func EstadoPagoInicial(precioEntrada float64) EstadoPago {
	if precioEntrada == 0 {
		return PagoPagado
	}
	return PagoPendiente
}

// BuscarInscripcion returns the inscription belonging to the given user,
// or nil when the user is not registered.
func BuscarInscripcion(inscripciones []Inscripcion, idUsuario int) *Inscripcion {
	for idx := range inscripciones {
		if inscripciones[idx].IDUsuario == idUsuario {
			return &inscripciones[idx]
		}
	}
	return nil
}
