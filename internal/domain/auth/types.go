package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.

import (
	"time"

	"github.com/espacio-evento/espacio-ui/internal/domain/model"
)

// Role represents an application authorization role.
// Keep string form for easy persistence and API payloads.
// Valid values are defined as constants below.
type Role string

const (
	RoleAsistente     Role = "asistente"
	RoleOrganizador   Role = "organizador"
	RoleAdministrador Role = "administrador"
)

// ParseRole normalizes a backend role string to a canonical Role.
// The backend historically mixed Spanish and English spellings for the
// organizer and administrator roles; both are accepted on input.
func ParseRole(s string) (Role, bool) {
	switch s {
	case "asistente":
		return RoleAsistente, true
	case "organizador", "organizer":
		return RoleOrganizador, true
	case "administrador", "admin":
		return RoleAdministrador, true
	}
	return "", false
}

// RoleSet is the capability set held by a principal. Roles are
// non-exclusive: a user may hold several at once.
type RoleSet map[Role]struct{}

// NewRoleSet builds a RoleSet from backend role strings, dropping any
// value that does not map to a known role.
func NewRoleSet(roles []string) RoleSet {
	rs := make(RoleSet, len(roles))
	for _, s := range roles {
		if r, ok := ParseRole(s); ok {
			rs[r] = struct{}{}
		}
	}
	return rs
}

// Has reports whether the set contains the given role.
func (rs RoleSet) Has(r Role) bool {
	_, ok := rs[r]
	return ok
}

// CanAttend reports whether the principal may register for events.
func (rs RoleSet) CanAttend() bool { return rs.Has(RoleAsistente) }

// CanOrganize reports whether the principal may create events.
// Administrators implicitly organize.
func (rs RoleSet) CanOrganize() bool {
	return rs.Has(RoleOrganizador) || rs.Has(RoleAdministrador)
}

// IsAdmin reports whether the principal holds the administrator role.
func (rs RoleSet) IsAdmin() bool { return rs.Has(RoleAdministrador) }

// Session is the record persisted for an authenticated user. Token and
// User are set and cleared together; a session with only one of them is
// never valid.
type Session struct {
	ID        string        `json:"id"`
	Token     string        `json:"token"`
	User      model.Usuario `json:"user"`
	CreatedAt time.Time     `json:"created_at"`
	ExpiresAt time.Time     `json:"expires_at"`
}

// Valid reports whether the session carries both a token and a user.
func (s Session) Valid() bool { return s.Token != "" && s.User.IDUsuario != 0 }

// Roles returns the capability set of the session user.
func (s Session) Roles() RoleSet { return NewRoleSet(s.User.Roles) }

// HasRole reports whether the session user holds the given role.
func (s Session) HasRole(r Role) bool { return s.Roles().Has(r) }
