package entity

import (
	"strings"
	"time"
)

// Role es el conjunto cerrado de roles del sistema.
type Role string

const (
	RoleAdminPrincipal Role = "admin_principal"
	RoleAdminSpa       Role = "admin_spa"
	RoleUsuario        Role = "usuario"
)

// ParseRole interpreta el rol persistido o recibido en el token. "cliente" es alias de usuario.
func ParseRole(s string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(RoleAdminPrincipal):
		return RoleAdminPrincipal, true
	case string(RoleAdminSpa):
		return RoleAdminSpa, true
	case string(RoleUsuario), "cliente":
		return RoleUsuario, true
	default:
		return "", false
	}
}

// User representa un usuario del sistema. Nunca se borra físicamente; se desactiva.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt, nunca plano
	Role         Role
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
