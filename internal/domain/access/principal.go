package access

import "github.com/jhoicas/belleza-api/internal/domain/entity"

// Principal usuario autenticado que ejecuta la petición (resuelto desde el token y la DB).
type Principal struct {
	UserID string
	Role   entity.Role
}

// Can aplica la política a este principal.
func (p Principal) Can(action Action, isOwner bool) bool {
	return Authorize(p.Role, action, isOwner)
}
