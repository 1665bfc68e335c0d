package repository

import (
	"context"

	"github.com/jhoicas/belleza-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Los Get* devuelven (nil, nil) cuando no existe la fila.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// List pagina usuarios; role vacío no filtra.
	List(ctx context.Context, role entity.Role, limit, offset int) ([]*entity.User, error)
	SetActive(ctx context.Context, id string, active bool) error
	// ExistsWithRole informa si hay al menos un usuario con el rol (activo o no).
	ExistsWithRole(ctx context.Context, role entity.Role) (bool, error)
}
