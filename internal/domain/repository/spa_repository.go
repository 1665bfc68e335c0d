package repository

import (
	"context"
	"time"

	"github.com/jhoicas/belleza-api/internal/domain/entity"
)

// SpaFilter criterios de listado de spas.
type SpaFilter struct {
	IncludeInactive bool
	// OwnerID, si no está vacío, añade los spas inactivos de ese admin_spa a los activos.
	OwnerID string
}

// SpaRepository define el puerto de persistencia para Spa.
type SpaRepository interface {
	Create(ctx context.Context, spa *entity.Spa) error
	GetByID(ctx context.Context, id string) (*entity.Spa, error)
	// GetByIDForUpdate bloquea la fila del spa hasta el fin de la transacción (SELECT FOR UPDATE).
	GetByIDForUpdate(ctx context.Context, id string) (*entity.Spa, error)
	// GetActiveByName búsqueda exacta sin distinguir mayúsculas entre spas activos.
	GetActiveByName(ctx context.Context, name string) (*entity.Spa, error)
	GetByAdminSpa(ctx context.Context, adminSpaID string) (*entity.Spa, error)
	List(ctx context.Context, filter SpaFilter) ([]*entity.Spa, error)
	// Update persiste nombre, dirección, zona, horario, dueño y última actualización.
	Update(ctx context.Context, spa *entity.Spa) error
	SetActive(ctx context.Context, id string, active bool, at time.Time) error
	UpdateAverageRating(ctx context.Context, id string, avg float64) error
}
