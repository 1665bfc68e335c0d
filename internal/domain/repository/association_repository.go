package repository

import (
	"context"

	"github.com/jhoicas/belleza-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// SpaServiceDetail fila de lectura: asociación activa + datos del servicio.
// Price y Duration ya traen el valor de referencia del servicio cuando el spa no define uno.
type SpaServiceDetail struct {
	SpaID       string
	ServiceID   string
	Name        string
	Description string
	Price       *decimal.Decimal
	Duration    string
}

// SpaMaterialDetail fila de lectura: asociación activa + datos del material.
type SpaMaterialDetail struct {
	SpaID      string
	MaterialID string
	Name       string
	Type       string
}

// SpaServiceRepository persistencia de la relación N:M spa-servicio.
type SpaServiceRepository interface {
	Get(ctx context.Context, spaID, serviceID string) (*entity.SpaService, error)
	Create(ctx context.Context, assoc *entity.SpaService) error
	// Update reescribe precio, duración y estado de la fila (spa, servicio).
	Update(ctx context.Context, assoc *entity.SpaService) error
	DeactivateByService(ctx context.Context, serviceID string) error
	// ListBySpa solo asociaciones activas de servicios activos.
	ListBySpa(ctx context.Context, spaID string) ([]SpaServiceDetail, error)
}

// SpaMaterialRepository persistencia de la relación N:M spa-material.
type SpaMaterialRepository interface {
	Get(ctx context.Context, spaID, materialID string) (*entity.SpaMaterial, error)
	Create(ctx context.Context, assoc *entity.SpaMaterial) error
	SetActive(ctx context.Context, spaID, materialID string, active bool) error
	DeactivateByMaterial(ctx context.Context, materialID string) error
	// ListBySpa solo asociaciones activas de materiales activos.
	ListBySpa(ctx context.Context, spaID string) ([]SpaMaterialDetail, error)
}
