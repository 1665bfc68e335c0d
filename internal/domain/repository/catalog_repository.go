package repository

import (
	"context"

	"github.com/jhoicas/belleza-api/internal/domain/entity"
)

// ServiceRepository define el puerto de persistencia para el catálogo de servicios.
type ServiceRepository interface {
	Create(ctx context.Context, service *entity.Service) error
	GetByID(ctx context.Context, id string) (*entity.Service, error)
	GetByName(ctx context.Context, name string) (*entity.Service, error)
	List(ctx context.Context, includeInactive bool) ([]*entity.Service, error)
	Update(ctx context.Context, service *entity.Service) error
	SetActive(ctx context.Context, id string, active bool) error
}

// MaterialRepository define el puerto de persistencia para el catálogo de materiales.
type MaterialRepository interface {
	Create(ctx context.Context, material *entity.Material) error
	GetByID(ctx context.Context, id string) (*entity.Material, error)
	GetByName(ctx context.Context, name string) (*entity.Material, error)
	List(ctx context.Context, includeInactive bool) ([]*entity.Material, error)
	Update(ctx context.Context, material *entity.Material) error
	SetActive(ctx context.Context, id string, active bool) error
}
