package dto

import "github.com/shopspring/decimal"

// CreateServiceRequest entrada para crear un servicio base.
type CreateServiceRequest struct {
	Name        string           `json:"nombre" validate:"required,min=1,max=200"`
	Description string           `json:"descripcion" validate:"max=1000"`
	RefDuration string           `json:"duracion_ref" validate:"max=50"`
	RefPrice    *decimal.Decimal `json:"precio_ref"`
}

// UpdateServiceRequest actualización parcial de un servicio.
type UpdateServiceRequest struct {
	Name        *string          `json:"nombre" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"descripcion" validate:"omitempty,max=1000"`
	RefDuration *string          `json:"duracion_ref" validate:"omitempty,max=50"`
	RefPrice    *decimal.Decimal `json:"precio_ref"`
}

// ServiceResponse salida de un servicio.
type ServiceResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"nombre"`
	Description string   `json:"descripcion"`
	RefDuration string   `json:"duracion_ref"`
	RefPrice    *float64 `json:"precio_ref"`
	Active      bool     `json:"activo"`
}

// AssociateServiceRequest precio y duración propios del spa para el servicio.
type AssociateServiceRequest struct {
	Price    *decimal.Decimal `json:"precio"`
	Duration string           `json:"duracion" validate:"max=50"`
}

// SpaServiceResponse servicio ofrecido por un spa.
type SpaServiceResponse struct {
	ServiceID   string   `json:"servicio_id"`
	Name        string   `json:"servicio"`
	Description string   `json:"descripcion"`
	Price       *float64 `json:"precio"`
	Duration    string   `json:"duracion"`
}

// CreateMaterialRequest entrada para crear un material.
type CreateMaterialRequest struct {
	Name string `json:"nombre" validate:"required,min=1,max=200"`
	Type string `json:"tipo" validate:"max=120"`
}

// UpdateMaterialRequest actualización parcial de un material.
type UpdateMaterialRequest struct {
	Name *string `json:"nombre" validate:"omitempty,min=1,max=200"`
	Type *string `json:"tipo" validate:"omitempty,max=120"`
}

// MaterialResponse salida de un material.
type MaterialResponse struct {
	ID     string `json:"id"`
	Name   string `json:"nombre"`
	Type   string `json:"tipo"`
	Active bool   `json:"activo"`
}

// SpaMaterialResponse material usado por un spa.
type SpaMaterialResponse struct {
	MaterialID string `json:"material_id"`
	Name       string `json:"nombre"`
	Type       string `json:"tipo"`
}
