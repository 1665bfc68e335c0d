package dto

import "time"

// CreateSpaRequest entrada para crear un spa. AdminSpaID asigna el dueño (opcional).
type CreateSpaRequest struct {
	Name       string  `json:"nombre" validate:"required,min=1,max=200"`
	Address    string  `json:"direccion" validate:"required,max=300"`
	Zone       string  `json:"zona" validate:"required,max=120"`
	Schedule   string  `json:"horario" validate:"max=200"`
	AdminSpaID *string `json:"admin_spa_id" validate:"omitempty,uuid"`
}

// UpdateSpaRequest actualización parcial: solo se aplican los campos presentes.
type UpdateSpaRequest struct {
	Name       *string `json:"nombre" validate:"omitempty,min=1,max=200"`
	Address    *string `json:"direccion" validate:"omitempty,max=300"`
	Zone       *string `json:"zona" validate:"omitempty,max=120"`
	Schedule   *string `json:"horario" validate:"omitempty,max=200"`
	AdminSpaID *string `json:"admin_spa_id" validate:"omitempty,uuid"`
}

// SpaResponse salida de un spa.
type SpaResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"nombre"`
	Address       string    `json:"direccion"`
	Zone          string    `json:"zona"`
	Schedule      string    `json:"horario"`
	AverageRating float64   `json:"calificacion_promedio"`
	Active        bool      `json:"activo"`
	LastUpdated   time.Time `json:"ultima_actualizacion"`
	AdminSpaID    *string   `json:"admin_spa_id,omitempty"`
}

// SpaDetailResponse spa con sus servicios, materiales y reseñas activas.
type SpaDetailResponse struct {
	SpaResponse
	Services  []SpaServiceResponse  `json:"servicios"`
	Materials []SpaMaterialResponse `json:"materiales"`
	Reviews   []ReviewResponse      `json:"resenas"`
}

// SpaSearchRequest filtros del buscador público.
type SpaSearchRequest struct {
	Name string `query:"nombre"`
	Zone string `query:"zona"`
}
