package entity

import "time"

// Spa establecimiento publicado en el directorio.
// AverageRating es derivado: media de calificaciones de reseñas activas, 0 si no hay.
type Spa struct {
	ID            string
	Name          string
	Address       string
	Zone          string
	Schedule      string
	AverageRating float64
	Active        bool
	LastUpdated   time.Time
	AdminSpaID    *string // admin_spa dueño (opcional)
	CreatedAt     time.Time
}

// IsOwnedBy informa si el usuario es el admin_spa asignado al spa.
func (s *Spa) IsOwnedBy(userID string) bool {
	return s != nil && s.AdminSpaID != nil && *s.AdminSpaID == userID
}
