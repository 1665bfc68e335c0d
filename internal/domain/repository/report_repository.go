package repository

import "context"

// SpaReviewCount resultado crudo: reseñas activas por spa.
type SpaReviewCount struct {
	SpaID   string
	SpaName string
	Count   int
}

// SpaRatingAverage resultado crudo: promedio de calificación por spa (solo spas con reseñas activas).
type SpaRatingAverage struct {
	SpaID   string
	SpaName string
	Average float64
	Count   int
}

// ReportRepository consultas de solo lectura para los reportes del admin_principal.
type ReportRepository interface {
	ReviewCountBySpa(ctx context.Context) ([]SpaReviewCount, error)
	AverageBySpa(ctx context.Context) ([]SpaRatingAverage, error)
}
