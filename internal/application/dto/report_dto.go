package dto

// ReviewCountDTO reseñas activas por spa.
type ReviewCountDTO struct {
	SpaID string `json:"spa_id"`
	Spa   string `json:"spa"`
	Count int    `json:"cantidad"`
}

// AverageRatingDTO promedio por spa redondeado a 2 decimales.
type AverageRatingDTO struct {
	SpaID   string  `json:"spa_id"`
	Spa     string  `json:"spa"`
	Average float64 `json:"promedio"`
	Count   int     `json:"cantidad"`
}
