package dto

import "time"

// CreateReviewRequest entrada para crear una reseña. El autor sale del token.
type CreateReviewRequest struct {
	SpaID   string `json:"spa_id" validate:"required,uuid"`
	Rating  int    `json:"calificacion"`
	Comment string `json:"comentario" validate:"max=2000"`
}

// UpdateReviewRequest actualización parcial de una reseña.
type UpdateReviewRequest struct {
	SpaID   *string `json:"spa_id" validate:"omitempty,uuid"`
	Rating  *int    `json:"calificacion"`
	Comment *string `json:"comentario" validate:"omitempty,max=2000"`
}

// ReviewResponse reseña con los nombres del autor y del spa.
type ReviewResponse struct {
	ID        string    `json:"id"`
	Rating    int       `json:"calificacion"`
	Comment   string    `json:"comentario"`
	CreatedAt time.Time `json:"fecha_creacion"`
	Active    bool      `json:"activo"`
	SpaID     string    `json:"spa_id"`
	SpaName   string    `json:"spa_nombre,omitempty"`
	UserID    string    `json:"usuario_id"`
	UserName  string    `json:"usuario_nombre,omitempty"`
}

// ReviewMutationResponse reseña tras la mutación junto al promedio recalculado del spa.
type ReviewMutationResponse struct {
	Review        ReviewResponse `json:"resena"`
	AverageRating float64        `json:"calificacion_promedio"`
}

// ReviewDeleteResponse confirmación de baja con el promedio recalculado del spa.
type ReviewDeleteResponse struct {
	Message       string  `json:"message"`
	AverageRating float64 `json:"calificacion_promedio"`
}
