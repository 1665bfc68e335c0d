package review

import (
	"context"

	"github.com/jhoicas/belleza-api/internal/domain/repository"
)

// ReviewTxRunner ejecuta fn dentro de una transacción con los repos de reseñas y spas.
// La mutación de la reseña y el recálculo del promedio del spa confirman juntos o no confirman.
type ReviewTxRunner interface {
	RunReview(ctx context.Context, fn func(
		reviewRepo repository.ReviewRepository,
		spaRepo repository.SpaRepository,
	) error) error
}
