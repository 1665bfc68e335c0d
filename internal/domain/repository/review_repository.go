package repository

import (
	"context"

	"github.com/jhoicas/belleza-api/internal/domain/entity"
)

// ReviewDetail reseña con los nombres del autor y del spa (join de lectura).
type ReviewDetail struct {
	entity.Review
	UserName string
	SpaName  string
}

// ReviewRepository define el puerto de persistencia para Review.
type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	GetByID(ctx context.Context, id string) (*entity.Review, error)
	GetDetail(ctx context.Context, id string) (*ReviewDetail, error)
	// Update persiste calificación, comentario, spa y estado.
	Update(ctx context.Context, review *entity.Review) error
	// ListBySpa reseñas activas del spa, más recientes primero.
	ListBySpa(ctx context.Context, spaID string) ([]ReviewDetail, error)
	// ListByUser reseñas activas del usuario.
	ListByUser(ctx context.Context, userID string) ([]ReviewDetail, error)
	// ListAll todas las reseñas, incluidas las inactivas.
	ListAll(ctx context.Context) ([]ReviewDetail, error)
	// ActiveRatings calificaciones de las reseñas activas del spa.
	ActiveRatings(ctx context.Context, spaID string) ([]int, error)
}
