// Package review implementa los casos de uso de reseñas y mantiene el promedio de
// calificación de cada spa igual a la media de sus reseñas activas (0 si no hay).
package review

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/belleza-api/internal/application/dto"
	"github.com/jhoicas/belleza-api/internal/application/usecase"
	"github.com/jhoicas/belleza-api/internal/domain"
	"github.com/jhoicas/belleza-api/internal/domain/access"
	"github.com/jhoicas/belleza-api/internal/domain/entity"
	"github.com/jhoicas/belleza-api/internal/domain/rating"
	"github.com/jhoicas/belleza-api/internal/domain/repository"
)

// UseCase reseñas de usuarios sobre spas.
type UseCase struct {
	reviewRepo repository.ReviewRepository
	spaRepo    repository.SpaRepository
	txRunner   ReviewTxRunner
}

// NewUseCase construye el caso de uso. Los repos sin tx sirven las lecturas.
func NewUseCase(reviewRepo repository.ReviewRepository, spaRepo repository.SpaRepository, txRunner ReviewTxRunner) *UseCase {
	return &UseCase{reviewRepo: reviewRepo, spaRepo: spaRepo, txRunner: txRunner}
}

// Create registra la reseña y recalcula el promedio del spa en la misma transacción.
// Solo el rol usuario puede reseñar; calificación fuera de [1,5] no persiste nada.
func (uc *UseCase) Create(ctx context.Context, actor access.Principal, in dto.CreateReviewRequest) (*dto.ReviewMutationResponse, error) {
	if !actor.Can(access.ActionCreateReview, false) {
		return nil, fmt.Errorf("%w: solo los usuarios pueden crear reseñas", domain.ErrForbidden)
	}
	if !entity.ValidRating(in.Rating) {
		return nil, invalidRating()
	}
	review := &entity.Review{
		ID:        uuid.New().String(),
		Rating:    in.Rating,
		Comment:   in.Comment,
		CreatedAt: time.Now(),
		Active:    true,
		UserID:    actor.UserID,
		SpaID:     in.SpaID,
	}
	var avg float64
	err := uc.txRunner.RunReview(ctx, func(reviewRepo repository.ReviewRepository, spaRepo repository.SpaRepository) error {
		if _, err := lockActiveSpa(ctx, spaRepo, in.SpaID); err != nil {
			return err
		}
		if err := reviewRepo.Create(ctx, review); err != nil {
			return err
		}
		var err error
		avg, err = recompute(ctx, reviewRepo, spaRepo, in.SpaID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return uc.mutationResponse(ctx, review.ID, avg)
}

// Update aplica los campos presentes. El autor o admin_principal.
// Si cambia el spa, se recalculan el spa anterior y el nuevo.
func (uc *UseCase) Update(ctx context.Context, actor access.Principal, id string, in dto.UpdateReviewRequest) (*dto.ReviewMutationResponse, error) {
	if in.Rating != nil && !entity.ValidRating(*in.Rating) {
		return nil, invalidRating()
	}
	var avg float64
	err := uc.txRunner.RunReview(ctx, func(reviewRepo repository.ReviewRepository, spaRepo repository.SpaRepository) error {
		review, err := loadModifiable(ctx, reviewRepo, actor, id)
		if err != nil {
			return err
		}
		oldSpaID := review.SpaID
		newSpaID := oldSpaID
		if in.SpaID != nil {
			newSpaID = *in.SpaID
		}
		if err := lockSpas(ctx, spaRepo, oldSpaID, newSpaID); err != nil {
			return err
		}
		// releer tras el bloqueo: otra tx pudo mover o borrar la reseña mientras esperábamos
		review, err = loadModifiable(ctx, reviewRepo, actor, id)
		if err != nil {
			return err
		}
		if review.SpaID != oldSpaID {
			return fmt.Errorf("%w: la reseña cambió durante la actualización", domain.ErrConflict)
		}
		if in.Rating != nil {
			review.Rating = *in.Rating
		}
		if in.Comment != nil {
			review.Comment = *in.Comment
		}
		review.SpaID = newSpaID
		if err := reviewRepo.Update(ctx, review); err != nil {
			return err
		}
		if newSpaID != oldSpaID {
			if _, err := recompute(ctx, reviewRepo, spaRepo, oldSpaID); err != nil {
				return err
			}
		}
		avg, err = recompute(ctx, reviewRepo, spaRepo, newSpaID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return uc.mutationResponse(ctx, id, avg)
}

// Delete desactiva la reseña (soft delete) y recalcula el promedio. El autor o admin_principal.
// Devuelve el promedio resultante del spa.
func (uc *UseCase) Delete(ctx context.Context, actor access.Principal, id string) (float64, error) {
	var avg float64
	err := uc.txRunner.RunReview(ctx, func(reviewRepo repository.ReviewRepository, spaRepo repository.SpaRepository) error {
		review, err := loadModifiable(ctx, reviewRepo, actor, id)
		if err != nil {
			return err
		}
		spa, err := spaRepo.GetByIDForUpdate(ctx, review.SpaID)
		if err != nil {
			return err
		}
		if spa == nil {
			return fmt.Errorf("%w: spa %s", domain.ErrNotFound, review.SpaID)
		}
		review, err = loadModifiable(ctx, reviewRepo, actor, id)
		if err != nil {
			return err
		}
		if review.SpaID != spa.ID {
			return fmt.Errorf("%w: la reseña cambió durante la eliminación", domain.ErrConflict)
		}
		review.Active = false
		if err := reviewRepo.Update(ctx, review); err != nil {
			return err
		}
		avg, err = recompute(ctx, reviewRepo, spaRepo, spa.ID)
		return err
	})
	if err != nil {
		return 0, err
	}
	return rating.Round2(avg), nil
}

// Get una reseña activa; las inactivas solo las ve admin_principal.
func (uc *UseCase) Get(ctx context.Context, actor access.Principal, id string) (*dto.ReviewResponse, error) {
	detail, err := uc.reviewRepo.GetDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	if detail == nil || (!detail.Active && !actor.Can(access.ActionViewInactive, false)) {
		return nil, fmt.Errorf("%w: reseña %s", domain.ErrNotFound, id)
	}
	out := usecase.ToReviewResponse(*detail)
	return &out, nil
}

// ListBySpa reseñas activas de un spa activo, con el nombre de cada autor.
func (uc *UseCase) ListBySpa(ctx context.Context, spaID string) ([]dto.ReviewResponse, error) {
	spa, err := uc.spaRepo.GetByID(ctx, spaID)
	if err != nil {
		return nil, err
	}
	if spa == nil || !spa.Active {
		return nil, fmt.Errorf("%w: spa %s", domain.ErrNotFound, spaID)
	}
	rows, err := uc.reviewRepo.ListBySpa(ctx, spaID)
	if err != nil {
		return nil, err
	}
	return usecase.ToReviewResponses(rows), nil
}

// ListMine reseñas activas del usuario autenticado.
func (uc *UseCase) ListMine(ctx context.Context, actor access.Principal) ([]dto.ReviewResponse, error) {
	rows, err := uc.reviewRepo.ListByUser(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	return usecase.ToReviewResponses(rows), nil
}

// ListAll todas las reseñas, incluidas las inactivas. Solo admin_principal.
func (uc *UseCase) ListAll(ctx context.Context, actor access.Principal) ([]dto.ReviewResponse, error) {
	if !actor.Can(access.ActionViewInactive, false) {
		return nil, fmt.Errorf("%w: solo admin_principal puede ver todas las reseñas", domain.ErrForbidden)
	}
	rows, err := uc.reviewRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return usecase.ToReviewResponses(rows), nil
}

func (uc *UseCase) mutationResponse(ctx context.Context, id string, avg float64) (*dto.ReviewMutationResponse, error) {
	detail, err := uc.reviewRepo.GetDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, fmt.Errorf("%w: reseña %s", domain.ErrNotFound, id)
	}
	return &dto.ReviewMutationResponse{
		Review:        usecase.ToReviewResponse(*detail),
		AverageRating: rating.Round2(avg),
	}, nil
}

// loadModifiable reseña activa que el actor puede modificar (autor o admin_principal).
func loadModifiable(ctx context.Context, repo repository.ReviewRepository, actor access.Principal, id string) (*entity.Review, error) {
	review, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if review == nil || !review.Active {
		return nil, fmt.Errorf("%w: reseña %s", domain.ErrNotFound, id)
	}
	if !actor.Can(access.ActionModifyReview, review.UserID == actor.UserID) {
		return nil, fmt.Errorf("%w: no puedes modificar la reseña de otro usuario", domain.ErrForbidden)
	}
	return review, nil
}

func lockActiveSpa(ctx context.Context, spaRepo repository.SpaRepository, spaID string) (*entity.Spa, error) {
	spa, err := spaRepo.GetByIDForUpdate(ctx, spaID)
	if err != nil {
		return nil, err
	}
	if spa == nil || !spa.Active {
		return nil, fmt.Errorf("%w: spa %s", domain.ErrNotFound, spaID)
	}
	return spa, nil
}

// lockSpas bloquea los spas en orden de ID para que dos tx cruzadas no se interbloqueen.
// El spa destino debe estar activo; el de origen solo debe existir.
func lockSpas(ctx context.Context, spaRepo repository.SpaRepository, oldSpaID, newSpaID string) error {
	ids := []string{oldSpaID}
	if newSpaID != oldSpaID {
		ids = append(ids, newSpaID)
		sort.Strings(ids)
	}
	for _, id := range ids {
		spa, err := spaRepo.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if spa == nil || (id == newSpaID && !spa.Active) {
			return fmt.Errorf("%w: spa %s", domain.ErrNotFound, id)
		}
	}
	return nil
}

// recompute persiste la media de las reseñas activas del spa y la devuelve.
func recompute(ctx context.Context, reviewRepo repository.ReviewRepository, spaRepo repository.SpaRepository, spaID string) (float64, error) {
	ratings, err := reviewRepo.ActiveRatings(ctx, spaID)
	if err != nil {
		return 0, err
	}
	avg := rating.Average(ratings)
	if err := spaRepo.UpdateAverageRating(ctx, spaID, avg); err != nil {
		return 0, err
	}
	return avg, nil
}

func invalidRating() error {
	return fmt.Errorf("%w: la calificación debe estar entre %d y %d", domain.ErrInvalidInput, entity.MinRating, entity.MaxRating)
}
