package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/belleza-api/internal/application/dto"
	"github.com/jhoicas/belleza-api/internal/domain"
	"github.com/jhoicas/belleza-api/internal/domain/access"
	"github.com/jhoicas/belleza-api/internal/domain/rating"
	"github.com/jhoicas/belleza-api/internal/domain/repository"
)

// ReportUseCase reportes agregados sobre reseñas activas. Solo admin_principal.
type ReportUseCase struct {
	repo      repository.ReportRepository
	generator ReportPDFGenerator
}

// NewReportUseCase construye el caso de uso. generator puede ser nil si no se expone el PDF.
func NewReportUseCase(repo repository.ReportRepository, generator ReportPDFGenerator) *ReportUseCase {
	return &ReportUseCase{repo: repo, generator: generator}
}

// ReviewCountBySpa cantidad de reseñas activas por spa.
func (uc *ReportUseCase) ReviewCountBySpa(ctx context.Context, actor access.Principal) ([]dto.ReviewCountDTO, error) {
	if err := authorizeReports(actor); err != nil {
		return nil, err
	}
	rows, err := uc.repo.ReviewCountBySpa(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReviewCountDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ReviewCountDTO{SpaID: r.SpaID, Spa: r.SpaName, Count: r.Count})
	}
	return out, nil
}

// AverageBySpa promedio de calificación por spa, redondeado a 2 decimales.
func (uc *ReportUseCase) AverageBySpa(ctx context.Context, actor access.Principal) ([]dto.AverageRatingDTO, error) {
	if err := authorizeReports(actor); err != nil {
		return nil, err
	}
	rows, err := uc.repo.AverageBySpa(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AverageRatingDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.AverageRatingDTO{
			SpaID:   r.SpaID,
			Spa:     r.SpaName,
			Average: rating.Round2(r.Average),
			Count:   r.Count,
		})
	}
	return out, nil
}

// AverageBySpaPDF mismo reporte que AverageBySpa renderizado en PDF.
func (uc *ReportUseCase) AverageBySpaPDF(ctx context.Context, actor access.Principal) ([]byte, error) {
	rows, err := uc.AverageBySpa(ctx, actor)
	if err != nil {
		return nil, err
	}
	if uc.generator == nil {
		return nil, fmt.Errorf("reporte: generador PDF no configurado")
	}
	return uc.generator.GenerateAverageReportPDF(ctx, rows, time.Now())
}

func authorizeReports(actor access.Principal) error {
	if !actor.Can(access.ActionViewReports, false) {
		return fmt.Errorf("%w: solo admin_principal puede ver reportes", domain.ErrForbidden)
	}
	return nil
}
