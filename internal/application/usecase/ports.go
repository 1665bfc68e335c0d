package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/belleza-api/internal/application/dto"
	"github.com/jhoicas/belleza-api/internal/domain/repository"
)

// CatalogTxRunner ejecuta fn en una transacción con los repos de catálogo y asociaciones.
// Se usa al desactivar un servicio o material para desactivar sus asociaciones en la misma tx.
type CatalogTxRunner interface {
	RunCatalog(ctx context.Context, fn func(
		serviceRepo repository.ServiceRepository,
		materialRepo repository.MaterialRepository,
		spaServiceRepo repository.SpaServiceRepository,
		spaMaterialRepo repository.SpaMaterialRepository,
	) error) error
}

// ReportPDFGenerator renderiza el reporte de promedios por spa. Implementado en infrastructure/pdf.
type ReportPDFGenerator interface {
	GenerateAverageReportPDF(ctx context.Context, rows []dto.AverageRatingDTO, generatedAt time.Time) ([]byte, error)
}
