package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/belleza-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas agregadas de solo lectura.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// ReviewCountBySpa reseñas activas por spa activo (incluye spas sin reseñas con 0).
func (r *ReportRepo) ReviewCountBySpa(ctx context.Context) ([]repository.SpaReviewCount, error) {
	query := `
		SELECT s.id, s.nombre, COUNT(r.id)
		FROM spas s
		LEFT JOIN resenas r ON r.spa_id = s.id AND r.activo
		WHERE s.activo
		GROUP BY s.id, s.nombre
		ORDER BY COUNT(r.id) DESC, s.nombre`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("report review count: %w", err)
	}
	defer rows.Close()
	var out []repository.SpaReviewCount
	for rows.Next() {
		var c repository.SpaReviewCount
		if err := rows.Scan(&c.SpaID, &c.SpaName, &c.Count); err != nil {
			return nil, fmt.Errorf("scan review count: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// AverageBySpa promedio de calificación de reseñas activas, solo spas con al menos una.
func (r *ReportRepo) AverageBySpa(ctx context.Context) ([]repository.SpaRatingAverage, error) {
	query := `
		SELECT s.id, s.nombre, AVG(r.calificacion)::float8, COUNT(r.id)
		FROM spas s
		JOIN resenas r ON r.spa_id = s.id AND r.activo
		WHERE s.activo
		GROUP BY s.id, s.nombre
		ORDER BY AVG(r.calificacion) DESC, s.nombre`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("report average: %w", err)
	}
	defer rows.Close()
	var out []repository.SpaRatingAverage
	for rows.Next() {
		var a repository.SpaRatingAverage
		if err := rows.Scan(&a.SpaID, &a.SpaName, &a.Average, &a.Count); err != nil {
			return nil, fmt.Errorf("scan average: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
