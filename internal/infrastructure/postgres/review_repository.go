package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/belleza-api/internal/domain"
	"github.com/jhoicas/belleza-api/internal/domain/entity"
	"github.com/jhoicas/belleza-api/internal/domain/repository"
)

var _ repository.ReviewRepository = (*ReviewRepo)(nil)

// ReviewRepo implementación de ReviewRepository sobre PostgreSQL (usable con pool o tx).
type ReviewRepo struct {
	q Querier
}

// NewReviewRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReviewRepository(q Querier) *ReviewRepo {
	return &ReviewRepo{q: q}
}

const reviewDetailSelect = `
	SELECT r.id, r.calificacion, r.comentario, r.fecha_creacion, r.activo, r.usuario_id, r.spa_id,
		u.nombre, s.nombre
	FROM resenas r
	JOIN usuarios u ON u.id = r.usuario_id
	JOIN spas s ON s.id = r.spa_id`

// Create persiste una reseña.
func (r *ReviewRepo) Create(ctx context.Context, rv *entity.Review) error {
	query := `
		INSERT INTO resenas (id, calificacion, comentario, fecha_creacion, activo, usuario_id, spa_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query, rv.ID, rv.Rating, rv.Comment, rv.CreatedAt, rv.Active, rv.UserID, rv.SpaID)
	if err != nil {
		return fmt.Errorf("insert review: %w", err)
	}
	return nil
}

// GetByID obtiene una reseña (activa o no).
func (r *ReviewRepo) GetByID(ctx context.Context, id string) (*entity.Review, error) {
	query := `
		SELECT id, calificacion, comentario, fecha_creacion, activo, usuario_id, spa_id
		FROM resenas WHERE id = $1`
	var rv entity.Review
	err := r.q.QueryRow(ctx, query, id).Scan(
		&rv.ID, &rv.Rating, &rv.Comment, &rv.CreatedAt, &rv.Active, &rv.UserID, &rv.SpaID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get review: %w", err)
	}
	return &rv, nil
}

// GetDetail reseña con nombres de autor y spa.
func (r *ReviewRepo) GetDetail(ctx context.Context, id string) (*repository.ReviewDetail, error) {
	d, err := scanReviewDetail(r.q.QueryRow(ctx, reviewDetailSelect+` WHERE r.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get review detail: %w", err)
	}
	return d, nil
}

// Update persiste calificación, comentario, spa y estado.
func (r *ReviewRepo) Update(ctx context.Context, rv *entity.Review) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE resenas SET calificacion = $2, comentario = $3, spa_id = $4, activo = $5 WHERE id = $1`,
		rv.ID, rv.Rating, rv.Comment, rv.SpaID, rv.Active,
	)
	if err != nil {
		return fmt.Errorf("update review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: reseña %s", domain.ErrNotFound, rv.ID)
	}
	return nil
}

// ListBySpa reseñas activas del spa, más recientes primero.
func (r *ReviewRepo) ListBySpa(ctx context.Context, spaID string) ([]repository.ReviewDetail, error) {
	return r.list(ctx, reviewDetailSelect+` WHERE r.spa_id = $1 AND r.activo ORDER BY r.fecha_creacion DESC`, spaID)
}

// ListByUser reseñas activas del usuario, más recientes primero.
func (r *ReviewRepo) ListByUser(ctx context.Context, userID string) ([]repository.ReviewDetail, error) {
	return r.list(ctx, reviewDetailSelect+` WHERE r.usuario_id = $1 AND r.activo ORDER BY r.fecha_creacion DESC`, userID)
}

// ListAll todas las reseñas, incluidas las inactivas.
func (r *ReviewRepo) ListAll(ctx context.Context) ([]repository.ReviewDetail, error) {
	return r.list(ctx, reviewDetailSelect+` ORDER BY r.fecha_creacion DESC`)
}

// ActiveRatings calificaciones de las reseñas activas del spa.
func (r *ReviewRepo) ActiveRatings(ctx context.Context, spaID string) ([]int, error) {
	rows, err := r.q.Query(ctx, `SELECT calificacion FROM resenas WHERE spa_id = $1 AND activo`, spaID)
	if err != nil {
		return nil, fmt.Errorf("active ratings: %w", err)
	}
	defer rows.Close()
	var out []int
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan rating: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *ReviewRepo) list(ctx context.Context, query string, args ...any) ([]repository.ReviewDetail, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()
	var list []repository.ReviewDetail
	for rows.Next() {
		d, err := scanReviewDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		list = append(list, *d)
	}
	return list, rows.Err()
}

func scanReviewDetail(row pgx.Row) (*repository.ReviewDetail, error) {
	var d repository.ReviewDetail
	err := row.Scan(
		&d.ID, &d.Rating, &d.Comment, &d.CreatedAt, &d.Active, &d.UserID, &d.SpaID,
		&d.UserName, &d.SpaName,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
