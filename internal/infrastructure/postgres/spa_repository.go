package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/belleza-api/internal/domain"
	"github.com/jhoicas/belleza-api/internal/domain/entity"
	"github.com/jhoicas/belleza-api/internal/domain/repository"
)

var _ repository.SpaRepository = (*SpaRepo)(nil)

// SpaRepo implementación de SpaRepository sobre PostgreSQL (usable con pool o tx).
type SpaRepo struct {
	q Querier
}

// NewSpaRepository construye el adaptador de spas. Pasar pool o tx (Querier).
func NewSpaRepository(q Querier) *SpaRepo {
	return &SpaRepo{q: q}
}

const spaColumns = `id, nombre, direccion, zona, horario, calificacion_promedio, activo,
	ultima_actualizacion, admin_spa_id, created_at`

// Create persiste un nuevo spa.
func (r *SpaRepo) Create(ctx context.Context, spa *entity.Spa) error {
	query := `
		INSERT INTO spas (` + spaColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		spa.ID, spa.Name, spa.Address, spa.Zone, spa.Schedule, spa.AverageRating, spa.Active,
		spa.LastUpdated, spa.AdminSpaID, spa.CreatedAt,
	)
	if err != nil {
		return spaWriteError("insert spa", err)
	}
	return nil
}

// GetByID obtiene un spa por ID (activo o no).
func (r *SpaRepo) GetByID(ctx context.Context, id string) (*entity.Spa, error) {
	s, err := scanSpa(r.q.QueryRow(ctx, `SELECT `+spaColumns+` FROM spas WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("get spa: %w", err)
	}
	return s, nil
}

// GetByIDForUpdate obtiene el spa y bloquea la fila (SELECT FOR UPDATE). Solo tiene sentido dentro de una tx.
func (r *SpaRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Spa, error) {
	s, err := scanSpa(r.q.QueryRow(ctx, `SELECT `+spaColumns+` FROM spas WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		return nil, fmt.Errorf("get spa for update: %w", err)
	}
	return s, nil
}

// GetActiveByName spa activo con ese nombre, sin distinguir mayúsculas.
func (r *SpaRepo) GetActiveByName(ctx context.Context, name string) (*entity.Spa, error) {
	query := `SELECT ` + spaColumns + ` FROM spas WHERE lower(nombre) = lower($1) AND activo LIMIT 1`
	s, err := scanSpa(r.q.QueryRow(ctx, query, name))
	if err != nil {
		return nil, fmt.Errorf("get spa by name: %w", err)
	}
	return s, nil
}

// GetByAdminSpa spa asignado al admin_spa, si tiene.
func (r *SpaRepo) GetByAdminSpa(ctx context.Context, adminSpaID string) (*entity.Spa, error) {
	s, err := scanSpa(r.q.QueryRow(ctx, `SELECT `+spaColumns+` FROM spas WHERE admin_spa_id = $1`, adminSpaID))
	if err != nil {
		return nil, fmt.Errorf("get spa by admin: %w", err)
	}
	return s, nil
}

// List spas según el filtro, ordenados por nombre.
func (r *SpaRepo) List(ctx context.Context, filter repository.SpaFilter) ([]*entity.Spa, error) {
	query := `
		SELECT ` + spaColumns + ` FROM spas
		WHERE $1 OR activo OR ($2 <> '' AND admin_spa_id::text = $2)
		ORDER BY nombre`
	rows, err := r.q.Query(ctx, query, filter.IncludeInactive, filter.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("list spas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Spa
	for rows.Next() {
		s, err := scanSpa(rows)
		if err != nil {
			return nil, fmt.Errorf("scan spa: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Update persiste los campos editables del spa.
func (r *SpaRepo) Update(ctx context.Context, spa *entity.Spa) error {
	query := `
		UPDATE spas SET nombre = $2, direccion = $3, zona = $4, horario = $5,
			admin_spa_id = $6, ultima_actualizacion = $7
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		spa.ID, spa.Name, spa.Address, spa.Zone, spa.Schedule, spa.AdminSpaID, spa.LastUpdated,
	)
	if err != nil {
		return spaWriteError("update spa", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: spa %s", domain.ErrNotFound, spa.ID)
	}
	return nil
}

// SetActive desactiva o restaura el spa y refresca ultima_actualizacion.
func (r *SpaRepo) SetActive(ctx context.Context, id string, active bool, at time.Time) error {
	tag, err := r.q.Exec(ctx, `UPDATE spas SET activo = $2, ultima_actualizacion = $3 WHERE id = $1`, id, active, at)
	if err != nil {
		return spaWriteError("set spa active", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: spa %s", domain.ErrNotFound, id)
	}
	return nil
}

// UpdateAverageRating persiste el promedio recalculado.
func (r *SpaRepo) UpdateAverageRating(ctx context.Context, id string, avg float64) error {
	_, err := r.q.Exec(ctx, `UPDATE spas SET calificacion_promedio = $2 WHERE id = $1`, id, avg)
	if err != nil {
		return fmt.Errorf("update spa rating: %w", err)
	}
	return nil
}

func spaWriteError(op string, err error) error {
	if constraint, ok := uniqueViolation(err); ok {
		switch constraint {
		case constraintSpaOwner:
			return fmt.Errorf("%w: el admin_spa ya administra otro spa", domain.ErrConflict)
		case constraintSpaActiveName:
			return fmt.Errorf("%w: ya existe un spa activo con ese nombre", domain.ErrDuplicate)
		default:
			return fmt.Errorf("%w: %s", domain.ErrDuplicate, constraint)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

func scanSpa(row pgx.Row) (*entity.Spa, error) {
	var s entity.Spa
	err := row.Scan(
		&s.ID, &s.Name, &s.Address, &s.Zone, &s.Schedule, &s.AverageRating, &s.Active,
		&s.LastUpdated, &s.AdminSpaID, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}
