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

var (
	_ repository.SpaServiceRepository  = (*SpaServiceRepo)(nil)
	_ repository.SpaMaterialRepository = (*SpaMaterialRepo)(nil)
)

// SpaServiceRepo relación spa-servicio sobre la tabla spa_servicios.
type SpaServiceRepo struct {
	q Querier
}

// NewSpaServiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSpaServiceRepository(q Querier) *SpaServiceRepo {
	return &SpaServiceRepo{q: q}
}

// Get obtiene la fila (spa, servicio), activa o no.
func (r *SpaServiceRepo) Get(ctx context.Context, spaID, serviceID string) (*entity.SpaService, error) {
	query := `
		SELECT spa_id, servicio_id, precio, duracion, activo
		FROM spa_servicios WHERE spa_id = $1 AND servicio_id = $2`
	var a entity.SpaService
	err := r.q.QueryRow(ctx, query, spaID, serviceID).Scan(&a.SpaID, &a.ServiceID, &a.Price, &a.Duration, &a.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get spa service: %w", err)
	}
	return &a, nil
}

// Create inserta la asociación. Un par repetido es Conflict.
func (r *SpaServiceRepo) Create(ctx context.Context, a *entity.SpaService) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO spa_servicios (spa_id, servicio_id, precio, duracion, activo) VALUES ($1, $2, $3, $4, $5)`,
		a.SpaID, a.ServiceID, a.Price, a.Duration, a.Active,
	)
	if err != nil {
		if constraint, ok := uniqueViolation(err); ok && (constraint == constraintSpaServicePair || constraint == "") {
			return fmt.Errorf("%w: el servicio ya está asociado a este spa", domain.ErrConflict)
		}
		return fmt.Errorf("insert spa service: %w", err)
	}
	return nil
}

// Update reescribe precio, duración y estado.
func (r *SpaServiceRepo) Update(ctx context.Context, a *entity.SpaService) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE spa_servicios SET precio = $3, duracion = $4, activo = $5 WHERE spa_id = $1 AND servicio_id = $2`,
		a.SpaID, a.ServiceID, a.Price, a.Duration, a.Active,
	)
	if err != nil {
		return fmt.Errorf("update spa service: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: asociación spa-servicio", domain.ErrNotFound)
	}
	return nil
}

// DeactivateByService desactiva todas las asociaciones del servicio.
func (r *SpaServiceRepo) DeactivateByService(ctx context.Context, serviceID string) error {
	if _, err := r.q.Exec(ctx, `UPDATE spa_servicios SET activo = FALSE WHERE servicio_id = $1`, serviceID); err != nil {
		return fmt.Errorf("deactivate spa services: %w", err)
	}
	return nil
}

// ListBySpa servicios activos del spa; precio y duración caen al valor de referencia si el spa no define uno.
func (r *SpaServiceRepo) ListBySpa(ctx context.Context, spaID string) ([]repository.SpaServiceDetail, error) {
	query := `
		SELECT ss.spa_id, s.id, s.nombre, s.descripcion,
			COALESCE(ss.precio, s.precio_ref),
			COALESCE(NULLIF(ss.duracion, ''), s.duracion_ref)
		FROM spa_servicios ss
		JOIN servicios s ON s.id = ss.servicio_id
		WHERE ss.spa_id = $1 AND ss.activo AND s.activo
		ORDER BY s.nombre`
	rows, err := r.q.Query(ctx, query, spaID)
	if err != nil {
		return nil, fmt.Errorf("list spa services: %w", err)
	}
	defer rows.Close()
	var list []repository.SpaServiceDetail
	for rows.Next() {
		var d repository.SpaServiceDetail
		if err := rows.Scan(&d.SpaID, &d.ServiceID, &d.Name, &d.Description, &d.Price, &d.Duration); err != nil {
			return nil, fmt.Errorf("scan spa service: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// SpaMaterialRepo relación spa-material sobre la tabla spa_materiales.
type SpaMaterialRepo struct {
	q Querier
}

// NewSpaMaterialRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSpaMaterialRepository(q Querier) *SpaMaterialRepo {
	return &SpaMaterialRepo{q: q}
}

// Get obtiene la fila (spa, material), activa o no.
func (r *SpaMaterialRepo) Get(ctx context.Context, spaID, materialID string) (*entity.SpaMaterial, error) {
	var a entity.SpaMaterial
	err := r.q.QueryRow(ctx,
		`SELECT spa_id, material_id, activo FROM spa_materiales WHERE spa_id = $1 AND material_id = $2`,
		spaID, materialID,
	).Scan(&a.SpaID, &a.MaterialID, &a.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get spa material: %w", err)
	}
	return &a, nil
}

// Create inserta la asociación. Un par repetido es Conflict.
func (r *SpaMaterialRepo) Create(ctx context.Context, a *entity.SpaMaterial) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO spa_materiales (spa_id, material_id, activo) VALUES ($1, $2, $3)`,
		a.SpaID, a.MaterialID, a.Active,
	)
	if err != nil {
		if constraint, ok := uniqueViolation(err); ok && (constraint == constraintSpaMaterialPair || constraint == "") {
			return fmt.Errorf("%w: el material ya está asociado a este spa", domain.ErrConflict)
		}
		return fmt.Errorf("insert spa material: %w", err)
	}
	return nil
}

// SetActive retira o reactiva la asociación.
func (r *SpaMaterialRepo) SetActive(ctx context.Context, spaID, materialID string, active bool) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE spa_materiales SET activo = $3 WHERE spa_id = $1 AND material_id = $2`,
		spaID, materialID, active,
	)
	if err != nil {
		return fmt.Errorf("set spa material active: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: asociación spa-material", domain.ErrNotFound)
	}
	return nil
}

// DeactivateByMaterial desactiva todas las asociaciones del material.
func (r *SpaMaterialRepo) DeactivateByMaterial(ctx context.Context, materialID string) error {
	if _, err := r.q.Exec(ctx, `UPDATE spa_materiales SET activo = FALSE WHERE material_id = $1`, materialID); err != nil {
		return fmt.Errorf("deactivate spa materials: %w", err)
	}
	return nil
}

// ListBySpa materiales activos del spa.
func (r *SpaMaterialRepo) ListBySpa(ctx context.Context, spaID string) ([]repository.SpaMaterialDetail, error) {
	query := `
		SELECT sm.spa_id, m.id, m.nombre, m.tipo
		FROM spa_materiales sm
		JOIN materiales m ON m.id = sm.material_id
		WHERE sm.spa_id = $1 AND sm.activo AND m.activo
		ORDER BY m.nombre`
	rows, err := r.q.Query(ctx, query, spaID)
	if err != nil {
		return nil, fmt.Errorf("list spa materials: %w", err)
	}
	defer rows.Close()
	var list []repository.SpaMaterialDetail
	for rows.Next() {
		var d repository.SpaMaterialDetail
		if err := rows.Scan(&d.SpaID, &d.MaterialID, &d.Name, &d.Type); err != nil {
			return nil, fmt.Errorf("scan spa material: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}
