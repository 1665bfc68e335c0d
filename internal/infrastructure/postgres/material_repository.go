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

var _ repository.MaterialRepository = (*MaterialRepo)(nil)

// MaterialRepo implementación de MaterialRepository sobre PostgreSQL.
type MaterialRepo struct {
	q Querier
}

// NewMaterialRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMaterialRepository(q Querier) *MaterialRepo {
	return &MaterialRepo{q: q}
}

// Create persiste un material.
func (r *MaterialRepo) Create(ctx context.Context, m *entity.Material) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO materiales (id, nombre, tipo, activo) VALUES ($1, $2, $3, $4)`,
		m.ID, m.Name, m.Type, m.Active,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: ya existe un material con ese nombre", domain.ErrDuplicate)
		}
		return fmt.Errorf("insert material: %w", err)
	}
	return nil
}

// GetByID obtiene un material por ID.
func (r *MaterialRepo) GetByID(ctx context.Context, id string) (*entity.Material, error) {
	m, err := scanMaterial(r.q.QueryRow(ctx, `SELECT id, nombre, tipo, activo FROM materiales WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("get material: %w", err)
	}
	return m, nil
}

// GetByName búsqueda exacta sin distinguir mayúsculas.
func (r *MaterialRepo) GetByName(ctx context.Context, name string) (*entity.Material, error) {
	m, err := scanMaterial(r.q.QueryRow(ctx,
		`SELECT id, nombre, tipo, activo FROM materiales WHERE lower(nombre) = lower($1)`, name))
	if err != nil {
		return nil, fmt.Errorf("get material by name: %w", err)
	}
	return m, nil
}

// List materiales ordenados por nombre.
func (r *MaterialRepo) List(ctx context.Context, includeInactive bool) ([]*entity.Material, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, nombre, tipo, activo FROM materiales WHERE $1 OR activo ORDER BY nombre`, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	defer rows.Close()
	var list []*entity.Material
	for rows.Next() {
		m, err := scanMaterial(rows)
		if err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// Update persiste nombre y tipo.
func (r *MaterialRepo) Update(ctx context.Context, m *entity.Material) error {
	tag, err := r.q.Exec(ctx, `UPDATE materiales SET nombre = $2, tipo = $3 WHERE id = $1`, m.ID, m.Name, m.Type)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: ya existe un material con ese nombre", domain.ErrDuplicate)
		}
		return fmt.Errorf("update material: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: material %s", domain.ErrNotFound, m.ID)
	}
	return nil
}

// SetActive desactiva o reactiva un material.
func (r *MaterialRepo) SetActive(ctx context.Context, id string, active bool) error {
	tag, err := r.q.Exec(ctx, `UPDATE materiales SET activo = $2 WHERE id = $1`, id, active)
	if err != nil {
		return fmt.Errorf("set material active: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: material %s", domain.ErrNotFound, id)
	}
	return nil
}

func scanMaterial(row pgx.Row) (*entity.Material, error) {
	var m entity.Material
	if err := row.Scan(&m.ID, &m.Name, &m.Type, &m.Active); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}
