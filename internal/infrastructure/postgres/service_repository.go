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

var _ repository.ServiceRepository = (*ServiceRepo)(nil)

// ServiceRepo implementación de ServiceRepository sobre PostgreSQL.
type ServiceRepo struct {
	q Querier
}

// NewServiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewServiceRepository(q Querier) *ServiceRepo {
	return &ServiceRepo{q: q}
}

const serviceColumns = `id, nombre, descripcion, duracion_ref, precio_ref, activo`

// Create persiste un servicio.
func (r *ServiceRepo) Create(ctx context.Context, s *entity.Service) error {
	query := `INSERT INTO servicios (` + serviceColumns + `) VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query, s.ID, s.Name, s.Description, s.RefDuration, s.RefPrice, s.Active)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: ya existe un servicio con ese nombre", domain.ErrDuplicate)
		}
		return fmt.Errorf("insert service: %w", err)
	}
	return nil
}

// GetByID obtiene un servicio por ID.
func (r *ServiceRepo) GetByID(ctx context.Context, id string) (*entity.Service, error) {
	s, err := scanService(r.q.QueryRow(ctx, `SELECT `+serviceColumns+` FROM servicios WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("get service: %w", err)
	}
	return s, nil
}

// GetByName búsqueda exacta sin distinguir mayúsculas (activo o no: el nombre es único en toda la tabla).
func (r *ServiceRepo) GetByName(ctx context.Context, name string) (*entity.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM servicios WHERE lower(nombre) = lower($1)`
	s, err := scanService(r.q.QueryRow(ctx, query, name))
	if err != nil {
		return nil, fmt.Errorf("get service by name: %w", err)
	}
	return s, nil
}

// List servicios ordenados por nombre.
func (r *ServiceRepo) List(ctx context.Context, includeInactive bool) ([]*entity.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM servicios WHERE $1 OR activo ORDER BY nombre`
	rows, err := r.q.Query(ctx, query, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()
	var list []*entity.Service
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Update persiste nombre, descripción, duración y precio de referencia.
func (r *ServiceRepo) Update(ctx context.Context, s *entity.Service) error {
	query := `
		UPDATE servicios SET nombre = $2, descripcion = $3, duracion_ref = $4, precio_ref = $5
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, s.ID, s.Name, s.Description, s.RefDuration, s.RefPrice)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: ya existe un servicio con ese nombre", domain.ErrDuplicate)
		}
		return fmt.Errorf("update service: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: servicio %s", domain.ErrNotFound, s.ID)
	}
	return nil
}

// SetActive desactiva o reactiva un servicio.
func (r *ServiceRepo) SetActive(ctx context.Context, id string, active bool) error {
	tag, err := r.q.Exec(ctx, `UPDATE servicios SET activo = $2 WHERE id = $1`, id, active)
	if err != nil {
		return fmt.Errorf("set service active: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: servicio %s", domain.ErrNotFound, id)
	}
	return nil
}

func scanService(row pgx.Row) (*entity.Service, error) {
	var s entity.Service
	if err := row.Scan(&s.ID, &s.Name, &s.Description, &s.RefDuration, &s.RefPrice, &s.Active); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}
