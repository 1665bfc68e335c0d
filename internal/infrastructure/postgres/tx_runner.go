package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/belleza-api/internal/application/review"
	"github.com/jhoicas/belleza-api/internal/application/usecase"
	"github.com/jhoicas/belleza-api/internal/domain/repository"
)

// Ensure TxRunner implements review.ReviewTxRunner and usecase.CatalogTxRunner.
var _ review.ReviewTxRunner = (*TxRunner)(nil)
var _ usecase.CatalogTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunReview inicia una transacción con repos de reseñas y spas (mutación + recálculo del promedio).
func (r *TxRunner) RunReview(ctx context.Context, fn func(
	reviewRepo repository.ReviewRepository,
	spaRepo repository.SpaRepository,
) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewReviewRepository(tx), NewSpaRepository(tx))
	})
}

// RunCatalog inicia una transacción con repos de catálogo y asociaciones (baja en cascada).
func (r *TxRunner) RunCatalog(ctx context.Context, fn func(
	serviceRepo repository.ServiceRepository,
	materialRepo repository.MaterialRepository,
	spaServiceRepo repository.SpaServiceRepository,
	spaMaterialRepo repository.SpaMaterialRepository,
) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(
			NewServiceRepository(tx),
			NewMaterialRepository(tx),
			NewSpaServiceRepository(tx),
			NewSpaMaterialRepository(tx),
		)
	})
}

// run hace Commit si fn no falla; en cualquier otro caso Rollback.
func (r *TxRunner) run(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
