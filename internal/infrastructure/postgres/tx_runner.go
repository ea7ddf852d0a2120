package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/inventario-dashboard/internal/domain/repository"
)

var (
	_ repository.TxRunner = (*TxRunner)(nil)
	_ repository.Store    = (*Store)(nil)
)

// Store agrupa los repositorios sobre un mismo Querier (pool o tx).
type Store struct {
	q Querier
}

// NewStore construye el store. Pasar pool o tx.
func NewStore(q Querier) *Store { return &Store{q: q} }

func (s *Store) Products() repository.ProductRepository        { return NewProductRepository(s.q) }
func (s *Store) Suppliers() repository.SupplierRepository      { return NewSupplierRepository(s.q) }
func (s *Store) Movements() repository.StockMovementRepository { return NewStockMovementRepository(s.q) }
func (s *Store) Alerts() repository.AlertRepository            { return NewAlertRepository(s.q) }

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(tx repository.Store) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewStore(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
