package remote

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/inventario-dashboard/internal/domain/repository"
)

// Nombres de tabla en el backend remoto.
const (
	tableProducts  = "products"
	tableSuppliers = "suppliers"
	tableMovements = "stock_movements"
	tableAlerts    = "alerts"
)

// Store implementa repository.Store sobre el cliente remoto. Fuera de una transacción
// undo es nil y las escrituras no registran compensación.
type Store struct {
	c    *Client
	undo *undoLog
}

// NewStore crea el store remoto.
func NewStore(c *Client) *Store { return &Store{c: c} }

func (s *Store) Products() repository.ProductRepository {
	return &productRepo{c: s.c, t: table[productRecord]{s.c, tableProducts}, undo: s.undo}
}

func (s *Store) Suppliers() repository.SupplierRepository {
	return &supplierRepo{c: s.c, t: table[supplierRecord]{s.c, tableSuppliers}, undo: s.undo}
}

func (s *Store) Movements() repository.StockMovementRepository {
	return &movementRepo{c: s.c, t: table[movementRecord]{s.c, tableMovements}, undo: s.undo}
}

func (s *Store) Alerts() repository.AlertRepository {
	return &alertRepo{c: s.c, t: table[alertRecord]{s.c, tableAlerts}, undo: s.undo}
}

// Run ejecuta fn registrando una acción compensatoria por cada escritura confirmada.
// Si fn falla las compensaciones se aplican en orden inverso. La API remota no ofrece
// transacciones entre peticiones, así que la atomicidad es de mejor esfuerzo.
func (s *Store) Run(ctx context.Context, fn func(tx repository.Store) error) error {
	log := &undoLog{}
	if err := fn(&Store{c: s.c, undo: log}); err != nil {
		if uerr := log.rollback(ctx, s.c.log); uerr != nil {
			return errors.Join(err, uerr)
		}
		return err
	}
	return nil
}

var (
	_ repository.Store    = (*Store)(nil)
	_ repository.TxRunner = (*Store)(nil)
)

// ── Compensación ───────────────────────────────────────────────────────────────

type undoStep struct {
	desc string
	fn   func(ctx context.Context) error
}

type undoLog struct {
	mu    sync.Mutex
	steps []undoStep
}

// push no hace nada sobre un log nil (fuera de transacción).
func (l *undoLog) push(desc string, fn func(ctx context.Context) error) {
	if l == nil {
		return
	}
	l.mu.Lock()
	l.steps = append(l.steps, undoStep{desc: desc, fn: fn})
	l.mu.Unlock()
}

func (l *undoLog) rollback(ctx context.Context, log zerolog.Logger) error {
	l.mu.Lock()
	steps := l.steps
	l.steps = nil
	l.mu.Unlock()

	// la compensación corre aunque el contexto original ya esté cancelado
	ctx = context.WithoutCancel(ctx)
	var errs []error
	for i := len(steps) - 1; i >= 0; i-- {
		if err := steps[i].fn(ctx); err != nil {
			log.Error().Err(err).Str("step", steps[i].desc).Msg("remote: compensación fallida")
			errs = append(errs, fmt.Errorf("compensar %s: %w", steps[i].desc, err))
			continue
		}
		log.Warn().Str("step", steps[i].desc).Msg("remote: escritura compensada")
	}
	return errors.Join(errs...)
}

func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
