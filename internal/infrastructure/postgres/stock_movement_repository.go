package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/inventario-dashboard/internal/domain"
	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/inventario-dashboard/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

const movementColumns = `id, product_id, type, quantity, reason, notes, timestamp, user_id`

// StockMovementRepo historial de movimientos sobre PostgreSQL.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

func scanMovement(row pgx.Row) (entity.StockMovement, error) {
	var (
		m   entity.StockMovement
		typ string
	)
	err := row.Scan(&m.ID, &m.ProductID, &typ, &m.Quantity, &m.Reason, &m.Notes, &m.Timestamp, &m.UserID)
	m.Type = entity.MovementType(typ)
	return m, err
}

func (r *StockMovementRepo) list(ctx context.Context, query string, args ...any) ([]entity.StockMovement, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	list := []entity.StockMovement{}
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func (r *StockMovementRepo) GetAll(ctx context.Context) ([]entity.StockMovement, error) {
	return r.list(ctx, `SELECT `+movementColumns+` FROM stock_movements ORDER BY seq`)
}

func (r *StockMovementRepo) GetByProductID(ctx context.Context, productID string) ([]entity.StockMovement, error) {
	return r.list(ctx, `SELECT `+movementColumns+` FROM stock_movements WHERE product_id = $1 ORDER BY seq`, productID)
}

func (r *StockMovementRepo) GetByID(ctx context.Context, id string) (*entity.StockMovement, error) {
	m, err := scanMovement(r.q.QueryRow(ctx, `SELECT `+movementColumns+` FROM stock_movements WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFound("movement", id)
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return &m, nil
}

// Create agrega el movimiento; Timestamp vacío = ahora.
func (r *StockMovementRepo) Create(ctx context.Context, movement entity.StockMovement) (*entity.StockMovement, error) {
	movement.ID = newID()
	if movement.Timestamp.IsZero() {
		movement.Timestamp = time.Now()
	}
	if err := r.Insert(ctx, movement); err != nil {
		return nil, err
	}
	return &movement, nil
}

// Insert persiste el movimiento conservando su id.
func (r *StockMovementRepo) Insert(ctx context.Context, m entity.StockMovement) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO stock_movements (`+movementColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		m.ID, m.ProductID, string(m.Type), m.Quantity, m.Reason, m.Notes, m.Timestamp, m.UserID,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

func (r *StockMovementRepo) Update(ctx context.Context, id string, patch entity.MovementPatch) (*entity.StockMovement, error) {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	next := patch.Apply(*current)
	cmd, err := r.q.Exec(ctx, `
		UPDATE stock_movements SET product_id = $2, type = $3, quantity = $4, reason = $5, notes = $6,
			timestamp = $7, user_id = $8
		WHERE id = $1`,
		id, next.ProductID, string(next.Type), next.Quantity, next.Reason, next.Notes, next.Timestamp, next.UserID,
	)
	if err != nil {
		return nil, fmt.Errorf("update movement: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return nil, domain.NotFound("movement", id)
	}
	return &next, nil
}

func (r *StockMovementRepo) Delete(ctx context.Context, id string) (*entity.StockMovement, error) {
	m, err := scanMovement(r.q.QueryRow(ctx, `DELETE FROM stock_movements WHERE id = $1 RETURNING `+movementColumns, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFound("movement", id)
		}
		return nil, fmt.Errorf("delete movement: %w", err)
	}
	return &m, nil
}
