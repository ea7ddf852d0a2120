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

var _ repository.AlertRepository = (*AlertRepo)(nil)

const alertColumns = `id, product_id, type, threshold, current_level, triggered, acknowledged_at, timestamp`

// AlertRepo alertas sobre PostgreSQL.
type AlertRepo struct {
	q Querier
}

// NewAlertRepository construye el adaptador.
func NewAlertRepository(q Querier) *AlertRepo {
	return &AlertRepo{q: q}
}

func scanAlert(row pgx.Row) (entity.Alert, error) {
	var (
		a   entity.Alert
		typ string
	)
	err := row.Scan(&a.ID, &a.ProductID, &typ, &a.Threshold, &a.CurrentLevel, &a.Triggered, &a.AcknowledgedAt, &a.Timestamp)
	a.Type = entity.AlertType(typ)
	return a, err
}

func (r *AlertRepo) list(ctx context.Context, query string, args ...any) ([]entity.Alert, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	defer rows.Close()
	list := []entity.Alert{}
	for rows.Next() {
		a, err := scanAlert(rows)
		if err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

func (r *AlertRepo) GetAll(ctx context.Context) ([]entity.Alert, error) {
	return r.list(ctx, `SELECT `+alertColumns+` FROM alerts ORDER BY seq`)
}

func (r *AlertRepo) GetByProductID(ctx context.Context, productID string) ([]entity.Alert, error) {
	return r.list(ctx, `SELECT `+alertColumns+` FROM alerts WHERE product_id = $1 ORDER BY seq`, productID)
}

func (r *AlertRepo) GetByID(ctx context.Context, id string) (*entity.Alert, error) {
	a, err := scanAlert(r.q.QueryRow(ctx, `SELECT `+alertColumns+` FROM alerts WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFound("alert", id)
		}
		return nil, fmt.Errorf("get alert: %w", err)
	}
	return &a, nil
}

func (r *AlertRepo) Create(ctx context.Context, alert entity.Alert) (*entity.Alert, error) {
	alert.ID = newID()
	if alert.Timestamp.IsZero() {
		alert.Timestamp = time.Now()
	}
	if err := r.Insert(ctx, alert); err != nil {
		return nil, err
	}
	return &alert, nil
}

// Insert persiste la alerta conservando su id.
func (r *AlertRepo) Insert(ctx context.Context, a entity.Alert) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO alerts (`+alertColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		a.ID, a.ProductID, string(a.Type), a.Threshold, a.CurrentLevel, a.Triggered, a.AcknowledgedAt, a.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert alert: %w", err)
	}
	return nil
}

func (r *AlertRepo) Update(ctx context.Context, id string, patch entity.AlertPatch) (*entity.Alert, error) {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	next := patch.Apply(*current)
	cmd, err := r.q.Exec(ctx, `
		UPDATE alerts SET product_id = $2, type = $3, threshold = $4, current_level = $5, triggered = $6,
			acknowledged_at = $7
		WHERE id = $1`,
		id, next.ProductID, string(next.Type), next.Threshold, next.CurrentLevel, next.Triggered, next.AcknowledgedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("update alert: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return nil, domain.NotFound("alert", id)
	}
	return &next, nil
}

func (r *AlertRepo) Delete(ctx context.Context, id string) (*entity.Alert, error) {
	a, err := scanAlert(r.q.QueryRow(ctx, `DELETE FROM alerts WHERE id = $1 RETURNING `+alertColumns, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFound("alert", id)
		}
		return nil, fmt.Errorf("delete alert: %w", err)
	}
	return &a, nil
}
