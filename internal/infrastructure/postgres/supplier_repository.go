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

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

const supplierColumns = `id, name, contact_name, email, phone, address, lead_time, created_at`

// SupplierRepo proveedores sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador.
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

func scanSupplier(row pgx.Row) (entity.Supplier, error) {
	var s entity.Supplier
	err := row.Scan(&s.ID, &s.Name, &s.ContactName, &s.Email, &s.Phone, &s.Address, &s.LeadTime, &s.CreatedAt)
	return s, err
}

func (r *SupplierRepo) GetAll(ctx context.Context) ([]entity.Supplier, error) {
	rows, err := r.q.Query(ctx, `SELECT `+supplierColumns+` FROM suppliers ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	list := []entity.Supplier{}
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func (r *SupplierRepo) GetByID(ctx context.Context, id string) (*entity.Supplier, error) {
	s, err := scanSupplier(r.q.QueryRow(ctx, `SELECT `+supplierColumns+` FROM suppliers WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFound("supplier", id)
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

func (r *SupplierRepo) Create(ctx context.Context, supplier entity.Supplier) (*entity.Supplier, error) {
	supplier.ID = newID()
	if supplier.CreatedAt.IsZero() {
		supplier.CreatedAt = time.Now()
	}
	if err := r.Insert(ctx, supplier); err != nil {
		return nil, err
	}
	return &supplier, nil
}

// Insert persiste el proveedor conservando su id.
func (r *SupplierRepo) Insert(ctx context.Context, s entity.Supplier) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO suppliers (`+supplierColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		s.ID, s.Name, s.ContactName, s.Email, s.Phone, s.Address, s.LeadTime, s.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

func (r *SupplierRepo) Update(ctx context.Context, id string, patch entity.SupplierPatch) (*entity.Supplier, error) {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	next := patch.Apply(*current)
	cmd, err := r.q.Exec(ctx, `
		UPDATE suppliers SET name = $2, contact_name = $3, email = $4, phone = $5, address = $6, lead_time = $7
		WHERE id = $1`,
		id, next.Name, next.ContactName, next.Email, next.Phone, next.Address, next.LeadTime,
	)
	if err != nil {
		return nil, fmt.Errorf("update supplier: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return nil, domain.NotFound("supplier", id)
	}
	return &next, nil
}

func (r *SupplierRepo) Delete(ctx context.Context, id string) (*entity.Supplier, error) {
	s, err := scanSupplier(r.q.QueryRow(ctx, `DELETE FROM suppliers WHERE id = $1 RETURNING `+supplierColumns, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFound("supplier", id)
		}
		return nil, fmt.Errorf("delete supplier: %w", err)
	}
	return &s, nil
}
