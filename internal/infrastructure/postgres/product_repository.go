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

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, sku, description, category, cost_price, sale_price,
	current_stock, min_stock, max_stock, unit, supplier_id, last_updated`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

func scanProduct(row pgx.Row) (entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.Name, &p.SKU, &p.Description, &p.Category, &p.CostPrice, &p.SalePrice,
		&p.CurrentStock, &p.MinStock, &p.MaxStock, &p.Unit, &p.SupplierID, &p.LastUpdated)
	return p, err
}

// GetAll lista los productos en orden de inserción.
func (r *ProductRepo) GetAll(ctx context.Context) ([]entity.Product, error) {
	rows, err := r.q.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	list := []entity.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFound("product", id)
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// GetForUpdate obtiene el producto y bloquea la fila para update (SELECT FOR UPDATE).
// Ajustes concurrentes del mismo producto esperan al commit del primero.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFound("product", id)
		}
		return nil, fmt.Errorf("get product for update: %w", err)
	}
	return &p, nil
}

// Create persiste un nuevo producto con id y lastUpdated nuevos. SKU repetido = ErrDuplicate.
func (r *ProductRepo) Create(ctx context.Context, product entity.Product) (*entity.Product, error) {
	product.ID = newID()
	product.LastUpdated = time.Now()
	if err := r.insert(ctx, product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Insert persiste el producto tal cual, conservando su id (carga de fixtures).
func (r *ProductRepo) Insert(ctx context.Context, product entity.Product) error {
	return r.insert(ctx, product)
}

func (r *ProductRepo) insert(ctx context.Context, p entity.Product) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO products (`+productColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		p.ID, p.Name, p.SKU, p.Description, p.Category, p.CostPrice, p.SalePrice,
		p.CurrentStock, p.MinStock, p.MaxStock, p.Unit, p.SupplierID, p.LastUpdated,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// Update merge superficial y re-estampa last_updated.
func (r *ProductRepo) Update(ctx context.Context, id string, patch entity.ProductPatch) (*entity.Product, error) {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	next := patch.Apply(*current)
	if patch.LastUpdated == nil {
		next.LastUpdated = time.Now()
	}
	cmd, err := r.q.Exec(ctx, `
		UPDATE products SET name = $2, sku = $3, description = $4, category = $5, cost_price = $6,
			sale_price = $7, current_stock = $8, min_stock = $9, max_stock = $10, unit = $11,
			supplier_id = $12, last_updated = $13
		WHERE id = $1`,
		id, next.Name, next.SKU, next.Description, next.Category, next.CostPrice,
		next.SalePrice, next.CurrentStock, next.MinStock, next.MaxStock, next.Unit,
		next.SupplierID, next.LastUpdated,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return nil, domain.NotFound("product", id)
	}
	return &next, nil
}

// Delete elimina un producto y devuelve el registro borrado.
func (r *ProductRepo) Delete(ctx context.Context, id string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, `DELETE FROM products WHERE id = $1 RETURNING `+productColumns, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFound("product", id)
		}
		return nil, fmt.Errorf("delete product: %w", err)
	}
	return &p, nil
}
