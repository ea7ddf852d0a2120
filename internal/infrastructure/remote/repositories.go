package remote

import (
	"context"

	"github.com/jhoicas/inventario-dashboard/internal/domain"
	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
)

// ── Escrituras genéricas con compensación ──────────────────────────────────────

// current lee el registro a modificar; en el camino de escritura un fallo nunca es tolerado.
func current[R any](ctx context.Context, t table[R], op, kind, id string) (*R, error) {
	rec, err := t.get(ctx, id)
	if err != nil {
		return nil, t.c.writeFailed(op, err)
	}
	if rec == nil {
		return nil, domain.NotFound(kind, id)
	}
	return rec, nil
}

func insertRecord[R any](ctx context.Context, t table[R], undo *undoLog, op, id string, rec R) (*R, error) {
	out, err := t.insert(ctx, rec)
	if err != nil {
		return nil, t.c.writeFailed(op, err)
	}
	undo.push(op+" "+id, func(ctx context.Context) error {
		_, err := t.remove(ctx, id)
		return err
	})
	return out, nil
}

func patchRecord[R any](ctx context.Context, t table[R], undo *undoLog, op, kind, id string, prev, next R) (*R, error) {
	out, err := t.patch(ctx, id, next)
	if err != nil {
		return nil, t.c.writeFailed(op, err)
	}
	if out == nil {
		return nil, domain.NotFound(kind, id)
	}
	undo.push(op+" "+id, func(ctx context.Context) error {
		_, err := t.patch(ctx, id, prev)
		return err
	})
	return out, nil
}

func removeRecord[R any](ctx context.Context, t table[R], undo *undoLog, op, kind, id string) (*R, error) {
	out, err := t.remove(ctx, id)
	if err != nil {
		return nil, t.c.writeFailed(op, err)
	}
	if out == nil {
		return nil, domain.NotFound(kind, id)
	}
	removed := *out
	undo.push(op+" "+id, func(ctx context.Context) error {
		_, err := t.insert(ctx, removed)
		return err
	})
	return out, nil
}

// ── Productos ──────────────────────────────────────────────────────────────────

type productRepo struct {
	c    *Client
	t    table[productRecord]
	undo *undoLog
}

func (r *productRepo) GetAll(ctx context.Context) ([]entity.Product, error) {
	recs, err := r.t.list(ctx, nil)
	if err != nil {
		return []entity.Product{}, r.c.readFailed(ctx, "products.getAll", err)
	}
	out := make([]entity.Product, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.entity())
	}
	return out, nil
}

func (r *productRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	rec, err := r.t.get(ctx, id)
	if err != nil {
		return nil, r.c.readFailed(ctx, "products.getById", err)
	}
	if rec == nil {
		return nil, domain.NotFound("product", id)
	}
	p := rec.entity()
	return &p, nil
}

// GetForUpdate PostgREST no expone bloqueos de fila; lectura normal.
func (r *productRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *productRepo) Create(ctx context.Context, product entity.Product) (*entity.Product, error) {
	p := product.Clone()
	p.ID = newID()
	p.LastUpdated = r.c.now()
	rec, err := insertRecord(ctx, r.t, r.undo, "products.create", p.ID, productToRecord(p))
	if err != nil {
		return nil, err
	}
	out := rec.entity()
	return &out, nil
}

func (r *productRepo) Update(ctx context.Context, id string, patch entity.ProductPatch) (*entity.Product, error) {
	prev, err := current(ctx, r.t, "products.update", "product", id)
	if err != nil {
		return nil, err
	}
	next := patch.Apply(prev.entity())
	next.ID = id
	if patch.LastUpdated == nil {
		next.LastUpdated = r.c.now()
	}
	rec, err := patchRecord(ctx, r.t, r.undo, "products.update", "product", id, *prev, productToRecord(next))
	if err != nil {
		return nil, err
	}
	out := rec.entity()
	return &out, nil
}

func (r *productRepo) Delete(ctx context.Context, id string) (*entity.Product, error) {
	rec, err := removeRecord(ctx, r.t, r.undo, "products.delete", "product", id)
	if err != nil {
		return nil, err
	}
	out := rec.entity()
	return &out, nil
}

// ── Proveedores ────────────────────────────────────────────────────────────────

type supplierRepo struct {
	c    *Client
	t    table[supplierRecord]
	undo *undoLog
}

func (r *supplierRepo) GetAll(ctx context.Context) ([]entity.Supplier, error) {
	recs, err := r.t.list(ctx, nil)
	if err != nil {
		return []entity.Supplier{}, r.c.readFailed(ctx, "suppliers.getAll", err)
	}
	out := make([]entity.Supplier, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.entity())
	}
	return out, nil
}

func (r *supplierRepo) GetByID(ctx context.Context, id string) (*entity.Supplier, error) {
	rec, err := r.t.get(ctx, id)
	if err != nil {
		return nil, r.c.readFailed(ctx, "suppliers.getById", err)
	}
	if rec == nil {
		return nil, domain.NotFound("supplier", id)
	}
	s := rec.entity()
	return &s, nil
}

func (r *supplierRepo) Create(ctx context.Context, supplier entity.Supplier) (*entity.Supplier, error) {
	s := supplier
	s.ID = newID()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = r.c.now()
	}
	rec, err := insertRecord(ctx, r.t, r.undo, "suppliers.create", s.ID, supplierToRecord(s))
	if err != nil {
		return nil, err
	}
	out := rec.entity()
	return &out, nil
}

func (r *supplierRepo) Update(ctx context.Context, id string, patch entity.SupplierPatch) (*entity.Supplier, error) {
	prev, err := current(ctx, r.t, "suppliers.update", "supplier", id)
	if err != nil {
		return nil, err
	}
	next := patch.Apply(prev.entity())
	next.ID = id
	rec, err := patchRecord(ctx, r.t, r.undo, "suppliers.update", "supplier", id, *prev, supplierToRecord(next))
	if err != nil {
		return nil, err
	}
	out := rec.entity()
	return &out, nil
}

func (r *supplierRepo) Delete(ctx context.Context, id string) (*entity.Supplier, error) {
	rec, err := removeRecord(ctx, r.t, r.undo, "suppliers.delete", "supplier", id)
	if err != nil {
		return nil, err
	}
	out := rec.entity()
	return &out, nil
}

// ── Movimientos ────────────────────────────────────────────────────────────────

type movementRepo struct {
	c    *Client
	t    table[movementRecord]
	undo *undoLog
}

func (r *movementRepo) list(ctx context.Context, op string, recs []movementRecord, err error) ([]entity.StockMovement, error) {
	if err != nil {
		return []entity.StockMovement{}, r.c.readFailed(ctx, op, err)
	}
	out := make([]entity.StockMovement, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.entity())
	}
	return out, nil
}

func (r *movementRepo) GetAll(ctx context.Context) ([]entity.StockMovement, error) {
	recs, err := r.t.list(ctx, nil)
	return r.list(ctx, "movements.getAll", recs, err)
}

func (r *movementRepo) GetByProductID(ctx context.Context, productID string) ([]entity.StockMovement, error) {
	recs, err := r.t.list(ctx, eq("product_id", productID))
	return r.list(ctx, "movements.getByProductId", recs, err)
}

func (r *movementRepo) GetByID(ctx context.Context, id string) (*entity.StockMovement, error) {
	rec, err := r.t.get(ctx, id)
	if err != nil {
		return nil, r.c.readFailed(ctx, "movements.getById", err)
	}
	if rec == nil {
		return nil, domain.NotFound("movement", id)
	}
	m := rec.entity()
	return &m, nil
}

func (r *movementRepo) Create(ctx context.Context, movement entity.StockMovement) (*entity.StockMovement, error) {
	m := movement
	m.ID = newID()
	if m.Timestamp.IsZero() {
		m.Timestamp = r.c.now()
	}
	rec, err := insertRecord(ctx, r.t, r.undo, "movements.create", m.ID, movementToRecord(m))
	if err != nil {
		return nil, err
	}
	out := rec.entity()
	return &out, nil
}

func (r *movementRepo) Update(ctx context.Context, id string, patch entity.MovementPatch) (*entity.StockMovement, error) {
	prev, err := current(ctx, r.t, "movements.update", "movement", id)
	if err != nil {
		return nil, err
	}
	next := patch.Apply(prev.entity())
	next.ID = id
	rec, err := patchRecord(ctx, r.t, r.undo, "movements.update", "movement", id, *prev, movementToRecord(next))
	if err != nil {
		return nil, err
	}
	out := rec.entity()
	return &out, nil
}

func (r *movementRepo) Delete(ctx context.Context, id string) (*entity.StockMovement, error) {
	rec, err := removeRecord(ctx, r.t, r.undo, "movements.delete", "movement", id)
	if err != nil {
		return nil, err
	}
	out := rec.entity()
	return &out, nil
}

// ── Alertas ────────────────────────────────────────────────────────────────────

type alertRepo struct {
	c    *Client
	t    table[alertRecord]
	undo *undoLog
}

func (r *alertRepo) list(ctx context.Context, op string, recs []alertRecord, err error) ([]entity.Alert, error) {
	if err != nil {
		return []entity.Alert{}, r.c.readFailed(ctx, op, err)
	}
	out := make([]entity.Alert, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.entity())
	}
	return out, nil
}

func (r *alertRepo) GetAll(ctx context.Context) ([]entity.Alert, error) {
	recs, err := r.t.list(ctx, nil)
	return r.list(ctx, "alerts.getAll", recs, err)
}

func (r *alertRepo) GetByProductID(ctx context.Context, productID string) ([]entity.Alert, error) {
	recs, err := r.t.list(ctx, eq("product_id", productID))
	return r.list(ctx, "alerts.getByProductId", recs, err)
}

func (r *alertRepo) GetByID(ctx context.Context, id string) (*entity.Alert, error) {
	rec, err := r.t.get(ctx, id)
	if err != nil {
		return nil, r.c.readFailed(ctx, "alerts.getById", err)
	}
	if rec == nil {
		return nil, domain.NotFound("alert", id)
	}
	a := rec.entity()
	return &a, nil
}

func (r *alertRepo) Create(ctx context.Context, alert entity.Alert) (*entity.Alert, error) {
	a := alert.Clone()
	a.ID = newID()
	if a.Timestamp.IsZero() {
		a.Timestamp = r.c.now()
	}
	rec, err := insertRecord(ctx, r.t, r.undo, "alerts.create", a.ID, alertToRecord(a))
	if err != nil {
		return nil, err
	}
	out := rec.entity()
	return &out, nil
}

func (r *alertRepo) Update(ctx context.Context, id string, patch entity.AlertPatch) (*entity.Alert, error) {
	prev, err := current(ctx, r.t, "alerts.update", "alert", id)
	if err != nil {
		return nil, err
	}
	next := patch.Apply(prev.entity())
	next.ID = id
	rec, err := patchRecord(ctx, r.t, r.undo, "alerts.update", "alert", id, *prev, alertToRecord(next))
	if err != nil {
		return nil, err
	}
	out := rec.entity()
	return &out, nil
}

func (r *alertRepo) Delete(ctx context.Context, id string) (*entity.Alert, error) {
	rec, err := removeRecord(ctx, r.t, r.undo, "alerts.delete", "alert", id)
	if err != nil {
		return nil, err
	}
	out := rec.entity()
	return &out, nil
}
