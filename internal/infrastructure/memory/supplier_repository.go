package memory

import (
	"context"

	"github.com/jhoicas/inventario-dashboard/internal/domain"
	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
)

type supplierRepo struct{ v view }

func sameSupplier(s entity.Supplier) entity.Supplier { return s }

func (r *supplierRepo) GetAll(ctx context.Context) ([]entity.Supplier, error) {
	var out []entity.Supplier
	err := r.v.do(ctx, func(st *state) error {
		out = st.suppliers.all(sameSupplier)
		return nil
	})
	return out, err
}

func (r *supplierRepo) GetByID(ctx context.Context, id string) (*entity.Supplier, error) {
	var out entity.Supplier
	err := r.v.do(ctx, func(st *state) error {
		s, ok := st.suppliers.get(id)
		if !ok {
			return domain.NotFound("supplier", id)
		}
		out = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *supplierRepo) Create(ctx context.Context, supplier entity.Supplier) (*entity.Supplier, error) {
	err := r.v.do(ctx, func(st *state) error {
		supplier.ID = r.v.s.newID()
		if supplier.CreatedAt.IsZero() {
			supplier.CreatedAt = r.v.s.now()
		}
		st.suppliers.put(supplier.ID, supplier)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (r *supplierRepo) Update(ctx context.Context, id string, patch entity.SupplierPatch) (*entity.Supplier, error) {
	var out entity.Supplier
	err := r.v.do(ctx, func(st *state) error {
		current, ok := st.suppliers.get(id)
		if !ok {
			return domain.NotFound("supplier", id)
		}
		out = patch.Apply(current)
		out.ID = id
		st.suppliers.put(id, out)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *supplierRepo) Delete(ctx context.Context, id string) (*entity.Supplier, error) {
	var out entity.Supplier
	err := r.v.do(ctx, func(st *state) error {
		s, ok := st.suppliers.remove(id)
		if !ok {
			return domain.NotFound("supplier", id)
		}
		out = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
