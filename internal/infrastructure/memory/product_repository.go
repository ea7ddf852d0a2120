package memory

import (
	"context"

	"github.com/jhoicas/inventario-dashboard/internal/domain"
	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
)

type productRepo struct{ v view }

func cloneProduct(p entity.Product) entity.Product { return p.Clone() }

func (r *productRepo) GetAll(ctx context.Context) ([]entity.Product, error) {
	var out []entity.Product
	err := r.v.do(ctx, func(st *state) error {
		out = st.products.all(cloneProduct)
		return nil
	})
	return out, err
}

func (r *productRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	var out entity.Product
	err := r.v.do(ctx, func(st *state) error {
		p, ok := st.products.get(id)
		if !ok {
			return domain.NotFound("product", id)
		}
		out = p.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetForUpdate igual que GetByID: dentro de Run el mutex del store ya serializa la transacción.
func (r *productRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *productRepo) Create(ctx context.Context, product entity.Product) (*entity.Product, error) {
	var out entity.Product
	err := r.v.do(ctx, func(st *state) error {
		p := product.Clone()
		p.ID = r.v.s.newID()
		p.LastUpdated = r.v.s.now()
		st.products.put(p.ID, p)
		out = p.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *productRepo) Update(ctx context.Context, id string, patch entity.ProductPatch) (*entity.Product, error) {
	var out entity.Product
	err := r.v.do(ctx, func(st *state) error {
		current, ok := st.products.get(id)
		if !ok {
			return domain.NotFound("product", id)
		}
		next := patch.Apply(current.Clone())
		next.ID = id
		if patch.LastUpdated == nil {
			next.LastUpdated = r.v.s.now()
		}
		st.products.put(id, next)
		out = next.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *productRepo) Delete(ctx context.Context, id string) (*entity.Product, error) {
	var out entity.Product
	err := r.v.do(ctx, func(st *state) error {
		p, ok := st.products.remove(id)
		if !ok {
			return domain.NotFound("product", id)
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
