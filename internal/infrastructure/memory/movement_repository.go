package memory

import (
	"context"

	"github.com/jhoicas/inventario-dashboard/internal/domain"
	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
)

type movementRepo struct{ v view }

func sameMovement(m entity.StockMovement) entity.StockMovement { return m }

func (r *movementRepo) GetAll(ctx context.Context) ([]entity.StockMovement, error) {
	var out []entity.StockMovement
	err := r.v.do(ctx, func(st *state) error {
		out = st.movements.all(sameMovement)
		return nil
	})
	return out, err
}

func (r *movementRepo) GetByID(ctx context.Context, id string) (*entity.StockMovement, error) {
	var out entity.StockMovement
	err := r.v.do(ctx, func(st *state) error {
		m, ok := st.movements.get(id)
		if !ok {
			return domain.NotFound("movement", id)
		}
		out = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *movementRepo) GetByProductID(ctx context.Context, productID string) ([]entity.StockMovement, error) {
	out := []entity.StockMovement{}
	err := r.v.do(ctx, func(st *state) error {
		for _, m := range st.movements.all(sameMovement) {
			if m.ProductID == productID {
				out = append(out, m)
			}
		}
		return nil
	})
	return out, err
}

func (r *movementRepo) Create(ctx context.Context, movement entity.StockMovement) (*entity.StockMovement, error) {
	err := r.v.do(ctx, func(st *state) error {
		movement.ID = r.v.s.newID()
		if movement.Timestamp.IsZero() {
			movement.Timestamp = r.v.s.now()
		}
		st.movements.put(movement.ID, movement)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &movement, nil
}

func (r *movementRepo) Update(ctx context.Context, id string, patch entity.MovementPatch) (*entity.StockMovement, error) {
	var out entity.StockMovement
	err := r.v.do(ctx, func(st *state) error {
		current, ok := st.movements.get(id)
		if !ok {
			return domain.NotFound("movement", id)
		}
		out = patch.Apply(current)
		out.ID = id
		st.movements.put(id, out)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *movementRepo) Delete(ctx context.Context, id string) (*entity.StockMovement, error) {
	var out entity.StockMovement
	err := r.v.do(ctx, func(st *state) error {
		m, ok := st.movements.remove(id)
		if !ok {
			return domain.NotFound("movement", id)
		}
		out = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
