package memory

import (
	"context"

	"github.com/jhoicas/inventario-dashboard/internal/domain"
	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
)

type alertRepo struct{ v view }

func cloneAlert(a entity.Alert) entity.Alert { return a.Clone() }

func (r *alertRepo) GetAll(ctx context.Context) ([]entity.Alert, error) {
	var out []entity.Alert
	err := r.v.do(ctx, func(st *state) error {
		out = st.alerts.all(cloneAlert)
		return nil
	})
	return out, err
}

func (r *alertRepo) GetByID(ctx context.Context, id string) (*entity.Alert, error) {
	var out entity.Alert
	err := r.v.do(ctx, func(st *state) error {
		a, ok := st.alerts.get(id)
		if !ok {
			return domain.NotFound("alert", id)
		}
		out = a.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *alertRepo) GetByProductID(ctx context.Context, productID string) ([]entity.Alert, error) {
	out := []entity.Alert{}
	err := r.v.do(ctx, func(st *state) error {
		for _, a := range st.alerts.all(cloneAlert) {
			if a.ProductID == productID {
				out = append(out, a)
			}
		}
		return nil
	})
	return out, err
}

func (r *alertRepo) Create(ctx context.Context, alert entity.Alert) (*entity.Alert, error) {
	var out entity.Alert
	err := r.v.do(ctx, func(st *state) error {
		a := alert.Clone()
		a.ID = r.v.s.newID()
		if a.Timestamp.IsZero() {
			a.Timestamp = r.v.s.now()
		}
		st.alerts.put(a.ID, a)
		out = a.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *alertRepo) Update(ctx context.Context, id string, patch entity.AlertPatch) (*entity.Alert, error) {
	var out entity.Alert
	err := r.v.do(ctx, func(st *state) error {
		current, ok := st.alerts.get(id)
		if !ok {
			return domain.NotFound("alert", id)
		}
		next := patch.Apply(current)
		next.ID = id
		st.alerts.put(id, next)
		out = next.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *alertRepo) Delete(ctx context.Context, id string) (*entity.Alert, error) {
	var out entity.Alert
	err := r.v.do(ctx, func(st *state) error {
		a, ok := st.alerts.remove(id)
		if !ok {
			return domain.NotFound("alert", id)
		}
		out = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
