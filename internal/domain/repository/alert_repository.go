package repository

import (
	"context"

	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
)

// AlertRepository define el puerto de persistencia para Alert (DIP).
// Las alertas llegan pre-pobladas; la única transición expuesta es el reconocimiento.
type AlertRepository interface {
	GetAll(ctx context.Context) ([]entity.Alert, error)
	GetByID(ctx context.Context, id string) (*entity.Alert, error)
	GetByProductID(ctx context.Context, productID string) ([]entity.Alert, error)
	Create(ctx context.Context, alert entity.Alert) (*entity.Alert, error)
	Update(ctx context.Context, id string, patch entity.AlertPatch) (*entity.Alert, error)
	Delete(ctx context.Context, id string) (*entity.Alert, error)
}
