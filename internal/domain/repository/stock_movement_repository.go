package repository

import (
	"context"

	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
)

// StockMovementRepository define el puerto de persistencia para movimientos de stock (DIP).
type StockMovementRepository interface {
	GetAll(ctx context.Context) ([]entity.StockMovement, error)
	GetByID(ctx context.Context, id string) (*entity.StockMovement, error)
	GetByProductID(ctx context.Context, productID string) ([]entity.StockMovement, error)
	Create(ctx context.Context, movement entity.StockMovement) (*entity.StockMovement, error)
	Update(ctx context.Context, id string, patch entity.MovementPatch) (*entity.StockMovement, error)
	Delete(ctx context.Context, id string) (*entity.StockMovement, error)
}
