package repository

import (
	"context"

	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Las lecturas devuelven copias; Update hace merge superficial y re-estampa LastUpdated.
type ProductRepository interface {
	GetAll(ctx context.Context) ([]entity.Product, error)
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// GetForUpdate como GetByID, pero bloquea el producto hasta el fin de la transacción
	// (SELECT FOR UPDATE). Fuera de TxRunner.Run equivale a GetByID.
	GetForUpdate(ctx context.Context, id string) (*entity.Product, error)
	Create(ctx context.Context, product entity.Product) (*entity.Product, error)
	Update(ctx context.Context, id string, patch entity.ProductPatch) (*entity.Product, error)
	Delete(ctx context.Context, id string) (*entity.Product, error)
}
