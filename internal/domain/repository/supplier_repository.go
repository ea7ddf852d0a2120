package repository

import (
	"context"

	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
type SupplierRepository interface {
	GetAll(ctx context.Context) ([]entity.Supplier, error)
	GetByID(ctx context.Context, id string) (*entity.Supplier, error)
	Create(ctx context.Context, supplier entity.Supplier) (*entity.Supplier, error)
	Update(ctx context.Context, id string, patch entity.SupplierPatch) (*entity.Supplier, error)
	Delete(ctx context.Context, id string) (*entity.Supplier, error)
}
