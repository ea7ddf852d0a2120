package repository

import "context"

// Store agrupa los cuatro repositorios de un mismo backend (memoria, PostgreSQL o remoto).
type Store interface {
	Products() ProductRepository
	Suppliers() SupplierRepository
	Movements() StockMovementRepository
	Alerts() AlertRepository
}

// TxRunner ejecuta fn con repositorios atados a una unidad transaccional:
// si fn devuelve error, ningún efecto de fn queda visible.
type TxRunner interface {
	Run(ctx context.Context, fn func(tx Store) error) error
}
