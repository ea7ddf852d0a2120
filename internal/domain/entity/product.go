package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un artículo del inventario con su stock actual y umbrales min/max.
// No hay orden forzado entre MinStock y MaxStock; la banda de stock se deriva de ambos.
type Product struct {
	ID           string
	Name         string
	SKU          string // único, usado para búsqueda y visualización
	Description  string
	Category     string
	CostPrice    decimal.Decimal
	SalePrice    decimal.Decimal
	CurrentStock int
	MinStock     int
	MaxStock     int
	Unit         string  // etiqueta, ej. "pcs"
	SupplierID   *string // referencia débil a Supplier, sin integridad referencial
	LastUpdated  time.Time
}

// ProductPatch campos opcionales para el merge superficial de Update (nil = no cambia).
type ProductPatch struct {
	Name         *string
	SKU          *string
	Description  *string
	Category     *string
	CostPrice    *decimal.Decimal
	SalePrice    *decimal.Decimal
	CurrentStock *int
	MinStock     *int
	MaxStock     *int
	Unit         *string
	SupplierID   **string // puntero a nil limpia el proveedor
	LastUpdated  *time.Time
}

// Apply aplica el patch sobre una copia del producto y la devuelve.
func (p ProductPatch) Apply(prod Product) Product {
	if p.Name != nil {
		prod.Name = *p.Name
	}
	if p.SKU != nil {
		prod.SKU = *p.SKU
	}
	if p.Description != nil {
		prod.Description = *p.Description
	}
	if p.Category != nil {
		prod.Category = *p.Category
	}
	if p.CostPrice != nil {
		prod.CostPrice = *p.CostPrice
	}
	if p.SalePrice != nil {
		prod.SalePrice = *p.SalePrice
	}
	if p.CurrentStock != nil {
		prod.CurrentStock = *p.CurrentStock
	}
	if p.MinStock != nil {
		prod.MinStock = *p.MinStock
	}
	if p.MaxStock != nil {
		prod.MaxStock = *p.MaxStock
	}
	if p.Unit != nil {
		prod.Unit = *p.Unit
	}
	if p.SupplierID != nil {
		prod.SupplierID = cloneString(*p.SupplierID)
	}
	if p.LastUpdated != nil {
		prod.LastUpdated = *p.LastUpdated
	}
	return prod
}

// Clone devuelve una copia profunda (SupplierID incluido).
func (p Product) Clone() Product {
	p.SupplierID = cloneString(p.SupplierID)
	return p
}

// HasSupplier indica si el producto referencia al proveedor dado.
func (p Product) HasSupplier(supplierID string) bool {
	return p.SupplierID != nil && *p.SupplierID == supplierID
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
