package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/inventario-dashboard/internal/domain/inventory"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name         string          `json:"name"`
	SKU          string          `json:"sku"`
	Description  string          `json:"description"`
	Category     string          `json:"category"`
	CostPrice    decimal.Decimal `json:"costPrice"`
	SalePrice    decimal.Decimal `json:"salePrice"`
	CurrentStock int             `json:"currentStock"`
	MinStock     int             `json:"minStock"`
	MaxStock     int             `json:"maxStock"`
	Unit         string          `json:"unit"`
	SupplierID   *string         `json:"supplierId"`
}

// UpdateProductRequest entrada para el merge superficial de un producto. SupplierID "" lo desvincula.
type UpdateProductRequest struct {
	Name         *string          `json:"name"`
	SKU          *string          `json:"sku"`
	Description  *string          `json:"description"`
	Category     *string          `json:"category"`
	CostPrice    *decimal.Decimal `json:"costPrice"`
	SalePrice    *decimal.Decimal `json:"salePrice"`
	CurrentStock *int             `json:"currentStock"`
	MinStock     *int             `json:"minStock"`
	MaxStock     *int             `json:"maxStock"`
	Unit         *string          `json:"unit"`
	SupplierID   *string          `json:"supplierId"`
}

// ProductResponse salida de un producto con su banda de stock derivada.
type ProductResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	SKU             string          `json:"sku"`
	Description     string          `json:"description"`
	Category        string          `json:"category"`
	CostPrice       decimal.Decimal `json:"costPrice"`
	SalePrice       decimal.Decimal `json:"salePrice"`
	CurrentStock    int             `json:"currentStock"`
	MinStock        int             `json:"minStock"`
	MaxStock        int             `json:"maxStock"`
	Unit            string          `json:"unit"`
	SupplierID      *string         `json:"supplierId"`
	LastUpdated     time.Time       `json:"lastUpdated"`
	StockStatus     string          `json:"stockStatus"`
	StockPercentage float64         `json:"stockPercentage"`
}

// ProductListResponse lista filtrada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}

// NewProductResponse mapea la entidad a la salida HTTP.
func NewProductResponse(p entity.Product) ProductResponse {
	return ProductResponse{
		ID:              p.ID,
		Name:            p.Name,
		SKU:             p.SKU,
		Description:     p.Description,
		Category:        p.Category,
		CostPrice:       p.CostPrice,
		SalePrice:       p.SalePrice,
		CurrentStock:    p.CurrentStock,
		MinStock:        p.MinStock,
		MaxStock:        p.MaxStock,
		Unit:            p.Unit,
		SupplierID:      p.SupplierID,
		LastUpdated:     p.LastUpdated,
		StockStatus:     string(inventory.Status(p)),
		StockPercentage: inventory.StockLevelPercentage(p.CurrentStock, p.MaxStock),
	}
}

// NewProductList mapea una lista completa.
func NewProductList(products []entity.Product) *ProductListResponse {
	items := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, NewProductResponse(p))
	}
	return &ProductListResponse{Items: items, Total: len(items)}
}
