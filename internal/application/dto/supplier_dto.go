package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/inventario-dashboard/internal/domain/inventory"
)

// CreateSupplierRequest entrada para crear un proveedor.
type CreateSupplierRequest struct {
	Name        string `json:"name"`
	ContactName string `json:"contactName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	LeadTime    int    `json:"leadTime"`
}

// UpdateSupplierRequest merge superficial de un proveedor.
type UpdateSupplierRequest struct {
	Name        *string `json:"name"`
	ContactName *string `json:"contactName"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	LeadTime    *int    `json:"leadTime"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ContactName string    `json:"contactName"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address"`
	LeadTime    int       `json:"leadTime"`
	CreatedAt   time.Time `json:"createdAt"`
}

// SupplierMetricsResponse agregados de los productos del proveedor.
type SupplierMetricsResponse struct {
	TotalProducts    int             `json:"totalProducts"`
	TotalValue       decimal.Decimal `json:"totalValue"`
	LowStockProducts int             `json:"lowStockProducts"`
}

// SupplierCardResponse proveedor con sus métricas (tarjeta de la grilla).
type SupplierCardResponse struct {
	SupplierResponse
	Metrics SupplierMetricsResponse `json:"metrics"`
}

// SupplierListResponse lista filtrada de proveedores.
type SupplierListResponse struct {
	Items []SupplierCardResponse `json:"items"`
	Total int                    `json:"total"`
}

// NewSupplierResponse mapea la entidad a la salida HTTP.
func NewSupplierResponse(s entity.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:          s.ID,
		Name:        s.Name,
		ContactName: s.ContactName,
		Email:       s.Email,
		Phone:       s.Phone,
		Address:     s.Address,
		LeadTime:    s.LeadTime,
		CreatedAt:   s.CreatedAt,
	}
}

// NewSupplierMetricsResponse mapea los agregados.
func NewSupplierMetricsResponse(m inventory.SupplierMetrics) SupplierMetricsResponse {
	return SupplierMetricsResponse{
		TotalProducts:    m.TotalProducts,
		TotalValue:       m.TotalValue,
		LowStockProducts: m.LowStockProducts,
	}
}
