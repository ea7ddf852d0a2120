package dto

import (
	"time"

	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/inventario-dashboard/internal/domain/search"
)

// CreateMovementRequest entrada directa al store de movimientos (sin ajustar el producto).
type CreateMovementRequest struct {
	ProductID string     `json:"productId"`
	Type      string     `json:"type"`
	Quantity  int        `json:"quantity"`
	Reason    string     `json:"reason"`
	Notes     string     `json:"notes"`
	Timestamp *time.Time `json:"timestamp"`
	UserID    string     `json:"userId"`
}

// UpdateMovementRequest merge superficial de un movimiento.
type UpdateMovementRequest struct {
	ProductID *string    `json:"productId"`
	Type      *string    `json:"type"`
	Quantity  *int       `json:"quantity"`
	Reason    *string    `json:"reason"`
	Notes     *string    `json:"notes"`
	Timestamp *time.Time `json:"timestamp"`
	UserID    *string    `json:"userId"`
}

// MovementResponse salida de un movimiento con el producto resuelto para la tabla.
type MovementResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"productId"`
	ProductName string    `json:"productName"`
	ProductSKU  string    `json:"productSku"`
	Type        string    `json:"type"`
	Quantity    int       `json:"quantity"`
	Reason      string    `json:"reason"`
	Notes       string    `json:"notes"`
	Timestamp   time.Time `json:"timestamp"`
	UserID      string    `json:"userId"`
}

// MovementListResponse lista filtrada de movimientos (más reciente primero).
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Total int                `json:"total"`
}

// NewMovementResponse mapea la entidad; byID puede ser nil (el producto queda sin resolver).
func NewMovementResponse(m entity.StockMovement, byID map[string]entity.Product) MovementResponse {
	name, sku := search.ResolveProduct(byID, m.ProductID)
	return MovementResponse{
		ID:          m.ID,
		ProductID:   m.ProductID,
		ProductName: name,
		ProductSKU:  sku,
		Type:        string(m.Type),
		Quantity:    m.Quantity,
		Reason:      m.Reason,
		Notes:       m.Notes,
		Timestamp:   m.Timestamp,
		UserID:      m.UserID,
	}
}

// NewMovementList mapea una lista contra el índice de productos.
func NewMovementList(movements []entity.StockMovement, products []entity.Product) *MovementListResponse {
	byID := IndexProducts(products)
	items := make([]MovementResponse, 0, len(movements))
	for _, m := range movements {
		items = append(items, NewMovementResponse(m, byID))
	}
	return &MovementListResponse{Items: items, Total: len(items)}
}

// IndexProducts índice id → producto.
func IndexProducts(products []entity.Product) map[string]entity.Product {
	byID := make(map[string]entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return byID
}
