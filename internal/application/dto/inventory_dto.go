package dto

import "github.com/shopspring/decimal"

// AdjustStockRequest body para POST /api/products/:id/adjustments.
type AdjustStockRequest struct {
	Type     string        `json:"type"` // add | remove
	Quantity QuantityInput `json:"quantity"`
	Reason   string        `json:"reason"`
	Notes    string        `json:"notes"`
}

// AdjustStockResponse resultado del ajuste.
type AdjustStockResponse struct {
	Message       string           `json:"message"`
	Product       ProductResponse  `json:"product"`
	Movement      MovementResponse `json:"movement"`
	PreviousStock int              `json:"previousStock"`
	NewStock      int              `json:"newStock"`
	Clamped       bool             `json:"clamped"`    // la salida superaba el stock disponible
	AlertState    string           `json:"alertState"` // low_stock | out_of_stock | high_stock | ""
}

// ReorderSuggestionDTO sugerencia de reposición para un producto en banda low.
type ReorderSuggestionDTO struct {
	ProductID          string          `json:"productId"`
	SKU                string          `json:"sku"`
	ProductName        string          `json:"productName"`
	Unit               string          `json:"unit"`
	CurrentStock       int             `json:"currentStock"`
	MinStock           int             `json:"minStock"`
	MaxStock           int             `json:"maxStock"`
	SuggestedOrderQty  int             `json:"suggestedOrderQty"`  // max(maxStock - currentStock, 0)
	UnitCost           decimal.Decimal `json:"unitCost"`           // costPrice
	EstimatedOrderCost decimal.Decimal `json:"estimatedOrderCost"` // SuggestedOrderQty * UnitCost
	SupplierID         *string         `json:"supplierId"`
	SupplierName       string          `json:"supplierName"`
	LeadTimeDays       int             `json:"leadTimeDays"`
	Priority           int             `json:"priority"` // 1 = más urgente
}

// ReorderListResponse lista de reposición.
type ReorderListResponse struct {
	Total          int                    `json:"total"`
	EstimatedTotal decimal.Decimal        `json:"estimatedTotal"`
	Items          []ReorderSuggestionDTO `json:"items"`
}

// NotificationDTO notificación emitida por los casos de uso (feed de toasts).
type NotificationDTO struct {
	Level     string `json:"level"` // success | error
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}
