package dto

import (
	"time"

	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/inventario-dashboard/internal/domain/inventory"
)

// CreateAlertRequest entrada para registrar una alerta (la produce un proceso externo).
type CreateAlertRequest struct {
	ProductID    string     `json:"productId"`
	Type         string     `json:"type"`
	Threshold    int        `json:"threshold"`
	CurrentLevel int        `json:"currentLevel"`
	Triggered    bool       `json:"triggered"`
	Timestamp    *time.Time `json:"timestamp"`
}

// UpdateAlertRequest merge superficial de una alerta.
type UpdateAlertRequest struct {
	Type           *string    `json:"type"`
	Threshold      *int       `json:"threshold"`
	CurrentLevel   *int       `json:"currentLevel"`
	Triggered      *bool      `json:"triggered"`
	AcknowledgedAt *time.Time `json:"acknowledgedAt"`
}

// AlertProductSummary estado vivo del producto de la alerta, distinto de la instantánea.
type AlertProductSummary struct {
	Name         string `json:"name"`
	SKU          string `json:"sku"`
	Unit         string `json:"unit"`
	CurrentStock int    `json:"currentStock"`
	MaxStock     int    `json:"maxStock"`
	StockStatus  string `json:"stockStatus"`
	LiveState    string `json:"liveState"`
}

// AlertResponse salida de una alerta con su prioridad.
type AlertResponse struct {
	ID              string               `json:"id"`
	ProductID       string               `json:"productId"`
	Type            string               `json:"type"`
	Threshold       int                  `json:"threshold"`
	CurrentLevel    int                  `json:"currentLevel"`
	Triggered       bool                 `json:"triggered"`
	AcknowledgedAt  *time.Time           `json:"acknowledgedAt"`
	Timestamp       time.Time            `json:"timestamp"`
	Active          bool                 `json:"active"`
	Priority        string               `json:"priority"`
	LevelPercentage *float64             `json:"levelPercentage,omitempty"`
	Product         *AlertProductSummary `json:"product,omitempty"`
}

// AlertCounts contadores de las pestañas.
type AlertCounts struct {
	Total        int `json:"total"`
	Active       int `json:"active"`
	Acknowledged int `json:"acknowledged"`
}

// AlertListResponse alertas de una pestaña ordenadas por prioridad.
type AlertListResponse struct {
	Tab    string          `json:"tab"`
	Items  []AlertResponse `json:"items"`
	Counts AlertCounts     `json:"counts"`
}

// NewAlertResponse mapea la alerta; si el producto existe se adjunta su estado vivo
// y el porcentaje del nivel registrado respecto al máximo actual.
func NewAlertResponse(a entity.Alert, byID map[string]entity.Product) AlertResponse {
	out := AlertResponse{
		ID:             a.ID,
		ProductID:      a.ProductID,
		Type:           string(a.Type),
		Threshold:      a.Threshold,
		CurrentLevel:   a.CurrentLevel,
		Triggered:      a.Triggered,
		AcknowledgedAt: a.AcknowledgedAt,
		Timestamp:      a.Timestamp,
		Active:         a.Active(),
		Priority:       string(inventory.AlertPriority(a)),
	}
	if p, ok := byID[a.ProductID]; ok {
		pct := inventory.StockLevelPercentage(a.CurrentLevel, p.MaxStock)
		out.LevelPercentage = &pct
		out.Product = &AlertProductSummary{
			Name:         p.Name,
			SKU:          p.SKU,
			Unit:         p.Unit,
			CurrentStock: p.CurrentStock,
			MaxStock:     p.MaxStock,
			StockStatus:  string(inventory.Status(p)),
			LiveState:    string(inventory.AlertStateFor(p)),
		}
	}
	return out
}

// NewAlertResponses mapea en el orden recibido.
func NewAlertResponses(alerts []entity.Alert, products []entity.Product) []AlertResponse {
	byID := IndexProducts(products)
	out := make([]AlertResponse, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, NewAlertResponse(a, byID))
	}
	return out
}
