package remote

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
)

// Registros tal como viajan por la API remota (snake_case). Las columnas coinciden con
// postgres/migrations/001_init.sql; seq la asigna el servidor.

type productRecord struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	SKU          string          `json:"sku"`
	Description  string          `json:"description"`
	Category     string          `json:"category"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	SalePrice    decimal.Decimal `json:"sale_price"`
	CurrentStock int             `json:"current_stock"`
	MinStock     int             `json:"min_stock"`
	MaxStock     int             `json:"max_stock"`
	Unit         string          `json:"unit"`
	SupplierID   *string         `json:"supplier_id"`
	LastUpdated  time.Time       `json:"last_updated"`
}

func productToRecord(p entity.Product) productRecord {
	return productRecord{
		ID:           p.ID,
		Name:         p.Name,
		SKU:          p.SKU,
		Description:  p.Description,
		Category:     p.Category,
		CostPrice:    p.CostPrice,
		SalePrice:    p.SalePrice,
		CurrentStock: p.CurrentStock,
		MinStock:     p.MinStock,
		MaxStock:     p.MaxStock,
		Unit:         p.Unit,
		SupplierID:   p.SupplierID,
		LastUpdated:  p.LastUpdated.UTC(),
	}
}

func (r productRecord) entity() entity.Product {
	return entity.Product{
		ID:           r.ID,
		Name:         r.Name,
		SKU:          r.SKU,
		Description:  r.Description,
		Category:     r.Category,
		CostPrice:    r.CostPrice,
		SalePrice:    r.SalePrice,
		CurrentStock: r.CurrentStock,
		MinStock:     r.MinStock,
		MaxStock:     r.MaxStock,
		Unit:         r.Unit,
		SupplierID:   r.SupplierID,
		LastUpdated:  r.LastUpdated,
	}.Clone()
}

type supplierRecord struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ContactName string    `json:"contact_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address"`
	LeadTime    int       `json:"lead_time"`
	CreatedAt   time.Time `json:"created_at"`
}

func supplierToRecord(s entity.Supplier) supplierRecord {
	r := supplierRecord(s)
	r.CreatedAt = r.CreatedAt.UTC()
	return r
}

func (r supplierRecord) entity() entity.Supplier { return entity.Supplier(r) }

type movementRecord struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Type      string    `json:"type"`
	Quantity  int       `json:"quantity"`
	Reason    string    `json:"reason"`
	Notes     string    `json:"notes"`
	Timestamp time.Time `json:"timestamp"`
	UserID    string    `json:"user_id"`
}

func movementToRecord(m entity.StockMovement) movementRecord {
	return movementRecord{
		ID:        m.ID,
		ProductID: m.ProductID,
		Type:      string(m.Type),
		Quantity:  m.Quantity,
		Reason:    m.Reason,
		Notes:     m.Notes,
		Timestamp: m.Timestamp.UTC(),
		UserID:    m.UserID,
	}
}

func (r movementRecord) entity() entity.StockMovement {
	return entity.StockMovement{
		ID:        r.ID,
		ProductID: r.ProductID,
		Type:      entity.MovementType(r.Type),
		Quantity:  r.Quantity,
		Reason:    r.Reason,
		Notes:     r.Notes,
		Timestamp: r.Timestamp,
		UserID:    r.UserID,
	}
}

type alertRecord struct {
	ID             string     `json:"id"`
	ProductID      string     `json:"product_id"`
	Type           string     `json:"type"`
	Threshold      int        `json:"threshold"`
	CurrentLevel   int        `json:"current_level"`
	Triggered      bool       `json:"triggered"`
	AcknowledgedAt *time.Time `json:"acknowledged_at"`
	Timestamp      time.Time  `json:"timestamp"`
}

func alertToRecord(a entity.Alert) alertRecord {
	a = a.Clone()
	return alertRecord{
		ID:             a.ID,
		ProductID:      a.ProductID,
		Type:           string(a.Type),
		Threshold:      a.Threshold,
		CurrentLevel:   a.CurrentLevel,
		Triggered:      a.Triggered,
		AcknowledgedAt: a.AcknowledgedAt,
		Timestamp:      a.Timestamp.UTC(),
	}
}

func (r alertRecord) entity() entity.Alert {
	return entity.Alert{
		ID:             r.ID,
		ProductID:      r.ProductID,
		Type:           entity.AlertType(r.Type),
		Threshold:      r.Threshold,
		CurrentLevel:   r.CurrentLevel,
		Triggered:      r.Triggered,
		AcknowledgedAt: r.AcknowledgedAt,
		Timestamp:      r.Timestamp,
	}.Clone()
}
