// Package fixtures datos iniciales del dashboard (JSON camelCase embebido).
package fixtures

import (
	"embed"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
)

//go:embed data/*.json
var dataFS embed.FS

// Data colecciones iniciales.
type Data struct {
	Products  []entity.Product
	Suppliers []entity.Supplier
	Movements []entity.StockMovement
	Alerts    []entity.Alert
}

// ── Registros JSON (camelCase) ──

type productJSON struct {
	ID           string          `json:"id"`
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
	LastUpdated  time.Time       `json:"lastUpdated"`
}

type supplierJSON struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ContactName string    `json:"contactName"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address"`
	LeadTime    int       `json:"leadTime"`
	CreatedAt   time.Time `json:"createdAt"`
}

type movementJSON struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	Type      string    `json:"type"`
	Quantity  int       `json:"quantity"`
	Reason    string    `json:"reason"`
	Notes     string    `json:"notes"`
	Timestamp time.Time `json:"timestamp"`
	UserID    string    `json:"userId"`
}

type alertJSON struct {
	ID             string     `json:"id"`
	ProductID      string     `json:"productId"`
	Type           string     `json:"type"`
	Threshold      int        `json:"threshold"`
	CurrentLevel   int        `json:"currentLevel"`
	Triggered      bool       `json:"triggered"`
	AcknowledgedAt *time.Time `json:"acknowledgedAt"`
	Timestamp      time.Time  `json:"timestamp"`
}

// Default datos embebidos en el binario.
func Default() (*Data, error) {
	files := map[string][]byte{}
	for _, name := range []string{"products", "suppliers", "movements", "alerts"} {
		b, err := dataFS.ReadFile("data/" + name + ".json")
		if err != nil {
			return nil, fmt.Errorf("fixtures: %w", err)
		}
		files[name] = b
	}
	return Parse(files["products"], files["suppliers"], files["movements"], files["alerts"])
}

// Parse decodifica las cuatro colecciones. Un slice vacío deja la colección vacía.
func Parse(products, suppliers, movements, alerts []byte) (*Data, error) {
	var (
		ps []productJSON
		ss []supplierJSON
		ms []movementJSON
		as []alertJSON
	)
	for _, d := range []struct {
		name string
		data []byte
		dst  any
	}{
		{"products", products, &ps},
		{"suppliers", suppliers, &ss},
		{"movements", movements, &ms},
		{"alerts", alerts, &as},
	} {
		if len(d.data) == 0 {
			continue
		}
		if err := json.Unmarshal(d.data, d.dst); err != nil {
			return nil, fmt.Errorf("fixtures %s: %w", d.name, err)
		}
	}

	f := &Data{}
	for _, p := range ps {
		f.Products = append(f.Products, entity.Product{
			ID: p.ID, Name: p.Name, SKU: p.SKU, Description: p.Description, Category: p.Category,
			CostPrice: p.CostPrice, SalePrice: p.SalePrice,
			CurrentStock: p.CurrentStock, MinStock: p.MinStock, MaxStock: p.MaxStock,
			Unit: p.Unit, SupplierID: p.SupplierID, LastUpdated: p.LastUpdated,
		})
	}
	for _, s := range ss {
		f.Suppliers = append(f.Suppliers, entity.Supplier(s))
	}
	for _, m := range ms {
		f.Movements = append(f.Movements, entity.StockMovement{
			ID: m.ID, ProductID: m.ProductID, Type: entity.MovementType(m.Type), Quantity: m.Quantity,
			Reason: m.Reason, Notes: m.Notes, Timestamp: m.Timestamp, UserID: m.UserID,
		})
	}
	for _, a := range as {
		f.Alerts = append(f.Alerts, entity.Alert{
			ID: a.ID, ProductID: a.ProductID, Type: entity.AlertType(a.Type), Threshold: a.Threshold,
			CurrentLevel: a.CurrentLevel, Triggered: a.Triggered, AcknowledgedAt: a.AcknowledgedAt,
			Timestamp: a.Timestamp,
		})
	}
	return f, nil
}
