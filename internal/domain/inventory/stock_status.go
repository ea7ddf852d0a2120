package inventory

import "github.com/jhoicas/inventario-dashboard/internal/domain/entity"

// StockStatus banda de stock de un producto respecto a sus umbrales.
type StockStatus string

const (
	StatusLow    StockStatus = "low"
	StatusNormal StockStatus = "normal"
	StatusHigh   StockStatus = "high"
)

// ParseStockStatus convierte el filtro de la UI; vacío o desconocido devuelve ok=false.
func ParseStockStatus(s string) (StockStatus, bool) {
	switch StockStatus(s) {
	case StatusLow, StatusNormal, StatusHigh:
		return StockStatus(s), true
	}
	return "", false
}

// Status clasifica el producto. low se evalúa primero: con min == max == stock el resultado es low.
func Status(p entity.Product) StockStatus {
	return StatusFor(p.CurrentStock, p.MinStock, p.MaxStock)
}

// StatusFor clasifica un nivel arbitrario con los umbrales dados.
func StatusFor(level, minStock, maxStock int) StockStatus {
	if level <= minStock {
		return StatusLow
	}
	if level >= maxStock {
		return StatusHigh
	}
	return StatusNormal
}

// IsLowStock currentStock <= minStock.
func IsLowStock(p entity.Product) bool {
	return p.CurrentStock <= p.MinStock
}

// StockLevelPercentage min(100, level/maxStock*100) para barras de nivel.
// Con maxStock <= 0 devuelve 100 (el nivel ya alcanzó el máximo configurado); niveles negativos dan 0.
func StockLevelPercentage(level, maxStock int) float64 {
	if maxStock <= 0 {
		return 100
	}
	if level <= 0 {
		return 0
	}
	pct := float64(level) / float64(maxStock) * 100
	if pct > 100 {
		return 100
	}
	return pct
}

// AlertStateFor tipo de alerta que justificaría hoy el stock vivo del producto ("" si ninguna).
// Se mantiene separado de Alert.CurrentLevel, que es una instantánea.
func AlertStateFor(p entity.Product) entity.AlertType {
	switch {
	case p.CurrentStock <= 0:
		return entity.AlertOutOfStock
	case p.CurrentStock <= p.MinStock:
		return entity.AlertLowStock
	case p.CurrentStock >= p.MaxStock:
		return entity.AlertHighStock
	}
	return ""
}
