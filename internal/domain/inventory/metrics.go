package inventory

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
)

// TotalStockValue Σ currentStock × salePrice. Vacío devuelve 0.
func TotalStockValue(products []entity.Product) decimal.Decimal {
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.SalePrice.Mul(decimal.NewFromInt(int64(p.CurrentStock))))
	}
	return total
}

// LowStockCount cantidad de productos con currentStock <= minStock.
func LowStockCount(products []entity.Product) int {
	n := 0
	for _, p := range products {
		if IsLowStock(p) {
			n++
		}
	}
	return n
}

// TodaysMovementCount movimientos con la misma fecha de calendario local que now
// (no es una ventana de 24h).
func TodaysMovementCount(movements []entity.StockMovement, now time.Time) int {
	y, m, d := now.Date()
	n := 0
	for _, mov := range movements {
		my, mm, md := mov.Timestamp.In(now.Location()).Date()
		if my == y && mm == m && md == d {
			n++
		}
	}
	return n
}

// SupplierMetrics agregados de los productos de un proveedor.
type SupplierMetrics struct {
	TotalProducts    int
	TotalValue       decimal.Decimal
	LowStockProducts int
}

// SupplierMetricsFor calcula los agregados restringidos a los productos con ese supplierID.
func SupplierMetricsFor(supplierID string, products []entity.Product) SupplierMetrics {
	out := SupplierMetrics{TotalValue: decimal.Zero}
	for _, p := range products {
		if !p.HasSupplier(supplierID) {
			continue
		}
		out.TotalProducts++
		out.TotalValue = out.TotalValue.Add(p.SalePrice.Mul(decimal.NewFromInt(int64(p.CurrentStock))))
		if IsLowStock(p) {
			out.LowStockProducts++
		}
	}
	return out
}

// RecentMovements los n movimientos más recientes, del más nuevo al más viejo.
// No modifica el slice de entrada.
func RecentMovements(movements []entity.StockMovement, n int) []entity.StockMovement {
	sorted := make([]entity.StockMovement, len(movements))
	copy(sorted, movements)
	SortMovementsNewestFirst(sorted)
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// SortMovementsNewestFirst ordena in-place por Timestamp descendente (estable).
func SortMovementsNewestFirst(movements []entity.StockMovement) {
	sort.SliceStable(movements, func(i, j int) bool {
		return movements[i].Timestamp.After(movements[j].Timestamp)
	})
}
