package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Métricas derivadas de productos, movimientos y alertas cargados en paralelo.
type DashboardSummaryDTO struct {
	TotalValue     decimal.Decimal `json:"totalValue"`     // Σ currentStock × salePrice
	LowStockItems  int             `json:"lowStockItems"`  // currentStock <= minStock
	TodayMovements int             `json:"todayMovements"` // misma fecha de calendario local
	TotalProducts  int             `json:"totalProducts"`
	DateLabel      string          `json:"dateLabel"` // ej. "Febrero 2026"

	// Últimos 5 movimientos, del más reciente al más viejo
	RecentMovements []MovementResponse `json:"recentMovements"`

	// Alertas activas ordenadas por prioridad
	LowStockAlerts []AlertResponse `json:"lowStockAlerts"`
}

// QuickStatsDTO respuesta de GET /api/dashboard/quick-stats (página de inicio).
type QuickStatsDTO struct {
	TotalProducts int             `json:"totalProducts"`
	TotalValue    decimal.Decimal `json:"totalValue"`
	LowStockItems int             `json:"lowStockItems"`
	ActiveAlerts  int             `json:"activeAlerts"`
}
