// Package analytics contiene los casos de uso de las vistas agregadas: el dashboard
// de inventario y las estadísticas rápidas de la página de inicio.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/inventario-dashboard/internal/domain/inventory"
	"github.com/jhoicas/inventario-dashboard/internal/domain/repository"
)

const dashboardRecentMovements = 5 // movimientos en el widget "recientes"

// DashboardUseCase calcula las métricas derivadas sobre las colecciones completas.
// Solo lee; no modifica estado.
type DashboardUseCase struct {
	products  repository.ProductRepository
	movements repository.StockMovementRepository
	alerts    repository.AlertRepository
	now       func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(products repository.ProductRepository, movements repository.StockMovementRepository, alerts repository.AlertRepository) *DashboardUseCase {
	return &DashboardUseCase{products: products, movements: movements, alerts: alerts, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *DashboardUseCase) WithClock(now func() time.Time) *DashboardUseCase {
	uc.now = now
	return uc
}

type productsResult struct {
	items []entity.Product
	err   error
}

type movementsResult struct {
	items []entity.StockMovement
	err   error
}

type alertsResult struct {
	items []entity.Alert
	err   error
}

func (uc *DashboardUseCase) fetchProducts(ctx context.Context) <-chan productsResult {
	ch := make(chan productsResult, 1)
	go func() {
		items, err := uc.products.GetAll(ctx)
		ch <- productsResult{items, err}
	}()
	return ch
}

func (uc *DashboardUseCase) fetchMovements(ctx context.Context) <-chan movementsResult {
	ch := make(chan movementsResult, 1)
	go func() {
		items, err := uc.movements.GetAll(ctx)
		ch <- movementsResult{items, err}
	}()
	return ch
}

func (uc *DashboardUseCase) fetchAlerts(ctx context.Context) <-chan alertsResult {
	ch := make(chan alertsResult, 1)
	go func() {
		items, err := uc.alerts.GetAll(ctx)
		ch <- alertsResult{items, err}
	}()
	return ch
}

// GetSummary construye el DashboardSummaryDTO.
//
// Tres lecturas en paralelo, unidas antes de calcular:
//  1. productos    → totalValue, lowStockItems, totalProducts
//  2. movimientos  → todayMovements, recentMovements
//  3. alertas      → alertas activas por prioridad
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := uc.now()

	productsCh := uc.fetchProducts(ctx)
	movementsCh := uc.fetchMovements(ctx)
	alertsCh := uc.fetchAlerts(ctx)

	products := <-productsCh
	movements := <-movementsCh
	alerts := <-alertsCh

	if products.err != nil {
		return nil, fmt.Errorf("dashboard: productos: %w", products.err)
	}
	if movements.err != nil {
		return nil, fmt.Errorf("dashboard: movimientos: %w", movements.err)
	}
	if alerts.err != nil {
		return nil, fmt.Errorf("dashboard: alertas: %w", alerts.err)
	}

	// ── Derivados ──────────────────────────────────────────────────────────────
	recent := inventory.RecentMovements(movements.items, dashboardRecentMovements)
	active := inventory.ActiveAlerts(alerts.items)
	inventory.SortAlerts(active)

	return &dto.DashboardSummaryDTO{
		TotalValue:      inventory.TotalStockValue(products.items),
		LowStockItems:   inventory.LowStockCount(products.items),
		TodayMovements:  inventory.TodaysMovementCount(movements.items, now),
		TotalProducts:   len(products.items),
		DateLabel:       monthLabel(now),
		RecentMovements: dto.NewMovementList(recent, products.items).Items,
		LowStockAlerts:  dto.NewAlertResponses(active, products.items),
	}, nil
}

// GetQuickStats estadísticas de la página de inicio: productos y alertas en paralelo.
func (uc *DashboardUseCase) GetQuickStats(ctx context.Context) (*dto.QuickStatsDTO, error) {
	productsCh := uc.fetchProducts(ctx)
	alertsCh := uc.fetchAlerts(ctx)
	products := <-productsCh
	alerts := <-alertsCh

	if products.err != nil {
		return nil, fmt.Errorf("quick stats: productos: %w", products.err)
	}
	if alerts.err != nil {
		return nil, fmt.Errorf("quick stats: alertas: %w", alerts.err)
	}
	return &dto.QuickStatsDTO{
		TotalProducts: len(products.items),
		TotalValue:    inventory.TotalStockValue(products.items),
		LowStockItems: inventory.LowStockCount(products.items),
		ActiveAlerts:  len(inventory.ActiveAlerts(alerts.items)),
	}, nil
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Febrero 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
