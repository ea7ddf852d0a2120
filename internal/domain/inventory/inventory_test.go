package inventory_test

import (
	"math"
	"strconv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-dashboard/internal/domain"
	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/inventario-dashboard/internal/domain/inventory"
)

func product(stock, minStock, maxStock int, price string) entity.Product {
	return entity.Product{
		CurrentStock: stock,
		MinStock:     minStock,
		MaxStock:     maxStock,
		SalePrice:    decimal.RequireFromString(price),
	}
}

func strPtr(s string) *string { return &s }

// ──────────────────────────────────────────────────────────────────────────────
// Banda de stock
// ──────────────────────────────────────────────────────────────────────────────

func TestStatus_Bandas(t *testing.T) {
	cases := []struct {
		name string
		p    entity.Product
		want inventory.StockStatus
	}{
		{"bajo el mínimo", product(2, 5, 50, "1"), inventory.StatusLow},
		{"igual al mínimo", product(5, 5, 50, "1"), inventory.StatusLow},
		{"entre umbrales", product(20, 5, 50, "1"), inventory.StatusNormal},
		{"igual al máximo", product(50, 5, 50, "1"), inventory.StatusHigh},
		{"sobre el máximo", product(80, 5, 50, "1"), inventory.StatusHigh},
		{"min == max == stock gana low", product(10, 10, 10, "1"), inventory.StatusLow},
		{"umbrales invertidos", product(7, 10, 3, "1"), inventory.StatusLow},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, inventory.Status(tc.p))
		})
	}
}

func TestStatus_SiempreUnaBanda(t *testing.T) {
	valid := map[inventory.StockStatus]bool{
		inventory.StatusLow: true, inventory.StatusNormal: true, inventory.StatusHigh: true,
	}
	for stock := 0; stock <= 12; stock++ {
		for minStock := 0; minStock <= 6; minStock++ {
			for maxStock := 0; maxStock <= 12; maxStock++ {
				s := inventory.Status(product(stock, minStock, maxStock, "0"))
				require.True(t, valid[s], "banda inválida %q", s)
			}
		}
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Agregados
// ──────────────────────────────────────────────────────────────────────────────

func TestTotalStockValue(t *testing.T) {
	products := []entity.Product{
		product(3, 0, 10, "19.99"),
		product(10, 0, 10, "0.10"),
		product(0, 0, 10, "500"),
	}
	assert.True(t, decimal.RequireFromString("60.97").Equal(inventory.TotalStockValue(products)))
	assert.True(t, inventory.TotalStockValue(nil).IsZero(), "sin productos el valor es 0")
}

func TestLowStockCount(t *testing.T) {
	products := []entity.Product{
		product(0, 5, 50, "1"),
		product(5, 5, 50, "1"),
		product(6, 5, 50, "1"),
		product(100, 5, 50, "1"),
	}
	assert.Equal(t, 2, inventory.LowStockCount(products))
	assert.Equal(t, 0, inventory.LowStockCount(nil))
}

func TestTodaysMovementCount_FechaDeCalendario(t *testing.T) {
	loc := time.FixedZone("COT", -5*3600)
	now := time.Date(2026, 3, 10, 0, 30, 0, 0, loc)
	movements := []entity.StockMovement{
		{Timestamp: time.Date(2026, 3, 10, 0, 5, 0, 0, loc)},
		{Timestamp: time.Date(2026, 3, 10, 23, 59, 0, 0, loc)},
		// 23:00 del día anterior: dentro de 24h pero otra fecha
		{Timestamp: time.Date(2026, 3, 9, 23, 0, 0, 0, loc)},
		// mismo instante expresado en UTC (05:10 UTC = 00:10 COT del día 10)
		{Timestamp: time.Date(2026, 3, 10, 5, 10, 0, 0, time.UTC)},
	}
	assert.Equal(t, 3, inventory.TodaysMovementCount(movements, now))
}

func TestSupplierMetricsFor(t *testing.T) {
	p1 := product(2, 5, 50, "10")
	p1.SupplierID = strPtr("s1")
	p2 := product(20, 5, 50, "1.5")
	p2.SupplierID = strPtr("s1")
	p3 := product(1, 5, 50, "99")
	p3.SupplierID = strPtr("s2")
	p4 := product(1, 5, 50, "99")

	got := inventory.SupplierMetricsFor("s1", []entity.Product{p1, p2, p3, p4})
	assert.Equal(t, 2, got.TotalProducts)
	assert.True(t, decimal.NewFromInt(50).Equal(got.TotalValue))
	assert.Equal(t, 1, got.LowStockProducts)
}

func TestSupplierMetricsFor_SinProductos(t *testing.T) {
	got := inventory.SupplierMetricsFor("nadie", []entity.Product{product(1, 5, 50, "3")})
	assert.Equal(t, 0, got.TotalProducts)
	assert.True(t, got.TotalValue.IsZero())
	assert.Equal(t, 0, got.LowStockProducts)
}

func TestRecentMovements_NoModificaEntrada(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	in := make([]entity.StockMovement, 0, 7)
	for i := 0; i < 7; i++ {
		in = append(in, entity.StockMovement{ID: string(rune('a' + i)), Timestamp: base.Add(time.Duration(i) * time.Hour)})
	}
	got := inventory.RecentMovements(in, 5)
	require.Len(t, got, 5)
	assert.Equal(t, "g", got[0].ID)
	assert.Equal(t, "c", got[4].ID)
	assert.Equal(t, "a", in[0].ID, "el slice de entrada no se reordena")
}

// ──────────────────────────────────────────────────────────────────────────────
// Prioridad de alertas
// ──────────────────────────────────────────────────────────────────────────────

func TestAlertPriority(t *testing.T) {
	assert.Equal(t, inventory.PriorityCritical, inventory.AlertPriority(entity.Alert{Type: entity.AlertOutOfStock, CurrentLevel: 4}))
	assert.Equal(t, inventory.PriorityCritical, inventory.AlertPriority(entity.Alert{Type: entity.AlertLowStock, CurrentLevel: 0}))
	assert.Equal(t, inventory.PriorityHigh, inventory.AlertPriority(entity.Alert{Type: entity.AlertLowStock, CurrentLevel: 3}))
	assert.Equal(t, inventory.PriorityMedium, inventory.AlertPriority(entity.Alert{Type: entity.AlertHighStock, CurrentLevel: 0}))
}

func TestSortAlerts_PrioridadLuegoMasReciente(t *testing.T) {
	t0 := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	alerts := []entity.Alert{
		{ID: "low0", Type: entity.AlertLowStock, CurrentLevel: 0, Timestamp: t0},
		{ID: "high", Type: entity.AlertHighStock, CurrentLevel: 120, Timestamp: t0.Add(3 * time.Hour)},
		{ID: "out", Type: entity.AlertOutOfStock, CurrentLevel: 0, Timestamp: t0.Add(time.Hour)},
	}
	inventory.SortAlerts(alerts)
	ids := []string{alerts[0].ID, alerts[1].ID, alerts[2].ID}
	assert.Equal(t, []string{"out", "low0", "high"}, ids)
}

func TestActiveAlerts(t *testing.T) {
	ack := time.Now()
	alerts := []entity.Alert{
		{ID: "a", Triggered: true},
		{ID: "b", Triggered: true, AcknowledgedAt: &ack},
		{ID: "c", Triggered: false},
	}
	got := inventory.ActiveAlerts(alerts)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Porcentaje de nivel y estado de alerta vivo
// ──────────────────────────────────────────────────────────────────────────────

func TestStockLevelPercentage(t *testing.T) {
	assert.InDelta(t, 25.0, inventory.StockLevelPercentage(25, 100), 1e-9)
	assert.InDelta(t, 100.0, inventory.StockLevelPercentage(150, 100), 1e-9)
	assert.InDelta(t, 0.0, inventory.StockLevelPercentage(0, 100), 1e-9)
	// maxStock == 0: se reporta 100% sin dividir por cero
	assert.InDelta(t, 100.0, inventory.StockLevelPercentage(0, 0), 1e-9)
	assert.InDelta(t, 100.0, inventory.StockLevelPercentage(7, 0), 1e-9)
}

func TestAlertStateFor(t *testing.T) {
	assert.Equal(t, entity.AlertOutOfStock, inventory.AlertStateFor(product(0, 5, 50, "1")))
	assert.Equal(t, entity.AlertLowStock, inventory.AlertStateFor(product(4, 5, 50, "1")))
	assert.Equal(t, entity.AlertHighStock, inventory.AlertStateFor(product(60, 5, 50, "1")))
	assert.Equal(t, entity.AlertType(""), inventory.AlertStateFor(product(20, 5, 50, "1")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Ajuste
// ──────────────────────────────────────────────────────────────────────────────

func TestParseQuantity(t *testing.T) {
	q, err := inventory.ParseQuantity(" 12 ")
	require.NoError(t, err)
	assert.Equal(t, 12, q)

	for _, raw := range []string{"", "0", "-3", "abc", "1.5", "5abc"} {
		_, err := inventory.ParseQuantity(raw)
		require.Error(t, err, "entrada %q", raw)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
}

func TestParseQuantity_Tope(t *testing.T) {
	q, err := inventory.ParseQuantity(strconv.Itoa(inventory.MaxStockLevel))
	require.NoError(t, err)
	assert.Equal(t, inventory.MaxStockLevel, q)

	for _, raw := range []string{strconv.Itoa(inventory.MaxStockLevel + 1), strconv.Itoa(math.MaxInt - 5), "99999999999999999999999"} {
		_, err := inventory.ParseQuantity(raw)
		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve, "entrada %q", raw)
		assert.Equal(t, "quantity", ve.Field)
		assert.Equal(t, "la cantidad supera el máximo admitido", ve.Message)
	}
}

func TestApplyMovement(t *testing.T) {
	next, clamped, err := inventory.ApplyMovement(10, entity.MovementAdd, 5)
	require.NoError(t, err)
	assert.Equal(t, 15, next)
	assert.False(t, clamped)

	next, clamped, err = inventory.ApplyMovement(3, entity.MovementRemove, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, next, "la salida tiene piso en cero")
	assert.True(t, clamped)

	next, clamped, err = inventory.ApplyMovement(3, entity.MovementRemove, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, next)
	assert.False(t, clamped)
}

func TestApplyMovement_EntradaNoDesborda(t *testing.T) {
	next, _, err := inventory.ApplyMovement(inventory.MaxStockLevel-5, entity.MovementAdd, 5)
	require.NoError(t, err)
	assert.Equal(t, inventory.MaxStockLevel, next)

	next, _, err = inventory.ApplyMovement(10, entity.MovementAdd, inventory.MaxStockLevel)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, 10, next, "el stock no cambia")
}
