package usecase

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/inventario-dashboard/internal/domain"
	"github.com/jhoicas/inventario-dashboard/internal/infrastructure/memory"
)

func seeded(t *testing.T) *memory.Store {
	t.Helper()
	s, err := memory.NewSeeded()
	require.NoError(t, err)
	return s
}

func strPtr(s string) *string { return &s }

// ── Productos ──

func TestProductUseCase_ListFilters(t *testing.T) {
	s := seeded(t)
	uc := NewProductUseCase(s.Products(), s.Movements(), s.Alerts())
	ctx := context.Background()

	all, err := uc.List(ctx, ProductFilter{})
	require.NoError(t, err)
	assert.Equal(t, 8, all.Total)

	low, err := uc.List(ctx, ProductFilter{Stock: "low"})
	require.NoError(t, err)
	assert.Equal(t, 4, low.Total)
	for _, p := range low.Items {
		assert.Equal(t, "low", p.StockStatus)
	}

	electronics, err := uc.List(ctx, ProductFilter{Search: "MOUSE", Category: "Electronics"})
	require.NoError(t, err)
	require.Equal(t, 1, electronics.Total)
	assert.Equal(t, "WM-001", electronics.Items[0].SKU)

	_, err = uc.List(ctx, ProductFilter{Stock: "empty"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestProductUseCase_Categories(t *testing.T) {
	s := seeded(t)
	uc := NewProductUseCase(s.Products(), s.Movements(), s.Alerts())

	cats, err := uc.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Electronics", "Furniture", "Office Supplies"}, cats)
}

func TestProductUseCase_CreateValidatesAndRejectsDuplicateSKU(t *testing.T) {
	s := seeded(t)
	uc := NewProductUseCase(s.Products(), s.Movements(), s.Alerts())
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateProductRequest{
		Name: "Desk Lamp", SKU: "DL-009", Category: "Furniture",
		CostPrice: decimal.NewFromInt(10), SalePrice: decimal.NewFromInt(25),
		CurrentStock: 5, MinStock: 2, MaxStock: 20, SupplierID: strPtr(""),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, DefaultUnit, created.Unit)
	assert.Nil(t, created.SupplierID)
	assert.Equal(t, "normal", created.StockStatus)

	_, err = uc.Create(ctx, dto.CreateProductRequest{Name: "Other", SKU: "wm-001"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.Create(ctx, dto.CreateProductRequest{Name: "Neg", SKU: "N-1", CurrentStock: -1})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = uc.Create(ctx, dto.CreateProductRequest{SKU: "X-1"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = uc.Create(ctx, dto.CreateProductRequest{Name: "Big", SKU: "B-1", MaxStock: math.MaxInt32 + 1})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestProductUseCase_UpdateAndDelete(t *testing.T) {
	s := seeded(t)
	uc := NewProductUseCase(s.Products(), s.Movements(), s.Alerts())
	ctx := context.Background()

	name := "Wireless Mouse Pro"
	updated, err := uc.Update(ctx, "1", dto.UpdateProductRequest{Name: &name, SupplierID: strPtr("")})
	require.NoError(t, err)
	assert.Equal(t, name, updated.Name)
	assert.Nil(t, updated.SupplierID)
	assert.Equal(t, 45, updated.CurrentStock)

	_, err = uc.Update(ctx, "1", dto.UpdateProductRequest{SKU: strPtr("UC-002")})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.Update(ctx, "missing", dto.UpdateProductRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	deleted, err := uc.Delete(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "1", deleted.ID)
	_, err = uc.GetByID(ctx, "1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductUseCase_MovementsAndAlerts(t *testing.T) {
	s := seeded(t)
	uc := NewProductUseCase(s.Products(), s.Movements(), s.Alerts())
	ctx := context.Background()

	movs, err := uc.Movements(ctx, "3")
	require.NoError(t, err)
	require.Equal(t, 1, movs.Total)
	assert.Equal(t, "Office Chair", movs.Items[0].ProductName)

	alerts, err := uc.Alerts(ctx, "3")
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "critical", alerts[0].Priority)

	_, err = uc.Movements(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ── Proveedores ──

func TestSupplierUseCase_ListWithMetrics(t *testing.T) {
	s := seeded(t)
	uc := NewSupplierUseCase(s.Suppliers(), s.Products())
	ctx := context.Background()

	list, err := uc.List(ctx, "techsupply")
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)
	m := list.Items[0].Metrics
	assert.Equal(t, 2, m.TotalProducts)
	assert.Equal(t, 1, m.LowStockProducts)
	assert.True(t, decimal.RequireFromString("2474.40").Equal(m.TotalValue), m.TotalValue.String())
}

func TestSupplierUseCase_MetricsWithoutProducts(t *testing.T) {
	s := seeded(t)
	uc := NewSupplierUseCase(s.Suppliers(), s.Products())
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateSupplierRequest{Name: "Nuevo", LeadTime: 3})
	require.NoError(t, err)

	m, err := uc.Metrics(ctx, created.ID)
	require.NoError(t, err)
	assert.Zero(t, m.TotalProducts)
	assert.Zero(t, m.LowStockProducts)
	assert.True(t, m.TotalValue.IsZero())

	_, err = uc.Metrics(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Create(ctx, dto.CreateSupplierRequest{Name: "  "})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// ── Movimientos ──

func TestMovementUseCase_ListNewestFirstWithFilters(t *testing.T) {
	s := seeded(t)
	uc := NewMovementUseCase(s.Movements(), s.Products())
	ctx := context.Background()

	all, err := uc.List(ctx, MovementFilter{})
	require.NoError(t, err)
	require.Equal(t, 8, all.Total)
	for i := 1; i < len(all.Items); i++ {
		assert.False(t, all.Items[i].Timestamp.After(all.Items[i-1].Timestamp))
	}

	removes, err := uc.List(ctx, MovementFilter{Type: "remove", Search: "chair"})
	require.NoError(t, err)
	require.Equal(t, 1, removes.Total)
	assert.Equal(t, "OC-003", removes.Items[0].ProductSKU)

	_, err = uc.List(ctx, MovementFilter{Type: "transfer"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestMovementUseCase_CreateDefaultsAndUnknownProduct(t *testing.T) {
	s := seeded(t)
	uc := NewMovementUseCase(s.Movements(), s.Products())
	ctx := context.Background()

	m, err := uc.Create(ctx, dto.CreateMovementRequest{ProductID: "ghost", Type: "add", Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, "manual_adjustment", m.Reason)
	assert.Equal(t, "current_user", m.UserID)
	assert.Equal(t, "Unknown Product", m.ProductName)
	assert.Equal(t, "N/A", m.ProductSKU)

	_, err = uc.Create(ctx, dto.CreateMovementRequest{ProductID: "1", Type: "add"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	reasons, err := uc.Reasons(ctx)
	require.NoError(t, err)
	assert.Contains(t, reasons, "damaged")
}

// ── Alertas ──

func TestAlertUseCase_ListActiveSortedByPriority(t *testing.T) {
	s := seeded(t)
	uc := NewAlertUseCase(s.Alerts(), s.Products())

	list, err := uc.List(context.Background(), "active")
	require.NoError(t, err)
	assert.Equal(t, "active", list.Tab)
	assert.Equal(t, dto.AlertCounts{Total: 5, Active: 4, Acknowledged: 1}, list.Counts)

	ids := make([]string, 0, len(list.Items))
	for _, a := range list.Items {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []string{"2", "1", "5", "3"}, ids)
	require.NotNil(t, list.Items[0].Product)
	assert.Equal(t, "out_of_stock", list.Items[0].Product.LiveState)

	unknown, err := uc.List(context.Background(), "bogus")
	require.NoError(t, err)
	assert.Equal(t, "all", unknown.Tab)
	assert.Len(t, unknown.Items, 5)
}

func TestAlertUseCase_AcknowledgeKeepsFirstTime(t *testing.T) {
	s := seeded(t)
	uc := NewAlertUseCase(s.Alerts(), s.Products())
	first := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return first }
	ctx := context.Background()

	a, err := uc.Acknowledge(ctx, "1")
	require.NoError(t, err)
	require.NotNil(t, a.AcknowledgedAt)
	assert.Equal(t, first, *a.AcknowledgedAt)
	assert.False(t, a.Active)

	uc.now = func() time.Time { return first.Add(time.Hour) }
	again, err := uc.Acknowledge(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, first, *again.AcknowledgedAt)

	_, err = uc.Acknowledge(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAlertUseCase_CreateRejectsUnknownType(t *testing.T) {
	s := seeded(t)
	uc := NewAlertUseCase(s.Alerts(), s.Products())

	_, err := uc.Create(context.Background(), dto.CreateAlertRequest{ProductID: "1", Type: "overflow"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
