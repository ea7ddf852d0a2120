package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-dashboard/internal/domain"
	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/inventario-dashboard/internal/domain/repository"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestNewSeeded_LoadsFixturesInOrder(t *testing.T) {
	s, err := NewSeeded()
	require.NoError(t, err)
	ctx := context.Background()

	products, err := s.Products().GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, products, 8)
	assert.Equal(t, "WM-001", products[0].SKU)
	assert.True(t, decimal.RequireFromString("24.99").Equal(products[0].SalePrice))

	alerts, err := s.Alerts().GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, alerts, 5)
	assert.NotNil(t, alerts[3].AcknowledgedAt)
}

func TestProductRepo_ReadsReturnCopies(t *testing.T) {
	s, err := NewSeeded()
	require.NoError(t, err)
	ctx := context.Background()

	p, err := s.Products().GetByID(ctx, "1")
	require.NoError(t, err)
	p.Name = "mutated"
	*p.SupplierID = "999"

	again, err := s.Products().GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Wireless Mouse", again.Name)
	assert.Equal(t, "1", *again.SupplierID)

	all, err := s.Products().GetAll(ctx)
	require.NoError(t, err)
	all[0].CurrentStock = -1
	again, err = s.Products().GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 45, again.CurrentStock)
}

func TestAlertRepo_ReadsReturnCopies(t *testing.T) {
	s, err := NewSeeded()
	require.NoError(t, err)
	ctx := context.Background()

	a, err := s.Alerts().GetByID(ctx, "4")
	require.NoError(t, err)
	original := *a.AcknowledgedAt
	*a.AcknowledgedAt = time.Time{}

	again, err := s.Alerts().GetByID(ctx, "4")
	require.NoError(t, err)
	assert.Equal(t, original, *again.AcknowledgedAt)
}

func TestCreate_AssignsIDAndStamps(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s := New(WithClock(func() time.Time { return now }))
	ctx := context.Background()

	p, err := s.Products().Create(ctx, entity.Product{Name: "Lamp", SKU: "LP-1", MaxStock: 10})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, now, p.LastUpdated)

	p2, err := s.Products().Create(ctx, entity.Product{Name: "Lamp 2", SKU: "LP-2"})
	require.NoError(t, err)
	assert.NotEqual(t, p.ID, p2.ID)

	m, err := s.Movements().Create(ctx, entity.StockMovement{ProductID: p.ID, Type: entity.MovementAdd, Quantity: 1})
	require.NoError(t, err)
	assert.Equal(t, now, m.Timestamp)

	given := now.Add(-time.Hour)
	m2, err := s.Movements().Create(ctx, entity.StockMovement{ProductID: p.ID, Type: entity.MovementAdd, Quantity: 1, Timestamp: given})
	require.NoError(t, err)
	assert.Equal(t, given, m2.Timestamp)

	sup, err := s.Suppliers().Create(ctx, entity.Supplier{Name: "Acme"})
	require.NoError(t, err)
	assert.Equal(t, now, sup.CreatedAt)
}

func TestProductRepo_UpdateMergesAndRestamps(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s := New(WithClock(func() time.Time { return now }))
	ctx := context.Background()
	created, err := s.Products().Create(ctx, entity.Product{Name: "Lamp", SKU: "LP-1", SupplierID: strPtr("s1")})
	require.NoError(t, err)

	now = now.Add(time.Minute)
	updated, err := s.Products().Update(ctx, created.ID, entity.ProductPatch{CurrentStock: intPtr(7)})
	require.NoError(t, err)
	assert.Equal(t, 7, updated.CurrentStock)
	assert.Equal(t, "Lamp", updated.Name)
	assert.Equal(t, "s1", *updated.SupplierID)
	assert.Equal(t, now, updated.LastUpdated)

	var none *string
	unlinked, err := s.Products().Update(ctx, created.ID, entity.ProductPatch{SupplierID: &none})
	require.NoError(t, err)
	assert.Nil(t, unlinked.SupplierID)
}

func TestUpdate_NotFoundForAllEntities(t *testing.T) {
	s := New()
	ctx := context.Background()

	_, err := s.Products().Update(ctx, "missing", entity.ProductPatch{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = s.Suppliers().Update(ctx, "missing", entity.SupplierPatch{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = s.Movements().Update(ctx, "missing", entity.MovementPatch{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = s.Alerts().Update(ctx, "missing", entity.AlertPatch{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_ReturnsRemovedRecord(t *testing.T) {
	s, err := NewSeeded()
	require.NoError(t, err)
	ctx := context.Background()

	deleted, err := s.Suppliers().Delete(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "Office Essentials Ltd.", deleted.Name)

	_, err = s.Suppliers().GetByID(ctx, "2")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = s.Suppliers().Delete(ctx, "2")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	all, err := s.Suppliers().GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"1", "3", "4"}, []string{all[0].ID, all[1].ID, all[2].ID})
}

func TestGetByProductID(t *testing.T) {
	s, err := NewSeeded()
	require.NoError(t, err)
	ctx := context.Background()

	movs, err := s.Movements().GetByProductID(ctx, "3")
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, "damaged", movs[0].Reason)

	alerts, err := s.Alerts().GetByProductID(ctx, "nope")
	require.NoError(t, err)
	assert.Empty(t, alerts)
}

func TestRun_RollsBackOnError(t *testing.T) {
	s, err := NewSeeded()
	require.NoError(t, err)
	ctx := context.Background()
	boom := errors.New("boom")

	err = s.Run(ctx, func(tx repository.Store) error {
		_, err := tx.Movements().Create(ctx, entity.StockMovement{ProductID: "1", Type: entity.MovementAdd, Quantity: 5})
		require.NoError(t, err)
		_, err = tx.Products().Update(ctx, "1", entity.ProductPatch{CurrentStock: intPtr(50)})
		require.NoError(t, err)
		return boom
	})
	require.ErrorIs(t, err, boom)

	movs, err := s.Movements().GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, movs, 8)
	p, err := s.Products().GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 45, p.CurrentStock)
}

func TestRun_CommitsOnSuccess(t *testing.T) {
	s, err := NewSeeded()
	require.NoError(t, err)
	ctx := context.Background()

	err = s.Run(ctx, func(tx repository.Store) error {
		_, err := tx.Movements().Create(ctx, entity.StockMovement{ProductID: "1", Type: entity.MovementAdd, Quantity: 5})
		return err
	})
	require.NoError(t, err)

	movs, err := s.Movements().GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, movs, 9)
}

func TestLatency_HonoursCancellation(t *testing.T) {
	s := New(WithLatency(time.Second))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Products().GetAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

