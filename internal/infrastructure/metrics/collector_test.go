package metrics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/inventario-dashboard/internal/domain/repository"
	"github.com/jhoicas/inventario-dashboard/internal/infrastructure/memory"
)

// gauge devuelve el valor del gauge sin etiquetas; ok=false si el scrape no lo emitió.
func gauge(t *testing.T, reg *prometheus.Registry, name string) (float64, bool) {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() == name && len(mf.GetMetric()) > 0 {
			return mf.GetMetric()[0].GetGauge().GetValue(), true
		}
	}
	return 0, false
}

func TestCollector_GaugesFromFixtures(t *testing.T) {
	s, err := memory.NewSeeded()
	require.NoError(t, err)
	c := NewCollector(s.Products(), s.Alerts(), zerolog.Nop())

	low, ok := gauge(t, c.Registry(), "inventory_low_stock_products")
	require.True(t, ok)
	assert.Equal(t, 4.0, low)

	active, ok := gauge(t, c.Registry(), "inventory_active_alerts")
	require.True(t, ok)
	assert.Equal(t, 4.0, active)

	value, ok := gauge(t, c.Registry(), "inventory_stock_value")
	require.True(t, ok)
	assert.InDelta(t, 10449.09, value, 0.001)
}

func TestCollector_GaugesFollowWritesOutsideAdjustments(t *testing.T) {
	s, err := memory.NewSeeded()
	require.NoError(t, err)
	c := NewCollector(s.Products(), s.Alerts(), zerolog.Nop())
	ctx := context.Background()

	ack := time.Date(2024, 1, 16, 9, 0, 0, 0, time.UTC)
	ackPtr := &ack
	_, err = s.Alerts().Update(ctx, "1", entity.AlertPatch{AcknowledgedAt: &ackPtr})
	require.NoError(t, err)
	active, _ := gauge(t, c.Registry(), "inventory_active_alerts")
	assert.Equal(t, 3.0, active)

	// producto 3 (sin stock) en banda low
	_, err = s.Products().Delete(ctx, "3")
	require.NoError(t, err)
	low, _ := gauge(t, c.Registry(), "inventory_low_stock_products")
	assert.Equal(t, 3.0, low)
}

type failingProducts struct{ repository.ProductRepository }

func (failingProducts) GetAll(context.Context) ([]entity.Product, error) {
	return nil, errors.New("timeout")
}

func TestCollector_ReadErrorOmitsAffectedGauges(t *testing.T) {
	s, err := memory.NewSeeded()
	require.NoError(t, err)
	c := NewCollector(failingProducts{s.Products()}, s.Alerts(), zerolog.Nop())

	_, ok := gauge(t, c.Registry(), "inventory_stock_value")
	assert.False(t, ok)
	active, ok := gauge(t, c.Registry(), "inventory_active_alerts")
	require.True(t, ok)
	assert.Equal(t, 4.0, active)
}

func TestCollector_CountsAdjustmentsAndFailures(t *testing.T) {
	s := memory.New()
	c := NewCollector(s.Products(), s.Alerts(), zerolog.Nop())

	c.StockAdjusted(context.Background(), entity.Product{}, entity.StockMovement{Type: entity.MovementAdd})
	c.StockAdjusted(context.Background(), entity.Product{}, entity.StockMovement{Type: entity.MovementAdd})
	c.AdjustmentFailed("validation")

	assert.Equal(t, 2.0, testutil.ToFloat64(c.adjustments.WithLabelValues("add")))
	assert.Equal(t, 0.0, testutil.ToFloat64(c.adjustments.WithLabelValues("remove")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.failures.WithLabelValues("validation")))

	n, err := testutil.GatherAndCount(c.Registry(), "inventory_stock_adjustments_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
