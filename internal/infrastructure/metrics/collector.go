// Package metrics expone contadores y gauges de inventario en formato Prometheus.
package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/jhoicas/inventario-dashboard/internal/application/ports"
	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/inventario-dashboard/internal/domain/inventory"
	"github.com/jhoicas/inventario-dashboard/internal/domain/repository"
)

const (
	namespace     = "inventory"
	scrapeTimeout = 5 * time.Second
)

// Collector cuenta los ajustes y calcula los gauges del inventario en cada scrape.
type Collector struct {
	registry *prometheus.Registry

	adjustments *prometheus.CounterVec
	failures    *prometheus.CounterVec
}

var (
	_ ports.StockChangeListener       = (*Collector)(nil)
	_ ports.AdjustmentFailureRecorder = (*Collector)(nil)
)

// NewCollector registra las métricas en un registry propio (más las del runtime de Go).
func NewCollector(products repository.ProductRepository, alerts repository.AlertRepository, log zerolog.Logger) *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		adjustments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stock_adjustments_total",
			Help:      "Ajustes de stock confirmados por tipo.",
		}, []string{"type"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stock_adjustment_failures_total",
			Help:      "Ajustes de stock fallidos por etapa.",
		}, []string{"stage"}),
	}
	c.registry.MustRegister(
		c.adjustments, c.failures,
		newStockGauges(products, alerts, log),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return c
}

// Handler sirve el registry en formato de exposición.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

// Registry acceso directo (tests).
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// StockAdjusted cuenta el ajuste confirmado.
func (c *Collector) StockAdjusted(_ context.Context, _ entity.Product, movement entity.StockMovement) {
	c.adjustments.WithLabelValues(string(movement.Type)).Inc()
}

// AdjustmentFailed cuenta un fallo por etapa.
func (c *Collector) AdjustmentFailed(stage string) {
	c.failures.WithLabelValues(stage).Inc()
}

// ── Gauges ───────────────────────────────────────────────────────────────────

// stockGauges lee productos y alertas al momento del scrape: cualquier escritura
// (ajuste, alta, baja, reconocimiento de alerta) se refleja en el siguiente scrape.
type stockGauges struct {
	products repository.ProductRepository
	alerts   repository.AlertRepository
	log      zerolog.Logger

	lowStock   *prometheus.Desc
	active     *prometheus.Desc
	stockValue *prometheus.Desc
}

func newStockGauges(products repository.ProductRepository, alerts repository.AlertRepository, log zerolog.Logger) *stockGauges {
	return &stockGauges{
		products: products,
		alerts:   alerts,
		log:      log,
		lowStock: prometheus.NewDesc(prometheus.BuildFQName(namespace, "", "low_stock_products"),
			"Productos con currentStock <= minStock.", nil, nil),
		active: prometheus.NewDesc(prometheus.BuildFQName(namespace, "", "active_alerts"),
			"Alertas disparadas sin reconocer.", nil, nil),
		stockValue: prometheus.NewDesc(prometheus.BuildFQName(namespace, "", "stock_value"),
			"Valor del inventario a precio de venta.", nil, nil),
	}
}

func (g *stockGauges) Describe(ch chan<- *prometheus.Desc) {
	ch <- g.lowStock
	ch <- g.active
	ch <- g.stockValue
}

// Collect un error de lectura omite los gauges afectados en ese scrape.
func (g *stockGauges) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), scrapeTimeout)
	defer cancel()

	if products, err := g.products.GetAll(ctx); err != nil {
		g.log.Warn().Err(err).Msg("metrics: no se pudieron leer productos")
	} else {
		value, _ := inventory.TotalStockValue(products).Float64()
		ch <- prometheus.MustNewConstMetric(g.lowStock, prometheus.GaugeValue, float64(inventory.LowStockCount(products)))
		ch <- prometheus.MustNewConstMetric(g.stockValue, prometheus.GaugeValue, value)
	}

	if alerts, err := g.alerts.GetAll(ctx); err != nil {
		g.log.Warn().Err(err).Msg("metrics: no se pudieron leer alertas")
	} else {
		ch <- prometheus.MustNewConstMetric(g.active, prometheus.GaugeValue, float64(len(inventory.ActiveAlerts(alerts))))
	}
}
