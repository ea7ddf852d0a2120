package search_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/inventario-dashboard/internal/domain/inventory"
	"github.com/jhoicas/inventario-dashboard/internal/domain/search"
)

func catalog() []entity.Product {
	return []entity.Product{
		{ID: "p1", Name: "Tornillo hexagonal", SKU: "TOR-001", Category: "Ferretería", CurrentStock: 3, MinStock: 10, MaxStock: 100},
		{ID: "p2", Name: "Cable UTP", SKU: "CAB-778", Category: "Redes", CurrentStock: 40, MinStock: 10, MaxStock: 100},
		{ID: "p3", Name: "Router", SKU: "NET-ROUTER", Category: "Redes", CurrentStock: 150, MinStock: 5, MaxStock: 100},
		{ID: "p4", Name: "Martillo", SKU: "FER-200", Category: "Ferretería", CurrentStock: 10, MinStock: 10, MaxStock: 10},
	}
}

func ids[T any](items []T, id func(T) string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, id(it))
	}
	return out
}

func productID(p entity.Product) string       { return p.ID }
func movementID(m entity.StockMovement) string { return m.ID }
func supplierID(s entity.Supplier) string      { return s.ID }
func alertID(a entity.Alert) string            { return a.ID }

func TestProducts_TextoSinMayusculas(t *testing.T) {
	got := search.Products(catalog(), search.ProductCriteria{Search: "ROUTER"})
	assert.Equal(t, []string{"p3"}, ids(got, productID))

	got = search.Products(catalog(), search.ProductCriteria{Search: "ferretería"})
	assert.Equal(t, []string{"p1", "p4"}, ids(got, productID), "coincide por categoría")

	got = search.Products(catalog(), search.ProductCriteria{Search: "cab-7"})
	assert.Equal(t, []string{"p2"}, ids(got, productID), "coincide por SKU")
}

func TestProducts_CategoriaYBanda(t *testing.T) {
	got := search.Products(catalog(), search.ProductCriteria{Category: "Redes", Stock: inventory.StatusHigh})
	assert.Equal(t, []string{"p3"}, ids(got, productID))

	got = search.Products(catalog(), search.ProductCriteria{Stock: inventory.StatusLow})
	assert.Equal(t, []string{"p1", "p4"}, ids(got, productID), "min == max == stock cuenta como low")

	got = search.Products(catalog(), search.ProductCriteria{Stock: inventory.StatusNormal})
	assert.Equal(t, []string{"p2"}, ids(got, productID))
}

func TestProducts_Idempotente(t *testing.T) {
	c := search.ProductCriteria{Search: "r", Category: "Redes"}
	once := search.Products(catalog(), c)
	twice := search.Products(once, c)
	assert.Equal(t, once, twice)
}

func TestMovements_ResuelveProducto(t *testing.T) {
	now := time.Now()
	movements := []entity.StockMovement{
		{ID: "m1", ProductID: "p1", Type: entity.MovementAdd, Reason: entity.ReasonManualAdjustment, Timestamp: now},
		{ID: "m2", ProductID: "p2", Type: entity.MovementRemove, Reason: entity.ReasonDamaged, Timestamp: now},
		{ID: "m3", ProductID: "borrado", Type: entity.MovementRemove, Reason: entity.ReasonLost, Timestamp: now},
	}
	products := catalog()

	got := search.Movements(movements, products, search.MovementCriteria{Search: "tornillo"})
	assert.Equal(t, []string{"m1"}, ids(got, movementID))

	got = search.Movements(movements, products, search.MovementCriteria{Search: "n/a"})
	assert.Equal(t, []string{"m3"}, ids(got, movementID), "producto inexistente se resuelve como N/A")

	got = search.Movements(movements, products, search.MovementCriteria{Search: "DAMAGED"})
	assert.Equal(t, []string{"m2"}, ids(got, movementID), "coincide por razón")

	got = search.Movements(movements, products, search.MovementCriteria{Type: entity.MovementRemove, Reason: entity.ReasonLost})
	assert.Equal(t, []string{"m3"}, ids(got, movementID))

	once := search.Movements(movements, products, search.MovementCriteria{Type: entity.MovementRemove})
	assert.Equal(t, once, search.Movements(once, products, search.MovementCriteria{Type: entity.MovementRemove}))
}

func TestSuppliers(t *testing.T) {
	suppliers := []entity.Supplier{
		{ID: "s1", Name: "Distribuidora Andina", ContactName: "Lucía Pérez", Email: "ventas@andina.co"},
		{ID: "s2", Name: "TecnoRed", ContactName: "Mario Gómez", Email: "mario@tecnored.com"},
	}
	assert.Equal(t, []string{"s1"}, ids(search.Suppliers(suppliers, "LUCÍA"), supplierID))
	assert.Equal(t, []string{"s2"}, ids(search.Suppliers(suppliers, "tecnored.com"), supplierID))
	assert.Len(t, search.Suppliers(suppliers, ""), 2)
}

func TestAlerts_Pestanas(t *testing.T) {
	ack := time.Now()
	alerts := []entity.Alert{
		{ID: "a1", Triggered: true},
		{ID: "a2", Triggered: true, AcknowledgedAt: &ack},
		{ID: "a3", Triggered: false},
	}
	assert.Equal(t, []string{"a1"}, ids(search.Alerts(alerts, search.TabActive), alertID))
	assert.Equal(t, []string{"a2"}, ids(search.Alerts(alerts, search.TabAcknowledged), alertID))
	assert.Equal(t, []string{"a1", "a2", "a3"}, ids(search.Alerts(alerts, search.TabAll), alertID))
	assert.Equal(t, search.TabAll, search.ParseAlertTab("desconocida"))
}

func TestCategoriesYReasons(t *testing.T) {
	assert.Equal(t, []string{"Ferretería", "Redes"}, search.Categories(catalog()))

	movements := []entity.StockMovement{{Reason: "damaged"}, {Reason: "lost"}, {Reason: "damaged"}}
	got := search.Reasons(movements)
	require.Len(t, got, 2)
	assert.Equal(t, []string{"damaged", "lost"}, got)
}
