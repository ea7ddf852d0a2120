// Package search contiene los predicados de filtrado del lado cliente sobre colecciones ya
// cargadas: productos, movimientos, proveedores y pestañas de alertas. Todas las funciones
// son puras e idempotentes y se evalúan contra el slice completo.
package search

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/inventario-dashboard/internal/domain/inventory"
)

// Etiquetas usadas cuando un movimiento referencia un producto inexistente.
const (
	UnknownProductName = "Unknown Product"
	UnknownProductSKU  = "N/A"
)

// fold normaliza para comparación sin distinguir mayúsculas (plegado Unicode, ej. "Ñ" == "ñ").
func fold(s string) string {
	return cases.Fold().String(s)
}

// contains coincidencia por subcadena sin distinguir mayúsculas; needle ya plegado.
func contains(haystack, foldedNeedle string) bool {
	return strings.Contains(fold(haystack), foldedNeedle)
}

// ProductCriteria filtros de la página de productos. Campos vacíos no filtran.
type ProductCriteria struct {
	Search   string
	Category string
	Stock    inventory.StockStatus
}

// Products texto (nombre, SKU o categoría) AND categoría exacta AND banda de stock.
func Products(products []entity.Product, c ProductCriteria) []entity.Product {
	needle := fold(c.Search)
	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if needle != "" && !contains(p.Name, needle) && !contains(p.SKU, needle) && !contains(p.Category, needle) {
			continue
		}
		if c.Category != "" && p.Category != c.Category {
			continue
		}
		if c.Stock != "" && inventory.Status(p) != c.Stock {
			continue
		}
		out = append(out, p)
	}
	return out
}

// MovementCriteria filtros de la página de movimientos.
type MovementCriteria struct {
	Search string
	Type   entity.MovementType
	Reason string
}

// Movements texto sobre nombre/SKU del producto resuelto o la razón, AND tipo AND razón exactos.
func Movements(movements []entity.StockMovement, products []entity.Product, c MovementCriteria) []entity.StockMovement {
	byID := make(map[string]entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	needle := fold(c.Search)
	out := make([]entity.StockMovement, 0, len(movements))
	for _, m := range movements {
		if needle != "" {
			name, sku := ResolveProduct(byID, m.ProductID)
			if !contains(name, needle) && !contains(sku, needle) && !contains(m.Reason, needle) {
				continue
			}
		}
		if c.Type != "" && m.Type != c.Type {
			continue
		}
		if c.Reason != "" && m.Reason != c.Reason {
			continue
		}
		out = append(out, m)
	}
	return out
}

// ResolveProduct nombre y SKU del producto referenciado, con etiquetas por defecto si no existe.
func ResolveProduct(byID map[string]entity.Product, productID string) (name, sku string) {
	p, ok := byID[productID]
	if !ok {
		return UnknownProductName, UnknownProductSKU
	}
	return p.Name, p.SKU
}

// Suppliers texto sobre nombre, contacto o email.
func Suppliers(suppliers []entity.Supplier, term string) []entity.Supplier {
	needle := fold(term)
	out := make([]entity.Supplier, 0, len(suppliers))
	for _, s := range suppliers {
		if needle != "" && !contains(s.Name, needle) && !contains(s.ContactName, needle) && !contains(s.Email, needle) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// AlertTab pestaña de la página de alertas.
type AlertTab string

const (
	TabActive       AlertTab = "active"
	TabAcknowledged AlertTab = "acknowledged"
	TabAll          AlertTab = "all"
)

// ParseAlertTab pestaña desconocida o vacía equivale a all.
func ParseAlertTab(s string) AlertTab {
	switch AlertTab(s) {
	case TabActive, TabAcknowledged:
		return AlertTab(s)
	}
	return TabAll
}

// Alerts active = disparada y sin reconocer; acknowledged = AcknowledgedAt definido; all = sin filtro.
func Alerts(alerts []entity.Alert, tab AlertTab) []entity.Alert {
	out := make([]entity.Alert, 0, len(alerts))
	for _, a := range alerts {
		switch tab {
		case TabActive:
			if !a.Active() {
				continue
			}
		case TabAcknowledged:
			if !a.Acknowledged() {
				continue
			}
		}
		out = append(out, a)
	}
	return out
}

// Categories categorías distintas en orden de primera aparición.
func Categories(products []entity.Product) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

// Reasons razones distintas en orden de primera aparición.
func Reasons(movements []entity.StockMovement) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, m := range movements {
		if _, ok := seen[m.Reason]; ok {
			continue
		}
		seen[m.Reason] = struct{}{}
		out = append(out, m.Reason)
	}
	return out
}
