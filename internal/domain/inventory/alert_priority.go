package inventory

import (
	"sort"

	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
)

// Priority prioridad de visualización de una alerta.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
)

var priorityRank = map[Priority]int{
	PriorityCritical: 0,
	PriorityHigh:     1,
	PriorityMedium:   2,
}

// AlertPriority critical: out_of_stock o low_stock en 0; high: otro low_stock; medium: el resto.
func AlertPriority(a entity.Alert) Priority {
	switch {
	case a.Type == entity.AlertOutOfStock:
		return PriorityCritical
	case a.Type == entity.AlertLowStock && a.CurrentLevel == 0:
		return PriorityCritical
	case a.Type == entity.AlertLowStock:
		return PriorityHigh
	}
	return PriorityMedium
}

// SortAlerts ordena in-place: prioridad ascendente (critical primero) y, a igual prioridad,
// Timestamp descendente.
func SortAlerts(alerts []entity.Alert) {
	sort.SliceStable(alerts, func(i, j int) bool {
		pi, pj := priorityRank[AlertPriority(alerts[i])], priorityRank[AlertPriority(alerts[j])]
		if pi != pj {
			return pi < pj
		}
		return alerts[i].Timestamp.After(alerts[j].Timestamp)
	})
}

// ActiveAlerts alertas disparadas y sin reconocer, en el orden de entrada.
func ActiveAlerts(alerts []entity.Alert) []entity.Alert {
	out := make([]entity.Alert, 0, len(alerts))
	for _, a := range alerts {
		if a.Active() {
			out = append(out, a)
		}
	}
	return out
}
