package ports

import (
	"context"

	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
)

// StockChangeListener recibe el aviso de refresco tras un ajuste de stock confirmado
// (métricas, vistas dependientes).
type StockChangeListener interface {
	StockAdjusted(ctx context.Context, product entity.Product, movement entity.StockMovement)
}

// AdjustmentFailureRecorder registra en qué etapa falló un ajuste ("validation", "not_found", "persist").
type AdjustmentFailureRecorder interface {
	AdjustmentFailed(stage string)
}
