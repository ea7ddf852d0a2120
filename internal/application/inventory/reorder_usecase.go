package inventory

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/inventario-dashboard/internal/domain/inventory"
	"github.com/jhoicas/inventario-dashboard/internal/domain/repository"
)

// ReorderUseCase genera la lista de reposición: productos en banda low con la cantidad
// sugerida para volver al máximo y el proveedor a quien pedirla.
type ReorderUseCase struct {
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
}

// NewReorderUseCase construye el caso de uso de reposición.
func NewReorderUseCase(productRepo repository.ProductRepository, supplierRepo repository.SupplierRepository) *ReorderUseCase {
	return &ReorderUseCase{productRepo: productRepo, supplierRepo: supplierRepo}
}

// GenerateReorderList orden: sin stock primero, luego menor porcentaje de nivel, luego SKU.
func (uc *ReorderUseCase) GenerateReorderList(ctx context.Context) (*dto.ReorderListResponse, error) {
	products, err := uc.productRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("reposición: productos: %w", err)
	}
	suppliers, err := uc.supplierRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("reposición: proveedores: %w", err)
	}
	supplierByID := make(map[string]entity.Supplier, len(suppliers))
	for _, s := range suppliers {
		supplierByID[s.ID] = s
	}

	low := make([]entity.Product, 0)
	for _, p := range products {
		if inventory.IsLowStock(p) {
			low = append(low, p)
		}
	}
	sort.SliceStable(low, func(i, j int) bool {
		oi, oj := low[i].CurrentStock <= 0, low[j].CurrentStock <= 0
		if oi != oj {
			return oi
		}
		pi := inventory.StockLevelPercentage(low[i].CurrentStock, low[i].MaxStock)
		pj := inventory.StockLevelPercentage(low[j].CurrentStock, low[j].MaxStock)
		if pi != pj {
			return pi < pj
		}
		return low[i].SKU < low[j].SKU
	})

	out := &dto.ReorderListResponse{
		Items:          make([]dto.ReorderSuggestionDTO, 0, len(low)),
		EstimatedTotal: decimal.Zero,
	}
	for i, p := range low {
		qty := p.MaxStock - p.CurrentStock
		if qty < 0 {
			qty = 0
		}
		cost := p.CostPrice.Mul(decimal.NewFromInt(int64(qty)))
		item := dto.ReorderSuggestionDTO{
			ProductID:          p.ID,
			SKU:                p.SKU,
			ProductName:        p.Name,
			Unit:               p.Unit,
			CurrentStock:       p.CurrentStock,
			MinStock:           p.MinStock,
			MaxStock:           p.MaxStock,
			SuggestedOrderQty:  qty,
			UnitCost:           p.CostPrice,
			EstimatedOrderCost: cost,
			SupplierID:         p.SupplierID,
			Priority:           i + 1,
		}
		if p.SupplierID != nil {
			if s, ok := supplierByID[*p.SupplierID]; ok {
				item.SupplierName = s.Name
				item.LeadTimeDays = s.LeadTime
			}
		}
		out.Items = append(out.Items, item)
		out.EstimatedTotal = out.EstimatedTotal.Add(cost)
	}
	out.Total = len(out.Items)
	return out, nil
}
