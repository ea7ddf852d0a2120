// Package report genera el reporte de stock descargable.
package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/inventario-dashboard/internal/domain/inventory"
	"github.com/jhoicas/inventario-dashboard/internal/domain/repository"
)

// StockReportLine una fila del reporte.
type StockReportLine struct {
	SKU          string
	Name         string
	Category     string
	Unit         string
	CurrentStock int
	MinStock     int
	MaxStock     int
	Status       inventory.StockStatus
	SalePrice    decimal.Decimal
	Value        decimal.Decimal // currentStock × salePrice
	SupplierName string
}

// StockReportData contenido completo del reporte, listo para renderizar.
type StockReportData struct {
	Title         string
	GeneratedAt   time.Time
	Lines         []StockReportLine
	TotalProducts int
	TotalUnits    int
	TotalValue    decimal.Decimal
	LowStock      int
	HighStock     int
}

// StockReportGenerator puerto hacia el motor de PDF.
type StockReportGenerator interface {
	GenerateStockReport(ctx context.Context, data StockReportData) ([]byte, error)
}

// StockReportUseCase arma los datos del reporte y delega el render.
type StockReportUseCase struct {
	products  repository.ProductRepository
	suppliers repository.SupplierRepository
	generator StockReportGenerator
	title     string
	now       func() time.Time
}

// NewStockReportUseCase construye el caso de uso. title encabeza el documento (APP_NAME).
func NewStockReportUseCase(products repository.ProductRepository, suppliers repository.SupplierRepository, generator StockReportGenerator, title string) *StockReportUseCase {
	return &StockReportUseCase{
		products:  products,
		suppliers: suppliers,
		generator: generator,
		title:     title,
		now:       time.Now,
	}
}

// Build calcula las filas ordenadas por categoría y SKU, con los totales.
func (uc *StockReportUseCase) Build(ctx context.Context) (*StockReportData, error) {
	products, err := uc.products.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("reporte: productos: %w", err)
	}
	suppliers, err := uc.suppliers.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("reporte: proveedores: %w", err)
	}
	names := make(map[string]string, len(suppliers))
	for _, s := range suppliers {
		names[s.ID] = s.Name
	}

	sorted := make([]entity.Product, len(products))
	copy(sorted, products)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Category != sorted[j].Category {
			return sorted[i].Category < sorted[j].Category
		}
		return sorted[i].SKU < sorted[j].SKU
	})

	data := &StockReportData{
		Title:         uc.title,
		GeneratedAt:   uc.now(),
		Lines:         make([]StockReportLine, 0, len(sorted)),
		TotalProducts: len(sorted),
		TotalValue:    inventory.TotalStockValue(sorted),
	}
	for _, p := range sorted {
		line := StockReportLine{
			SKU:          p.SKU,
			Name:         p.Name,
			Category:     p.Category,
			Unit:         p.Unit,
			CurrentStock: p.CurrentStock,
			MinStock:     p.MinStock,
			MaxStock:     p.MaxStock,
			Status:       inventory.Status(p),
			SalePrice:    p.SalePrice,
			Value:        p.SalePrice.Mul(decimal.NewFromInt(int64(p.CurrentStock))),
		}
		if p.SupplierID != nil {
			line.SupplierName = names[*p.SupplierID]
		}
		switch line.Status {
		case inventory.StatusLow:
			data.LowStock++
		case inventory.StatusHigh:
			data.HighStock++
		}
		data.TotalUnits += p.CurrentStock
		data.Lines = append(data.Lines, line)
	}
	return data, nil
}

// Download genera el PDF y el nombre de archivo sugerido.
func (uc *StockReportUseCase) Download(ctx context.Context) (pdfBytes []byte, filename string, err error) {
	data, err := uc.Build(ctx)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err = uc.generator.GenerateStockReport(ctx, *data)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generar pdf: %w", err)
	}
	return pdfBytes, "stock-" + data.GeneratedAt.Format("20060102-1504") + ".pdf", nil
}
