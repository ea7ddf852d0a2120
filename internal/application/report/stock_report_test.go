package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-dashboard/internal/domain/inventory"
	"github.com/jhoicas/inventario-dashboard/internal/infrastructure/memory"
)

type fakeGenerator struct {
	got StockReportData
	err error
}

func (f *fakeGenerator) GenerateStockReport(_ context.Context, data StockReportData) ([]byte, error) {
	f.got = data
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-1.3"), nil
}

func TestBuild_Fixtures(t *testing.T) {
	s, err := memory.NewSeeded()
	require.NoError(t, err)
	uc := NewStockReportUseCase(s.Products(), s.Suppliers(), &fakeGenerator{}, "Inventario")

	data, err := uc.Build(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 8, data.TotalProducts)
	assert.Equal(t, 463, data.TotalUnits)
	assert.Equal(t, 4, data.LowStock)
	assert.Equal(t, 1, data.HighStock)
	assert.True(t, decimal.RequireFromString("10449.09").Equal(data.TotalValue))

	first := data.Lines[0]
	assert.Equal(t, "MK-005", first.SKU)
	assert.Equal(t, "TechSupply Co.", first.SupplierName)
	assert.Equal(t, inventory.StatusLow, first.Status)
}

func TestDownload_FilenameAndErrors(t *testing.T) {
	s, err := memory.NewSeeded()
	require.NoError(t, err)
	gen := &fakeGenerator{}
	uc := NewStockReportUseCase(s.Products(), s.Suppliers(), gen, "Inventario")
	uc.now = func() time.Time { return time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC) }

	b, name, err := uc.Download(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "stock-20240115-0930.pdf", name)
	assert.NotEmpty(t, b)
	assert.Equal(t, "Inventario", gen.got.Title)

	gen.err = errors.New("sin fuentes")
	_, _, err = uc.Download(context.Background())
	assert.Error(t, err)
}
