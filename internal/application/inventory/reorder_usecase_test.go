package inventory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-dashboard/internal/infrastructure/memory"
)

func TestGenerateReorderList_Fixtures(t *testing.T) {
	s, err := memory.NewSeeded()
	require.NoError(t, err)
	uc := NewReorderUseCase(s.Products(), s.Suppliers())

	list, err := uc.GenerateReorderList(context.Background())
	require.NoError(t, err)
	require.Equal(t, 4, list.Total)

	skus := make([]string, 0, len(list.Items))
	for _, it := range list.Items {
		skus = append(skus, it.SKU)
	}
	assert.Equal(t, []string{"OC-003", "UC-002", "MN-008", "MK-005"}, skus)

	first := list.Items[0]
	assert.Equal(t, 1, first.Priority)
	assert.Equal(t, 30, first.SuggestedOrderQty)
	assert.True(t, decimal.NewFromInt(2670).Equal(first.EstimatedOrderCost))
	assert.Equal(t, "Furniture Plus", first.SupplierName)
	assert.Equal(t, 14, first.LeadTimeDays)

	assert.True(t, decimal.RequireFromString("8449.4").Equal(list.EstimatedTotal), list.EstimatedTotal.String())
}

func TestGenerateReorderList_Empty(t *testing.T) {
	s := memory.New()
	uc := NewReorderUseCase(s.Products(), s.Suppliers())

	list, err := uc.GenerateReorderList(context.Background())
	require.NoError(t, err)
	assert.Zero(t, list.Total)
	assert.Empty(t, list.Items)
	assert.True(t, list.EstimatedTotal.IsZero())
}
