package fixtures

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
)

func TestDefault(t *testing.T) {
	d, err := Default()
	require.NoError(t, err)
	assert.Len(t, d.Products, 8)
	assert.Len(t, d.Suppliers, 4)
	assert.Len(t, d.Movements, 8)
	assert.Len(t, d.Alerts, 5)

	for _, m := range d.Movements {
		assert.True(t, m.Type.Valid(), m.ID)
		assert.Positive(t, m.Quantity, m.ID)
	}
	for _, p := range d.Products {
		require.NotNil(t, p.SupplierID, p.ID)
	}
	assert.Equal(t, entity.AlertOutOfStock, d.Alerts[1].Type)
}

func TestParse_EmptyAndInvalid(t *testing.T) {
	d, err := Parse(nil, nil, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, d.Products)

	_, err = Parse([]byte("{"), nil, nil, nil)
	assert.Error(t, err)
}
