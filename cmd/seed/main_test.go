package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/inventario-dashboard/internal/infrastructure/fixtures"
)

func TestRender_DefaultFixtures(t *testing.T) {
	data, err := fixtures.Default()
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, render(&b, data, "test"))
	sql := b.String()

	assert.Equal(t, 4, strings.Count(sql, "ON CONFLICT (id) DO NOTHING;"))
	assert.Contains(t, sql, "'WM-001'")
	assert.Contains(t, sql, "24.99")
	assert.Contains(t, sql, "INSERT INTO stock_movements")
	assert.Contains(t, sql, "INSERT INTO alerts")
}

func TestQuote_EscapesSingleQuotes(t *testing.T) {
	assert.Equal(t, "'O''Brien'", quote("O'Brien"))
}

func TestLoadDir_Latin1(t *testing.T) {
	dir := t.TempDir()
	enc, err := charmap.ISO8859_1.NewEncoder().String(`[{"id":"s1","name":"Ñandú Logística","leadTime":3}]`)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "suppliers.json"), []byte(enc), 0o600))

	data, err := loadDir(dir, true)
	require.NoError(t, err)
	require.Len(t, data.Suppliers, 1)
	assert.Equal(t, "Ñandú Logística", data.Suppliers[0].Name)
	assert.Empty(t, data.Products)
}
