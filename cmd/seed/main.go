// seed genera un script SQL con los datos de ejemplo del dashboard (proveedores, productos,
// movimientos y alertas) para bases donde no se quiere sembrar al arrancar.
//
// Uso: go run ./cmd/seed [directorio] [latin1]
// Sin directorio usa los datos embebidos; con directorio lee products.json, suppliers.json,
// movements.json y alerts.json. "latin1" decodifica los archivos como ISO-8859-1.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_fixtures.sql
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/inventario-dashboard/internal/infrastructure/fixtures"
)

func main() {
	var (
		data *fixtures.Data
		err  error
		src  = "datos embebidos"
	)
	if len(os.Args) > 1 {
		src = os.Args[1]
		latin1 := len(os.Args) > 2 && strings.EqualFold(os.Args[2], "latin1")
		data, err = loadDir(src, latin1)
	} else {
		data, err = fixtures.Default()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar datos: %v\n", err)
		os.Exit(1)
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_fixtures.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := render(out, data, src); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s: %d proveedores, %d productos, %d movimientos, %d alertas\n",
		outPath, len(data.Suppliers), len(data.Products), len(data.Movements), len(data.Alerts))
}

// loadDir lee los cuatro JSON del directorio; un archivo ausente deja la colección vacía.
func loadDir(dir string, latin1 bool) (*fixtures.Data, error) {
	read := func(name string) ([]byte, error) {
		b, err := os.ReadFile(filepath.Join(dir, name+".json"))
		if os.IsNotExist(err) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		if latin1 {
			return io.ReadAll(transform.NewReader(bytes.NewReader(b), charmap.ISO8859_1.NewDecoder()))
		}
		return b, nil
	}
	files := map[string][]byte{}
	for _, name := range []string{"products", "suppliers", "movements", "alerts"} {
		b, err := read(name)
		if err != nil {
			return nil, fmt.Errorf("leer %s: %w", name, err)
		}
		files[name] = b
	}
	return fixtures.Parse(files["products"], files["suppliers"], files["movements"], files["alerts"])
}

// render escribe los INSERT; ON CONFLICT (id) DO NOTHING hace el script re-ejecutable.
func render(w io.Writer, d *fixtures.Data, source string) error {
	var b strings.Builder
	b.WriteString("-- Datos de ejemplo del dashboard de inventario\n")
	fmt.Fprintf(&b, "-- Generado desde %s\n\n", source)

	if len(d.Suppliers) > 0 {
		b.WriteString("-- 1. Proveedores\n")
		b.WriteString("INSERT INTO suppliers (id, name, contact_name, email, phone, address, lead_time, created_at) VALUES\n")
		for i, s := range d.Suppliers {
			fmt.Fprintf(&b, "  (%s, %s, %s, %s, %s, %s, %d, %s)%s\n",
				quote(s.ID), quote(s.Name), quote(s.ContactName), quote(s.Email),
				quote(s.Phone), quote(s.Address), s.LeadTime, timestamp(s.CreatedAt), sep(i, len(d.Suppliers)))
		}
		b.WriteString("ON CONFLICT (id) DO NOTHING;\n\n")
	}

	if len(d.Products) > 0 {
		b.WriteString("-- 2. Productos\n")
		b.WriteString("INSERT INTO products (id, name, sku, description, category, cost_price, sale_price, current_stock, min_stock, max_stock, unit, supplier_id, last_updated) VALUES\n")
		for i, p := range d.Products {
			supplier := "NULL"
			if p.SupplierID != nil {
				supplier = quote(*p.SupplierID)
			}
			fmt.Fprintf(&b, "  (%s, %s, %s, %s, %s, %s, %s, %d, %d, %d, %s, %s, %s)%s\n",
				quote(p.ID), quote(p.Name), quote(p.SKU), quote(p.Description), quote(p.Category),
				p.CostPrice.StringFixed(2), p.SalePrice.StringFixed(2),
				p.CurrentStock, p.MinStock, p.MaxStock, quote(p.Unit), supplier,
				timestamp(p.LastUpdated), sep(i, len(d.Products)))
		}
		b.WriteString("ON CONFLICT (id) DO NOTHING;\n\n")
	}

	if len(d.Movements) > 0 {
		b.WriteString("-- 3. Movimientos\n")
		b.WriteString("INSERT INTO stock_movements (id, product_id, type, quantity, reason, notes, timestamp, user_id) VALUES\n")
		for i, m := range d.Movements {
			fmt.Fprintf(&b, "  (%s, %s, %s, %d, %s, %s, %s, %s)%s\n",
				quote(m.ID), quote(m.ProductID), quote(string(m.Type)), m.Quantity,
				quote(m.Reason), quote(m.Notes), timestamp(m.Timestamp), quote(m.UserID), sep(i, len(d.Movements)))
		}
		b.WriteString("ON CONFLICT (id) DO NOTHING;\n\n")
	}

	if len(d.Alerts) > 0 {
		b.WriteString("-- 4. Alertas\n")
		b.WriteString("INSERT INTO alerts (id, product_id, type, threshold, current_level, triggered, acknowledged_at, timestamp) VALUES\n")
		for i, a := range d.Alerts {
			ack := "NULL"
			if a.AcknowledgedAt != nil {
				ack = timestamp(*a.AcknowledgedAt)
			}
			fmt.Fprintf(&b, "  (%s, %s, %s, %d, %d, %t, %s, %s)%s\n",
				quote(a.ID), quote(a.ProductID), quote(string(a.Type)), a.Threshold, a.CurrentLevel,
				a.Triggered, ack, timestamp(a.Timestamp), sep(i, len(d.Alerts)))
		}
		b.WriteString("ON CONFLICT (id) DO NOTHING;\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func timestamp(t time.Time) string {
	if t.IsZero() {
		return "now()"
	}
	return quote(t.UTC().Format(time.RFC3339))
}

func sep(i, n int) string {
	if i < n-1 {
		return ","
	}
	return ""
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
