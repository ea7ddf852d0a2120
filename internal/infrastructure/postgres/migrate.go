package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/jhoicas/inventario-dashboard/internal/domain/repository"
	"github.com/jhoicas/inventario-dashboard/internal/infrastructure/fixtures"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate aplica en orden los archivos de migrations/ que aún no figuran en schema_migrations.
func Migrate(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger) error {
	if _, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			name       TEXT PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`); err != nil {
		return fmt.Errorf("crear schema_migrations: %w", err)
	}

	names, err := fs.Glob(migrationsFS, "migrations/*.sql")
	if err != nil {
		return fmt.Errorf("listar migraciones: %w", err)
	}
	sort.Strings(names)

	for _, name := range names {
		var applied bool
		if err := pool.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE name = $1)`, name,
		).Scan(&applied); err != nil {
			return fmt.Errorf("consultar migración %s: %w", name, err)
		}
		if applied {
			continue
		}
		body, err := migrationsFS.ReadFile(name)
		if err != nil {
			return fmt.Errorf("leer migración %s: %w", name, err)
		}

		tx, err := pool.Begin(ctx)
		if err != nil {
			return fmt.Errorf("begin migración %s: %w", name, err)
		}
		if _, err := tx.Exec(ctx, string(body)); err != nil {
			_ = tx.Rollback(ctx)
			return fmt.Errorf("aplicar migración %s: %w", name, err)
		}
		if _, err := tx.Exec(ctx, `INSERT INTO schema_migrations (name) VALUES ($1)`, name); err != nil {
			_ = tx.Rollback(ctx)
			return fmt.Errorf("registrar migración %s: %w", name, err)
		}
		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf("commit migración %s: %w", name, err)
		}
		log.Info().Str("migration", name).Msg("migración aplicada")
	}
	return nil
}

// SeedFixtures carga los datos iniciales si la tabla de productos está vacía.
func SeedFixtures(ctx context.Context, runner *TxRunner, f *fixtures.Data, log zerolog.Logger) error {
	return runner.Run(ctx, func(tx repository.Store) error {
		s := tx.(*Store)
		var n int
		if err := s.q.QueryRow(ctx, `SELECT count(*) FROM products`).Scan(&n); err != nil {
			return fmt.Errorf("contar productos: %w", err)
		}
		if n > 0 {
			log.Info().Int("products", n).Msg("seed omitido: la base ya tiene datos")
			return nil
		}
		suppliers := NewSupplierRepository(s.q)
		for _, sp := range f.Suppliers {
			if err := suppliers.Insert(ctx, sp); err != nil {
				return err
			}
		}
		products := NewProductRepository(s.q)
		for _, p := range f.Products {
			if err := products.Insert(ctx, p); err != nil {
				return err
			}
		}
		movements := NewStockMovementRepository(s.q)
		for _, m := range f.Movements {
			if err := movements.Insert(ctx, m); err != nil {
				return err
			}
		}
		alerts := NewAlertRepository(s.q)
		for _, a := range f.Alerts {
			if err := alerts.Insert(ctx, a); err != nil {
				return err
			}
		}
		log.Info().
			Int("products", len(f.Products)).
			Int("suppliers", len(f.Suppliers)).
			Int("movements", len(f.Movements)).
			Int("alerts", len(f.Alerts)).
			Msg("fixtures cargados")
		return nil
	})
}
