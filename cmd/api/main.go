package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/inventario-dashboard/docs"
	appanalytics "github.com/jhoicas/inventario-dashboard/internal/application/analytics"
	"github.com/jhoicas/inventario-dashboard/internal/application/inventory"
	"github.com/jhoicas/inventario-dashboard/internal/application/report"
	"github.com/jhoicas/inventario-dashboard/internal/application/usecase"
	"github.com/jhoicas/inventario-dashboard/internal/domain/repository"
	"github.com/jhoicas/inventario-dashboard/internal/infrastructure/fixtures"
	"github.com/jhoicas/inventario-dashboard/internal/infrastructure/memory"
	"github.com/jhoicas/inventario-dashboard/internal/infrastructure/metrics"
	"github.com/jhoicas/inventario-dashboard/internal/infrastructure/notify"
	infrapdf "github.com/jhoicas/inventario-dashboard/internal/infrastructure/pdf"
	"github.com/jhoicas/inventario-dashboard/internal/infrastructure/postgres"
	"github.com/jhoicas/inventario-dashboard/internal/infrastructure/remote"
	httpRouter "github.com/jhoicas/inventario-dashboard/internal/interfaces/http"
	"github.com/jhoicas/inventario-dashboard/pkg/config"
	"github.com/jhoicas/inventario-dashboard/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

// backend store + runner transaccional del backend elegido.
type backend struct {
	store repository.Store
	tx    repository.TxRunner
	close func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		App:     cfg.App.Name,
		Backend: cfg.Store.Backend,
	})
	log.Info().Str("env", cfg.App.Env).Msg("iniciando aplicación")

	feed := notify.NewFeed(log.Component("notify"), notify.DefaultCapacity)

	ctx := context.Background()
	be, err := openBackend(ctx, cfg, log, feed)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar backend de datos")
	}
	defer be.close()

	store := be.store
	collector := metrics.NewCollector(store.Products(), store.Alerts(), log.Component("metrics"))

	adjustUC := inventory.NewAdjustStockUseCase(be.tx, feed, log.Component("adjust"))
	adjustUC.AddListener(collector)
	adjustUC.SetFailureRecorder(collector)

	reportUC := report.NewStockReportUseCase(
		store.Products(), store.Suppliers(),
		infrapdf.NewMarotoStockReportGenerator(),
		cfg.App.Name+": reporte de stock",
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Inventario Dashboard API",
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("swagger deshabilitado: archivo no encontrado")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:     usecase.NewProductUseCase(store.Products(), store.Movements(), store.Alerts()),
		SupplierUC:    usecase.NewSupplierUseCase(store.Suppliers(), store.Products()),
		MovementUC:    usecase.NewMovementUseCase(store.Movements(), store.Products()),
		AlertUC:       usecase.NewAlertUseCase(store.Alerts(), store.Products()),
		AdjustStock:   adjustUC,
		Reorder:       inventory.NewReorderUseCase(store.Products(), store.Suppliers()),
		DashboardUC:   appanalytics.NewDashboardUseCase(store.Products(), store.Movements(), store.Alerts()),
		StockReport:   reportUC,
		Notifications: feed,
		Metrics:       collector,
		ServiceName:   cfg.App.Name,
		JWTSecret:     cfg.JWT.Secret,
	})
	if cfg.JWT.Secret == "" {
		log.Warn().Msg("JWT_SECRET vacío: la API queda sin autenticación")
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// openBackend construye el store según STORE_BACKEND.
func openBackend(ctx context.Context, cfg *config.Config, log *logger.Logger, feed *notify.Feed) (*backend, error) {
	switch cfg.Store.Backend {
	case config.BackendMemory:
		opts := []memory.Option{memory.WithLatency(cfg.Store.Latency)}
		var s *memory.Store
		if cfg.Store.SeedFixtures {
			seeded, err := memory.NewSeeded(opts...)
			if err != nil {
				return nil, err
			}
			s = seeded
		} else {
			s = memory.New(opts...)
		}
		return &backend{store: s, tx: s, close: func() {}}, nil

	case config.BackendPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		if err := postgres.Migrate(ctx, pool, log.Component("postgres")); err != nil {
			pool.Close()
			return nil, err
		}
		runner := postgres.NewTxRunner(pool)
		if cfg.Store.SeedFixtures {
			data, err := fixtures.Default()
			if err != nil {
				pool.Close()
				return nil, err
			}
			if err := postgres.SeedFixtures(ctx, runner, data, log.Component("postgres")); err != nil {
				pool.Close()
				return nil, err
			}
		}
		return &backend{store: postgres.NewStore(pool), tx: runner, close: pool.Close}, nil

	case config.BackendRemote:
		client, err := remote.NewClient(remote.Config{
			ProjectID: cfg.Remote.ProjectID,
			PublicKey: cfg.Remote.PublicKey,
			BaseURL:   cfg.Remote.BaseURL,
			Timeout:   cfg.Remote.Timeout,
			Strict:    cfg.Remote.StrictErrors,
		}, log.Component("remote"), feed)
		if err != nil {
			return nil, err
		}
		s := remote.NewStore(client)
		return &backend{store: s, tx: s, close: func() {}}, nil
	}
	return nil, fmt.Errorf("backend desconocido %q", cfg.Store.Backend)
}
