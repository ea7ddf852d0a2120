package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	appanalytics "github.com/jhoicas/inventario-dashboard/internal/application/analytics"
	"github.com/jhoicas/inventario-dashboard/internal/application/inventory"
	"github.com/jhoicas/inventario-dashboard/internal/application/report"
	"github.com/jhoicas/inventario-dashboard/internal/application/usecase"
	"github.com/jhoicas/inventario-dashboard/internal/infrastructure/metrics"
	"github.com/jhoicas/inventario-dashboard/internal/infrastructure/notify"
)

// RoleAdmin único rol con permiso de borrado cuando la autenticación está activa.
const RoleAdmin = "admin"

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC     *usecase.ProductUseCase
	SupplierUC    *usecase.SupplierUseCase
	MovementUC    *usecase.MovementUseCase
	AlertUC       *usecase.AlertUseCase
	AdjustStock   *inventory.AdjustStockUseCase
	Reorder       *inventory.ReorderUseCase
	DashboardUC   *appanalytics.DashboardUseCase
	StockReport   *report.StockReportUseCase
	Notifications *notify.Feed
	Metrics       *metrics.Collector // nil = sin /metrics
	ServiceName   string
	JWTSecret     string // vacío = API abierta
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.ServiceName})
	})
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics.Handler()))
	}

	api := app.Group("/api")
	// Con secret configurado toda la API exige Bearer Token y los borrados exigen rol admin.
	canDelete := func(c *fiber.Ctx) error { return c.Next() }
	if deps.JWTSecret != "" {
		api.Use(AuthMiddleware(deps.JWTSecret))
		canDelete = RequireRole(RoleAdmin)
	}

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.AdjustStock)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/categories", productHandler.Categories)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", canDelete, productHandler.Delete)
	products.Get("/:id/movements", productHandler.Movements)
	products.Get("/:id/alerts", productHandler.Alerts)
	products.Post("/:id/adjustments", productHandler.Adjust)

	// Movements
	movements := api.Group("/movements")
	movementHandler := NewMovementHandler(deps.MovementUC)
	movements.Get("/", movementHandler.List)
	movements.Post("/", movementHandler.Create)
	movements.Get("/reasons", movementHandler.Reasons)
	movements.Get("/:id", movementHandler.GetByID)
	movements.Put("/:id", movementHandler.Update)
	movements.Delete("/:id", canDelete, movementHandler.Delete)

	// Suppliers
	suppliers := api.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", canDelete, supplierHandler.Delete)
	suppliers.Get("/:id/metrics", supplierHandler.Metrics)

	// Alerts
	alerts := api.Group("/alerts")
	alertHandler := NewAlertHandler(deps.AlertUC)
	alerts.Get("/", alertHandler.List)
	alerts.Post("/", alertHandler.Create)
	alerts.Get("/:id", alertHandler.GetByID)
	alerts.Put("/:id", alertHandler.Update)
	alerts.Delete("/:id", canDelete, alertHandler.Delete)
	alerts.Post("/:id/acknowledge", alertHandler.Acknowledge)

	// Dashboard
	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.GetSummary)
	dashboard.Get("/quick-stats", dashboardHandler.GetQuickStats)

	// Inventory
	inventoryHandler := NewInventoryHandler(deps.Reorder)
	api.Get("/inventory/reorder-suggestions", inventoryHandler.GetReorderSuggestions)

	// Reports
	if deps.StockReport != nil {
		reportHandler := NewReportHandler(deps.StockReport)
		api.Get("/reports/stock.pdf", reportHandler.StockPDF)
	}

	// Notifications
	if deps.Notifications != nil {
		notificationHandler := NewNotificationHandler(deps.Notifications)
		api.Get("/notifications", notificationHandler.List)
	}
}
