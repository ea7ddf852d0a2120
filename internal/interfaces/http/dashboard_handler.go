package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/inventario-dashboard/internal/application/analytics"
)

// DashboardHandler maneja los endpoints del dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary godoc
// @Summary      Resumen del inventario
// @Description  totalValue, lowStockItems, todayMovements, totalProducts, los últimos 5
// @Description  movimientos y las alertas activas por prioridad.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}

// GetQuickStats godoc
// @Summary      Estadísticas rápidas de la página de inicio
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.QuickStatsDTO
// @Router       /api/dashboard/quick-stats [get]
func (h *DashboardHandler) GetQuickStats(c *fiber.Ctx) error {
	stats, err := h.uc.GetQuickStats(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}
