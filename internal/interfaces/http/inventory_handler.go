package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-dashboard/internal/application/inventory"
)

// InventoryHandler maneja las vistas operativas del inventario.
type InventoryHandler struct {
	reorder *inventory.ReorderUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(reorder *inventory.ReorderUseCase) *InventoryHandler {
	return &InventoryHandler{reorder: reorder}
}

// GetReorderSuggestions godoc
// @Summary      Lista de reposición
// @Description  Productos en banda low con la cantidad sugerida hasta el máximo, costo estimado
// @Description  y proveedor. Primero los agotados, luego por menor porcentaje de stock.
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  dto.ReorderListResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory/reorder-suggestions [get]
func (h *InventoryHandler) GetReorderSuggestions(c *fiber.Ctx) error {
	list, err := h.reorder.GenerateReorderList(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}
