package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/inventario-dashboard/internal/infrastructure/notify"
)

// NotificationHandler expone el feed de toasts.
type NotificationHandler struct {
	feed *notify.Feed
}

// NewNotificationHandler construye el handler.
func NewNotificationHandler(feed *notify.Feed) *NotificationHandler {
	return &NotificationHandler{feed: feed}
}

// List godoc
// @Summary      Notificaciones recientes (más reciente primero)
// @Tags         notifications
// @Produce      json
// @Param        limit  query  int  false  "Máximo a devolver"  default(50)
// @Success      200    {array}  dto.NotificationDTO
// @Router       /api/notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", notify.DefaultCapacity)
	if limit <= 0 || limit > notify.DefaultCapacity {
		limit = notify.DefaultCapacity
	}
	recent := h.feed.Recent(limit)
	out := make([]dto.NotificationDTO, 0, len(recent))
	for _, n := range recent {
		out = append(out, dto.NotificationDTO{
			Level:     n.Level,
			Message:   n.Message,
			Timestamp: n.Timestamp.Format(time.RFC3339),
		})
	}
	return c.JSON(out)
}
