package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-dashboard/internal/application/report"
)

// ReportHandler sirve los reportes descargables.
type ReportHandler struct {
	stock *report.StockReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(stock *report.StockReportUseCase) *ReportHandler {
	return &ReportHandler{stock: stock}
}

// StockPDF godoc
// @Summary      Reporte de stock en PDF
// @Tags         reports
// @Produce      application/pdf
// @Success      200  {file}    file
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/stock.pdf [get]
func (h *ReportHandler) StockPDF(c *fiber.Ctx) error {
	pdf, filename, err := h.stock.Download(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdf)
}
