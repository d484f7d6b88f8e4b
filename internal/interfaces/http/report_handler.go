package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/rifa-pro/internal/application/reports"
)

// ReportHandler gera relatórios financeiros do back-office.
type ReportHandler struct {
	uc *reports.UseCase
}

// NewReportHandler constrói o handler.
func NewReportHandler(uc *reports.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// RafflePDF GET /api/admin/raffles/:id/report.pdf
func (h *ReportHandler) RafflePDF(c *fiber.Ctx) error {
	pdf, err := h.uc.GeneratePDF(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="relatorio-rifa.pdf"`)
	return c.Send(pdf)
}
