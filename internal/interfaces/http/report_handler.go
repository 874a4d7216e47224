package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/ventas-api/internal/application/usecase"
)

// ReportHandler maneja los reportes agregados.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// BestClients clientes con mayor valor acumulado en órdenes PENDING.
func (h *ReportHandler) BestClients(c *fiber.Ctx) error {
	out, err := h.uc.BestClients(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// BestSellers vendedores con mayor valor acumulado en órdenes SUCCESS.
func (h *ReportHandler) BestSellers(c *fiber.Ctx) error {
	out, err := h.uc.BestSellers(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
