package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-dashboard/internal/application/analytics"
	"github.com/jhoicas/almacen-dashboard/internal/application/dto"
)

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc *analytics.SummaryUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.SummaryUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve las métricas derivadas del estado actual de la sesión.
// GET /api/dashboard/summary
//
// Respuesta: SummaryDTO (ingresos, unidades, referencias, stock bajo,
// descuento promedio, top por valor de inventario, desglose por categoría).
// Se recalcula en cada llamada.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.Summary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(summary)
}
