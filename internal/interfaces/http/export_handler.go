package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-dashboard/internal/application/dto"
	"github.com/jhoicas/almacen-dashboard/internal/application/export"
	"github.com/jhoicas/almacen-dashboard/internal/domain"
)

// ExportHandler entrega los reportes exportados como descarga.
type ExportHandler struct {
	uc *export.UseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *export.UseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// Export genera y descarga el reporte en el formato pedido.
// GET /api/reports/export/:format  (xlsx | pdf | csv)
//
// La respuesta lleva Content-Disposition: attachment con el nombre
// convencional del artefacto (Reporte_<tag>_<dd-mm-aaaa>.<ext>).
func (h *ExportHandler) Export(c *fiber.Ctx) error {
	format := c.Params("format")

	artifact, err := h.uc.Export(c.Context(), format)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "UNKNOWN_FORMAT", Message: "formato no soportado: " + format,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "EXPORT_FAILED", Message: err.Error(),
		})
	}

	c.Set(fiber.HeaderContentType, artifact.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	return c.Send(artifact.Data)
}
