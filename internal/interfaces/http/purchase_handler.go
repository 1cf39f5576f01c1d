package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-dashboard/internal/application/dto"
	"github.com/jhoicas/almacen-dashboard/internal/domain/report"
	"github.com/jhoicas/almacen-dashboard/internal/domain/repository"
)

// PurchaseHandler maneja el listado de órdenes de compra.
type PurchaseHandler struct {
	purchaseRepo repository.PurchaseRepository
}

// NewPurchaseHandler construye el handler.
func NewPurchaseHandler(purchaseRepo repository.PurchaseRepository) *PurchaseHandler {
	return &PurchaseHandler{purchaseRepo: purchaseRepo}
}

// List devuelve las órdenes de compra con su etiqueta de estado resuelta.
// GET /api/purchases
func (h *PurchaseHandler) List(c *fiber.Ctx) error {
	purchases := h.purchaseRepo.Purchases()
	out := make([]dto.PurchaseDTO, 0, len(purchases))
	for _, p := range purchases {
		out = append(out, dto.PurchaseDTO{
			ID:          p.ID,
			ProductName: p.ProductName,
			Supplier:    p.Supplier,
			Quantity:    p.Quantity,
			CostPrice:   p.CostPrice,
			Total:       p.Total,
			Date:        p.Date,
			Status:      string(p.Status),
			StatusLabel: report.PurchaseStatusLabel(p.Status),
		})
	}
	return c.JSON(fiber.Map{"purchases": out, "total": len(out)})
}
