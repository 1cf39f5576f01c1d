package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-dashboard/internal/application/dto"
	"github.com/jhoicas/almacen-dashboard/internal/domain/report"
	"github.com/jhoicas/almacen-dashboard/internal/domain/repository"
)

// ProductHandler maneja los listados del catálogo.
type ProductHandler struct {
	catalogRepo repository.CatalogRepository
}

// NewProductHandler construye el handler.
func NewProductHandler(catalogRepo repository.CatalogRepository) *ProductHandler {
	return &ProductHandler{catalogRepo: catalogRepo}
}

// List devuelve el catálogo con el estado de stock derivado.
// GET /api/products?category=Electrónica (vacío = todas las categorías)
func (h *ProductHandler) List(c *fiber.Ctx) error {
	category := c.Query("category")

	products := h.catalogRepo.Products()
	out := make([]dto.ProductDTO, 0, len(products))
	for _, p := range products {
		if category != "" && p.Category != category {
			continue
		}
		out = append(out, dto.ProductDTO{
			ID:          p.ID,
			Name:        p.Name,
			Category:    p.Category,
			Stock:       p.Stock,
			Price:       p.Price,
			Supplier:    p.Supplier,
			MinStock:    p.MinStock,
			StatusLabel: report.StockStatusLabel(p),
		})
	}

	return c.JSON(fiber.Map{"products": out, "total": len(out)})
}
