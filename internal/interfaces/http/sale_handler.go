package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-dashboard/internal/application/dto"
	"github.com/jhoicas/almacen-dashboard/internal/application/sales"
	"github.com/jhoicas/almacen-dashboard/internal/domain"
	"github.com/jhoicas/almacen-dashboard/internal/domain/repository"
)

// SaleHandler maneja el historial de ventas y el alta de nuevas ventas.
type SaleHandler struct {
	recordSale *sales.RecordSaleUseCase
	saleRepo   repository.SaleRepository
}

// NewSaleHandler construye el handler.
func NewSaleHandler(recordSale *sales.RecordSaleUseCase, saleRepo repository.SaleRepository) *SaleHandler {
	return &SaleHandler{recordSale: recordSale, saleRepo: saleRepo}
}

// List devuelve el historial de ventas, más reciente primero.
// GET /api/sales
func (h *SaleHandler) List(c *fiber.Ctx) error {
	history := h.saleRepo.Sales()
	out := make([]dto.SaleDTO, 0, len(history))
	for _, s := range history {
		out = append(out, dto.SaleDTO{
			ID:          s.ID,
			ProductName: s.ProductName,
			Quantity:    s.Quantity,
			Price:       s.Price,
			Discount:    s.Discount,
			Total:       s.Total,
			Date:        s.Date,
		})
	}
	return c.JSON(fiber.Map{"sales": out, "total": len(out)})
}

// Create registra una venta contra el stock actual.
// POST /api/sales  {product_id, quantity, discount_percent}
//
// Respuestas: 201 con la venta creada; 400 entrada inválida; 404 producto
// inexistente; 409 stock insuficiente. Los errores de validación son
// rechazos de esa petición, no fallos del proceso.
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.SaleInputDTO
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "cuerpo inválido",
		})
	}

	sale, err := h.recordSale.RecordSale(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "VALIDATION", Message: "cantidad o descuento fuera de rango",
			})
		case errors.Is(err, domain.ErrProductNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Code: "NOT_FOUND", Message: "producto no encontrado",
			})
		case errors.Is(err, domain.ErrInsufficientStock):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SaleDTO{
		ID:          sale.ID,
		ProductName: sale.ProductName,
		Quantity:    sale.Quantity,
		Price:       sale.Price,
		Discount:    sale.Discount,
		Total:       sale.Total,
		Date:        sale.Date,
	})
}
