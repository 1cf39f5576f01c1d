// Package sales implementa el motor de transacciones de venta: valida la
// petición contra el catálogo, calcula el total con descuento y aplica la
// venta (decremento de stock + alta en el historial).
package sales

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-dashboard/internal/application/dto"
	"github.com/jhoicas/almacen-dashboard/internal/domain"
	"github.com/jhoicas/almacen-dashboard/internal/domain/entity"
	"github.com/jhoicas/almacen-dashboard/internal/domain/repository"
)

var oneHundred = decimal.NewFromInt(100)

// RecordSaleUseCase construye y aplica ventas sobre la sesión.
type RecordSaleUseCase struct {
	catalogRepo repository.CatalogRepository
	saleRepo    repository.SaleRepository
	now         func() time.Time
}

// NewRecordSaleUseCase construye el caso de uso.
func NewRecordSaleUseCase(
	catalogRepo repository.CatalogRepository,
	saleRepo repository.SaleRepository,
) *RecordSaleUseCase {
	return &RecordSaleUseCase{
		catalogRepo: catalogRepo,
		saleRepo:    saleRepo,
		now:         time.Now,
	}
}

// RecordSale valida y aplica una venta. Orden de validación:
//
//  1. Rango de entrada: cantidad >= 1, descuento en [0, 100] → ErrInvalidInput.
//  2. Resolución del producto → ErrProductNotFound.
//  3. Stock suficiente → ErrInsufficientStock.
//
// Cualquier fallo es un rechazo terminal de esa petición: ni el catálogo ni
// el historial cambian. En éxito:
//
//	subtotal  = precio × cantidad
//	descuento = subtotal × porcentaje / 100
//	total     = subtotal − descuento
//
// La venta guarda una copia del nombre del producto y el precio vigente, y el
// almacén le asigna el siguiente ID monotónico.
func (uc *RecordSaleUseCase) RecordSale(ctx context.Context, input dto.SaleInputDTO) (*entity.Sale, error) {
	_ = ctx

	if input.Quantity < 1 {
		return nil, domain.ErrInvalidInput
	}
	if input.DiscountPercent.IsNegative() || input.DiscountPercent.GreaterThan(oneHundred) {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.catalogRepo.ProductByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product.Stock < input.Quantity {
		return nil, domain.ErrInsufficientStock
	}

	quantity := decimal.NewFromInt(int64(input.Quantity))
	subtotal := product.Price.Mul(quantity)
	discountAmount := subtotal.Mul(input.DiscountPercent).Div(oneHundred)
	total := subtotal.Sub(discountAmount)

	// El almacén vuelve a verificar el stock bajo su lock, así el decremento
	// nunca deja unidades negativas aunque dos peticiones compitan.
	if err := uc.catalogRepo.DecrementStock(product.ID, input.Quantity); err != nil {
		return nil, err
	}

	sale := uc.saleRepo.AppendSale(entity.Sale{
		ProductName: product.Name,
		Quantity:    input.Quantity,
		Price:       product.Price,
		Discount:    input.DiscountPercent,
		Total:       total,
		Date:        uc.now(),
	})
	return &sale, nil
}
