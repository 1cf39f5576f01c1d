// Package analytics calcula las métricas derivadas del dashboard. Todas las
// funciones son puras sobre las colecciones recibidas; no hay caché porque el
// cálculo es O(n) sobre memoria y recalcular jamás queda obsoleto.
package analytics

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-dashboard/internal/application/dto"
	"github.com/jhoicas/almacen-dashboard/internal/domain/entity"
	"github.com/jhoicas/almacen-dashboard/internal/domain/repository"
)

var oneHundred = decimal.NewFromInt(100)

// TotalRevenue suma los totales del historial de ventas.
func TotalRevenue(sales []entity.Sale) decimal.Decimal {
	sum := decimal.Zero
	for _, s := range sales {
		sum = sum.Add(s.Total)
	}
	return sum
}

// TotalStock suma las unidades en bodega de todo el catálogo.
func TotalStock(products []entity.Product) int {
	total := 0
	for _, p := range products {
		total += p.Stock
	}
	return total
}

// LowStockCount cuenta referencias con stock estrictamente por debajo de su
// mínimo. stock == mínimo no cuenta.
func LowStockCount(products []entity.Product) int {
	count := 0
	for _, p := range products {
		if p.IsLowStock() {
			count++
		}
	}
	return count
}

// AverageDiscount media aritmética del descuento de las ventas, redondeada a
// dos decimales. Sin ventas devuelve 0 (no hay división).
func AverageDiscount(sales []entity.Sale) decimal.Decimal {
	if len(sales) == 0 {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, s := range sales {
		sum = sum.Add(s.Discount)
	}
	return sum.Div(decimal.NewFromInt(int64(len(sales)))).Round(2)
}

// TopByValue devuelve las n referencias de mayor valor de inventario
// (stock × precio), descendente. El orden relativo de los empates es el del
// catálogo de entrada (orden estable).
func TopByValue(products []entity.Product, n int) []dto.TopProductDTO {
	ranked := make([]entity.Product, len(products))
	copy(ranked, products)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].StockValue().GreaterThan(ranked[j].StockValue())
	})
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	out := make([]dto.TopProductDTO, 0, len(ranked))
	for _, p := range ranked {
		out = append(out, dto.TopProductDTO{
			ProductID:  p.ID,
			Name:       p.Name,
			Stock:      p.Stock,
			Price:      p.Price,
			StockValue: p.StockValue(),
		})
	}
	return out
}

// CategoryBreakdown agrupa el catálogo por categoría, en orden de primera
// aparición, con referencias, unidades, valor de inventario y participación
// porcentual sobre el valor total. Si el valor total es cero, todas las
// participaciones son 0.
func CategoryBreakdown(products []entity.Product) []dto.CategoryBreakdownDTO {
	index := make(map[string]int)
	var groups []dto.CategoryBreakdownDTO

	grand := decimal.Zero
	for _, p := range products {
		i, ok := index[p.Category]
		if !ok {
			i = len(groups)
			index[p.Category] = i
			groups = append(groups, dto.CategoryBreakdownDTO{
				Category: p.Category,
				Value:    decimal.Zero,
				Share:    decimal.Zero,
			})
		}
		groups[i].Products++
		groups[i].Stock += p.Stock
		groups[i].Value = groups[i].Value.Add(p.StockValue())
		grand = grand.Add(p.StockValue())
	}

	if grand.IsZero() {
		return groups
	}
	for i := range groups {
		groups[i].Share = groups[i].Value.Mul(oneHundred).Div(grand).Round(2)
	}
	return groups
}

// SummaryUseCase arma el resumen completo del dashboard a partir de la sesión.
type SummaryUseCase struct {
	catalogRepo repository.CatalogRepository
	saleRepo    repository.SaleRepository
	topProducts int
}

// NewSummaryUseCase construye el caso de uso. topProducts es el tamaño del
// ranking por valor de inventario (el widget del dashboard usa 3).
func NewSummaryUseCase(
	catalogRepo repository.CatalogRepository,
	saleRepo repository.SaleRepository,
	topProducts int,
) *SummaryUseCase {
	return &SummaryUseCase{
		catalogRepo: catalogRepo,
		saleRepo:    saleRepo,
		topProducts: topProducts,
	}
}

// Summary recalcula todas las métricas derivadas sobre el estado actual.
func (uc *SummaryUseCase) Summary(ctx context.Context) (*dto.SummaryDTO, error) {
	_ = ctx

	products := uc.catalogRepo.Products()
	sales := uc.saleRepo.Sales()

	return &dto.SummaryDTO{
		TotalRevenue:    TotalRevenue(sales),
		TotalStock:      TotalStock(products),
		ProductNames:    len(products),
		LowStockCount:   LowStockCount(products),
		SalesCount:      len(sales),
		AverageDiscount: AverageDiscount(sales),
		TopProducts:     TopByValue(products, uc.topProducts),
		Categories:      CategoryBreakdown(products),
	}, nil
}
