package dto

import "github.com/shopspring/decimal"

// SummaryDTO respuesta de GET /api/dashboard/summary y entrada de los
// formateadores de exportación. Se recalcula en cada llamada; no se persiste.
type SummaryDTO struct {
	TotalRevenue    decimal.Decimal `json:"total_revenue"`    // suma de Sale.Total
	TotalStock      int             `json:"total_stock"`      // unidades en bodega
	ProductNames    int             `json:"product_names"`    // referencias en catálogo
	LowStockCount   int             `json:"low_stock_count"`  // stock < mínimo (estricto)
	SalesCount      int             `json:"sales_count"`      // ventas registradas
	AverageDiscount decimal.Decimal `json:"average_discount"` // media aritmética; 0 sin ventas

	// Top de referencias por valor de inventario (stock × precio),
	// orden descendente, empates en orden de catálogo.
	TopProducts []TopProductDTO `json:"top_products"`

	// Desglose por categoría en orden de primera aparición en el catálogo.
	Categories []CategoryBreakdownDTO `json:"categories"`
}

// TopProductDTO una referencia del ranking por valor de inventario.
type TopProductDTO struct {
	ProductID  int64           `json:"product_id"`
	Name       string          `json:"name"`
	Stock      int             `json:"stock"`
	Price      decimal.Decimal `json:"price"`
	StockValue decimal.Decimal `json:"stock_value"` // stock × precio
}

// CategoryBreakdownDTO agregado de una categoría.
type CategoryBreakdownDTO struct {
	Category string          `json:"category"`
	Products int             `json:"products"` // referencias en la categoría
	Stock    int             `json:"stock"`    // unidades sumadas
	Value    decimal.Decimal `json:"value"`    // Σ stock × precio
	Share    decimal.Decimal `json:"share"`    // % sobre el valor total; 0 si el total es 0
}
