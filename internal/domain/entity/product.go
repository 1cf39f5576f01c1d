package entity

import "github.com/shopspring/decimal"

// Product representa una referencia del catálogo del almacén.
// El stock solo lo decrementa el motor de ventas; altas, bajas y ajustes de
// catálogo llegan desde colaboradores externos al núcleo.
type Product struct {
	ID       int64
	Name     string
	Category string
	Stock    int             // unidades disponibles, nunca negativo
	Price    decimal.Decimal // precio de venta unitario
	Supplier string
	MinStock int // umbral de reposición
}

// StockValue devuelve el valor del inventario de la referencia (stock × precio).
func (p Product) StockValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Stock)))
}

// IsLowStock indica si la referencia está por debajo de su umbral de
// reposición. La comparación es estricta: stock == MinStock no es stock bajo.
func (p Product) IsLowStock() bool {
	return p.Stock < p.MinStock
}
