package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale es una venta ya aplicada. Inmutable una vez creada; el historial la
// mantiene en orden "más reciente primero".
//
// ProductName es una copia del nombre en el momento de la venta, no una
// referencia viva al catálogo: renombrar o eliminar el producto después no
// altera las ventas registradas.
type Sale struct {
	ID          int64
	ProductName string
	Quantity    int
	Price       decimal.Decimal // precio unitario al momento de la venta
	Discount    decimal.Decimal // porcentaje 0–100
	Total       decimal.Decimal // precio × cantidad × (1 − descuento/100)
	Date        time.Time
}
