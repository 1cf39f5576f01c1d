package memory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-dashboard/internal/domain/entity"
)

// NewSeededStore crea la sesión con el juego de datos de demostración del
// dashboard: cinco referencias, tres ventas y dos compras. Las ventas se
// agregan de la más antigua a la más reciente para que el historial quede
// ordenado "más reciente primero".
func NewSeededStore() *SessionStore {
	s := NewSessionStore()

	s.ReplaceProducts([]entity.Product{
		{ID: 1, Name: "Smartphone Samsung Galaxy S23", Category: "Electrónica", Stock: 45, Price: decimal.NewFromInt(65000), Supplier: "Tech Supplier", MinStock: 10},
		{ID: 2, Name: "Portátil ASUS ROG", Category: "Electrónica", Stock: 8, Price: decimal.NewFromInt(120000), Supplier: "Tech Supplier", MinStock: 5},
		{ID: 3, Name: "Audífonos Sony WH-1000XM5", Category: "Accesorios", Stock: 23, Price: decimal.NewFromInt(28000), Supplier: "Audio Store", MinStock: 15},
		{ID: 4, Name: "Cafetera DeLonghi", Category: "Electrodomésticos", Stock: 12, Price: decimal.NewFromInt(35000), Supplier: "Home Goods", MinStock: 8},
		{ID: 5, Name: "Reloj inteligente Apple Watch", Category: "Electrónica", Stock: 3, Price: decimal.NewFromInt(45000), Supplier: "Tech Supplier", MinStock: 10},
	})

	s.AppendSale(entity.Sale{
		ProductName: "Portátil ASUS ROG",
		Quantity:    1,
		Price:       decimal.NewFromInt(120000),
		Discount:    decimal.NewFromInt(10),
		Total:       decimal.NewFromInt(108000),
		Date:        date(2024, time.January, 9),
	})
	s.AppendSale(entity.Sale{
		ProductName: "Audífonos Sony WH-1000XM5",
		Quantity:    1,
		Price:       decimal.NewFromInt(28000),
		Discount:    decimal.Zero,
		Total:       decimal.NewFromInt(28000),
		Date:        date(2024, time.January, 10),
	})
	s.AppendSale(entity.Sale{
		ProductName: "Smartphone Samsung Galaxy S23",
		Quantity:    2,
		Price:       decimal.NewFromInt(65000),
		Discount:    decimal.NewFromInt(5),
		Total:       decimal.NewFromInt(123500),
		Date:        date(2024, time.January, 10),
	})

	s.AppendPurchase(entity.Purchase{
		ProductName: "Smartphone Samsung Galaxy S23",
		Supplier:    "Tech Supplier",
		Quantity:    50,
		CostPrice:   decimal.NewFromInt(55000),
		Total:       decimal.NewFromInt(2750000),
		Date:        date(2024, time.January, 5),
		Status:      entity.PurchaseReceived,
	})
	s.AppendPurchase(entity.Purchase{
		ProductName: "Reloj inteligente Apple Watch",
		Supplier:    "Tech Supplier",
		Quantity:    20,
		CostPrice:   decimal.NewFromInt(38000),
		Total:       decimal.NewFromInt(760000),
		Date:        date(2024, time.January, 8),
		Status:      entity.PurchasePending,
	})

	return s
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
