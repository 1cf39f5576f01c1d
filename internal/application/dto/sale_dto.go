package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleInputDTO petición de venta que llega de la capa de presentación.
type SaleInputDTO struct {
	ProductID       int64           `json:"product_id"`
	Quantity        int             `json:"quantity"`
	DiscountPercent decimal.Decimal `json:"discount_percent"` // 0–100
}

// SaleDTO venta registrada, tal como se expone al dashboard.
type SaleDTO struct {
	ID          int64           `json:"id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Discount    decimal.Decimal `json:"discount"`
	Total       decimal.Decimal `json:"total"`
	Date        time.Time       `json:"date"`
}

// PurchaseDTO orden de compra con su etiqueta de estado ya resuelta.
type PurchaseDTO struct {
	ID          int64           `json:"id"`
	ProductName string          `json:"product_name"`
	Supplier    string          `json:"supplier"`
	Quantity    int             `json:"quantity"`
	CostPrice   decimal.Decimal `json:"cost_price"`
	Total       decimal.Decimal `json:"total"`
	Date        time.Time       `json:"date"`
	Status      string          `json:"status"`
	StatusLabel string          `json:"status_label"`
}

// ProductDTO referencia del catálogo con su estado de stock derivado.
type ProductDTO struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Stock       int             `json:"stock"`
	Price       decimal.Decimal `json:"price"`
	Supplier    string          `json:"supplier"`
	MinStock    int             `json:"min_stock"`
	StatusLabel string          `json:"status_label"`
}
