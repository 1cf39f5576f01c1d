package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseStatus estado de una orden de compra. El núcleo no gestiona las
// transiciones; el estado lo fija el colaborador que administra las compras.
type PurchaseStatus string

const (
	PurchasePending   PurchaseStatus = "pending"
	PurchaseReceived  PurchaseStatus = "received"
	PurchaseCancelled PurchaseStatus = "cancelled"
)

// Valid indica si el estado es uno de los tres conocidos.
func (s PurchaseStatus) Valid() bool {
	switch s {
	case PurchasePending, PurchaseReceived, PurchaseCancelled:
		return true
	}
	return false
}

// Purchase es una orden de compra a proveedor. De solo lectura para el
// núcleo: se agrega y se reporta, nunca se muta aquí.
type Purchase struct {
	ID          int64
	ProductName string // copia del nombre, igual que en Sale
	Supplier    string
	Quantity    int
	CostPrice   decimal.Decimal
	Total       decimal.Decimal
	Date        time.Time
	Status      PurchaseStatus
}
