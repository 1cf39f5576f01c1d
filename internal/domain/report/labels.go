package report

import "github.com/jhoicas/almacen-dashboard/internal/domain/entity"

// Etiquetas de estado de stock.
const (
	LabelInStock      = "En stock"
	LabelNeedsRestock = "Requiere reposición"
)

// purchaseStatusLabels tabla fija de tres entradas; contrato del núcleo.
var purchaseStatusLabels = map[entity.PurchaseStatus]string{
	entity.PurchaseReceived:  "Recibido",
	entity.PurchasePending:   "En tránsito",
	entity.PurchaseCancelled: "Cancelado",
}

// PurchaseStatusLabel devuelve la etiqueta del estado de una compra.
// Un estado desconocido se muestra tal cual; el núcleo no lo rechaza.
func PurchaseStatusLabel(s entity.PurchaseStatus) string {
	if label, ok := purchaseStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

// StockStatusLabel devuelve la etiqueta de disponibilidad derivada del
// producto: "Requiere reposición" si stock < stock mínimo (estricto),
// "En stock" en caso contrario.
func StockStatusLabel(p entity.Product) string {
	if p.IsLowStock() {
		return LabelNeedsRestock
	}
	return LabelInStock
}
