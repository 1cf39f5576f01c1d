// Package repository define los puertos de acceso a las tres colecciones de
// la sesión. El núcleo recibe estas interfaces por inyección; nunca toca
// estado ambiente.
package repository

import "github.com/jhoicas/almacen-dashboard/internal/domain/entity"

// CatalogRepository acceso al catálogo de productos de la sesión.
type CatalogRepository interface {
	// Products devuelve una copia del catálogo en su orden original.
	Products() []entity.Product
	// ProductByID resuelve una referencia; domain.ErrProductNotFound si no existe.
	ProductByID(id int64) (*entity.Product, error)
	// DecrementStock resta unidades verificando que el stock no quede
	// negativo; domain.ErrInsufficientStock si no alcanza.
	DecrementStock(id int64, quantity int) error
	// ReplaceProducts sustituye el catálogo completo (colaborador externo).
	ReplaceProducts(products []entity.Product)
}

// SaleRepository historial de ventas, orden "más reciente primero".
type SaleRepository interface {
	Sales() []entity.Sale
	// AppendSale asigna el siguiente ID monotónico, antepone la venta al
	// historial y devuelve la venta ya identificada.
	AppendSale(s entity.Sale) entity.Sale
	// RemoveSale elimina una venta por ID. El contador de IDs no retrocede:
	// un ID eliminado jamás se reutiliza.
	RemoveSale(id int64) bool
}

// PurchaseRepository órdenes de compra; de solo lectura para el núcleo.
type PurchaseRepository interface {
	Purchases() []entity.Purchase
	// AppendPurchase registra una orden creada por un colaborador externo.
	AppendPurchase(p entity.Purchase) entity.Purchase
}
