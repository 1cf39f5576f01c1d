// Package memory implementa los puertos de repository sobre el estado de una
// única sesión en memoria. No hay persistencia: todo vive lo que vive el
// proceso, igual que la sesión de la UI a la que sirve.
package memory

import (
	"sync"

	"github.com/jhoicas/almacen-dashboard/internal/domain"
	"github.com/jhoicas/almacen-dashboard/internal/domain/entity"
)

// SessionStore mantiene catálogo, ventas y compras de la sesión.
//
// El mutex existe porque fiber atiende peticiones en paralelo; el modelo de
// datos sigue siendo una sola sesión secuencial y cada operación se aplica
// completa o no se aplica.
type SessionStore struct {
	mu        sync.Mutex
	products  []entity.Product
	sales     []entity.Sale
	purchases []entity.Purchase

	// Contadores monotónicos, independientes del tamaño de las listas:
	// eliminar registros no libera IDs.
	nextSaleID     int64
	nextPurchaseID int64
}

// NewSessionStore crea una sesión vacía.
func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

// ── CatalogRepository ─────────────────────────────────────────────────────────

// Products devuelve una copia del catálogo en su orden original.
func (s *SessionStore) Products() []entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Product, len(s.products))
	copy(out, s.products)
	return out
}

// ProductByID resuelve una referencia por su ID.
func (s *SessionStore) ProductByID(id int64) (*entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

// DecrementStock resta unidades a una referencia. La verificación de stock se
// repite aquí, bajo el lock, para que el stock nunca quede negativo aunque
// dos peticiones compitan por las mismas unidades.
func (s *SessionStore) DecrementStock(id int64, quantity int) error {
	if quantity < 1 {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		if s.products[i].Stock < quantity {
			return domain.ErrInsufficientStock
		}
		s.products[i].Stock -= quantity
		return nil
	}
	return domain.ErrProductNotFound
}

// ReplaceProducts sustituye el catálogo completo.
func (s *SessionStore) ReplaceProducts(products []entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = make([]entity.Product, len(products))
	copy(s.products, products)
}

// ── SaleRepository ────────────────────────────────────────────────────────────

// Sales devuelve una copia del historial, más reciente primero.
func (s *SessionStore) Sales() []entity.Sale {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Sale, len(s.sales))
	copy(out, s.sales)
	return out
}

// AppendSale asigna el siguiente ID y antepone la venta al historial.
func (s *SessionStore) AppendSale(sale entity.Sale) entity.Sale {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSaleID++
	sale.ID = s.nextSaleID
	s.sales = append([]entity.Sale{sale}, s.sales...)
	return sale
}

// RemoveSale elimina una venta por ID; el contador no retrocede.
func (s *SessionStore) RemoveSale(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sale := range s.sales {
		if sale.ID == id {
			s.sales = append(s.sales[:i], s.sales[i+1:]...)
			return true
		}
	}
	return false
}

// ── PurchaseRepository ────────────────────────────────────────────────────────

// Purchases devuelve una copia de las órdenes de compra.
func (s *SessionStore) Purchases() []entity.Purchase {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Purchase, len(s.purchases))
	copy(out, s.purchases)
	return out
}

// AppendPurchase registra una orden y le asigna el siguiente ID.
func (s *SessionStore) AppendPurchase(p entity.Purchase) entity.Purchase {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextPurchaseID++
	p.ID = s.nextPurchaseID
	s.purchases = append(s.purchases, p)
	return p
}
