package sales_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-dashboard/internal/application/dto"
	"github.com/jhoicas/almacen-dashboard/internal/application/sales"
	"github.com/jhoicas/almacen-dashboard/internal/domain"
	"github.com/jhoicas/almacen-dashboard/internal/domain/entity"
	"github.com/jhoicas/almacen-dashboard/internal/infrastructure/memory"
)

// newStore arma una sesión con un único producto P:
// stock=10, precio=100, mínimo=5.
func newStore() *memory.SessionStore {
	s := memory.NewSessionStore()
	s.ReplaceProducts([]entity.Product{{
		ID:       1,
		Name:     "Producto P",
		Category: "Pruebas",
		Stock:    10,
		Price:    decimal.NewFromInt(100),
		Supplier: "Proveedor",
		MinStock: 5,
	}})
	return s
}

func TestRecordSale_VentaValida(t *testing.T) {
	store := newStore()
	uc := sales.NewRecordSaleUseCase(store, store)

	sale, err := uc.RecordSale(context.Background(), dto.SaleInputDTO{
		ProductID:       1,
		Quantity:        3,
		DiscountPercent: decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	// total = 100 × 3 × (1 − 10/100) = 270, exacto
	assert.True(t, sale.Total.Equal(decimal.NewFromInt(270)),
		"el total debe ser exactamente 270, fue %s", sale.Total)
	assert.Equal(t, "Producto P", sale.ProductName, "la venta copia el nombre del producto")
	assert.True(t, sale.Price.Equal(decimal.NewFromInt(100)), "la venta conserva el precio vigente")

	p, err := store.ProductByID(1)
	require.NoError(t, err)
	assert.Equal(t, 7, p.Stock, "el stock debe bajar de 10 a 7")
	assert.False(t, p.IsLowStock(), "7 unidades con mínimo 5 sigue en stock")
}

func TestRecordSale_SinDescuento(t *testing.T) {
	store := newStore()
	uc := sales.NewRecordSaleUseCase(store, store)

	sale, err := uc.RecordSale(context.Background(), dto.SaleInputDTO{
		ProductID: 1,
		Quantity:  2,
	})
	require.NoError(t, err)
	assert.True(t, sale.Total.Equal(decimal.NewFromInt(200)))
}

func TestRecordSale_StockInsuficiente(t *testing.T) {
	store := newStore()
	uc := sales.NewRecordSaleUseCase(store, store)

	_, err := uc.RecordSale(context.Background(), dto.SaleInputDTO{
		ProductID: 1,
		Quantity:  20,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Rechazo terminal: nada cambió.
	p, _ := store.ProductByID(1)
	assert.Equal(t, 10, p.Stock, "el stock no debe cambiar en un rechazo")
	assert.Empty(t, store.Sales(), "el historial no debe cambiar en un rechazo")
}

func TestRecordSale_ProductoInexistente(t *testing.T) {
	store := newStore()
	uc := sales.NewRecordSaleUseCase(store, store)

	_, err := uc.RecordSale(context.Background(), dto.SaleInputDTO{
		ProductID: 99,
		Quantity:  1,
	})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.Empty(t, store.Sales())
}

func TestRecordSale_EntradaFueraDeRango(t *testing.T) {
	store := newStore()
	uc := sales.NewRecordSaleUseCase(store, store)

	cases := []struct {
		name  string
		input dto.SaleInputDTO
	}{
		{"cantidad cero", dto.SaleInputDTO{ProductID: 1, Quantity: 0}},
		{"cantidad negativa", dto.SaleInputDTO{ProductID: 1, Quantity: -3}},
		{"descuento negativo", dto.SaleInputDTO{ProductID: 1, Quantity: 1, DiscountPercent: decimal.NewFromInt(-1)}},
		{"descuento mayor a 100", dto.SaleInputDTO{ProductID: 1, Quantity: 1, DiscountPercent: decimal.NewFromInt(101)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.RecordSale(context.Background(), tc.input)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	p, _ := store.ProductByID(1)
	assert.Equal(t, 10, p.Stock)
}

func TestRecordSale_DescuentoCien(t *testing.T) {
	store := newStore()
	uc := sales.NewRecordSaleUseCase(store, store)

	sale, err := uc.RecordSale(context.Background(), dto.SaleInputDTO{
		ProductID:       1,
		Quantity:        1,
		DiscountPercent: decimal.NewFromInt(100),
	})
	require.NoError(t, err, "descuento 100 es el borde superior válido")
	assert.True(t, sale.Total.IsZero(), "descuento total deja la venta en 0")
}

func TestRecordSale_HistorialMasRecientePrimero(t *testing.T) {
	store := newStore()
	uc := sales.NewRecordSaleUseCase(store, store)

	first, err := uc.RecordSale(context.Background(), dto.SaleInputDTO{ProductID: 1, Quantity: 1})
	require.NoError(t, err)
	second, err := uc.RecordSale(context.Background(), dto.SaleInputDTO{ProductID: 1, Quantity: 2})
	require.NoError(t, err)

	assert.Greater(t, second.ID, first.ID, "los IDs deben ser estrictamente crecientes")

	history := store.Sales()
	require.Len(t, history, 2)
	assert.Equal(t, second.ID, history[0].ID, "la venta más reciente encabeza el historial")
	assert.Equal(t, first.ID, history[1].ID)
}
