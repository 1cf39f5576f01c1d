package excel_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/almacen-dashboard/internal/application/analytics"
	"github.com/jhoicas/almacen-dashboard/internal/application/export"
	"github.com/jhoicas/almacen-dashboard/internal/infrastructure/excel"
	"github.com/jhoicas/almacen-dashboard/internal/infrastructure/memory"
)

func demoData(t *testing.T) export.ReportData {
	t.Helper()
	store := memory.NewSeededStore()
	summary, err := analytics.NewSummaryUseCase(store, store, 3).Summary(context.Background())
	require.NoError(t, err)
	return export.ReportData{
		Products:  store.Products(),
		Sales:     store.Sales(),
		Purchases: store.Purchases(),
		Summary:   *summary,
	}
}

func generateWorkbook(t *testing.T) *excelize.File {
	t.Helper()
	g := excel.NewWorkbookGenerator("$")
	raw, err := g.Generate(context.Background(), demoData(t))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err, "el artefacto debe ser un XLSX legible")
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestGenerate_CuatroHojasEnOrden(t *testing.T) {
	f := generateWorkbook(t)
	assert.Equal(t, []string{"Resumen", "Productos", "Ventas", "Compras"}, f.GetSheetList())
}

func TestGenerate_HojaResumen(t *testing.T) {
	f := generateWorkbook(t)

	cases := []struct {
		cell string
		want string
	}{
		{"A1", "Indicador"},
		{"B1", "Valor"},
		{"A2", "Ingresos totales"},
		{"B2", "259.500 $"},
		{"A3", "Unidades en bodega"},
		{"B3", "91"},
		{"A4", "Referencias"},
		{"B4", "5"},
		{"A5", "Requieren reposición"},
		{"B5", "1"},
		{"A6", "Ventas"},
		{"B6", "3"},
	}
	for _, tc := range cases {
		got, err := f.GetCellValue("Resumen", tc.cell)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "celda %s", tc.cell)
	}
}

func TestGenerate_HojaProductos(t *testing.T) {
	f := generateWorkbook(t)

	rows, err := f.GetRows("Productos")
	require.NoError(t, err)
	require.Len(t, rows, 6, "cabecera + 5 productos")
	assert.Equal(t,
		[]string{"Producto", "Categoría", "Stock", "Precio", "Proveedor", "Stock mínimo", "Estado"},
		rows[0])

	// El Apple Watch (fila 6) está bajo mínimo.
	status, err := f.GetCellValue("Productos", "G6")
	require.NoError(t, err)
	assert.Equal(t, "Requiere reposición", status)

	status, err = f.GetCellValue("Productos", "G2")
	require.NoError(t, err)
	assert.Equal(t, "En stock", status)
}

func TestGenerate_HojaVentas(t *testing.T) {
	f := generateWorkbook(t)

	rows, err := f.GetRows("Ventas")
	require.NoError(t, err)
	require.Len(t, rows, 4, "cabecera + 3 ventas")

	// La venta más reciente va primero, con fecha corta y moneda formateada.
	assert.Equal(t,
		[]string{"10/01/2024", "Smartphone Samsung Galaxy S23", "2", "65.000 $", "5", "123.500 $"},
		rows[1])
}

func TestGenerate_HojaCompras(t *testing.T) {
	f := generateWorkbook(t)

	rows, err := f.GetRows("Compras")
	require.NoError(t, err)
	require.Len(t, rows, 3, "cabecera + 2 compras")

	received, err := f.GetCellValue("Compras", "G2")
	require.NoError(t, err)
	assert.Equal(t, "Recibido", received)

	pending, err := f.GetCellValue("Compras", "G3")
	require.NoError(t, err)
	assert.Equal(t, "En tránsito", pending)
}

func TestContratoDelGenerador(t *testing.T) {
	g := excel.NewWorkbookGenerator("$")
	assert.Equal(t, "xlsx", g.Extension())
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		g.ContentType())
}
