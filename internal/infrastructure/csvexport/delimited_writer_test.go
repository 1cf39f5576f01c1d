package csvexport_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-dashboard/internal/application/analytics"
	"github.com/jhoicas/almacen-dashboard/internal/application/export"
	"github.com/jhoicas/almacen-dashboard/internal/infrastructure/csvexport"
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

func TestGenerate_TresBloquesEnOrden(t *testing.T) {
	g := csvexport.NewDelimitedWriter("$")
	raw, err := g.Generate(context.Background(), demoData(t))
	require.NoError(t, err)

	// Las filas en blanco separan los bloques en el texto crudo; el lector
	// CSV las descarta al parsear.
	assert.Contains(t, string(raw), "\n\n", "debe haber una fila en blanco entre bloques")

	r := csv.NewReader(bytes.NewReader(raw))
	r.FieldsPerRecord = -1 // los bloques tienen anchos distintos
	records, err := r.ReadAll()
	require.NoError(t, err, "el artefacto debe ser CSV válido")

	// productos: sección + cabecera + 5; ventas: sección + cabecera + 3;
	// compras: sección + cabecera + 2.
	require.Len(t, records, 16)

	assert.Equal(t, []string{"PRODUCTOS EN BODEGA"}, records[0])
	assert.Equal(t,
		[]string{"Producto", "Categoría", "Stock", "Precio", "Proveedor", "Stock mínimo", "Estado"},
		records[1])

	assert.Equal(t, []string{"VENTAS"}, records[7])
	assert.Equal(t,
		[]string{"Fecha", "Producto", "Cantidad", "Precio", "Descuento %", "Total"},
		records[8])

	assert.Equal(t, []string{"COMPRAS"}, records[12])
	assert.Equal(t,
		[]string{"Fecha", "Producto", "Proveedor", "Cantidad", "Costo unitario", "Total", "Estado"},
		records[13])
}

func TestGenerate_FilasCompletas(t *testing.T) {
	g := csvexport.NewDelimitedWriter("$")
	raw, err := g.Generate(context.Background(), demoData(t))
	require.NoError(t, err)

	r := csv.NewReader(bytes.NewReader(raw))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	require.NoError(t, err)

	// Cada producto conserva sus 7 columnas, sin reordenar.
	for _, row := range records[2:7] {
		assert.Len(t, row, 7)
	}
	// La venta más reciente encabeza el bloque de ventas.
	newest := records[9]
	require.Len(t, newest, 6)
	assert.Equal(t, "10/01/2024", newest[0])
	assert.Equal(t, "Smartphone Samsung Galaxy S23", newest[1])
	assert.Equal(t, "2", newest[2])
	assert.Equal(t, "65.000 $", newest[3])
	assert.Equal(t, "5", newest[4])
	assert.Equal(t, "123.500 $", newest[5])
}

func TestGenerate_EtiquetasDeEstado(t *testing.T) {
	g := csvexport.NewDelimitedWriter("$")
	raw, err := g.Generate(context.Background(), demoData(t))
	require.NoError(t, err)

	r := csv.NewReader(bytes.NewReader(raw))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	require.NoError(t, err)

	received := records[14]
	pending := records[15]
	assert.Equal(t, "Recibido", received[6])
	assert.Equal(t, "En tránsito", pending[6])

	// Estado derivado del stock: el Apple Watch (3 < 10) requiere reposición.
	appleWatch := records[6]
	assert.Equal(t, "Requiere reposición", appleWatch[6])
	samsung := records[2]
	assert.Equal(t, "En stock", samsung[6])
}

func TestContratoDelGenerador(t *testing.T) {
	g := csvexport.NewDelimitedWriter("$")
	assert.Equal(t, "csv", g.Extension())
	assert.Equal(t, "text/csv; charset=utf-8", g.ContentType())
}
