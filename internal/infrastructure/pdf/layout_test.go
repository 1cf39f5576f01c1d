package pdf

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-dashboard/internal/application/analytics"
	"github.com/jhoicas/almacen-dashboard/internal/application/export"
	"github.com/jhoicas/almacen-dashboard/internal/infrastructure/memory"
)

func TestSalesTableBottom(t *testing.T) {
	// margen (10) + título (8) + cabecera (8) = 26, más 7 mm por fila.
	assert.Equal(t, 26.0, salesTableBottom(0))
	assert.Equal(t, 33.0, salesTableBottom(1))
	assert.Equal(t, 47.0, salesTableBottom(3))
}

func TestPurchasesNeedOwnPage_Umbral(t *testing.T) {
	g := NewMarotoReportGenerator(Options{CurrencySymbol: "$", PageBreakY: 250})

	// Con 32 ventas la tabla termina exactamente en el umbral (26 + 32×7 = 250)
	// y las compras caben debajo; con una venta más se fuerza página nueva.
	assert.False(t, g.purchasesNeedOwnPage(32))
	assert.True(t, g.purchasesNeedOwnPage(33))

	assert.False(t, g.purchasesNeedOwnPage(0))
}

func TestGenerate_DocumentoPDF(t *testing.T) {
	store := memory.NewSeededStore()
	summary, err := analytics.NewSummaryUseCase(store, store, 3).Summary(context.Background())
	require.NoError(t, err)

	g := NewMarotoReportGenerator(Options{CurrencySymbol: "$", PageBreakY: 250})
	raw, err := g.Generate(context.Background(), export.ReportData{
		Products:    store.Products(),
		Sales:       store.Sales(),
		Purchases:   store.Purchases(),
		Summary:     *summary,
		GeneratedAt: time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.NotEmpty(t, raw)
	assert.Equal(t, "%PDF", string(raw[:4]), "el artefacto debe abrir con la firma PDF")
}
