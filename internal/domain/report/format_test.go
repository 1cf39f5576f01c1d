package report_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/almacen-dashboard/internal/domain/entity"
	"github.com/jhoicas/almacen-dashboard/internal/domain/report"
)

func TestMoney_SeparadorDeMiles(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0 $"},
		{999, "999 $"},
		{1000, "1.000 $"},
		{25000, "25.000 $"},
		{2750000, "2.750.000 $"},
		{-1000000, "-1.000.000 $"},
	}
	for _, tc := range cases {
		got := report.Money(decimal.NewFromInt(tc.in), "$")
		assert.Equal(t, tc.want, got)
	}
}

func TestMoney_RedondeaDecimales(t *testing.T) {
	got := report.Money(decimal.NewFromFloat(1234.56), "$")
	assert.Equal(t, "1.235 $", got, "los montos se muestran como enteros redondeados")
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "10%", report.Percent(decimal.NewFromInt(10)))
	assert.Equal(t, "0%", report.Percent(decimal.Zero))
}

func TestArtifactName(t *testing.T) {
	generatedAt := time.Date(2024, time.January, 10, 15, 4, 5, 0, time.UTC)
	got := report.ArtifactName("almacen", generatedAt, "xlsx")
	assert.Equal(t, "Reporte_almacen_10-01-2024.xlsx", got)
}

func TestPurchaseStatusLabel_TablaFija(t *testing.T) {
	assert.Equal(t, "Recibido", report.PurchaseStatusLabel(entity.PurchaseReceived))
	assert.Equal(t, "En tránsito", report.PurchaseStatusLabel(entity.PurchasePending))
	assert.Equal(t, "Cancelado", report.PurchaseStatusLabel(entity.PurchaseCancelled))
}

func TestPurchaseStatusLabel_EstadoDesconocido(t *testing.T) {
	got := report.PurchaseStatusLabel(entity.PurchaseStatus("lost"))
	assert.Equal(t, "lost", got, "un estado desconocido se muestra tal cual")
}

func TestStockStatusLabel_BordeEstricto(t *testing.T) {
	base := entity.Product{Price: decimal.NewFromInt(100), MinStock: 5}

	below := base
	below.Stock = 4
	assert.Equal(t, report.LabelNeedsRestock, report.StockStatusLabel(below))

	atThreshold := base
	atThreshold.Stock = 5
	assert.Equal(t, report.LabelInStock, report.StockStatusLabel(atThreshold),
		"stock igual al mínimo no requiere reposición")
}
