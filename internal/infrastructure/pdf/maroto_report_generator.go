// Package pdf genera el documento imprimible del reporte de almacén.
//
// Layout A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  Página 1                                                    │
//	│  TÍTULO: Reporte de almacén + fecha de generación            │
//	│  RESUMEN: tabla indicador/valor (5 filas)                    │
//	│  PRODUCTOS: tabla del catálogo con estado de stock           │
//	├─────────────────────────────────────────────────────────────┤
//	│  Página 2 (salto fijo)                                       │
//	│  VENTAS: historial completo                                  │
//	│  COMPRAS: en esta misma página, salvo que la tabla de        │
//	│  ventas termine por debajo del umbral PageBreakY; en ese     │
//	│  caso se fuerza una página nueva.                            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/almacen-dashboard/internal/application/export"
	"github.com/jhoicas/almacen-dashboard/internal/domain/entity"
	"github.com/jhoicas/almacen-dashboard/internal/domain/report"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 98, Green: 58, Blue: 162}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Geometría ─────────────────────────────────────────────────────────────────

// Alturas fijas (mm) con las que se estima la posición inferior de la tabla
// de ventas para decidir dónde cae la sección de compras.
const (
	pageTopMargin      = 10.0
	sectionTitleHeight = 8.0
	tableHeaderHeight  = 8.0
	tableRowHeight     = 7.0
)

// Options parámetros de presentación del documento.
type Options struct {
	CurrencySymbol string
	// PageBreakY umbral (mm sobre A4) a partir del cual la sección de
	// compras se fuerza a una página nueva. 250 ≈ 85% de la página.
	PageBreakY float64
}

// MarotoReportGenerator implementa export.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	opts Options
}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator(opts Options) *MarotoReportGenerator {
	return &MarotoReportGenerator{opts: opts}
}

func (g *MarotoReportGenerator) Extension() string   { return "pdf" }
func (g *MarotoReportGenerator) ContentType() string { return "application/pdf" }

// Generate arma el documento y devuelve sus bytes.
func (g *MarotoReportGenerator) Generate(_ context.Context, data export.ReportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(pageTopMargin).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de almacén", true).
		Build()

	m := maroto.New(cfg)

	// Página 1: título, resumen y catálogo.
	m.AddRows(titleRows(data.GeneratedAt)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(sectionTitleRow("Resumen general"))
	m.AddRows(g.summaryRows(data)...)
	m.AddRows(sectionTitleRow("Productos en bodega"))
	m.AddRows(productHeaderRow())
	m.AddRows(g.productRows(data.Products)...)

	// Salto de sección fijo: el historial de ventas abre página propia.
	salesPage := page.New().Add(sectionTitleRow("Historial de ventas"), salesHeaderRow())
	salesPage.Add(g.saleRows(data.Sales)...)

	purchaseSection := []core.Row{sectionTitleRow("Compras y recepciones"), purchaseHeaderRow()}
	purchaseSection = append(purchaseSection, g.purchaseRows(data.Purchases)...)

	if g.purchasesNeedOwnPage(len(data.Sales)) {
		m.AddPages(salesPage)
		m.AddPages(page.New().Add(purchaseSection...))
	} else {
		salesPage.Add(purchaseSection...)
		m.AddPages(salesPage)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// purchasesNeedOwnPage decide si la sección de compras se fuerza a una página
// nueva: sí cuando la posición inferior estimada de la tabla de ventas supera
// el umbral configurado.
func (g *MarotoReportGenerator) purchasesNeedOwnPage(salesCount int) bool {
	return salesTableBottom(salesCount) > g.opts.PageBreakY
}

// salesTableBottom posición inferior estimada (mm) de la tabla de ventas en
// su página: margen superior + título de sección + cabecera + una fila por
// venta. Válido porque todas las filas tienen altura fija.
func salesTableBottom(salesCount int) float64 {
	return pageTopMargin + sectionTitleHeight + tableHeaderHeight + float64(salesCount)*tableRowHeight
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// titleRows título del documento y fecha de generación.
func titleRows(generatedAt time.Time) []core.Row {
	return []core.Row{
		row.New(10).Add(col.New(12).Add(
			text.New("Reporte de almacén", props.Text{
				Style: fontstyle.Bold, Size: 18, Color: colorPrimary, Top: 1,
			}),
		)),
		row.New(6).Add(col.New(12).Add(
			text.New("Fecha de generación: "+generatedAt.Format(report.ShortDate), props.Text{
				Size: 10, Color: colorGray, Top: 1,
			}),
		)),
	}
}

// sectionTitleRow encabezado de sección.
func sectionTitleRow(title string) core.Row {
	return row.New(sectionTitleHeight).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 2,
		}),
	))
}

// summaryRows tabla indicador/valor de cinco filas.
func (g *MarotoReportGenerator) summaryRows(data export.ReportData) []core.Row {
	s := data.Summary
	pairs := [][2]string{
		{"Ingresos totales", report.Money(s.TotalRevenue, g.opts.CurrencySymbol)},
		{"Unidades en bodega", fmt.Sprintf("%d", s.TotalStock)},
		{"Referencias", fmt.Sprintf("%d", s.ProductNames)},
		{"Requieren reposición", fmt.Sprintf("%d", s.LowStockCount)},
		{"Ventas", fmt.Sprintf("%d", s.SalesCount)},
	}

	rows := []core.Row{row.New(tableHeaderHeight).Add(
		headerCol("Indicador", 6, align.Left),
		headerCol("Valor", 6, align.Right),
	)}
	for _, p := range pairs {
		rows = append(rows, row.New(tableRowHeight).Add(
			col.New(6).Add(text.New(p[0], props.Text{Size: 9, Top: 1, Left: 1})),
			col.New(6).Add(text.New(p[1], props.Text{Size: 9, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return rows
}

func productHeaderRow() core.Row {
	return row.New(tableHeaderHeight).Add(
		headerCol("Producto", 3, align.Left),
		headerCol("Categoría", 2, align.Left),
		headerCol("Stock", 1, align.Center),
		headerCol("Precio", 2, align.Right),
		headerCol("Proveedor", 2, align.Left),
		headerCol("Mín.", 1, align.Center),
		headerCol("Estado", 1, align.Left),
	)
}

func (g *MarotoReportGenerator) productRows(products []entity.Product) []core.Row {
	rows := make([]core.Row, 0, len(products))
	for _, p := range products {
		rows = append(rows, row.New(tableRowHeight).Add(
			cellCol(p.Name, 3, align.Left),
			cellCol(p.Category, 2, align.Left),
			cellCol(fmt.Sprintf("%d", p.Stock), 1, align.Center),
			cellCol(report.Money(p.Price, g.opts.CurrencySymbol), 2, align.Right),
			cellCol(p.Supplier, 2, align.Left),
			cellCol(fmt.Sprintf("%d", p.MinStock), 1, align.Center),
			cellCol(report.StockStatusLabel(p), 1, align.Left),
		))
	}
	return rows
}

func salesHeaderRow() core.Row {
	return row.New(tableHeaderHeight).Add(
		headerCol("Fecha", 2, align.Left),
		headerCol("Producto", 4, align.Left),
		headerCol("Cant.", 1, align.Center),
		headerCol("Precio", 2, align.Right),
		headerCol("Desc.", 1, align.Center),
		headerCol("Total", 2, align.Right),
	)
}

func (g *MarotoReportGenerator) saleRows(sales []entity.Sale) []core.Row {
	rows := make([]core.Row, 0, len(sales))
	for _, s := range sales {
		rows = append(rows, row.New(tableRowHeight).Add(
			cellCol(s.Date.Format(report.ShortDate), 2, align.Left),
			cellCol(s.ProductName, 4, align.Left),
			cellCol(fmt.Sprintf("%d", s.Quantity), 1, align.Center),
			cellCol(report.Money(s.Price, g.opts.CurrencySymbol), 2, align.Right),
			cellCol(report.Percent(s.Discount), 1, align.Center),
			cellCol(report.Money(s.Total, g.opts.CurrencySymbol), 2, align.Right),
		))
	}
	return rows
}

func purchaseHeaderRow() core.Row {
	return row.New(tableHeaderHeight).Add(
		headerCol("Fecha", 2, align.Left),
		headerCol("Producto", 2, align.Left),
		headerCol("Proveedor", 2, align.Left),
		headerCol("Cant.", 1, align.Center),
		headerCol("Costo unit.", 2, align.Right),
		headerCol("Total", 2, align.Right),
		headerCol("Estado", 1, align.Left),
	)
}

func (g *MarotoReportGenerator) purchaseRows(purchases []entity.Purchase) []core.Row {
	rows := make([]core.Row, 0, len(purchases))
	for _, p := range purchases {
		rows = append(rows, row.New(tableRowHeight).Add(
			cellCol(p.Date.Format(report.ShortDate), 2, align.Left),
			cellCol(p.ProductName, 2, align.Left),
			cellCol(p.Supplier, 2, align.Left),
			cellCol(fmt.Sprintf("%d", p.Quantity), 1, align.Center),
			cellCol(report.Money(p.CostPrice, g.opts.CurrencySymbol), 2, align.Right),
			cellCol(report.Money(p.Total, g.opts.CurrencySymbol), 2, align.Right),
			cellCol(report.PurchaseStatusLabel(p.Status), 1, align.Left),
		))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func headerCol(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a,
		Color: colorPrimary, Top: 2, Left: 1, Right: 1,
	}))
}

func cellCol(value string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(value, props.Text{
		Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
	}))
}
