// Package excel genera el libro tabular del reporte: cuatro hojas con el
// resumen y las tres colecciones, con los juegos de columnas fijos del
// contrato de exportación.
package excel

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/almacen-dashboard/internal/application/export"
	"github.com/jhoicas/almacen-dashboard/internal/domain/report"
)

// Nombres de hoja, en el orden del libro.
const (
	sheetSummary   = "Resumen"
	sheetProducts  = "Productos"
	sheetSales     = "Ventas"
	sheetPurchases = "Compras"
)

// WorkbookGenerator implementa export.ReportGenerator sobre excelize.
type WorkbookGenerator struct {
	currencySymbol string
}

// NewWorkbookGenerator construye el generador.
func NewWorkbookGenerator(currencySymbol string) *WorkbookGenerator {
	return &WorkbookGenerator{currencySymbol: currencySymbol}
}

func (g *WorkbookGenerator) Extension() string { return "xlsx" }

func (g *WorkbookGenerator) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Generate arma el libro: Resumen, Productos, Ventas y Compras.
func (g *WorkbookGenerator) Generate(_ context.Context, data export.ReportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	// La hoja inicial de excelize pasa a ser el Resumen.
	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		return nil, fmt.Errorf("excel: renombrar hoja inicial: %w", err)
	}
	for _, name := range []string{sheetProducts, sheetSales, sheetPurchases} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("excel: crear hoja %s: %w", name, err)
		}
	}

	if err := writeRows(f, sheetSummary, g.summaryRows(data)); err != nil {
		return nil, err
	}
	if err := writeRows(f, sheetProducts, g.productRows(data)); err != nil {
		return nil, err
	}
	if err := writeRows(f, sheetSales, g.saleRows(data)); err != nil {
		return nil, err
	}
	if err := writeRows(f, sheetPurchases, g.purchaseRows(data)); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: serializar libro: %w", err)
	}
	return buf.Bytes(), nil
}

// summaryRows las cinco filas indicador/valor del resumen.
func (g *WorkbookGenerator) summaryRows(data export.ReportData) [][]any {
	s := data.Summary
	return [][]any{
		{"Indicador", "Valor"},
		{"Ingresos totales", report.Money(s.TotalRevenue, g.currencySymbol)},
		{"Unidades en bodega", s.TotalStock},
		{"Referencias", s.ProductNames},
		{"Requieren reposición", s.LowStockCount},
		{"Ventas", s.SalesCount},
	}
}

func (g *WorkbookGenerator) productRows(data export.ReportData) [][]any {
	rows := [][]any{
		{"Producto", "Categoría", "Stock", "Precio", "Proveedor", "Stock mínimo", "Estado"},
	}
	for _, p := range data.Products {
		rows = append(rows, []any{
			p.Name,
			p.Category,
			p.Stock,
			report.Money(p.Price, g.currencySymbol),
			p.Supplier,
			p.MinStock,
			report.StockStatusLabel(p),
		})
	}
	return rows
}

func (g *WorkbookGenerator) saleRows(data export.ReportData) [][]any {
	rows := [][]any{
		{"Fecha", "Producto", "Cantidad", "Precio", "Descuento %", "Total"},
	}
	for _, s := range data.Sales {
		rows = append(rows, []any{
			s.Date.Format(report.ShortDate),
			s.ProductName,
			s.Quantity,
			report.Money(s.Price, g.currencySymbol),
			s.Discount.StringFixed(0),
			report.Money(s.Total, g.currencySymbol),
		})
	}
	return rows
}

func (g *WorkbookGenerator) purchaseRows(data export.ReportData) [][]any {
	rows := [][]any{
		{"Fecha", "Producto", "Proveedor", "Cantidad", "Costo unitario", "Total", "Estado"},
	}
	for _, p := range data.Purchases {
		rows = append(rows, []any{
			p.Date.Format(report.ShortDate),
			p.ProductName,
			p.Supplier,
			p.Quantity,
			report.Money(p.CostPrice, g.currencySymbol),
			report.Money(p.Total, g.currencySymbol),
			report.PurchaseStatusLabel(p.Status),
		})
	}
	return rows
}

// writeRows vuelca filas consecutivas desde A1.
func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("excel: celda de la fila %d: %w", i+1, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("excel: escribir fila %d en %s: %w", i+1, sheet, err)
		}
	}
	return nil
}
