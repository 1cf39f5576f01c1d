// Package csvexport genera el reporte de texto delimitado: un único CSV
// RFC-4180 con tres bloques etiquetados (productos, ventas, compras) en orden
// fijo, cada uno con su fila de sección y su fila de cabeceras, separados por
// una fila en blanco.
//
// A diferencia del resto de exportaciones tabulares, aquí el formato destino
// es texto plano de verdad, no un libro de cálculo renombrado: las reglas de
// escape y entrecomillado las pone encoding/csv.
package csvexport

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/jhoicas/almacen-dashboard/internal/application/export"
	"github.com/jhoicas/almacen-dashboard/internal/domain/report"
)

// Cabeceras de sección de cada bloque.
const (
	blockProducts  = "PRODUCTOS EN BODEGA"
	blockSales     = "VENTAS"
	blockPurchases = "COMPRAS"
)

// DelimitedWriter implementa export.ReportGenerator sobre encoding/csv.
type DelimitedWriter struct {
	currencySymbol string
}

// NewDelimitedWriter construye el generador.
func NewDelimitedWriter(currencySymbol string) *DelimitedWriter {
	return &DelimitedWriter{currencySymbol: currencySymbol}
}

func (g *DelimitedWriter) Extension() string   { return "csv" }
func (g *DelimitedWriter) ContentType() string { return "text/csv; charset=utf-8" }

// Generate escribe los tres bloques en orden fijo.
func (g *DelimitedWriter) Generate(_ context.Context, data export.ReportData) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := [][]string{
		{blockProducts},
		{"Producto", "Categoría", "Stock", "Precio", "Proveedor", "Stock mínimo", "Estado"},
	}
	for _, p := range data.Products {
		records = append(records, []string{
			p.Name,
			p.Category,
			strconv.Itoa(p.Stock),
			report.Money(p.Price, g.currencySymbol),
			p.Supplier,
			strconv.Itoa(p.MinStock),
			report.StockStatusLabel(p),
		})
	}

	records = append(records,
		[]string{""},
		[]string{blockSales},
		[]string{"Fecha", "Producto", "Cantidad", "Precio", "Descuento %", "Total"},
	)
	for _, s := range data.Sales {
		records = append(records, []string{
			s.Date.Format(report.ShortDate),
			s.ProductName,
			strconv.Itoa(s.Quantity),
			report.Money(s.Price, g.currencySymbol),
			s.Discount.StringFixed(0),
			report.Money(s.Total, g.currencySymbol),
		})
	}

	records = append(records,
		[]string{""},
		[]string{blockPurchases},
		[]string{"Fecha", "Producto", "Proveedor", "Cantidad", "Costo unitario", "Total", "Estado"},
	)
	for _, p := range data.Purchases {
		records = append(records, []string{
			p.Date.Format(report.ShortDate),
			p.ProductName,
			p.Supplier,
			strconv.Itoa(p.Quantity),
			report.Money(p.CostPrice, g.currencySymbol),
			report.Money(p.Total, g.currencySymbol),
			report.PurchaseStatusLabel(p.Status),
		})
	}

	if err := w.WriteAll(records); err != nil {
		return nil, fmt.Errorf("csv: escribir bloques: %w", err)
	}
	return buf.Bytes(), nil
}
