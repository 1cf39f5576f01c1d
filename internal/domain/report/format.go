// Package report define el contrato de presentación que comparten los tres
// formateadores de exportación: formato corto de fecha, moneda con separador
// de miles y sufijo fijo, tablas de etiquetas de estado y el nombre del
// artefacto generado.
//
// Los formateadores no validan reglas de negocio; confían en las colecciones
// que reciben y solo aplican estas transformaciones de campo.
package report

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// ShortDate formato corto de fecha para celdas: dd/mm/aaaa.
	ShortDate = "02/01/2006"
	// FileDate variante sin barras para nombres de archivo.
	FileDate = "02-01-2006"

	// DefaultCurrencySymbol sufijo de moneda por defecto.
	DefaultCurrencySymbol = "$"
)

// Money renderiza un monto como entero con separador de miles y el sufijo de
// moneda configurado. Ej: Money(2750000, "$") → "2.750.000 $".
func Money(v decimal.Decimal, symbol string) string {
	return groupThousands(v.StringFixed(0)) + " " + symbol
}

// Percent renderiza un porcentaje sin decimales. Ej: "10%".
func Percent(v decimal.Decimal) string {
	return v.StringFixed(0) + "%"
}

// ArtifactName arma el nombre del artefacto exportado:
// Reporte_<tag>_<dd-mm-aaaa>.<ext>.
func ArtifactName(tag string, generatedAt time.Time, ext string) string {
	return fmt.Sprintf("Reporte_%s_%s.%s", tag, generatedAt.Format(FileDate), ext)
}

// groupThousands inserta puntos de miles en un string numérico sin decimales,
// respetando el signo. Ej: "25000" → "25.000", "-1000000" → "-1.000.000".
func groupThousands(s string) string {
	sign := ""
	if len(s) > 0 && s[0] == '-' {
		sign = "-"
		s = s[1:]
	}
	n := len(s)
	if n <= 3 {
		return sign + s
	}
	buf := make([]byte, 0, n+n/3)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, s[i])
	}
	return sign + string(buf)
}
