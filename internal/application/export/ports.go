package export

import (
	"context"
	"time"

	"github.com/jhoicas/almacen-dashboard/internal/application/dto"
	"github.com/jhoicas/almacen-dashboard/internal/domain/entity"
)

// ReportData instantánea que consumen los generadores: las tres colecciones,
// el resumen ya calculado y el instante de generación. Los generadores no
// validan reglas de negocio; confían en lo que reciben.
type ReportData struct {
	Products    []entity.Product
	Sales       []entity.Sale
	Purchases   []entity.Purchase
	Summary     dto.SummaryDTO
	GeneratedAt time.Time
}

// ReportGenerator produce los bytes de un artefacto a partir de la
// instantánea. Implementaciones: libro XLSX, documento PDF, texto CSV.
type ReportGenerator interface {
	Generate(ctx context.Context, data ReportData) ([]byte, error)
	Extension() string
	ContentType() string
}
