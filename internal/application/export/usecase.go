// Package export orquesta la generación de reportes descargables: toma una
// instantánea de la sesión, calcula el resumen y delega en el generador del
// formato pedido.
package export

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/almacen-dashboard/internal/application/analytics"
	"github.com/jhoicas/almacen-dashboard/internal/domain"
	"github.com/jhoicas/almacen-dashboard/internal/domain/report"
	"github.com/jhoicas/almacen-dashboard/internal/domain/repository"
)

// Artifact resultado de una exportación, listo para entregar como descarga.
type Artifact struct {
	Filename    string
	ContentType string
	Data        []byte
}

// UseCase resuelve el formato pedido contra los generadores registrados y
// produce el artefacto con su nombre convencional
// (Reporte_<tag>_<dd-mm-aaaa>.<ext>).
type UseCase struct {
	catalogRepo  repository.CatalogRepository
	saleRepo     repository.SaleRepository
	purchaseRepo repository.PurchaseRepository
	summaryUC    *analytics.SummaryUseCase
	generators   map[string]ReportGenerator
	warehouseTag string
	now          func() time.Time
}

// NewUseCase construye el orquestador. generators mapea el identificador de
// formato ("xlsx", "pdf", "csv") a su generador.
func NewUseCase(
	catalogRepo repository.CatalogRepository,
	saleRepo repository.SaleRepository,
	purchaseRepo repository.PurchaseRepository,
	summaryUC *analytics.SummaryUseCase,
	generators map[string]ReportGenerator,
	warehouseTag string,
) *UseCase {
	return &UseCase{
		catalogRepo:  catalogRepo,
		saleRepo:     saleRepo,
		purchaseRepo: purchaseRepo,
		summaryUC:    summaryUC,
		generators:   generators,
		warehouseTag: warehouseTag,
		now:          time.Now,
	}
}

// Formats devuelve los identificadores de formato registrados.
func (uc *UseCase) Formats() []string {
	out := make([]string, 0, len(uc.generators))
	for f := range uc.generators {
		out = append(out, f)
	}
	return out
}

// Export genera el artefacto del formato pedido sobre el estado actual de la
// sesión. Un formato desconocido es ErrInvalidInput; un fallo del generador
// se propaga envuelto como fallo opaco de generación.
func (uc *UseCase) Export(ctx context.Context, format string) (*Artifact, error) {
	gen, ok := uc.generators[format]
	if !ok {
		return nil, domain.ErrInvalidInput
	}

	summary, err := uc.summaryUC.Summary(ctx)
	if err != nil {
		return nil, fmt.Errorf("export: resumen: %w", err)
	}

	generatedAt := uc.now()
	data := ReportData{
		Products:    uc.catalogRepo.Products(),
		Sales:       uc.saleRepo.Sales(),
		Purchases:   uc.purchaseRepo.Purchases(),
		Summary:     *summary,
		GeneratedAt: generatedAt,
	}

	raw, err := gen.Generate(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("export: generar %s: %w", format, err)
	}

	return &Artifact{
		Filename:    report.ArtifactName(uc.warehouseTag, generatedAt, gen.Extension()),
		ContentType: gen.ContentType(),
		Data:        raw,
	}, nil
}
