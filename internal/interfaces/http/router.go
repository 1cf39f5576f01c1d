// Package http expone la capa de presentación del dashboard: listados de las
// colecciones, registro de ventas, resumen y descarga de reportes. No
// contiene reglas de negocio; todo se delega en los casos de uso.
package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-dashboard/internal/application/analytics"
	"github.com/jhoicas/almacen-dashboard/internal/application/export"
	"github.com/jhoicas/almacen-dashboard/internal/application/sales"
	"github.com/jhoicas/almacen-dashboard/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogRepo  repository.CatalogRepository
	SaleRepo     repository.SaleRepository
	PurchaseRepo repository.PurchaseRepository
	RecordSale   *sales.RecordSaleUseCase
	SummaryUC    *analytics.SummaryUseCase
	ExportUC     *export.UseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	products := api.Group("/products")
	productHandler := NewProductHandler(deps.CatalogRepo)
	products.Get("/", productHandler.List)

	salesGroup := api.Group("/sales")
	saleHandler := NewSaleHandler(deps.RecordSale, deps.SaleRepo)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Post("/", saleHandler.Create)

	purchases := api.Group("/purchases")
	purchaseHandler := NewPurchaseHandler(deps.PurchaseRepo)
	purchases.Get("/", purchaseHandler.List)

	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.SummaryUC)
	dashboard.Get("/summary", dashboardHandler.GetSummary)

	reports := api.Group("/reports")
	exportHandler := NewExportHandler(deps.ExportUC)
	reports.Get("/export/:format", exportHandler.Export)
}
