package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/almacen-dashboard/internal/application/analytics"
	"github.com/jhoicas/almacen-dashboard/internal/application/export"
	"github.com/jhoicas/almacen-dashboard/internal/application/sales"
	"github.com/jhoicas/almacen-dashboard/internal/infrastructure/csvexport"
	"github.com/jhoicas/almacen-dashboard/internal/infrastructure/excel"
	"github.com/jhoicas/almacen-dashboard/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/almacen-dashboard/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/almacen-dashboard/internal/interfaces/http"
	"github.com/jhoicas/almacen-dashboard/pkg/config"
	"github.com/jhoicas/almacen-dashboard/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Estado de la sesión: una sola sesión en memoria, sin persistencia.
	store := memory.NewSeededStore()

	recordSaleUC := sales.NewRecordSaleUseCase(store, store)
	summaryUC := analytics.NewSummaryUseCase(store, store, cfg.Report.TopProducts)

	generators := map[string]export.ReportGenerator{
		"xlsx": excel.NewWorkbookGenerator(cfg.Report.CurrencySymbol),
		"pdf": infrapdf.NewMarotoReportGenerator(infrapdf.Options{
			CurrencySymbol: cfg.Report.CurrencySymbol,
			PageBreakY:     cfg.Report.PageBreakY,
		}),
		"csv": csvexport.NewDelimitedWriter(cfg.Report.CurrencySymbol),
	}
	exportUC := export.NewUseCase(store, store, store, summaryUC, generators, cfg.Report.WarehouseTag)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // la generación de PDF/XLSX tarda más que un JSON
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogRepo:  store,
		SaleRepo:     store,
		PurchaseRepo: store,
		RecordSale:   recordSaleUC,
		SummaryUC:    summaryUC,
		ExportUC:     exportUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
