package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/swaggo/swag"

	"github.com/jhoicas/fieldstock-api/docs"
	"github.com/jhoicas/fieldstock-api/internal/application/auth"
	"github.com/jhoicas/fieldstock-api/internal/application/inventory"
	"github.com/jhoicas/fieldstock-api/internal/application/stock"
	"github.com/jhoicas/fieldstock-api/internal/application/workorder"
	infrapdf "github.com/jhoicas/fieldstock-api/internal/infrastructure/pdf"
	"github.com/jhoicas/fieldstock-api/internal/infrastructure/scraper"
	httpRouter "github.com/jhoicas/fieldstock-api/internal/interfaces/http"
	"github.com/jhoicas/fieldstock-api/pkg/config"
	"github.com/jhoicas/fieldstock-api/pkg/logger"
)

// @title                       Field Stock API
// @version                     1.0
// @description                 Stock de técnicos de campo, catálogo del proveedor y órdenes de OptimoRoute.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
// @description                 Bearer <token>
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("driver", cfg.DB.Driver).
		Msg("iniciando aplicación")
	if cfg.JWT.UsingDefaultSecret() {
		log.Warn().Msg("JWT_SECRET no configurado: usando el secreto de desarrollo")
	}
	if cfg.Webhook.Secret == "" {
		log.Warn().Msg("WEBHOOK_SECRET vacío: el webhook de OptimoRoute acepta cualquier llamada")
	}

	ctx := context.Background()
	store, err := openBackend(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DB.Driver).Msg("conexión al store")
	}

	authUC := auth.NewAuthUseCase(store.users, auth.JWTConfig{
		Secret: cfg.JWT.Secret,
		TTL:    cfg.JWT.TTL(),
		Issuer: cfg.JWT.Issuer,
	})
	supplierScraper := scraper.New(scraper.Config{
		Timeout:   cfg.Scraper.Timeout,
		UserAgent: cfg.Scraper.UserAgent,
	}, log)
	syncUC := inventory.NewSyncUseCase(supplierScraper, store.items, cfg.Scraper.SupplierID)
	stockUC := stock.NewStockUseCase(store.stock)
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name, cfg.Scraper.SupplierID)
	reportUC := stock.NewReportUseCase(store.stock, store.users, store.items, pdfGenerator)
	workOrderUC := workorder.NewWorkOrderUseCase(store.workOrders)

	app := fiber.New(fiber.Config{
		AppName:     cfg.App.Name,
		ReadTimeout: time.Second * 10,
		// La sincronización espera a la página del proveedor.
		WriteTimeout: cfg.Scraper.Timeout + 10*time.Second,
		IdleTimeout:  time.Second * 60,
	})
	httpRouter.Use(app, log)

	// Swagger UI en local: http://localhost:<port>/docs
	if specPath, err := swaggerFile("./docs/swagger.json"); err != nil {
		log.Warn().Err(err).Msg("swagger deshabilitado")
	} else {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: specPath,
			Path:     "docs",
			Title:    "Field Stock API",
		}))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		SyncUC:      syncUC,
		StockUC:     stockUC,
		StockReport: reportUC,
		WorkOrderUC: workOrderUC,
		Store:       store.inspector,
		System: httpRouter.SystemInfo{
			Service:         cfg.App.Name,
			Driver:          cfg.DB.Driver,
			DatabaseURLSet:  os.Getenv("DATABASE_URL") != "",
			DatabaseNameSet: os.Getenv("DATABASE_NAME") != "",
		},
		WebhookSecret: cfg.Webhook.Secret,
		LoginLimiter:  httpRouter.NewRateLimiter(cfg.Login.RatePerMinute, cfg.Login.Burst),
		Logger:        log,
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
	if err := store.close(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("cierre del store")
	}

	log.Info().Msg("aplicación detenida")
}

// swaggerFile devuelve path si existe; si no, vuelca la especificación
// registrada por el paquete docs a un archivo temporal.
func swaggerFile(path string) (string, error) {
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	if err != nil {
		return "", err
	}
	tmp := filepath.Join(os.TempDir(), "fieldstock-swagger.json")
	if err := os.WriteFile(tmp, []byte(doc), 0o600); err != nil {
		return "", err
	}
	return tmp, nil
}
