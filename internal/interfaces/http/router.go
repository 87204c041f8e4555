package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/fieldstock-api/internal/application/auth"
	"github.com/jhoicas/fieldstock-api/internal/application/inventory"
	"github.com/jhoicas/fieldstock-api/internal/application/stock"
	"github.com/jhoicas/fieldstock-api/internal/application/workorder"
	"github.com/jhoicas/fieldstock-api/internal/domain/entity"
	"github.com/jhoicas/fieldstock-api/internal/domain/repository"
	"github.com/jhoicas/fieldstock-api/internal/observability/metrics"
	"github.com/jhoicas/fieldstock-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	SyncUC        *inventory.SyncUseCase
	StockUC       *stock.StockUseCase
	StockReport   *stock.ReportUseCase // opcional
	WorkOrderUC   *workorder.WorkOrderUseCase
	Store         repository.StoreInspector
	System        SystemInfo
	WebhookSecret string
	LoginLimiter  *RateLimiter // opcional
	Logger        *logger.Logger
}

// Use registra los middlewares globales: recover, CORS abierto, métricas y log de peticiones.
func Use(app *fiber.App, log *logger.Logger) {
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "*",
	}))
	app.Use(metrics.FiberMiddleware())
	app.Use(RequestLogger(log.Component("http")))
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}

	system := NewSystemHandler(deps.Store, deps.System, log)
	app.Get("/", system.Root)
	app.Get("/test", system.Diagnostic)
	app.Get("/health", system.Health)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	protected := AuthMiddleware(deps.AuthUC, log)

	// Auth (público salvo /me)
	authHandler := NewAuthHandler(deps.AuthUC, log)
	authGroup := app.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	if deps.LoginLimiter != nil {
		authGroup.Post("/login", deps.LoginLimiter.Middleware(), authHandler.Login)
	} else {
		authGroup.Post("/login", authHandler.Login)
	}
	authGroup.Get("/me", protected, authHandler.Me)

	// Inventory (protegido)
	inventoryHandler := NewInventoryHandler(deps.SyncUC, log)
	invGroup := app.Group("/inventory", protected)
	invGroup.Post("/scrape", RequireRole(entity.RoleOffice), inventoryHandler.Scrape)
	invGroup.Get("/items", inventoryHandler.List)

	// Stock (protegido, por rol)
	stockHandler := NewStockHandler(deps.StockUC, deps.StockReport, log)
	stockGroup := app.Group("/stock", protected)
	stockGroup.Get("/mine", RequireRole(entity.RoleTechnician), stockHandler.Mine)
	stockGroup.Post("/update", RequireRole(entity.RoleTechnician), stockHandler.Update)
	stockGroup.Get("/overview", RequireRole(entity.RoleOffice), stockHandler.Overview)
	stockGroup.Get("/overview.pdf", RequireRole(entity.RoleOffice), stockHandler.OverviewPDF)

	// Webhook OptimoRoute (sin Bearer; secreto compartido opcional)
	webhookHandler := NewWebhookHandler(deps.WorkOrderUC, deps.WebhookSecret, log)
	app.Post("/optimoroute/webhook", webhookHandler.OptimoRoute)
}
