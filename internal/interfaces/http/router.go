package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-ledger/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Catalog          CatalogService
	Ledger           LedgerService
	Reports          ReportService
	Auth             AuthService
	PDF              ReportRenderer
	LowStockLog      LowStockRecorder
	DefaultThreshold int
	JWTSecret        string
	Log              *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.Auth, log.Component("http.auth"))
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.Catalog, log.Component("http.products"))
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.Ledger, log.Component("http.sales"))
	sales.Post("/", saleHandler.Record)
	sales.Get("/", saleHandler.List)

	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.Reports, deps.PDF, deps.LowStockLog, deps.DefaultThreshold, log.Component("http.reports"))
	reports.Get("/low-stock", reportHandler.LowStock)
	reports.Get("/low-stock.pdf", reportHandler.LowStockPDF)
	reports.Get("/sales-summary", reportHandler.SalesSummary)
	reports.Get("/sales-summary.pdf", reportHandler.SalesSummaryPDF)
}
