// @title                       Inventory Ledger API
// @version                     1.0
// @description                 Catálogo de productos, registro transaccional de ventas y reportes de stock.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/afero"

	_ "github.com/jhoicas/inventory-ledger/docs"
	"github.com/jhoicas/inventory-ledger/internal/application/auth"
	"github.com/jhoicas/inventory-ledger/internal/application/catalog"
	"github.com/jhoicas/inventory-ledger/internal/application/ledger"
	"github.com/jhoicas/inventory-ledger/internal/domain/repository"
	"github.com/jhoicas/inventory-ledger/internal/infrastructure/auditlog"
	"github.com/jhoicas/inventory-ledger/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/inventory-ledger/internal/infrastructure/pdf"
	"github.com/jhoicas/inventory-ledger/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/inventory-ledger/internal/interfaces/http"
	"github.com/jhoicas/inventory-ledger/pkg/config"
	"github.com/jhoicas/inventory-ledger/pkg/logger"
)

// stores agrupa los adaptadores de persistencia del driver elegido.
type stores struct {
	products repository.ProductRepository
	sales    repository.SaleRepository
	users    repository.UserRepository
	reports  repository.ReportRepository
	tx       interface {
		ledger.TxRunner
		catalog.TxRunner
	}
	close func()
}

func openStores(ctx context.Context, cfg *config.Config, log *logger.Logger) (*stores, error) {
	if cfg.Store.Driver == "memory" {
		log.Warn().Msg("STORE_DRIVER=memory: los datos no se persisten")
		s := memory.NewStore()
		return &stores{
			products: s.Products(), sales: s.Sales(), users: s.Users(), reports: s.Reports(),
			tx: s, close: func() {},
		}, nil
	}

	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
			return nil, err
		}
		log.Info().Msg("migraciones aplicadas")
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	return &stores{
		products: postgres.NewProductRepository(pool),
		sales:    postgres.NewSaleRepository(pool),
		users:    postgres.NewUserRepository(pool),
		reports:  postgres.NewReportRepository(pool),
		tx:       postgres.NewTxRunner(pool),
		close:    pool.Close,
	}, nil
}

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
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	st, err := openStores(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar persistencia")
	}
	defer st.close()

	catalogUC := catalog.NewCatalogUseCase(st.tx, st.products, log)
	ledgerUC := ledger.NewLedgerUseCase(st.tx, st.sales, log)
	reportUC := ledger.NewReportUseCase(st.products, st.reports)
	authUC := auth.NewAuthUseCase(st.users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	seeded, err := authUC.SeedDefault(ctx, cfg.Auth.DefaultUser, cfg.Auth.DefaultPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("sembrar usuario por defecto")
	}
	if seeded {
		log.Warn().Str("username", cfg.Auth.DefaultUser).Msg("usuario por defecto creado; cambie la contraseña")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventory Ledger API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	lowStockLog := auditlog.NewLowStockLog(afero.NewOsFs(), cfg.Report.LowStockLogPath)
	log.Info().Str("path", lowStockLog.Path()).Msg("log de stock bajo")

	httpRouter.Router(app, httpRouter.RouterDeps{
		Catalog:          catalogUC,
		Ledger:           ledgerUC,
		Reports:          reportUC,
		Auth:             authUC,
		PDF:              infrapdf.NewReportPDFGenerator(cfg.App.Name),
		LowStockLog:      lowStockLog,
		DefaultThreshold: cfg.Report.DefaultThreshold,
		JWTSecret:        cfg.JWT.Secret,
		Log:              log,
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
