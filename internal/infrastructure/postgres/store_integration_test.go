package postgres_test

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jhoicas/inventory-ledger/internal/application/catalog"
	"github.com/jhoicas/inventory-ledger/internal/application/ledger"
	"github.com/jhoicas/inventory-ledger/internal/domain"
	"github.com/jhoicas/inventory-ledger/internal/domain/entity"
	"github.com/jhoicas/inventory-ledger/internal/infrastructure/postgres"
	"github.com/jhoicas/inventory-ledger/pkg/config"
	"github.com/jhoicas/inventory-ledger/pkg/logger"
)

const skipIntegrationTests = "LEDGER_SKIP_INTEGRATION_TESTS"

// StoreSuite levanta PostgreSQL en un contenedor, aplica las migraciones embebidas
// y ejercita los repositorios y casos de uso contra la base real.
type StoreSuite struct {
	suite.Suite
	ctx         context.Context
	pgContainer *tcpostgres.PostgresContainer
	pool        *pgxpool.Pool

	products *postgres.ProductRepo
	sales    *postgres.SaleRepo
	users    *postgres.UserRepo
	reports  *postgres.ReportRepo
	ledger   *ledger.LedgerUseCase
	catalog  *catalog.CatalogUseCase
}

func TestStoreIntegration(t *testing.T) {
	if os.Getenv(skipIntegrationTests) == "1" {
		t.Skip("Skipping integration tests based on " + skipIntegrationTests + " env var")
	}
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupSuite() {
	s.ctx = context.Background()
	var err error

	s.pgContainer, err = tcpostgres.Run(s.ctx,
		"postgres:17-alpine",
		tcpostgres.WithDatabase("inventory"),
		tcpostgres.WithUsername("user"),
		tcpostgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Minute),
		),
	)
	require.NoError(s.T(), err, "levantar contenedor PostgreSQL")

	connStr, err := s.pgContainer.ConnectionString(s.ctx, "sslmode=disable")
	require.NoError(s.T(), err)

	require.NoError(s.T(), postgres.Migrate(connStr), "aplicar migraciones")
	// idempotente
	require.NoError(s.T(), postgres.Migrate(connStr))

	s.pool, err = postgres.NewPool(s.ctx, config.DBConfig{DatabaseURL: connStr, MaxConns: 20})
	require.NoError(s.T(), err)

	s.products = postgres.NewProductRepository(s.pool)
	s.sales = postgres.NewSaleRepository(s.pool)
	s.users = postgres.NewUserRepository(s.pool)
	s.reports = postgres.NewReportRepository(s.pool)
	tx := postgres.NewTxRunner(s.pool)
	s.ledger = ledger.NewLedgerUseCase(tx, s.sales, logger.Nop())
	s.catalog = catalog.NewCatalogUseCase(tx, s.products, logger.Nop())
}

func (s *StoreSuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
	if s.pgContainer != nil {
		if err := s.pgContainer.Terminate(s.ctx); err != nil {
			s.T().Logf("terminar contenedor: %v", err)
		}
	}
}

func (s *StoreSuite) SetupTest() {
	_, err := s.pool.Exec(s.ctx, "TRUNCATE TABLE sales, products, users RESTART IDENTITY")
	require.NoError(s.T(), err)
}

func (s *StoreSuite) createProduct(name string, qty int, price string) *entity.Product {
	s.T().Helper()
	p, err := s.catalog.Create(s.ctx, name, qty, decimal.RequireFromString(price))
	require.NoError(s.T(), err)
	return p
}

// ────────────────────────────────────────────────────────────────
// Catálogo
// ────────────────────────────────────────────────────────────────

func (s *StoreSuite) TestProductCRUD() {
	p := s.createProduct("Widget", 10, "5.00")
	s.Equal(int64(1), p.ID)

	got, err := s.products.GetByID(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Equal("Widget", got.Name)
	s.True(got.Price.Equal(decimal.RequireFromString("5")))

	updated, err := s.catalog.Update(s.ctx, p.ID, 3, decimal.RequireFromString("7.125"))
	s.Require().NoError(err)
	s.Equal("Widget", updated.Name)

	got, err = s.products.GetByID(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Equal(3, got.Quantity)
	s.True(got.Price.Equal(decimal.RequireFromString("7.125")), "NUMERIC conserva la escala: %s", got.Price)

	s.Require().NoError(s.products.Delete(s.ctx, p.ID))
	got, err = s.products.GetByID(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Nil(got)
	s.ErrorIs(s.products.Delete(s.ctx, p.ID), domain.ErrNotFound)
}

func (s *StoreSuite) TestProductCheckConstraints() {
	err := s.products.Create(s.ctx, &entity.Product{Name: "X", Quantity: -1, Price: decimal.Zero})
	s.ErrorIs(err, domain.ErrInvalidInput)

	err = s.products.Create(s.ctx, &entity.Product{Name: "  ", Quantity: 1, Price: decimal.Zero})
	s.ErrorIs(err, domain.ErrInvalidInput)
}

func (s *StoreSuite) TestCantidadesMayoresAInt32() {
	const big = 3_000_000_000

	p, err := s.catalog.Create(s.ctx, "Tornillo", big, decimal.RequireFromString("0.01"))
	s.Require().NoError(err)

	got, err := s.products.GetByID(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Equal(big, got.Quantity)

	sale, err := s.ledger.RecordSale(s.ctx, p.ID, big-1)
	s.Require().NoError(err)
	s.Equal(big-1, sale.QuantitySold)
	s.True(sale.Amount.Equal(decimal.RequireFromString("29999999.99")))

	_, err = s.catalog.Update(s.ctx, p.ID, big+1, decimal.RequireFromString("0.01"))
	s.Require().NoError(err)
	got, err = s.products.GetByID(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Equal(big+1, got.Quantity)
}

func (s *StoreSuite) TestListOrdenYLowStock() {
	s.createProduct("C", 1, "1")
	s.createProduct("A", 5, "1")
	s.createProduct("B", 0, "1")

	list, err := s.products.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 3)
	s.Equal("C", list[0].Name)
	s.Equal("B", list[2].Name)

	low, err := s.products.ListBelowQuantity(s.ctx, 5)
	s.Require().NoError(err)
	s.Require().Len(low, 2)
	s.Equal("C", low[0].Name)
	s.Equal("B", low[1].Name)
}

// ────────────────────────────────────────────────────────────────
// Ledger
// ────────────────────────────────────────────────────────────────

func (s *StoreSuite) TestRecordSale() {
	p := s.createProduct("Widget", 10, "5.00")

	sale, err := s.ledger.RecordSale(s.ctx, p.ID, 4)
	s.Require().NoError(err)
	s.True(sale.Amount.Equal(decimal.RequireFromString("20.00")))
	s.WithinDuration(time.Now(), sale.SaleDate, time.Minute)

	got, _ := s.products.GetByID(s.ctx, p.ID)
	s.Equal(6, got.Quantity)

	_, err = s.ledger.RecordSale(s.ctx, p.ID, 10)
	var stockErr *domain.InsufficientStockError
	s.Require().ErrorAs(err, &stockErr)
	s.Equal(6, stockErr.Available)

	sales, err := s.sales.List(s.ctx, nil)
	s.Require().NoError(err)
	s.Len(sales, 1)
}

func (s *StoreSuite) TestRecordSale_FallaNoDejaRastro() {
	p := s.createProduct("Widget", 10, "5.00")
	// Forzar fallo al insertar la venta después del bloqueo de fila.
	_, err := s.pool.Exec(s.ctx, `ALTER TABLE sales ADD CONSTRAINT tmp_block CHECK (quantity_sold < 2)`)
	s.Require().NoError(err)
	defer func() {
		_, _ = s.pool.Exec(s.ctx, `ALTER TABLE sales DROP CONSTRAINT tmp_block`)
	}()

	_, err = s.ledger.RecordSale(s.ctx, p.ID, 3)
	s.Require().Error(err)

	got, _ := s.products.GetByID(s.ctx, p.ID)
	s.Equal(10, got.Quantity)
	sales, _ := s.sales.List(s.ctx, nil)
	s.Empty(sales)
}

func (s *StoreSuite) TestRecordSale_Concurrente() {
	p := s.createProduct("Widget", 5, "2.00")

	const workers = 15
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		ok, short int
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.ledger.RecordSale(s.ctx, p.ID, 1)
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				ok++
			} else if errors.Is(err, domain.ErrInsufficientStock) {
				short++
			}
		}()
	}
	wg.Wait()

	s.Equal(5, ok)
	s.Equal(workers-5, short)
	got, _ := s.products.GetByID(s.ctx, p.ID)
	s.Equal(0, got.Quantity)
}

func (s *StoreSuite) TestDecrementQuantity_SinStock() {
	p := s.createProduct("Widget", 1, "1")

	err := s.products.DecrementQuantity(s.ctx, p.ID, 2)
	var stockErr *domain.InsufficientStockError
	s.Require().ErrorAs(err, &stockErr)
	s.Equal(1, stockErr.Available)
	s.ErrorIs(s.products.DecrementQuantity(s.ctx, 999, 1), domain.ErrNotFound)
}

// ────────────────────────────────────────────────────────────────
// Reportes y usuarios
// ────────────────────────────────────────────────────────────────

func (s *StoreSuite) TestSalesSummary_IgnoraProductosEliminados() {
	a := s.createProduct("A", 10, "2.50")
	b := s.createProduct("B", 10, "1.00")
	s.createProduct("SinVentas", 10, "1.00")

	for _, sale := range []struct {
		id  int64
		qty int
	}{{b.ID, 1}, {a.ID, 2}, {a.ID, 3}} {
		_, err := s.ledger.RecordSale(s.ctx, sale.id, sale.qty)
		s.Require().NoError(err)
	}

	rows, err := s.reports.SalesSummary(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(rows, 2)
	s.Equal(a.ID, rows[0].ProductID)
	s.Equal(int64(5), rows[0].TotalQuantitySold)
	s.True(rows[0].TotalRevenue.Equal(decimal.RequireFromString("12.50")))

	s.Require().NoError(s.catalog.Delete(s.ctx, a.ID))
	rows, err = s.reports.SalesSummary(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Equal("B", rows[0].ProductName)

	history, err := s.sales.List(s.ctx, &a.ID)
	s.Require().NoError(err)
	s.Len(history, 2, "el historial sobrevive al borrado del producto")
}

func (s *StoreSuite) TestUsers() {
	n, err := s.users.Count(s.ctx)
	s.Require().NoError(err)
	s.Zero(n)

	s.Require().NoError(s.users.Create(s.ctx, &entity.User{Username: "admin", PasswordHash: "hash"}))
	s.ErrorIs(s.users.Create(s.ctx, &entity.User{Username: "admin", PasswordHash: "x"}), domain.ErrDuplicate)

	u, err := s.users.GetByUsername(s.ctx, "admin")
	s.Require().NoError(err)
	s.Equal("hash", u.PasswordHash)

	u, err = s.users.GetByUsername(s.ctx, "nadie")
	s.Require().NoError(err)
	s.Nil(u)
}
