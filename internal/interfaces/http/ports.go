package http

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-ledger/internal/application/dto"
	"github.com/jhoicas/inventory-ledger/internal/domain/entity"
	"github.com/jhoicas/inventory-ledger/internal/domain/repository"
)

// Los handlers dependen de estas interfaces; los casos de uso concretos las satisfacen.

// CatalogService CRUD de productos (catalog.CatalogUseCase).
type CatalogService interface {
	Create(ctx context.Context, name string, quantity int, price decimal.Decimal) (*entity.Product, error)
	Get(ctx context.Context, id int64) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	Update(ctx context.Context, id int64, quantity int, price decimal.Decimal) (*entity.Product, error)
	Delete(ctx context.Context, id int64) error
}

// LedgerService registro e historial de ventas (ledger.LedgerUseCase).
type LedgerService interface {
	RecordSale(ctx context.Context, productID int64, quantitySold int) (*entity.Sale, error)
	ListSales(ctx context.Context, productID *int64) ([]*entity.Sale, error)
}

// ReportService consultas de reportes (ledger.ReportUseCase).
type ReportService interface {
	LowStock(ctx context.Context, threshold int) ([]*entity.Product, error)
	SalesSummary(ctx context.Context) ([]repository.SalesSummaryResult, error)
}

// AuthService login con emisión de JWT (auth.AuthUseCase).
type AuthService interface {
	Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error)
}

// LowStockRecorder agrega cada reporte de stock bajo al log (auditlog.LowStockLog).
type LowStockRecorder interface {
	Append(items []*entity.Product) error
}

// ReportRenderer versiones PDF de los reportes (pdf.ReportPDFGenerator).
type ReportRenderer interface {
	LowStockPDF(ctx context.Context, threshold int, items []*entity.Product) ([]byte, error)
	SalesSummaryPDF(ctx context.Context, rows []repository.SalesSummaryResult) ([]byte, error)
}
