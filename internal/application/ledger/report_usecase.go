package ledger

import (
	"context"

	"github.com/jhoicas/inventory-ledger/internal/domain"
	"github.com/jhoicas/inventory-ledger/internal/domain/entity"
	"github.com/jhoicas/inventory-ledger/internal/domain/repository"
)

// ReportUseCase consultas de solo lectura: stock bajo y resumen de ventas por producto.
type ReportUseCase struct {
	productRepo repository.ProductRepository
	reportRepo  repository.ReportRepository
}

// NewReportUseCase construye el caso de uso de reportes.
func NewReportUseCase(productRepo repository.ProductRepository, reportRepo repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{productRepo: productRepo, reportRepo: reportRepo}
}

// LowStock devuelve los productos con quantity < threshold, en orden de ID.
// threshold es obligatorio y debe ser >= 0; el valor por defecto es asunto de la capa de presentación.
func (uc *ReportUseCase) LowStock(ctx context.Context, threshold int) ([]*entity.Product, error) {
	if threshold < 0 {
		return nil, domain.NewValidationError("threshold", "no puede ser negativo")
	}
	list, err := uc.productRepo.ListBelowQuantity(ctx, threshold)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []*entity.Product{}
	}
	return list, nil
}

// SalesSummary agrega cantidad vendida e ingresos por producto.
// Solo aparecen productos con al menos una venta (INNER JOIN con products).
func (uc *ReportUseCase) SalesSummary(ctx context.Context) ([]repository.SalesSummaryResult, error) {
	rows, err := uc.reportRepo.SalesSummary(ctx)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []repository.SalesSummaryResult{}
	}
	return rows, nil
}
