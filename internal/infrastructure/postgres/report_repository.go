package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventory-ledger/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de agregación de solo lectura.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el repositorio de reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// SalesSummary suma cantidades e importes por producto. Ventas de productos eliminados quedan fuera (INNER JOIN).
func (r *ReportRepo) SalesSummary(ctx context.Context) ([]repository.SalesSummaryResult, error) {
	query := `
		SELECT p.id, p.name, SUM(s.quantity_sold)::BIGINT, SUM(s.sale_amount)
		FROM sales s
		INNER JOIN products p ON p.id = s.product_id
		GROUP BY p.id, p.name
		ORDER BY p.id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("report.SalesSummary: %w", err)
	}
	defer rows.Close()

	out := make([]repository.SalesSummaryResult, 0)
	for rows.Next() {
		var row repository.SalesSummaryResult
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.TotalQuantitySold, &row.TotalRevenue); err != nil {
			return nil, fmt.Errorf("report.SalesSummary scan: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("report.SalesSummary: %w", err)
	}
	return out, nil
}
