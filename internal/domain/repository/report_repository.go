package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// SalesSummaryResult fila agregada de ventas por producto.
// Lo produce la DB; el caso de uso lo entrega tal cual.
type SalesSummaryResult struct {
	ProductID         int64
	ProductName       string
	TotalQuantitySold int64
	TotalRevenue      decimal.Decimal // suma de sale_amount
}

// ReportRepository consultas de solo lectura sobre products + sales.
type ReportRepository interface {
	// SalesSummary agrega todas las ventas por producto (INNER JOIN: productos sin ventas
	// o ventas de productos eliminados no aparecen), ordenado por ID de producto.
	SalesSummary(ctx context.Context) ([]SalesSummaryResult, error)
}
