package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-ledger/internal/domain/repository"
)

// LowStockResponse productos con quantity < threshold.
type LowStockResponse struct {
	Threshold int               `json:"threshold"`
	Total     int               `json:"total"`
	Items     []ProductResponse `json:"items"`
}

// SalesSummaryItemDTO ventas agregadas de un producto.
type SalesSummaryItemDTO struct {
	ProductID         int64           `json:"product_id"`
	ProductName       string          `json:"product_name"`
	TotalQuantitySold int64           `json:"total_quantity_sold"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
}

// SalesSummaryResponse resumen de ventas; productos sin ventas no aparecen.
type SalesSummaryResponse struct {
	Items        []SalesSummaryItemDTO `json:"items"`
	TotalRevenue decimal.Decimal       `json:"total_revenue"`
}

// ToSalesSummaryResponse convierte las filas agregadas y calcula el total general.
func ToSalesSummaryResponse(rows []repository.SalesSummaryResult) SalesSummaryResponse {
	out := SalesSummaryResponse{Items: make([]SalesSummaryItemDTO, 0, len(rows)), TotalRevenue: decimal.Zero}
	for _, r := range rows {
		out.Items = append(out.Items, SalesSummaryItemDTO{
			ProductID:         r.ProductID,
			ProductName:       r.ProductName,
			TotalQuantitySold: r.TotalQuantitySold,
			TotalRevenue:      r.TotalRevenue,
		})
		out.TotalRevenue = out.TotalRevenue.Add(r.TotalRevenue)
	}
	return out
}
