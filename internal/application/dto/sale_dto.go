package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-ledger/internal/domain/entity"
)

// RecordSaleRequest body para POST /api/sales.
// quantity no lleva regla de validación aquí: el ledger la valida y responde InvalidQuantity.
type RecordSaleRequest struct {
	ProductID int64 `json:"product_id" validate:"required"`
	Quantity  int   `json:"quantity"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID           int64           `json:"id"`
	ProductID    int64           `json:"product_id"`
	QuantitySold int             `json:"quantity_sold"`
	Amount       decimal.Decimal `json:"amount"`
	SaleDate     time.Time       `json:"sale_date"`
}

// SaleListResponse historial de ventas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Total int            `json:"total"`
}

// ToSaleResponse convierte la entidad en DTO.
func ToSaleResponse(s *entity.Sale) SaleResponse {
	return SaleResponse{
		ID:           s.ID,
		ProductID:    s.ProductID,
		QuantitySold: s.QuantitySold,
		Amount:       s.Amount,
		SaleDate:     s.SaleDate,
	}
}
