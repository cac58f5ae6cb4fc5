package repository

import (
	"context"

	"github.com/jhoicas/inventory-ledger/internal/domain/entity"
)

// SaleRepository puerto de persistencia para el historial de ventas. Solo inserción y lectura.
type SaleRepository interface {
	// Create inserta la venta; asigna sale.ID y sale.SaleDate.
	Create(ctx context.Context, sale *entity.Sale) error
	// List devuelve las ventas en orden de inserción. productID nil = todas.
	List(ctx context.Context, productID *int64) ([]*entity.Sale, error)
}
