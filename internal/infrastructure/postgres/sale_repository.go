package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventory-ledger/internal/domain/entity"
	"github.com/jhoicas/inventory-ledger/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL. Solo inserta y lee.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el repositorio (pool o tx).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create inserta la venta. ID y sale_date los asigna la DB.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	query := `
		INSERT INTO sales (product_id, quantity_sold, sale_amount)
		VALUES ($1, $2, $3)
		RETURNING id, sale_date`
	err := r.q.QueryRow(ctx, query, sale.ProductID, sale.QuantitySold, sale.Amount).
		Scan(&sale.ID, &sale.SaleDate)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// List devuelve el historial en orden de inserción, opcionalmente filtrado por producto.
func (r *SaleRepo) List(ctx context.Context, productID *int64) ([]*entity.Sale, error) {
	query := `
		SELECT id, product_id, quantity_sold, sale_amount, sale_date
		FROM sales
		WHERE ($1::BIGINT IS NULL OR product_id = $1)
		ORDER BY id`
	rows, err := r.q.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Sale, 0)
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.ProductID, &s.QuantitySold, &s.Amount, &s.SaleDate); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	return list, nil
}
