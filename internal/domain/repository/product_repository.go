package repository

import (
	"context"

	"github.com/jhoicas/inventory-ledger/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID y GetForUpdate devuelven (nil, nil) si el producto no existe.
type ProductRepository interface {
	// Create persiste el producto y asigna product.ID.
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	// GetForUpdate bloquea la fila hasta el fin de la transacción (SELECT FOR UPDATE).
	GetForUpdate(ctx context.Context, id int64) (*entity.Product, error)
	// List devuelve todos los productos en orden de clave primaria.
	List(ctx context.Context) ([]*entity.Product, error)
	// ListBelowQuantity devuelve los productos con quantity < threshold, en orden de clave primaria.
	ListBelowQuantity(ctx context.Context, threshold int) ([]*entity.Product, error)
	// UpdateStock sobrescribe quantity y price. El nombre no se toca.
	UpdateStock(ctx context.Context, product *entity.Product) error
	// DecrementQuantity resta qty del stock; ErrInsufficientStock si dejaría la cantidad negativa.
	DecrementQuantity(ctx context.Context, id int64, qty int) error
	// Delete elimina el producto; ErrNotFound si no existe.
	Delete(ctx context.Context, id int64) error
}
