package catalog

import (
	"context"

	"github.com/jhoicas/inventory-ledger/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con un ProductRepository atado a ella.
// Update lo usa para bloquear la fila y serializarse con las ventas concurrentes.
type TxRunner interface {
	RunCatalog(ctx context.Context, fn func(productRepo repository.ProductRepository) error) error
}
