package ledger

import (
	"context"
	"errors"

	"github.com/jhoicas/inventory-ledger/internal/domain"
	"github.com/jhoicas/inventory-ledger/internal/domain/entity"
	"github.com/jhoicas/inventory-ledger/internal/domain/repository"
	"github.com/jhoicas/inventory-ledger/pkg/logger"
)

// LedgerUseCase registra ventas de forma transaccional y expone el historial de ventas.
// El descuento de stock se hace con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
type LedgerUseCase struct {
	txRunner TxRunner
	saleRepo repository.SaleRepository
	log      *logger.Logger
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(txRunner TxRunner, saleRepo repository.SaleRepository, log *logger.Logger) *LedgerUseCase {
	return &LedgerUseCase{txRunner: txRunner, saleRepo: saleRepo, log: log.Component("ledger")}
}

// RecordSale vende quantitySold unidades del producto.
//
// Validaciones en orden: quantitySold > 0 (ErrInvalidQuantity), el producto existe (ErrNotFound),
// quantitySold <= stock actual (InsufficientStockError). Dentro de una sola transacción bloquea la
// fila del producto, inserta la venta con amount = quantitySold * precio actual y descuenta el stock.
// Si algo falla no queda ni la venta ni el descuento.
func (uc *LedgerUseCase) RecordSale(ctx context.Context, productID int64, quantitySold int) (*entity.Sale, error) {
	if quantitySold <= 0 {
		return nil, domain.NewInvalidQuantityError(quantitySold)
	}

	var sale *entity.Sale
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error {
		product, err := productRepo.GetForUpdate(ctx, productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if !product.CanSell(quantitySold) {
			return &domain.InsufficientStockError{Available: product.Quantity}
		}

		s := &entity.Sale{
			ProductID:    productID,
			QuantitySold: quantitySold,
			Amount:       product.SaleAmount(quantitySold),
		}
		if err := saleRepo.Create(ctx, s); err != nil {
			return err
		}
		if err := productRepo.DecrementQuantity(ctx, productID, quantitySold); err != nil {
			return err
		}
		sale = s
		return nil
	})
	if err != nil {
		var stockErr *domain.InsufficientStockError
		if errors.As(err, &stockErr) {
			uc.log.Debug().Int64("product_id", productID).Int("requested", quantitySold).
				Int("available", stockErr.Available).Msg("venta rechazada: stock insuficiente")
		}
		return nil, err
	}

	uc.log.Info().
		Int64("sale_id", sale.ID).
		Int64("product_id", productID).
		Int("quantity_sold", quantitySold).
		Str("amount", sale.Amount.String()).
		Msg("venta registrada")
	return sale, nil
}

// ListSales devuelve el historial de ventas (append-only) en orden de inserción.
// productID nil devuelve todas las ventas, incluidas las de productos ya eliminados.
func (uc *LedgerUseCase) ListSales(ctx context.Context, productID *int64) ([]*entity.Sale, error) {
	list, err := uc.saleRepo.List(ctx, productID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []*entity.Sale{}
	}
	return list, nil
}
