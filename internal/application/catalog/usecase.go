package catalog

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-ledger/internal/domain"
	"github.com/jhoicas/inventory-ledger/internal/domain/entity"
	"github.com/jhoicas/inventory-ledger/internal/domain/repository"
	"github.com/jhoicas/inventory-ledger/pkg/logger"
)

// CatalogUseCase CRUD de productos. Es la fuente de verdad de cantidad y precio actuales.
type CatalogUseCase struct {
	txRunner TxRunner
	repo     repository.ProductRepository
	log      *logger.Logger
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(txRunner TxRunner, repo repository.ProductRepository, log *logger.Logger) *CatalogUseCase {
	return &CatalogUseCase{txRunner: txRunner, repo: repo, log: log.Component("catalog")}
}

// Create valida y persiste un producto nuevo; el ID lo asigna el store.
func (uc *CatalogUseCase) Create(ctx context.Context, name string, quantity int, price decimal.Decimal) (*entity.Product, error) {
	product, err := entity.NewProduct(name, quantity, price)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	uc.log.Info().Int64("product_id", product.ID).Str("name", product.Name).Msg("producto creado")
	return product, nil
}

// Get obtiene un producto por ID. ErrNotFound si no existe.
func (uc *CatalogUseCase) Get(ctx context.Context, id int64) (*entity.Product, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// List devuelve todos los productos en orden de ID (orden de inserción).
func (uc *CatalogUseCase) List(ctx context.Context) ([]*entity.Product, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []*entity.Product{}
	}
	return list, nil
}

// Update sobrescribe cantidad y precio del producto. El nombre no se modifica.
func (uc *CatalogUseCase) Update(ctx context.Context, id int64, quantity int, price decimal.Decimal) (*entity.Product, error) {
	if err := entity.ValidateStock(quantity, price); err != nil {
		return nil, err
	}
	var updated *entity.Product
	err := uc.txRunner.RunCatalog(ctx, func(productRepo repository.ProductRepository) error {
		product, err := productRepo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		product.Quantity = quantity
		product.Price = price
		if err := productRepo.UpdateStock(ctx, product); err != nil {
			return err
		}
		updated = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int64("product_id", id).Int("quantity", quantity).Str("price", price.String()).Msg("producto actualizado")
	return updated, nil
}

// Delete elimina el producto. Las ventas históricas que lo referencian se conservan.
func (uc *CatalogUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.log.Info().Int64("product_id", id).Msg("producto eliminado")
	return nil
}
