// Package memory implementa los puertos de persistencia en memoria (STORE_DRIVER=memory y tests).
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/inventory-ledger/internal/application/catalog"
	"github.com/jhoicas/inventory-ledger/internal/application/ledger"
	"github.com/jhoicas/inventory-ledger/internal/domain/entity"
	"github.com/jhoicas/inventory-ledger/internal/domain/repository"
)

var _ ledger.TxRunner = (*Store)(nil)
var _ catalog.TxRunner = (*Store)(nil)

// Store guarda productos, ventas y usuarios en mapas protegidos por un único RWMutex.
// Las transacciones toman el lock de escritura completo: se serializan entre sí.
type Store struct {
	mu            sync.RWMutex
	products      map[int64]entity.Product
	sales         []entity.Sale
	users         map[string]entity.User
	nextProductID int64
	nextSaleID    int64
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{
		products:      make(map[int64]entity.Product),
		users:         make(map[string]entity.User),
		nextProductID: 1,
		nextSaleID:    1,
	}
}

// Products devuelve el repositorio de productos fuera de transacción.
func (s *Store) Products() repository.ProductRepository { return &productRepo{s: s} }

// Sales devuelve el repositorio de ventas fuera de transacción.
func (s *Store) Sales() repository.SaleRepository { return &saleRepo{s: s} }

// Users devuelve el repositorio de usuarios.
func (s *Store) Users() repository.UserRepository { return &userRepo{s: s} }

// Reports devuelve el repositorio de reportes.
func (s *Store) Reports() repository.ReportRepository { return &reportRepo{s: s} }

// Run ejecuta fn con repos de producto y venta en exclusión mutua. Si fn falla se restaura el estado previo.
func (s *Store) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
) error) error {
	return s.inTx(ctx, func() error {
		return fn(&productRepo{s: s, tx: true}, &saleRepo{s: s, tx: true})
	})
}

// RunCatalog igual que Run pero solo con el repo de productos.
func (s *Store) RunCatalog(ctx context.Context, fn func(productRepo repository.ProductRepository) error) error {
	return s.inTx(ctx, func() error {
		return fn(&productRepo{s: s, tx: true})
	})
}

func (s *Store) inTx(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snapshot()
	if err := fn(); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

type snapshot struct {
	products      map[int64]entity.Product
	salesLen      int
	nextProductID int64
	nextSaleID    int64
}

// snapshot copia el estado mutable. sales es append-only: basta con recordar su longitud.
func (s *Store) snapshot() snapshot {
	products := make(map[int64]entity.Product, len(s.products))
	for id, p := range s.products {
		products[id] = p
	}
	return snapshot{
		products:      products,
		salesLen:      len(s.sales),
		nextProductID: s.nextProductID,
		nextSaleID:    s.nextSaleID,
	}
}

func (s *Store) restore(snap snapshot) {
	s.products = snap.products
	s.sales = s.sales[:snap.salesLen]
	s.nextProductID = snap.nextProductID
	s.nextSaleID = snap.nextSaleID
}

// read/write toman el lock salvo dentro de una transacción, donde ya está tomado.
func (s *Store) read(tx bool, fn func()) {
	if !tx {
		s.mu.RLock()
		defer s.mu.RUnlock()
	}
	fn()
}

func (s *Store) write(tx bool, fn func()) {
	if !tx {
		s.mu.Lock()
		defer s.mu.Unlock()
	}
	fn()
}

func (s *Store) sortedProducts(keep func(entity.Product) bool) []*entity.Product {
	list := make([]*entity.Product, 0, len(s.products))
	for _, p := range s.products {
		if keep(p) {
			p := p
			list = append(list, &p)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list
}
