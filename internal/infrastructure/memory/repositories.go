package memory

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-ledger/internal/domain"
	"github.com/jhoicas/inventory-ledger/internal/domain/entity"
	"github.com/jhoicas/inventory-ledger/internal/domain/repository"
)

var (
	_ repository.ProductRepository = (*productRepo)(nil)
	_ repository.SaleRepository    = (*saleRepo)(nil)
	_ repository.UserRepository    = (*userRepo)(nil)
	_ repository.ReportRepository  = (*reportRepo)(nil)
)

// ────────────────────────────────────────────────────────────────
// Productos
// ────────────────────────────────────────────────────────────────

type productRepo struct {
	s  *Store
	tx bool
}

func (r *productRepo) Create(_ context.Context, product *entity.Product) error {
	r.s.write(r.tx, func() {
		product.ID = r.s.nextProductID
		r.s.nextProductID++
		r.s.products[product.ID] = *product
	})
	return nil
}

func (r *productRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	var out *entity.Product
	r.s.read(r.tx, func() {
		if p, ok := r.s.products[id]; ok {
			out = &p
		}
	})
	return out, nil
}

// GetForUpdate: dentro de Run el lock global ya serializa; fuera de tx equivale a GetByID.
func (r *productRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *productRepo) List(_ context.Context) ([]*entity.Product, error) {
	var list []*entity.Product
	r.s.read(r.tx, func() {
		list = r.s.sortedProducts(func(entity.Product) bool { return true })
	})
	return list, nil
}

func (r *productRepo) ListBelowQuantity(_ context.Context, threshold int) ([]*entity.Product, error) {
	var list []*entity.Product
	r.s.read(r.tx, func() {
		list = r.s.sortedProducts(func(p entity.Product) bool { return p.Quantity < threshold })
	})
	return list, nil
}

func (r *productRepo) UpdateStock(_ context.Context, product *entity.Product) error {
	var err error
	r.s.write(r.tx, func() {
		cur, ok := r.s.products[product.ID]
		if !ok {
			err = domain.ErrNotFound
			return
		}
		cur.Quantity = product.Quantity
		cur.Price = product.Price
		r.s.products[product.ID] = cur
	})
	return err
}

func (r *productRepo) DecrementQuantity(_ context.Context, id int64, qty int) error {
	var err error
	r.s.write(r.tx, func() {
		cur, ok := r.s.products[id]
		if !ok {
			err = domain.ErrNotFound
			return
		}
		if cur.Quantity < qty {
			err = &domain.InsufficientStockError{Available: cur.Quantity}
			return
		}
		cur.Quantity -= qty
		r.s.products[id] = cur
	})
	return err
}

func (r *productRepo) Delete(_ context.Context, id int64) error {
	var err error
	r.s.write(r.tx, func() {
		if _, ok := r.s.products[id]; !ok {
			err = domain.ErrNotFound
			return
		}
		delete(r.s.products, id)
	})
	return err
}

// ────────────────────────────────────────────────────────────────
// Ventas
// ────────────────────────────────────────────────────────────────

type saleRepo struct {
	s  *Store
	tx bool
}

func (r *saleRepo) Create(_ context.Context, sale *entity.Sale) error {
	r.s.write(r.tx, func() {
		sale.ID = r.s.nextSaleID
		r.s.nextSaleID++
		sale.SaleDate = time.Now().UTC()
		r.s.sales = append(r.s.sales, *sale)
	})
	return nil
}

func (r *saleRepo) List(_ context.Context, productID *int64) ([]*entity.Sale, error) {
	list := make([]*entity.Sale, 0)
	r.s.read(r.tx, func() {
		for _, s := range r.s.sales {
			if productID != nil && s.ProductID != *productID {
				continue
			}
			s := s
			list = append(list, &s)
		}
	})
	return list, nil
}

// ────────────────────────────────────────────────────────────────
// Usuarios
// ────────────────────────────────────────────────────────────────

type userRepo struct {
	s *Store
}

func (r *userRepo) Create(_ context.Context, user *entity.User) error {
	var err error
	r.s.write(false, func() {
		if _, ok := r.s.users[user.Username]; ok {
			err = domain.ErrDuplicate
			return
		}
		r.s.users[user.Username] = *user
	})
	return err
}

func (r *userRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	var out *entity.User
	r.s.read(false, func() {
		if u, ok := r.s.users[username]; ok {
			out = &u
		}
	})
	return out, nil
}

func (r *userRepo) Count(_ context.Context) (int, error) {
	var n int
	r.s.read(false, func() { n = len(r.s.users) })
	return n, nil
}

// ────────────────────────────────────────────────────────────────
// Reportes
// ────────────────────────────────────────────────────────────────

type reportRepo struct {
	s *Store
}

// SalesSummary agrega ventas por producto existente, en orden de ID.
func (r *reportRepo) SalesSummary(_ context.Context) ([]repository.SalesSummaryResult, error) {
	out := make([]repository.SalesSummaryResult, 0)
	r.s.read(false, func() {
		byID := make(map[int64]*repository.SalesSummaryResult)
		for _, s := range r.s.sales {
			p, ok := r.s.products[s.ProductID]
			if !ok {
				continue
			}
			row, ok := byID[p.ID]
			if !ok {
				row = &repository.SalesSummaryResult{ProductID: p.ID, ProductName: p.Name, TotalRevenue: decimal.Zero}
				byID[p.ID] = row
			}
			row.TotalQuantitySold += int64(s.QuantitySold)
			row.TotalRevenue = row.TotalRevenue.Add(s.Amount)
		}
		sold := r.s.sortedProducts(func(p entity.Product) bool {
			_, ok := byID[p.ID]
			return ok
		})
		for _, p := range sold {
			out = append(out, *byID[p.ID])
		}
	})
	return out, nil
}
