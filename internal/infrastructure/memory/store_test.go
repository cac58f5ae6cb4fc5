package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-ledger/internal/domain"
	"github.com/jhoicas/inventory-ledger/internal/domain/entity"
	"github.com/jhoicas/inventory-ledger/internal/domain/repository"
	"github.com/jhoicas/inventory-ledger/internal/infrastructure/memory"
)

func seed(t *testing.T, s *memory.Store, name string, qty int, price string) *entity.Product {
	t.Helper()
	p := &entity.Product{Name: name, Quantity: qty, Price: decimal.RequireFromString(price)}
	require.NoError(t, s.Products().Create(context.Background(), p))
	return p
}

func TestStore_CreateAsignaIDsCrecientes(t *testing.T) {
	s := memory.NewStore()
	a := seed(t, s, "A", 1, "1")
	b := seed(t, s, "B", 1, "1")

	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, int64(2), b.ID)

	list, err := s.Products().List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "A", list[0].Name)
	assert.Equal(t, "B", list[1].Name)
}

func TestStore_RunRestauraEstadoSiFalla(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	p := seed(t, s, "Widget", 10, "5.00")
	boom := errors.New("boom")

	err := s.Run(ctx, func(products repository.ProductRepository, sales repository.SaleRepository) error {
		require.NoError(t, sales.Create(ctx, &entity.Sale{ProductID: p.ID, QuantitySold: 3, Amount: decimal.NewFromInt(15)}))
		require.NoError(t, products.DecrementQuantity(ctx, p.ID, 3))
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := s.Products().GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, got.Quantity)

	sales, err := s.Sales().List(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, sales)

	// El ID de venta descartado se reutiliza tras el rollback
	sale := &entity.Sale{ProductID: p.ID, QuantitySold: 1, Amount: decimal.NewFromInt(5)}
	require.NoError(t, s.Sales().Create(ctx, sale))
	assert.Equal(t, int64(1), sale.ID)
	assert.False(t, sale.SaleDate.IsZero())
}

func TestStore_DecrementQuantity(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	p := seed(t, s, "Widget", 2, "1")

	err := s.Products().DecrementQuantity(ctx, p.ID, 3)
	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 2, stockErr.Available)

	require.ErrorIs(t, s.Products().DecrementQuantity(ctx, 99, 1), domain.ErrNotFound)
	require.NoError(t, s.Products().DecrementQuantity(ctx, p.ID, 2))
}

func TestStore_ListBelowQuantity(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	seed(t, s, "A", 3, "1")
	seed(t, s, "B", 5, "1")
	seed(t, s, "C", 0, "1")

	list, err := s.Products().ListBelowQuantity(ctx, 5)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "A", list[0].Name)
	assert.Equal(t, "C", list[1].Name)

	list, err = s.Products().ListBelowQuantity(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestStore_DeleteConservaVentas(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	a := seed(t, s, "A", 10, "2")
	b := seed(t, s, "B", 10, "3")

	for _, sale := range []*entity.Sale{
		{ProductID: a.ID, QuantitySold: 1, Amount: decimal.NewFromInt(2)},
		{ProductID: b.ID, QuantitySold: 2, Amount: decimal.NewFromInt(6)},
		{ProductID: a.ID, QuantitySold: 3, Amount: decimal.NewFromInt(6)},
	} {
		require.NoError(t, s.Sales().Create(ctx, sale))
	}

	summary, err := s.Reports().SalesSummary(ctx)
	require.NoError(t, err)
	require.Len(t, summary, 2)
	assert.Equal(t, int64(4), summary[0].TotalQuantitySold)
	assert.True(t, summary[0].TotalRevenue.Equal(decimal.NewFromInt(8)))

	require.NoError(t, s.Products().Delete(ctx, a.ID))
	require.ErrorIs(t, s.Products().Delete(ctx, a.ID), domain.ErrNotFound)

	sales, err := s.Sales().List(ctx, &a.ID)
	require.NoError(t, err)
	assert.Len(t, sales, 2)

	summary, err = s.Reports().SalesSummary(ctx)
	require.NoError(t, err)
	require.Len(t, summary, 1)
	assert.Equal(t, b.ID, summary[0].ProductID)
	assert.Equal(t, "B", summary[0].ProductName)
}

func TestStore_Users(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()

	n, err := s.Users().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, s.Users().Create(ctx, &entity.User{Username: "admin", PasswordHash: "h"}))
	require.ErrorIs(t, s.Users().Create(ctx, &entity.User{Username: "admin", PasswordHash: "x"}), domain.ErrDuplicate)

	u, err := s.Users().GetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, "h", u.PasswordHash)

	u, err = s.Users().GetByUsername(ctx, "nadie")
	require.NoError(t, err)
	assert.Nil(t, u)
}
