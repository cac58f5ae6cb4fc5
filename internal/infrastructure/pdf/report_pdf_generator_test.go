package pdf_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-ledger/internal/domain/entity"
	"github.com/jhoicas/inventory-ledger/internal/domain/repository"
	"github.com/jhoicas/inventory-ledger/internal/infrastructure/pdf"
)

func TestLowStockPDF(t *testing.T) {
	g := pdf.NewReportPDFGenerator("inventory-ledger")

	doc, err := g.LowStockPDF(context.Background(), 5, []*entity.Product{
		{ID: 1, Name: "Widget", Quantity: 2, Price: decimal.RequireFromString("5.00")},
		{ID: 4, Name: "Gadget", Quantity: 0, Price: decimal.RequireFromString("1250.75")},
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
}

func TestLowStockPDF_SinProductos(t *testing.T) {
	g := pdf.NewReportPDFGenerator("inventory-ledger")

	doc, err := g.LowStockPDF(context.Background(), 0, nil)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
}

func TestSalesSummaryPDF(t *testing.T) {
	g := pdf.NewReportPDFGenerator("inventory-ledger")

	doc, err := g.SalesSummaryPDF(context.Background(), []repository.SalesSummaryResult{
		{ProductID: 1, ProductName: "Widget", TotalQuantitySold: 4, TotalRevenue: decimal.RequireFromString("20.00")},
		{ProductID: 2, ProductName: "Gadget", TotalQuantitySold: 1200, TotalRevenue: decimal.RequireFromString("15000.5")},
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
	assert.Greater(t, len(doc), 500)
}
